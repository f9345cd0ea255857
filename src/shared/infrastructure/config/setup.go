package config

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupSharedMiddleware configura os middlewares compartilhados do serviço.
// O consumidor é o dashboard no navegador, então o CORS precisa liberar o
// header Authorization para as origens configuradas.
func SetupSharedMiddleware(router *gin.Engine, cfg Config) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Aqui entram futuros middlewares compartilhados (rate limit, etc.)
}

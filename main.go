package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	proxyController "github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/proxy/infrastructure/controller"
	relatoriosUseCase "github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/application/usecase"
	relatoriosClient "github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/infrastructure/client"
	relatoriosController "github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/infrastructure/controller"
	sharedConfig "github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/shared/infrastructure/config"
	sharedLogger "github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/shared/infrastructure/logger"
	sharedMiddleware "github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/shared/infrastructure/middleware"
)

func main() {
	log.Println("🚀 Jiffy Gestor - Serviço de Relatórios - Iniciando...")

	// Carregar configuração do ambiente
	cfg := sharedConfig.Load()
	sharedLogger.Setup(cfg.LogLevel, cfg.LogFormat)

	// Configurar o router com Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics se estiver habilitado
	if cfg.PrometheusEnabled {
		log.Println("Registrando endpoint /metrics")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics desabilitado")
	}

	// Middlewares compartilhados (CORS para o dashboard no navegador)
	sharedConfig.SetupSharedMiddleware(router, cfg)

	// Health check
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1: todas as rotas exigem token Bearer
	v1 := router.Group("/api/v1")
	v1.Use(sharedMiddleware.BearerAuth())

	setupRelatoriosModule(v1, cfg)
	setupProxyModule(v1, cfg)

	log.Printf("✅ Serviço de Relatórios iniciado em http://localhost:%s", cfg.Port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Port)
	router.Run(":" + cfg.Port)
}

// setupRelatoriosModule configura o módulo Relatórios
func setupRelatoriosModule(router *gin.RouterGroup, cfg sharedConfig.Config) {
	log.Println("Configurando módulo Relatórios...")

	// Clientes do backend do POS
	vendasClient := relatoriosClient.NewVendasClient(cfg.BackendURL, cfg.PageSize, cfg.DetailWorkers)
	catalogoClient := relatoriosClient.NewCatalogoClient(cfg.BackendURL)

	// Casos de uso
	pagamentosUC := relatoriosUseCase.NewRelatorioPagamentosUseCase(vendasClient, catalogoClient)
	produtosUC := relatoriosUseCase.NewRelatorioProdutosUseCase(vendasClient, catalogoClient)

	// Controlador e rotas
	relatorioCtrl := relatoriosController.NewRelatorioController(pagamentosUC, produtosUC)
	relatorioCtrl.RegisterRoutes(router)
}

// setupProxyModule configura o repasse autenticado dos cadastros
func setupProxyModule(router *gin.RouterGroup, cfg sharedConfig.Config) {
	log.Println("Configurando módulo Proxy...")

	proxyCtrl := proxyController.NewProxyController(cfg.BackendURL)
	proxyCtrl.RegisterRoutes(router)
}

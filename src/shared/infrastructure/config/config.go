package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config reúne as variáveis de ambiente do serviço.
type Config struct {
	Port              string
	BackendURL        string
	PageSize          int
	DetailWorkers     int
	LogLevel          string
	LogFormat         string
	CORSOrigins       []string
	PrometheusEnabled bool
}

// Load carrega o .env (se existir) e monta a configuração com defaults.
func Load() Config {
	// Em produção as variáveis vêm do ambiente; o .env é só conveniência local
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env não encontrado, usando variáveis de ambiente")
	}

	return Config{
		Port:              getEnv("PORT", "8080"),
		BackendURL:        getEnv("POS_BACKEND_URL", "http://localhost:3333"),
		PageSize:          getEnvInt("REPORT_PAGE_SIZE", 100),
		DetailWorkers:     getEnvInt("REPORT_DETAIL_WORKERS", 16),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		CORSOrigins:       strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
		PrometheusEnabled: getEnv("PROMETHEUS_ENABLED", "false") == "true",
	}
}

// getEnv obtém uma variável de ambiente ou devolve um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  %s inválido (%q), usando %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

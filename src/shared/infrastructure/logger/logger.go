package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup inicializa o logger global. Formatos aceitos: "json" (padrão em
// produção) e "console" (desenvolvimento). Nível inválido cai em "info".
func Setup(nivel, formato string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(nivel))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	zerolog.TimeFieldFormat = time.RFC3339

	if strings.ToLower(formato) == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
		return
	}

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// WithComponent devolve um logger etiquetado com o componente.
func WithComponent(componente string) zerolog.Logger {
	return log.Logger.With().Str("component", componente).Logger()
}

// WithExecucao devolve um logger etiquetado com o ID de uma execução de
// relatório, para correlacionar os warnings de um mesmo cálculo.
func WithExecucao(componente, execucaoID string) zerolog.Logger {
	return log.Logger.With().
		Str("component", componente).
		Str("execucao_id", execucaoID).
		Logger()
}

package logger

import (
	"os"
	"strings"
	"time"

	"FinMate/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configura o logger global conforme o ambiente: saida colorida de
// console em desenvolvimento, JSON estruturado em producao.
func Init(cfg *config.Config) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel)); err == nil && cfg.App.LogLevel != "" {
		level = parsed
	}
	zerolog.SetGlobalLevel(level)

	if cfg.App.Environment == "development" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log = zerolog.New(output).With().Timestamp().Logger()
		return
	}

	log = zerolog.New(os.Stdout).With().Timestamp().Str("service", "finmate").Logger()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

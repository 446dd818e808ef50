package logger

import (
	"os"
	"strings"
	"time"

	"Bolso/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configura o logger global a partir da configuração da aplicação.
func Init(cfg *config.Config) {
	level := parseLevel(cfg.App.LogLevel)

	var logger zerolog.Logger
	if cfg.IsProduction() {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	log = logger.Level(level).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func Debug() *zerolog.Event {
	return log.Debug()
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

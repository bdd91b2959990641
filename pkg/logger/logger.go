package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger = zerolog.Logger

// New configures the global zerolog logger and returns a scoped instance.
// Local runs get the console writer, everything else stays JSON.
func New(env string) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env == "local" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return log.Level(zerolog.InfoLevel)
}

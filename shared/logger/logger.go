package logger

import (
	"io"
	"os"
	"roomapi/config"
	"roomapi/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// InitLogger configures the global zerolog logger. Development gets a human readable console writer,
// every other environment writes JSON lines to stdout.
func InitLogger(config *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var output io.Writer = os.Stdout
	if isDevelopment(config) {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(output).With().Timestamp().Str("app", config.App.Name).Logger()
	log.Trace().Msg("Zerolog initialized.")
}

// ErrorWithStack logs err at error level with the stack of the caller.
func ErrorWithStack(err error) {
	if err == nil {
		return
	}

	log.Error().Stack().Err(errors.WithStack(err)).Msg("unexpected error")
}

// SetLogLevel applies SERVER_LOG_LEVEL. Unset or unknown levels fall back to debug in development
// and info elsewhere.
func SetLogLevel(config *config.Config) {
	fallback := zerolog.InfoLevel
	if isDevelopment(config) {
		fallback = zerolog.DebugLevel
	}

	level, err := zerolog.ParseLevel(config.Server.LogLevel)

	switch {
	case config.Server.LogLevel == constant.Empty:
		level = fallback
	case err != nil:
		log.Warn().Str("loglevel", config.Server.LogLevel).Msg("Unknown log level, using default.")

		level = fallback
	}

	zerolog.SetGlobalLevel(level)
	log.Info().Str("loglevel", level.String()).Msg("Log level set.")
}

func isDevelopment(config *config.Config) bool {
	return config.Server.Env == constant.Empty || config.Server.Env == constant.ServerEnvDevelopment
}

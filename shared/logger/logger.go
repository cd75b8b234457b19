package logger

import (
	"io"
	"os"
	"strings"
	"time"
	"venuely/config"
	"venuely/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at stdout. Production writes JSON lines, every other
// environment uses the console writer. LOG_LEVEL defaults to info.
func Setup(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if strings.EqualFold(cfg.Server.Env, constant.ServerEnvProduction) {
		out = os.Stdout
	}

	log.Logger = New(out, cfg.Server.LogLevel, zerolog.InfoLevel).With().Str("service", cfg.App.Name).Logger()
}

// Console configures the terminal client, which only reports warnings to stderr.
func Console() {
	log.Logger = New(zerolog.ConsoleWriter{Out: os.Stderr}, "", zerolog.WarnLevel)
}

// New builds a timestamped logger at the parsed level, or at fallback when level is empty or unknown.
func New(out io.Writer, level string, fallback zerolog.Level) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		parsed = fallback
	}

	zerolog.SetGlobalLevel(parsed)

	return zerolog.New(out).Level(parsed).With().Timestamp().Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

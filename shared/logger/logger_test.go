package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"venuely/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	original, level := log.Logger, zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestNew_Level(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		fallback zerolog.Level
		want     zerolog.Level
	}{
		{name: "configured level", level: "debug", fallback: zerolog.InfoLevel, want: zerolog.DebugLevel},
		{name: "case and spaces", level: " WARN ", fallback: zerolog.InfoLevel, want: zerolog.WarnLevel},
		{name: "empty uses fallback", level: "", fallback: zerolog.InfoLevel, want: zerolog.InfoLevel},
		{name: "unknown uses fallback", level: "loud", fallback: zerolog.ErrorLevel, want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreLogger(t)

			l := logger.New(&bytes.Buffer{}, tt.level, tt.fallback)

			assert.Equal(t, tt.want, l.GetLevel())
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNew_WritesJSON(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer

	l := logger.New(&buf, "info", zerolog.InfoLevel)
	l.Debug().Msg("dropped")
	l.Info().Str("invite_id", "i-1").Msg("invite accepted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "invite accepted", entry["message"])
	assert.Equal(t, "i-1", entry["invite_id"])
	assert.Contains(t, entry, "time")
}

func TestErrorWithStack(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer

	log.Logger = logger.New(&buf, "error", zerolog.ErrorLevel)

	logger.ErrorWithStack(errors.New("connection refused"))

	assert.Contains(t, buf.String(), "connection refused")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

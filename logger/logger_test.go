package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"ERROR":   zerolog.ErrorLevel,
		"FATAL":   zerolog.FatalLevel,
		"PANIC":   zerolog.PanicLevel,
		"INFO":    zerolog.InfoLevel,
		"unknown": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewLoggerTo(t *testing.T) {
	SetupLogging()
	t.Setenv(LogLevelEnv, LOG_LEVEL_WARN)

	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "Test")
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Test", entry["component"])
	assert.Equal(t, "warn", entry["level_name"])
	assert.Equal(t, "shown", entry["message"])
	assert.Contains(t, entry, "timestamp")
}

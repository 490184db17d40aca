package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConsoleWriterPlainText(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(NewConsoleWriter(&buf, true))

	logger.Info().Msg("Turning screen off")

	out := buf.String()
	assert.Contains(t, out, "| INFO  |")
	assert.Contains(t, out, "Turning screen off")
	assert.NotContains(t, out, "\x1b[", "no escape codes when color is disabled")
	assert.NotContains(t, out, "{", "console output is not JSON")
}

func TestConsoleWriterLevels(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  string
	}{
		{zerolog.DebugLevel, "| DEBUG |"},
		{zerolog.WarnLevel, "| WARN  |"},
		{zerolog.ErrorLevel, "| ERROR |"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := zerolog.New(NewConsoleWriter(&buf, true)).Level(zerolog.TraceLevel)
		logger.WithLevel(tt.level).Msg("x")
		assert.Contains(t, buf.String(), tt.want)
	}
}

func TestConsoleWriterColor(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(NewConsoleWriter(&buf, false))

	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), "\x1b[32mINFO \x1b[0m")
}

package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggingConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())
	logger.Warn().Int("turn", 3).Msg("shown")
	assert.Contains(t, buf.String(), `"turn":3`)
	assert.Contains(t, buf.String(), `"message":"shown"`)

	buf.Reset()
	logger, err = NewLogger(LoggingConfig{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)
	logger.Debug().Msg("pretty")
	assert.Contains(t, buf.String(), "pretty")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger(LoggingConfig{Level: "loud", Format: "json"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewLogger(LoggingConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", FormatJSON, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("sampled", zap.Int("lines", 3))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "sampled", entry["msg"])
	assert.Equal(t, "quicklines", entry["logger"])
	assert.EqualValues(t, 3, entry["lines"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", FormatConsole, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("visible")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("nope", FormatJSON, &bytes.Buffer{})
	assert.Error(t, err)
}

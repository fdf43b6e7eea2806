package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/osw/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Pretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.Info("updating measure wwr")
	lg.Warn("measure has no tests")
	lg.Error(zerr.With(zerr.Wrap(errors.New("no such file"), "failed to load model"), "path", "house.osm"))
	lg.Error(nil)

	out := buf.String()
	assert.Contains(t, out, "updating measure wwr\n")
	assert.Contains(t, out, "! measure has no tests\n")
	assert.Contains(t, out, "✗ Error: failed to load model\n       path: house.osm\n\n  Caused by:\n    → no such file\n")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	lg.SetJSON(true)

	lg.Info("hello")
	lg.Error(errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "hello", info["msg"])

	var failed map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failed))
	assert.Equal(t, "ERROR", failed["level"])
	assert.Equal(t, "boom", failed["error"])
}

func TestLogger_Quiet(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	lg.SetQuiet(true)

	lg.Info("hidden")
	lg.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	l := NewZerologLogger("test")
	require.NotNil(t, l)
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLogger_WritesComponentField(t *testing.T) {
	SetLevel("debug")
	t.Cleanup(func() { SetLevel("info") })

	var buf bytes.Buffer
	l := NewZerologLoggerWithWriter("form", &buf)
	l.Debugw("submit", map[string]any{"fields": 5})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "form", entry["component"])
	assert.Equal(t, "submit", entry["message"])
	assert.Equal(t, float64(5), entry["fields"])
}

func TestSetLevel_FallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	SetLevel("bogus")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	SetLevel("WARN")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestOrNop(t *testing.T) {
	assert.IsType(t, NopLogger{}, OrNop(nil))
	l := NewZerologLoggerWithWriter("x", &bytes.Buffer{})
	assert.Same(t, l, OrNop(l))
}

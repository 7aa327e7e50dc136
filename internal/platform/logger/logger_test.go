package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		" INFO ":  Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestJSONOutput_IncludesBaseAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "petclinic", Output: &buf})

	l.With(map[string]any{"component": "test"}).Info("hello", map[string]any{
		"n":   3,
		"err": errors.New("boom"),
		"":    "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "petclinic", entry["app"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, float64(3), entry["n"])
	assert.Equal(t, "boom", entry["err"])
	_, hasEmpty := entry[""]
	assert.False(t, hasEmpty)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Output: &buf})

	l.Info("skipped", nil)
	assert.Zero(t, buf.Len())

	l.Warn("kept", nil)
	assert.Contains(t, buf.String(), "kept")
}

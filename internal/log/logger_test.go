package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"
)

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("argspec", Info, &buf, "", DefaultRotation)
	l.NoColor = true

	l.Debug("hidden")
	l.Info("shown %d", 1)

	out := buf.String()
	assert.NotStringContains(t, out, "hidden")
	assert.StringContains(t, out, "INFO  [argspec] shown 1")
}

func TestLogger_Named(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("argspec", Debug, &buf, "", DefaultRotation)
	l.NoColor = true

	l.Named("parse").Debug("matched %s", "count")
	assert.StringContains(t, buf.String(), "[argspec/parse] matched count")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("argspec", Debug, &buf, "", DefaultRotation)
	l.JSON = true

	l.Warn("careful")

	var entry logEntry
	vital.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, entry.Level, "WARN")
	assert.Equal(t, entry.Service, "argspec")
	assert.Equal(t, entry.Message, "careful")
}

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "argspec.log")
	l := NewLogger("argspec", Info, nil, path, DefaultRotation)

	l.Error("boom")
	vital.Nil(t, l.Close())

	data, err := os.ReadFile(path)
	vital.Nil(t, err)
	assert.StringContains(t, string(data), "ERROR [argspec] boom")
	assert.True(t, !strings.Contains(string(data), "\x1b["))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	assert.Nil(t, err)
	assert.Equal(t, lvl, Debug)

	_, err = ParseLevel("loud")
	assert.NotNil(t, err)
}

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWritesNameLevelAndKeyvals(t *testing.T) {
	var buf bytes.Buffer
	l := New("engine", &buf)

	l.Info("processed", "url", "https://example.com", "listings", 3)

	out := buf.String()
	assert.Contains(t, out, "engine")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "processed")
	assert.Contains(t, out, "listings=3")
}

func TestNamedAppendsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := Named(New("engine", &buf), "sink")

	l.Warn("no data to save")

	assert.Contains(t, buf.String(), "engine.sink")
}

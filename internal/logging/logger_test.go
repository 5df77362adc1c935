package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLevel(t *testing.T) {
	defer Init("info")

	Init("debug")
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())

	Init("nonsense")
	assert.Equal(t, log.InfoLevel, Logger.GetLevel())
}

func TestOutputAndPrefix(t *testing.T) {
	defer Init("info")

	var buf bytes.Buffer
	Init("warn")
	SetOutput(&buf)

	Info("hidden")
	Warn("shown", "k", 1)
	WithPrefix("job").Error("failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "k=1")
	assert.Contains(t, out, "job")
}

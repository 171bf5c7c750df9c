package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func captureAll(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetWriterForAll(&buf)
	DisableColor(true)
	t.Cleanup(func() {
		SetVerbose(false)
	})
	return &buf
}

func TestDebugRequiresVerbose(t *testing.T) {
	buf := captureAll(t)

	SetVerbose(false)
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	assert.True(t, IsVerbose())
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "DEBUG shown 2")
}

func TestLevelsAreTagged(t *testing.T) {
	buf := captureAll(t)

	Info("loaded %s", "nb.ipynb")
	Warn("careful")
	Error("broken: %v", "disk")

	out := buf.String()
	assert.Contains(t, out, "INFO  loaded nb.ipynb")
	assert.Contains(t, out, "WARN  careful")
	assert.Contains(t, out, "ERROR broken: disk")
}

func TestAddWriterForAllTees(t *testing.T) {
	primary := captureAll(t)
	var tee bytes.Buffer

	AddWriterForAll(&tee)
	AddWriter(INFO, &tee)
	Warn("to both")

	assert.Contains(t, primary.String(), "to both")
	assert.Contains(t, tee.String(), "to both")
}

func TestDisableColorKeepsDetection(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	color.NoColor = true
	DisableColor(false)
	assert.True(t, color.NoColor)

	color.NoColor = false
	DisableColor(true)
	assert.True(t, color.NoColor)
}

package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetNoColor(false)
	})
	return &out, &errOut
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name    string
		noColor bool
		want    string
	}{
		{name: "symbol prefix", noColor: false, want: "✗ load failed: boom\n"},
		{name: "plain prefix", noColor: true, want: "ERROR: load failed: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := captureOutput(t)
			SetNoColor(tt.noColor)

			PrintError("load failed: %s", "boom")

			assert.Equal(t, tt.want, errOut.String())
			assert.Empty(t, out.String())
		})
	}
}

func TestPrintWarning(t *testing.T) {
	out, errOut := captureOutput(t)
	SetNoColor(true)

	PrintWarning("settings ignored")

	assert.Equal(t, "WARNING: settings ignored\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestPrintUsage(t *testing.T) {
	_, errOut := captureOutput(t)

	PrintUsage("gridedit")

	assert.Equal(t, "Usage: gridedit <path/to/file.csv>\n", errOut.String())
}

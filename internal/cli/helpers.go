package cli

import (
	"fmt"
	"io"
	"os"
)

// Output streams, replaceable in tests
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var noColor bool

// SetNoColor switches the message prefixes to plain text
func SetNoColor(nc bool) {
	noColor = nc
}

// SetOutput redirects stdout and stderr output
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

// PrintWarning prints a warning message to stderr
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stderr, "⚠ %s\n", msg)
	} else {
		fmt.Fprintf(stderr, "WARNING: %s\n", msg)
	}
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stderr, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(stderr, "ERROR: %s\n", msg)
	}
}

// PrintUsage prints the command usage line to stderr
func PrintUsage(program string) {
	fmt.Fprintf(stderr, "Usage: %s <path/to/file.csv>\n", program)
}

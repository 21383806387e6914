// Package capture obtains the help output of a command, either by running the tool
// or by reading output that was captured earlier.
package capture

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

// ErrCaptureNotFound is returned when no help output exists for a command.
var ErrCaptureNotFound = errors.New("captured help not found")

// Source provides the captured help for a command.
type Source interface {
	Capture(ctx context.Context, command string) (Capture, error)
}

// Capture is the help output of one command.
type Capture struct {
	// Visible is the output of the ordinary help request.
	Visible []string

	// Complete is the output of the help request that includes hidden options.
	// Only meaningful when HasComplete is set.
	Complete []string

	HasComplete bool

	// VisibleOrigin and CompleteOrigin describe where each variant came from,
	// e.g. 'git commit -h' or a file path.
	VisibleOrigin  string
	CompleteOrigin string
}

// SplitLines splits output into lines with trailing whitespace removed.
// A trailing newline does not start another line and empty output yields no lines.
func SplitLines(output string) []string {
	output = strings.ReplaceAll(output, "\r\n", "\n")
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}

	lines := strings.Split(output, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRightFunc(l, unicode.IsSpace)
	}

	return lines
}

// Slug turns a command's display name into a file-name friendly form, e.g. 'commit-graph read'
// becomes 'commit-graph-read'.
func Slug(command string) string {
	return strings.Join(strings.Fields(command), "-")
}

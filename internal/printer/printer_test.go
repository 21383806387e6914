package printer

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mozilla-ai/helpspec/internal/cmd/output"
	"github.com/mozilla-ai/helpspec/internal/extract"
	"github.com/mozilla-ai/helpspec/internal/spec"
)

func TestSummaryPrinter_Item(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		summary  extract.Summary
		expected string
	}{
		{
			name:     "ok",
			summary:  extract.Summary{Command: "notes add", Status: extract.StatusOK, ID: "notesAdd", Options: 12, Hidden: 1},
			expected: "✓ notes add (notesAdd): 12 options, 1 hidden\n",
		},
		{
			name:     "skipped",
			summary:  extract.Summary{Command: "gui", Status: extract.StatusSkipped},
			expected: "- gui (skipped)\n",
		},
		{
			name:     "adhoc",
			summary:  extract.Summary{Command: "send-email", Status: extract.StatusAdhoc},
			expected: "~ send-email (captured only)\n",
		},
		{
			name:     "failed",
			summary:  extract.Summary{Command: "bad", Status: extract.StatusFailed, Error: "round trip mismatch"},
			expected: "✗ bad\n  round trip mismatch\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			p := NewSummaryPrinter(false)
			require.NoError(t, p.Item(&buf, tc.summary))
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestSummaryPrinter_UnknownStatus(t *testing.T) {
	t.Parallel()

	p := NewSummaryPrinter(false)
	err := p.Item(io.Discard, extract.Summary{Command: "x", Status: "weird"})
	require.EqualError(t, err, "unknown status 'weird' for command 'x'")
}

func TestSummaryPrinter_Colored(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewSummaryPrinter(true)
	require.NoError(t, p.Item(&buf, extract.Summary{Command: "add", Status: extract.StatusOK, ID: "add"}))
	require.Contains(t, buf.String(), "\x1b[32m✓\x1b[0m add")
}

func TestSummaryPrinter_WithTextHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewSummaryPrinter(false)
	p.SetFooter(func(w io.Writer, count int) {
		_, _ = fmt.Fprintf(w, "%d done\n", count)
	})

	h := output.NewTextHandler[extract.Summary](&buf, p)
	require.NoError(t, h.HandleResults(
		extract.Summary{Command: "add", Status: extract.StatusOK, ID: "add", Options: 3},
		extract.Summary{Command: "gui", Status: extract.StatusSkipped},
	))

	expected := "Commands: 2\n\n" +
		"✓ add (add): 3 options, 0 hidden\n" +
		"- gui (skipped)\n" +
		"2 done\n"
	require.Equal(t, expected, buf.String())
}

func TestSpecPrinter(t *testing.T) {
	t.Parallel()

	s := &spec.CommandSpec{
		ID:          "mv",
		DisplayName: "mv",
		Usage:       []string{"usage: git mv [<options>] <source>... <destination>", ""},
		Entries: []spec.Entry{
			spec.NewOptionEntry(spec.Option{
				Name:      "k",
				ShortName: "k",
				Type:      spec.ArgTypeBool,
				Help:      "skip move/rename errors",
			}),
		},
	}

	var buf bytes.Buffer
	h := output.NewTextHandler[*spec.CommandSpec](&buf, &SpecPrinter{})
	require.NoError(t, h.HandleResults(s))

	expected := `command mv "mv"
    usage
        "usage: git mv [<options>] <source>... <destination>"
    option k
        shortname: k
        type: bool
        help: "skip move/rename errors"
`
	require.Equal(t, expected, buf.String())
}

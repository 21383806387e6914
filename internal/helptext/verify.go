package helptext

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mozilla-ai/helpspec/internal/errors"
)

const (
	VariantVisible  = "visible"
	VariantComplete = "complete"
)

// MismatchError describes the first divergence between regenerated and captured help.
type MismatchError struct {
	Command string

	// Variant is either VariantVisible or VariantComplete.
	Variant string

	Captured  []string
	Generated []string

	// Line is the 1-based number of the first differing line.
	Line int
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	if len(e.Captured) != len(e.Generated) {
		return fmt.Sprintf(
			"%s: command '%s': captured %s help has %d lines, generated has %d lines; first difference at line %d: %s",
			errors.ErrRoundTripMismatch,
			e.Command,
			e.Variant,
			len(e.Captured),
			len(e.Generated),
			e.Line,
			e.pair(),
		)
	}

	return fmt.Sprintf(
		"%s: command '%s': %s help differs at line %d: %s",
		errors.ErrRoundTripMismatch,
		e.Command,
		e.Variant,
		e.Line,
		e.pair(),
	)
}

// Unwrap allows errors.Is(err, errors.ErrRoundTripMismatch).
func (e *MismatchError) Unwrap() error {
	return errors.ErrRoundTripMismatch
}

// GeneratedLine returns the generated side of the first differing line.
func (e *MismatchError) GeneratedLine() (string, bool) {
	return lineAt(e.Generated, e.Line)
}

// CapturedLine returns the captured side of the first differing line.
func (e *MismatchError) CapturedLine() (string, bool) {
	return lineAt(e.Captured, e.Line)
}

// Diff returns a unified diff from the captured to the generated help.
func (e *MismatchError) Diff() string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        withNewlines(e.Captured),
		B:        withNewlines(e.Generated),
		FromFile: "captured " + e.Variant,
		ToFile:   "generated " + e.Variant,
		Context:  3,
	})
	if err != nil {
		return ""
	}

	return diff
}

func (e *MismatchError) pair() string {
	quote := func(s string, ok bool) string {
		if !ok {
			return "(end of output)"
		}
		return fmt.Sprintf("%q", s)
	}

	gen, genOK := e.GeneratedLine()
	capt, captOK := e.CapturedLine()

	return fmt.Sprintf("generated %s vs captured %s", quote(gen, genOK), quote(capt, captOK))
}

// Verify compares regenerated help against the captured help, first the visible variant,
// then the complete variant when one was captured. The first divergence is returned as a *MismatchError.
func Verify(command string, rendered Rendered, visible []string, complete []string) error {
	if err := compare(command, VariantVisible, visible, rendered.Visible); err != nil {
		return err
	}

	if len(complete) == 0 {
		return nil
	}

	return compare(command, VariantComplete, complete, rendered.Complete)
}

func compare(command string, variant string, captured []string, generated []string) error {
	n := min(len(captured), len(generated))

	line := 0
	for i := 0; i < n; i++ {
		if captured[i] != generated[i] {
			line = i + 1
			break
		}
	}
	if line == 0 {
		if len(captured) == len(generated) {
			return nil
		}
		line = n + 1
	}

	return &MismatchError{
		Command:   command,
		Variant:   variant,
		Captured:  captured,
		Generated: generated,
		Line:      line,
	}
}

func lineAt(lines []string, line int) (string, bool) {
	if line < 1 || line > len(lines) {
		return "", false
	}

	return lines[line-1], true
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}

	return out
}

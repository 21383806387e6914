package helptext

import (
	"strings"
)

const (
	// continuationIndent is how many columns after the first must be blank for a line to
	// continue the previous option's help.
	continuationIndent = 25

	// continuationStrip is how many leading columns are removed before a continuation is appended.
	continuationStrip = 24
)

// Rejoin merges lines that the help renderer split off an option line back onto it.
// Following an option line without help text, a blank line is dropped as a rendering artifact and
// a deeply indented line is appended to the option line as its help.
// Every other line stands alone. The hidden tag of a merged line is that of its option line.
func Rejoin(lines []LineTag) []LineTag {
	out := make([]LineTag, 0, len(lines))
	for _, line := range lines {
		if len(out) > 0 && isBareOption(out[len(out)-1].Text) {
			prev := &out[len(out)-1]
			switch {
			case line.Text == "":
				continue
			case isContinuation(line.Text):
				prev.Text += line.Text[continuationStrip:]
				continue
			}
		}
		out = append(out, line)
	}

	return out
}

// isBareOption reports whether line parses as an option with no help text.
func isBareOption(line string) bool {
	opt, ok := ParseOptionLine(line)
	return ok && opt.Help == ""
}

// isContinuation reports whether the columns after the first are blank up to the help column.
func isContinuation(line string) bool {
	if len(line) <= continuationIndent {
		return false
	}

	return strings.TrimLeft(line[1:continuationIndent+1], " \t\f\r\v") == ""
}

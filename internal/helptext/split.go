package helptext

import (
	"strings"
)

const (
	// optionsStart marks the first line of the options block.
	optionsStart = "    -"

	// usagePrefix marks lines that genuinely belong to the usage block.
	usagePrefix = "usage:"
)

// Blocks is captured help partitioned into its usage and options blocks.
type Blocks struct {
	Usage   []string
	Options []LineTag

	// UnterminatedUsage is set when options exist but the usage block, as first detected,
	// did not end with a blank line. Lines were likely moved back into the options block.
	UnterminatedUsage bool
}

// Split partitions tagged lines into usage and options blocks.
// The first line is always usage. The options block starts at the first later line beginning with
// four spaces and a hyphen and runs to the end. When options exist, non-blank lines at the end
// of the usage block that do not start with 'usage:' are moved to the front of the options block.
// Trailing blank lines of the options block are dropped.
func Split(lines []LineTag) Blocks {
	var usage, options []LineTag

	inUsage := true
	for i, line := range lines {
		if inUsage && i > 0 && strings.HasPrefix(line.Text, optionsStart) {
			inUsage = false
		}
		if inUsage {
			usage = append(usage, line)
		} else {
			options = append(options, line)
		}
	}

	var b Blocks
	if len(options) > 0 {
		b.UnterminatedUsage = len(usage) > 0 && usage[len(usage)-1].Text != ""

		end := len(usage)
		for end > 0 && usage[end-1].Text != "" && !strings.HasPrefix(usage[end-1].Text, usagePrefix) {
			end--
		}
		moved := usage[end:]
		usage = usage[:end]
		options = append(append([]LineTag{}, moved...), options...)
	}

	end := len(options)
	for end > 0 && options[end-1].Text == "" {
		end--
	}
	b.Options = options[:end]

	b.Usage = make([]string, len(usage))
	for i, l := range usage {
		b.Usage[i] = l.Text
	}

	return b
}

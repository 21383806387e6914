// Package helptext reconstructs a command's option grammar from its captured help output
// and regenerates that output from the reconstruction, so the two can be compared.
package helptext

// LineTag is a captured line of complete help, tagged with whether it is absent from the visible help.
type LineTag struct {
	Text   string
	Hidden bool
}

// Alignment is the result of reconciling complete help against visible help.
type Alignment struct {
	Lines []LineTag

	// Unmatched counts visible lines that were never found in the complete help.
	// A non-zero value means visible is not a subsequence of complete and some lines
	// may be misclassified.
	Unmatched int
}

// Ambiguous reports whether the alignment could not account for every visible line.
func (a Alignment) Ambiguous() bool {
	return a.Unmatched > 0
}

// HiddenCount returns the number of lines tagged hidden.
func (a Alignment) HiddenCount() int {
	n := 0
	for _, l := range a.Lines {
		if l.Hidden {
			n++
		}
	}

	return n
}

// Reconcile walks complete from head to tail with a second cursor over visible.
// A complete line equal to the next unconsumed visible line advances both cursors and is visible,
// any other complete line is hidden. An empty complete is treated as equal to visible.
// Neither input is modified.
func Reconcile(visible []string, complete []string) Alignment {
	if len(complete) == 0 {
		complete = visible
	}

	lines := make([]LineTag, 0, len(complete))
	v := 0
	for _, line := range complete {
		if v < len(visible) && visible[v] == line {
			v++
			lines = append(lines, LineTag{Text: line})
			continue
		}
		lines = append(lines, LineTag{Text: line, Hidden: true})
	}

	return Alignment{
		Lines:     lines,
		Unmatched: len(visible) - v,
	}
}

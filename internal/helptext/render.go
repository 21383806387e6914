package helptext

import (
	"strings"

	"github.com/mozilla-ai/helpspec/internal/spec"
)

const (
	// labelIndent precedes every option label.
	labelIndent = "    "

	// labelOverflow is the label width at which help no longer fits beside it.
	labelOverflow = 25

	// helpColumn is where help text starts.
	helpColumn = 26

	// lineLimit bounds the width of a row that carries help text.
	lineLimit = 127

	// wrapWindow is how far into the remaining help the break point is searched for.
	wrapWindow = 54
)

// Rendered is help text regenerated from a command spec.
type Rendered struct {
	Visible  []string
	Complete []string
}

// Render regenerates the visible and complete help for s, reproducing the column layout of the
// original renderer: usage verbatim, one or more rows per entry, and a trailing blank row when
// the command has any entries.
func Render(s *spec.CommandSpec) Rendered {
	var r Rendered
	for _, line := range s.Usage {
		r.emit(line, false)
	}

	for _, e := range s.Entries {
		switch e.Kind {
		case spec.KindGroupLine:
			r.emit("", false)
		case spec.KindTextLine:
			r.emit(e.Text, false)
		case spec.KindOption:
			if e.Option == nil {
				continue
			}
			for _, row := range LayoutOption(e.Option) {
				r.emit(row, e.Option.Hidden)
			}
		}
	}

	if len(s.Entries) > 0 {
		r.emit("", false)
	}

	return r
}

func (r *Rendered) emit(row string, hidden bool) {
	r.Complete = append(r.Complete, row)
	if !hidden {
		r.Visible = append(r.Visible, row)
	}
}

// LayoutOption lays out one option as rows.
// Labels of labelOverflow columns or more get a row of their own and the help starts on the next row.
// Otherwise the label is padded to the help column, and help that would reach lineLimit is broken
// at the last space within wrapWindow, continuing on rows indented to the help column.
func LayoutOption(o *spec.Option) []string {
	var rows []string

	prefix := labelIndent + o.Pattern()
	help := o.Help
	for {
		if len(prefix) >= labelOverflow {
			rows = append(rows, prefix)
			prefix = ""
			continue
		}

		if help == "" {
			return append(rows, prefix)
		}

		padded := prefix + strings.Repeat(" ", helpColumn-len(prefix))
		if len(padded)+len(help) < lineLimit {
			return append(rows, padded+help)
		}

		cut := breakPoint(help)
		rows = append(rows, strings.TrimRight(padded+help[:cut], " "))
		help = strings.TrimLeft(help[cut:], " ")
		prefix = ""
	}
}

// breakPoint returns the offset of the last space in help's wrap window.
// Help without a space there is broken at the window's edge.
func breakPoint(help string) int {
	window := help
	if len(window) > wrapWindow {
		window = window[:wrapWindow]
	}

	if i := strings.LastIndexByte(window, ' '); i > 0 {
		return i
	}

	return len(window)
}

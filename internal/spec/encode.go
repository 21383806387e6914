package spec

import (
	"bufio"
	"fmt"
	"io"
)

const (
	indentBlock = "    "
	indentField = "        "
)

// Encode writes specs in the canonical line-oriented spec format:
//
//	command <id> "<displayName>"
//	    usage
//	        "<usage line>"
//	    option <optionId>
//	        shortname: <char>
//	        ...
//	    groupline
//	    textline: <text>
//
// Trailing blank usage lines are not written.
func Encode(w io.Writer, specs ...*CommandSpec) error {
	bw := bufio.NewWriter(w)
	for _, s := range specs {
		if err := encodeCommand(bw, s); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func encodeCommand(w *bufio.Writer, s *CommandSpec) error {
	if s == nil {
		return fmt.Errorf("cannot encode nil command spec")
	}

	_, _ = fmt.Fprintf(w, "command %s \"%s\"\n", s.ID, s.DisplayName)
	_, _ = fmt.Fprintf(w, "%susage\n", indentBlock)
	for _, line := range TrimTrailingBlank(s.Usage) {
		_, _ = fmt.Fprintf(w, "%s\"%s\"\n", indentField, line)
	}

	for i, e := range s.Entries {
		switch e.Kind {
		case KindGroupLine:
			_, _ = fmt.Fprintf(w, "%sgroupline\n", indentBlock)
		case KindTextLine:
			_, _ = fmt.Fprintf(w, "%stextline: %s\n", indentBlock, e.Text)
		case KindOption:
			if e.Option == nil {
				return fmt.Errorf("command '%s': entry %d is an option without option data", s.DisplayName, i)
			}
			encodeOption(w, e.Option)
		default:
			return fmt.Errorf("command '%s': entry %d has unknown kind '%s'", s.DisplayName, i, e.Kind)
		}
	}

	return nil
}

func encodeOption(w *bufio.Writer, o *Option) {
	field := func(text string) {
		_, _ = fmt.Fprintf(w, "%s%s\n", indentField, text)
	}

	_, _ = fmt.Fprintf(w, "%soption %s\n", indentBlock, o.Name)
	if o.ShortName != "" {
		field("shortname: " + o.ShortName)
	}
	if o.LongName != "" {
		field("longname: " + o.LongName)
	}
	if o.Argument != "" {
		field("argument: " + o.Argument)
	}
	if o.Optional {
		field("optional")
	}
	if o.Hidden {
		field("hidden")
	}
	field("type: " + string(o.Type))
	if o.Numeric {
		field("numopt")
	}
	if o.Help != "" {
		field("help: \"" + o.Help + "\"")
	}
}

// TrimTrailingBlank returns lines without its trailing empty lines.
func TrimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}

	return lines[:end]
}

package spec

import (
	"fmt"
	"strings"
)

// ArgType is the value type of an option's argument.
type ArgType string

const (
	ArgTypeBool   ArgType = "bool"
	ArgTypeString ArgType = "string"
	ArgTypeInt    ArgType = "int"
)

// ParseArgType converts the textual form used in spec files into an ArgType.
func ParseArgType(s string) (ArgType, error) {
	switch t := ArgType(strings.TrimSpace(s)); t {
	case ArgTypeBool, ArgTypeString, ArgTypeInt:
		return t, nil
	default:
		return "", fmt.Errorf("unknown argument type '%s'", s)
	}
}

// EntryKind discriminates the variants of Entry.
type EntryKind string

const (
	// KindOption is a parsed option line.
	KindOption EntryKind = "option"

	// KindGroupLine is a blank separator row between option groups.
	KindGroupLine EntryKind = "groupline"

	// KindTextLine is a non-option informational line inside the options block.
	KindTextLine EntryKind = "textline"
)

// CommandSpec is the structured description of one command's option grammar.
// It is built once per command and never modified afterwards.
type CommandSpec struct {
	// ID is the camelCase identifier derived from DisplayName.
	ID string `json:"id" yaml:"id"`

	// DisplayName is the command as typed by a user, e.g. 'commit-graph read'.
	DisplayName string `json:"name" yaml:"name"`

	// Usage holds the usage block verbatim, including any trailing blank lines.
	Usage []string `json:"usage" yaml:"usage"`

	// Entries preserves the order of the options block.
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Entry is one logical row of the options block.
// Exactly one of Option or Text is meaningful, depending on Kind.
type Entry struct {
	Kind   EntryKind `json:"kind" yaml:"kind"`
	Option *Option   `json:"option,omitempty" yaml:"option,omitempty"`
	Text   string    `json:"text,omitempty" yaml:"text,omitempty"`
}

// Option describes a single command-line option.
type Option struct {
	// Name is the synthesized identifier, e.g. 'dryRun'.
	Name string `json:"name" yaml:"name"`

	// ShortName is the single-character (or irregular) short form, without the leading hyphen.
	ShortName string `json:"shortName,omitempty" yaml:"short_name,omitempty"`

	// LongName is the long form without the leading double hyphen.
	LongName string `json:"longName,omitempty" yaml:"long_name,omitempty"`

	// Argument is the argument token exactly as rendered, e.g. '<msg>' or '[=<n>]'.
	Argument string `json:"argument,omitempty" yaml:"argument,omitempty"`

	Type     ArgType `json:"type" yaml:"type"`
	Hidden   bool    `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Optional bool    `json:"optional,omitempty" yaml:"optional,omitempty"`

	// Numeric marks the '-NUM' placeholder option standing in for '-1', '-2', ...
	Numeric bool `json:"numeric,omitempty" yaml:"numeric,omitempty"`

	Help string `json:"help,omitempty" yaml:"help,omitempty"`
}

// NewOptionEntry wraps an option as an Entry.
func NewOptionEntry(opt Option) Entry {
	return Entry{Kind: KindOption, Option: &opt}
}

// NewGroupLine returns a blank separator entry.
func NewGroupLine() Entry {
	return Entry{Kind: KindGroupLine}
}

// NewTextLine returns an informational entry holding text verbatim.
func NewTextLine(text string) Entry {
	return Entry{Kind: KindTextLine, Text: text}
}

// Validate checks the invariants of an option record.
func (o *Option) Validate() error {
	if o.ShortName == "" && o.LongName == "" && !o.Numeric {
		return fmt.Errorf("option '%s' has neither a short nor a long name", o.Name)
	}
	if !IsIdentifier(o.Name) {
		return fmt.Errorf("option name '%s' is not a valid identifier", o.Name)
	}
	if _, err := ParseArgType(string(o.Type)); err != nil {
		return err
	}
	if o.Argument == "" && o.Optional {
		return fmt.Errorf("option '%s' is optional but has no argument", o.Name)
	}

	return nil
}

// Pattern returns the option's names and argument as they appear in help output,
// e.g. '-n, --dry-run' or '--depth[=<n>]'.
func (o *Option) Pattern() string {
	var b strings.Builder

	switch {
	case o.Numeric:
		b.WriteString("-NUM")
	case o.ShortName != "":
		b.WriteString("-")
		b.WriteString(o.ShortName)
	}

	if o.LongName != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString("--")
		b.WriteString(o.LongName)
	}

	if o.Argument != "" {
		if !o.Optional {
			b.WriteString(" ")
		}
		b.WriteString(o.Argument)
	}

	return b.String()
}

// Options returns the option entries of the spec, in order.
func (c *CommandSpec) Options() []*Option {
	var opts []*Option
	for _, e := range c.Entries {
		if e.Kind == KindOption && e.Option != nil {
			opts = append(opts, e.Option)
		}
	}

	return opts
}

// HiddenCount returns how many options are hidden from the visible help.
func (c *CommandSpec) HiddenCount() int {
	n := 0
	for _, o := range c.Options() {
		if o.Hidden {
			n++
		}
	}

	return n
}

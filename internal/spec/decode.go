package spec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// decoder tracks the block currently being read.
type decoder struct {
	specs   []*CommandSpec
	current *CommandSpec
	option  *Option
	inUsage bool
	lineNo  int
}

// Decode reads specs written by Encode.
// Decoding then re-encoding yields byte-identical output.
func Decode(r io.Reader) ([]*CommandSpec, error) {
	d := &decoder{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		d.lineNo++
		if err := d.line(scanner.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", d.lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := d.finishCommand(); err != nil {
		return nil, fmt.Errorf("line %d: %w", d.lineNo, err)
	}

	return d.specs, nil
}

func (d *decoder) line(line string) error {
	switch {
	case strings.TrimSpace(line) == "":
		return nil
	case strings.HasPrefix(line, indentField):
		return d.field(strings.TrimPrefix(line, indentField))
	case strings.HasPrefix(line, indentBlock):
		return d.block(strings.TrimPrefix(line, indentBlock))
	case strings.HasPrefix(line, "command "):
		return d.command(strings.TrimPrefix(line, "command "))
	default:
		return fmt.Errorf("expected 'command', got '%s'", line)
	}
}

func (d *decoder) command(rest string) error {
	if err := d.finishCommand(); err != nil {
		return err
	}

	id, name := rest, rest
	if i := strings.Index(rest, " \""); i != -1 {
		id = rest[:i]
		name = strings.TrimSuffix(rest[i+2:], "\"")
	}
	if id == "" {
		return fmt.Errorf("command without identifier")
	}

	d.current = &CommandSpec{ID: id, DisplayName: name}

	return nil
}

func (d *decoder) block(rest string) error {
	if d.current == nil {
		return fmt.Errorf("'%s' outside of a command block", rest)
	}
	if strings.HasPrefix(rest, " ") {
		return fmt.Errorf("unexpected indentation")
	}

	d.finishOption()
	d.inUsage = false

	switch {
	case rest == "usage":
		d.inUsage = true
	case rest == string(KindGroupLine):
		d.current.Entries = append(d.current.Entries, NewGroupLine())
	case strings.HasPrefix(rest, "textline: "):
		d.current.Entries = append(d.current.Entries, NewTextLine(strings.TrimPrefix(rest, "textline: ")))
	case strings.HasPrefix(rest, "option "):
		d.option = &Option{Name: strings.TrimPrefix(rest, "option ")}
	default:
		return fmt.Errorf("unknown block '%s'", rest)
	}

	return nil
}

func (d *decoder) field(rest string) error {
	if d.current == nil {
		return fmt.Errorf("'%s' outside of a command block", strings.TrimSpace(rest))
	}

	if d.inUsage {
		if len(rest) < 2 || !strings.HasPrefix(rest, "\"") || !strings.HasSuffix(rest, "\"") {
			return fmt.Errorf("usage line must be quoted: %s", rest)
		}
		d.current.Usage = append(d.current.Usage, rest[1:len(rest)-1])
		return nil
	}

	if d.option == nil {
		return fmt.Errorf("'%s' outside of an option block", rest)
	}

	key, value, _ := strings.Cut(rest, ": ")
	switch key {
	case "shortname":
		d.option.ShortName = value
	case "longname":
		d.option.LongName = value
	case "argument":
		d.option.Argument = value
	case "optional":
		d.option.Optional = true
	case "hidden":
		d.option.Hidden = true
	case "numopt":
		d.option.Numeric = true
	case "type":
		t, err := ParseArgType(value)
		if err != nil {
			return err
		}
		d.option.Type = t
	case "help":
		if len(value) < 2 || !strings.HasPrefix(value, "\"") || !strings.HasSuffix(value, "\"") {
			return fmt.Errorf("help text must be quoted: %s", value)
		}
		d.option.Help = value[1 : len(value)-1]
	default:
		return fmt.Errorf("unknown option field '%s'", key)
	}

	return nil
}

func (d *decoder) finishOption() {
	if d.option == nil {
		return
	}

	if d.option.Type == "" {
		d.option.Type = ArgTypeBool
		if d.option.Argument != "" {
			d.option.Type = ArgTypeString
		}
	}
	d.current.Entries = append(d.current.Entries, NewOptionEntry(*d.option))
	d.option = nil
}

func (d *decoder) finishCommand() error {
	if d.current == nil {
		return nil
	}

	d.finishOption()
	for _, o := range d.current.Options() {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("command '%s': %w", d.current.DisplayName, err)
		}
	}

	d.specs = append(d.specs, d.current)
	d.current = nil
	d.inUsage = false

	return nil
}

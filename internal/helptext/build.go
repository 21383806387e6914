package helptext

import (
	"fmt"
	"strings"

	"github.com/mozilla-ai/helpspec/internal/errors"
	"github.com/mozilla-ai/helpspec/internal/spec"
)

// Extraction is a built command spec together with the intermediate stages that produced it.
type Extraction struct {
	Spec      *spec.CommandSpec
	Alignment Alignment
	Blocks    Blocks

	// Rejoined is the options block after continuation lines were merged.
	Rejoined []LineTag
}

// Extract runs reconciliation, block splitting, rejoining and spec building over one command's
// captured help. complete may be empty when the command has no complete-help variant.
func Extract(displayName string, visible []string, complete []string) (*Extraction, error) {
	alignment := Reconcile(visible, complete)
	blocks := Split(alignment.Lines)
	rejoined := Rejoin(blocks.Options)

	s, err := BuildSpec(displayName, blocks.Usage, rejoined)
	if err != nil {
		return nil, err
	}

	return &Extraction{
		Spec:      s,
		Alignment: alignment,
		Blocks:    blocks,
		Rejoined:  rejoined,
	}, nil
}

// BuildSpec assembles a command spec from a usage block and a rejoined options block.
// Blank lines become group lines, lines not starting with a hyphen become text lines,
// and everything else must parse as an option.
func BuildSpec(displayName string, usage []string, options []LineTag) (*spec.CommandSpec, error) {
	id, err := spec.CommandIdentifier(displayName)
	if err != nil {
		return nil, fmt.Errorf("command '%s': %w", displayName, err)
	}

	s := &spec.CommandSpec{
		ID:          id,
		DisplayName: displayName,
		Usage:       append([]string{}, usage...),
		Entries:     make([]spec.Entry, 0, len(options)),
	}

	for _, line := range options {
		if line.Text == "" {
			s.Entries = append(s.Entries, spec.NewGroupLine())
			continue
		}
		if !strings.HasPrefix(strings.TrimSpace(line.Text), "-") {
			s.Entries = append(s.Entries, spec.NewTextLine(line.Text))
			continue
		}

		parsed, ok := ParseOptionLine(line.Text)
		if !ok {
			return nil, fmt.Errorf("%w: command '%s': '%s'", errors.ErrMalformedOption, displayName, line.Text)
		}

		opt := spec.Option{
			ShortName: parsed.ShortName,
			LongName:  parsed.LongName,
			Argument:  parsed.Argument,
			Type:      parsed.Type,
			Hidden:    line.Hidden,
			Optional:  parsed.Optional,
			Numeric:   parsed.Numeric,
			Help:      parsed.Help,
		}
		if opt.Name, err = spec.OptionIdentifier(&opt); err != nil {
			return nil, fmt.Errorf("command '%s': %w", displayName, err)
		}

		s.Entries = append(s.Entries, spec.NewOptionEntry(opt))
	}

	return s, nil
}

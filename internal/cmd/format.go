package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mozilla-ai/helpspec/internal/cmd/output"
)

// OutputFormat selects how a command prints its results. It implements pflag.Value.
type OutputFormat string

type OutputFormats []OutputFormat

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
	FormatText OutputFormat = "text"
)

// AllowedOutputFormats returns the supported formats, sorted.
func AllowedOutputFormats() OutputFormats {
	formats := OutputFormats{
		FormatJSON,
		FormatText,
		FormatYAML,
	}

	slices.Sort(formats)

	return formats
}

// String joins the formats with commas, for flag usage and error messages.
func (f *OutputFormats) String() string {
	out := make([]string, len(*f))
	for i, format := range *f {
		out[i] = format.String()
	}
	return strings.Join(out, ", ")
}

func (f *OutputFormat) String() string {
	return strings.ToLower(string(*f))
}

// Set accepts any allowed format, ignoring case and surrounding whitespace.
func (f *OutputFormat) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	allowed := AllowedOutputFormats()

	if slices.Contains(allowed, OutputFormat(v)) {
		*f = OutputFormat(v)
		return nil
	}

	return fmt.Errorf("invalid format '%s', must be one of %v", v, allowed.String())
}

func (f *OutputFormat) Type() string {
	return "format"
}

// FormatHandler returns the output handler for format, writing to w.
// The printer is only used for text output.
func FormatHandler[T any](w io.Writer, format OutputFormat, printer output.Printer[T]) (output.Handler[T], error) {
	switch format {
	case FormatJSON:
		return output.NewJSONHandler[T](w, 2), nil
	case FormatYAML:
		return output.NewYAMLHandler[T](w, 2), nil
	case FormatText:
		if printer == nil {
			return nil, fmt.Errorf("no text printer for format '%s'", format)
		}
		return output.NewTextHandler[T](w, printer), nil
	default:
		allowed := AllowedOutputFormats()
		return nil, fmt.Errorf("invalid format '%s', must be one of %v", format, allowed.String())
	}
}

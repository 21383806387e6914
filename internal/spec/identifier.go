package spec

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mozilla-ai/helpspec/internal/errors"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// numericPlaceholder is the name used for the '-NUM' option.
const numericPlaceholder = "NUM"

// IsIdentifier reports whether s is usable as a language identifier.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// Identifier turns a hyphenated name into a camelCase identifier:
// each hyphen-separated piece has its first letter upper-cased, the pieces are joined,
// and the first character of the result is lower-cased ('dry-run' becomes 'dryRun').
// Empty pieces (from leading, trailing or doubled hyphens) are skipped.
func Identifier(name string) (string, error) {
	var b strings.Builder
	for _, word := range strings.Split(name, "-") {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}

	id := b.String()
	if id != "" {
		r, size := utf8.DecodeRuneInString(id)
		id = string(unicode.ToLower(r)) + id[size:]
	}

	// Names such as '3way' are legal options but not legal identifiers.
	if id != "" && id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}

	if !IsIdentifier(id) {
		return "", fmt.Errorf("%w: '%s' (from '%s')", errors.ErrInvalidIdentifier, id, name)
	}

	return id, nil
}

// CommandIdentifier derives a command's identifier from its display name.
// Spaces separate words the same way hyphens do ('commit-graph read' becomes 'commitGraphRead').
func CommandIdentifier(displayName string) (string, error) {
	return Identifier(strings.ReplaceAll(strings.TrimSpace(displayName), " ", "-"))
}

// OptionIdentifier derives an option's identifier from its long name, falling back to the short name,
// or the 'NUM' placeholder for numeric options.
func OptionIdentifier(o *Option) (string, error) {
	switch {
	case o.LongName != "":
		return Identifier(o.LongName)
	case o.ShortName != "":
		return Identifier(o.ShortName)
	case o.Numeric:
		return Identifier(numericPlaceholder)
	default:
		return "", fmt.Errorf("%w: option has no name to derive an identifier from", errors.ErrInvalidIdentifier)
	}
}

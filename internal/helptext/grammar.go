package helptext

import (
	"regexp"
	"strings"

	"github.com/mozilla-ai/helpspec/internal/spec"
)

// numericToken is the irregular short token standing for '-1', '-2', ... options.
const numericToken = "NUM"

var (
	// irregularShort matches a short token that is longer than one character, such as '-NUM'.
	// These describe fixed forms rather than real single-character switches, and never take an argument.
	irregularShort = regexp.MustCompile(`^\s+-([a-zA-Z0-9][^ ,\[<]+)(.*)$`)

	// standardShort matches a single-character short name.
	standardShort = regexp.MustCompile(`^\s+-([a-zA-Z0-9])(.*)$`)

	// longName matches a long name, after leading whitespace or the ', ' separating it from a short name.
	longName = regexp.MustCompile(`^(?:\s+|,\s)--([a-zA-Z0-9)\-]+)(.*)$`)

	// spacedArgument matches an argument separated from the option by a single space.
	spacedArgument = regexp.MustCompile(`^\s(\S+)(.*)$`)

	// attachedArgument matches an argument attached to the option with '=' or '['.
	attachedArgument = regexp.MustCompile(`^([=\[]\S+)(.*)$`)

	// numericArgument identifies arguments that take a number.
	numericArgument = regexp.MustCompile(`<num>|<n>`)
)

// ParsedOption is the syntactic content of one option line.
type ParsedOption struct {
	ShortName string
	LongName  string
	Argument  string
	Type      spec.ArgType
	Optional  bool
	Numeric   bool
	Help      string
}

// optionScan holds the state threaded through the grammar's matchers.
type optionScan struct {
	rest            string
	argumentAllowed bool
	opt             ParsedOption
}

// matcher consumes a prefix of scan.rest. It returns false when the line cannot be an option.
type matcher func(scan *optionScan) bool

// optionGrammar is tried in order. Each matcher either consumes its token or leaves the line untouched.
var optionGrammar = []matcher{
	matchIrregularShort,
	matchStandardShort,
	matchLongName,
	requireName,
	matchArgument,
}

// ParseOptionLine parses a raw help line, including its indentation, into its option parts.
// It returns false if the line is not an option line.
func ParseOptionLine(line string) (ParsedOption, bool) {
	if !strings.HasPrefix(strings.TrimLeft(line, " \t"), "-") {
		return ParsedOption{}, false
	}

	scan := &optionScan{
		rest:            line,
		argumentAllowed: true,
		opt:             ParsedOption{Type: spec.ArgTypeBool},
	}
	for _, m := range optionGrammar {
		if !m(scan) {
			return ParsedOption{}, false
		}
	}

	scan.opt.Help = strings.TrimLeft(scan.rest, " \t\f\r\v")

	return scan.opt, true
}

func matchIrregularShort(scan *optionScan) bool {
	m := irregularShort.FindStringSubmatch(scan.rest)
	if m == nil {
		return true
	}

	if m[1] == numericToken {
		scan.opt.Numeric = true
	} else {
		scan.opt.ShortName = m[1]
	}
	scan.rest = m[2]
	scan.argumentAllowed = false

	return true
}

func matchStandardShort(scan *optionScan) bool {
	m := standardShort.FindStringSubmatch(scan.rest)
	if m == nil {
		return true
	}

	// A second short name after an irregular one is not something we know how to read.
	if scan.opt.ShortName != "" || scan.opt.Numeric {
		return false
	}
	scan.opt.ShortName = m[1]
	scan.rest = m[2]

	return true
}

func matchLongName(scan *optionScan) bool {
	if m := longName.FindStringSubmatch(scan.rest); m != nil {
		scan.opt.LongName = m[1]
		scan.rest = m[2]
	}

	return true
}

func requireName(scan *optionScan) bool {
	return scan.opt.ShortName != "" || scan.opt.LongName != "" || scan.opt.Numeric
}

func matchArgument(scan *optionScan) bool {
	if !scan.argumentAllowed {
		return true
	}

	if m := spacedArgument.FindStringSubmatch(scan.rest); m != nil {
		scan.opt.Argument = m[1]
		scan.rest = m[2]
	} else if m := attachedArgument.FindStringSubmatch(scan.rest); m != nil {
		scan.opt.Argument = m[1]
		scan.opt.Optional = true
		scan.rest = m[2]
	} else {
		return true
	}

	scan.opt.Type = spec.ArgTypeString
	if numericArgument.MatchString(scan.opt.Argument) {
		scan.opt.Type = spec.ArgTypeInt
	}

	return true
}

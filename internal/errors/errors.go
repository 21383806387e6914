// Package errors defines domain-level errors used throughout the application.
// These errors represent extraction failures for a single command and are surfaced to the CLI,
// which decides whether the whole batch is aborted.
//
// NOTE: Important for developers
// Errors returned from the extraction pipeline MUST wrap one of these sentinels,
// so callers can classify failures with errors.Is rather than matching message text.
package errors

import (
	"errors"
)

var (
	// ErrMalformedOption indicates that a line inside the options block starts with a hyphen
	// but cannot be parsed by the option grammar.
	ErrMalformedOption = errors.New("malformed option line")

	// ErrInvalidIdentifier indicates that a synthesized command or option identifier
	// contains characters that are not allowed in a language identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrRoundTripMismatch indicates that help text regenerated from a parsed command spec
	// differs from the text that was originally captured.
	ErrRoundTripMismatch = errors.New("regenerated help does not match captured help")

	// ErrAmbiguousAlignment indicates that the visible help is not a subsequence of the complete help,
	// so hidden lines could not be classified reliably.
	// Only returned when strict alignment is enabled, otherwise the condition is logged.
	ErrAmbiguousAlignment = errors.New("visible help is not a subsequence of complete help")
)

package opref

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrMalformedKey   = errors.New("malformed operator key")
	ErrEmptyEntry     = errors.New("empty entry")
	ErrLineTooLong    = errors.New("line exceeds maximum length")
	ErrTooManyEntries = errors.New("too many entries")
)

// ValidationError provides detailed information about a rejected entry.
type ValidationError struct {
	Type    string // Type of error (e.g., "malformed_key", "line_too_long")
	Entry   string // Offending raw entry, if any
	Line    int    // 1-based line number when reading a file, 0 otherwise
	Details string // Additional details
	Err     error  // Sentinel error matched by errors.Is
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var prefix string
	if e.Line > 0 {
		prefix = fmt.Sprintf("line %d: ", e.Line)
	}
	if e.Entry != "" {
		return fmt.Sprintf("%s%s: entry %q: %s", prefix, e.Type, e.Entry, e.Details)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Type, e.Details)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func malformed(entry, details string) *ValidationError {
	return &ValidationError{
		Type:    "malformed_key",
		Entry:   entry,
		Details: details,
		Err:     ErrMalformedKey,
	}
}

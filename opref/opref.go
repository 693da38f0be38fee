// Package opref answers one question for test tooling: does an operator
// version have a verified reference implementation?
//
// # Example Usage
//
//	import "github.com/born-ml/opref/opref"
//
//	if opref.IsVerified("Softmax-1") {
//	    // compare against the reference results
//	}
//
//	// Enumerate for a report
//	for key := range opref.Verified().All() {
//	    fmt.Println(key)
//	}
//
// Identifiers have the form "Name-Version" (for example "Relu-1") and are
// matched exactly, case included.
//
// Registries can also be loaded from a text file holding one identifier per
// line, see [LoadFile].
package opref

import (
	"io"

	internalopref "github.com/born-ml/opref/internal/opref"
)

// Key identifies one operator version.
type Key = internalopref.Key

// Registry is an immutable set of verified operator versions.
// It is safe for concurrent use.
type Registry = internalopref.Registry

// Report lists the corrections applied to raw entries while building a
// registry (split concatenations, dropped duplicates).
type Report = internalopref.Report

// Repair is a single correction in a [Report].
type Repair = internalopref.Repair

// ValidationError describes a rejected entry.
type ValidationError = internalopref.ValidationError

// Errors returned when building or reading a registry.
var (
	ErrMalformedKey   = internalopref.ErrMalformedKey
	ErrEmptyEntry     = internalopref.ErrEmptyEntry
	ErrLineTooLong    = internalopref.ErrLineTooLong
	ErrTooManyEntries = internalopref.ErrTooManyEntries
)

// ParseKey parses a "Name-Version" identifier.
func ParseKey(s string) (Key, error) {
	return internalopref.ParseKey(s)
}

// New builds a registry from raw entries.
//
// Duplicate entries collapse to one key, and entries holding several keys
// with no separator are split. Any other malformed entry is an error.
func New(entries []string) (*Registry, error) {
	return internalopref.New(entries)
}

// Verified returns the built-in registry of verified operator versions.
func Verified() *Registry {
	return internalopref.Verified()
}

// IsVerified reports whether key is in the built-in registry.
//
// Example:
//
//	opref.IsVerified("Relu-1") // true
//	opref.IsVerified("relu-1") // false
func IsVerified(key string) bool {
	return internalopref.Verified().Contains(key)
}

// Read parses a registry from r, one identifier per line.
func Read(r io.Reader) (*Registry, error) {
	return internalopref.Read(r)
}

// LoadFile reads a registry from a file, one identifier per line.
func LoadFile(path string) (*Registry, error) {
	return internalopref.LoadFile(path)
}

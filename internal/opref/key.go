package opref

import (
	"regexp"
	"strconv"
	"strings"
)

// keyPattern is the grammar of a single identifier: Name-IntegerVersion.
const keyPattern = `[A-Za-z][A-Za-z0-9]*-[1-9][0-9]*`

var (
	keyRe  = regexp.MustCompile(`^` + keyPattern + `$`)
	runRe  = regexp.MustCompile(`^(?:` + keyPattern + `)+$`) // keys back to back, no separator
	someRe = regexp.MustCompile(keyPattern)
)

// Key identifies one verified operator version.
type Key struct {
	Name    string
	Version int
}

// String renders the key as "Name-Version".
func (k Key) String() string {
	return k.Name + "-" + strconv.Itoa(k.Version)
}

// Validate checks that a programmatically built key renders to a well-formed
// identifier.
func (k Key) Validate() error {
	if k.Version < 1 {
		return malformed(k.String(), "version must be a positive integer")
	}
	if !keyRe.MatchString(k.String()) {
		return malformed(k.String(), "name must match [A-Za-z][A-Za-z0-9]*")
	}
	return nil
}

// ParseKey parses an identifier of the form "Name-IntegerVersion".
//
// The match is exact: no trimming, case-folding or leading zeros.
func ParseKey(s string) (Key, error) {
	if !keyRe.MatchString(s) {
		return Key{}, malformed(s, "want Name-IntegerVersion")
	}
	// The pattern forbids '-' in names, so the last dash is the separator.
	i := strings.LastIndexByte(s, '-')
	v, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return Key{}, malformed(s, "version out of range")
	}
	return Key{Name: s[:i], Version: v}, nil
}

// splitRun splits a run of back-to-back keys such as "FloorMod-1GRUSequence-5".
// Names start with a letter and versions are all digits, so the split is
// unique. It returns nil if s is not a run of keys.
func splitRun(s string) []string {
	if !runRe.MatchString(s) {
		return nil
	}
	return someRe.FindAllString(s, -1)
}

// Package opref implements the registry of operator versions that have a
// verified reference implementation.
//
// Entries are "operator-version" identifiers such as "Relu-1" or
// "Softmax-1". A registry is built once from a list of raw entries, normalized
// (concatenated entries are split, duplicates collapse) and is immutable
// afterwards, so concurrent readers need no locking.
//
// Example usage:
//
//	if opref.Verified().Contains("Relu-1") {
//	    // use the reference implementation as the test oracle
//	}
//
//	for key := range opref.Verified().All() {
//	    fmt.Println(key)
//	}
//
// The on-disk form is one identifier per line, UTF-8, see [Read] and
// [Registry.WriteTo].
package opref

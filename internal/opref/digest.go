package opref

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the SHA-256 of the registry's line serialization.
// Two registries with the same keys have the same digest, whatever the
// order or duplicates of their raw entries.
func (r *Registry) Digest() [32]byte {
	h := sha256.New()
	// hash.Hash writes never fail.
	_, _ = r.WriteTo(h)
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// DigestHex returns Digest as a lowercase hex string.
func (r *Registry) DigestHex() string {
	sum := r.Digest()
	return hex.EncodeToString(sum[:])
}

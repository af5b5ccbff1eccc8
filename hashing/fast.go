package hashing

import (
	"encoding/hex"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// XXH3 returns the XXH3 hash of the given Hashable as a hex-encoded string.
// It is much faster than Sha256 and appropriate when the hash guards a
// lookup structure rather than anything security sensitive.
func XXH3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// XXHash64 returns the 64-bit xxHash of the given Hashable as a hex-encoded
// string. Like XXH3 this is a non-cryptographic fingerprint.
func XXHash64(hashable Hashable) (string, error) {
	h := xxhash.New64()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

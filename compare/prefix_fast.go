//go:build !compare_generic

package compare

import (
	"encoding/binary"
	"math/bits"
)

// wordSize is the chunk width, in bytes, of the fast prefix scan.
const wordSize = 8

// prefixLenBytes returns the length of the longest shared leading prefix of
// a and b, scanning the shared region one 8-byte word at a time. Each pair
// of words is XORed; the first nonzero XOR pins the first differing byte via
// its trailing zero count (the words are read little-endian, so the lowest
// differing bit belongs to the earliest differing byte). Any shared region
// shorter than one word is scanned byte by byte.
func prefixLenBytes(a, b []byte) int {
	shared := min(len(a), len(b))

	var i int

	for ; i+wordSize <= shared; i += wordSize {
		x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		if x != 0 {
			return i + bits.TrailingZeros64(x)/8
		}
	}

	for ; i < shared; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return shared
}

// prefixLenStrings is prefixLenBytes over strings. Words are extracted with
// a fixed-size stack buffer copy rather than a memory reinterpretation, so
// unaligned inputs are handled the same as aligned ones.
func prefixLenStrings(a, b string) int {
	shared := min(len(a), len(b))

	var i int

	for ; i+wordSize <= shared; i += wordSize {
		x := wordAt(a, i) ^ wordAt(b, i)
		if x != 0 {
			return i + bits.TrailingZeros64(x)/8
		}
	}

	for ; i < shared; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return shared
}

// wordAt reads 8 bytes of s starting at i as a little-endian word.
// The caller guarantees i+8 <= len(s).
func wordAt(s string, i int) uint64 {
	var buf [wordSize]byte

	copy(buf[:], s[i:i+wordSize])

	return binary.LittleEndian.Uint64(buf[:])
}

//go:build compare_generic

package compare

// prefixLenBytes returns the length of the longest shared leading prefix of
// a and b. This is the scalar fallback used when the chunked scan is built
// out with the compare_generic tag; results are identical.
func prefixLenBytes(a, b []byte) int {
	shared := min(len(a), len(b))

	for i := range shared {
		if a[i] != b[i] {
			return i
		}
	}

	return shared
}

// prefixLenStrings is prefixLenBytes over strings.
func prefixLenStrings(a, b string) int {
	shared := min(len(a), len(b))

	for i := range shared {
		if a[i] != b[i] {
			return i
		}
	}

	return shared
}

package compare

import "cmp"

// Bytes compares two byte sequences lexicographically, returning the length
// of their longest shared leading prefix together with their ordering.
// Results are identical to [Slices] on the same inputs; the difference is
// purely in how fast the shared prefix is located (see prefixLenBytes).
func Bytes(a, b []byte) (int, Ordering) {
	prefix := prefixLenBytes(a, b)
	shared := min(len(a), len(b))

	if prefix < shared {
		if a[prefix] < b[prefix] {
			return prefix, Less
		}

		return prefix, Greater
	}

	return prefix, OrderingOf(cmp.Compare(len(a), len(b)))
}

// Strings is the string form of [Bytes]. The two functions agree on
// corresponding inputs: Strings(a, b) equals Bytes([]byte(a), []byte(b))
// without the conversion allocations.
func Strings(a, b string) (int, Ordering) {
	prefix := prefixLenStrings(a, b)
	shared := min(len(a), len(b))

	if prefix < shared {
		if a[prefix] < b[prefix] {
			return prefix, Less
		}

		return prefix, Greater
	}

	return prefix, OrderingOf(cmp.Compare(len(a), len(b)))
}

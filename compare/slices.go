package compare

import "cmp"

// Slices compares two sequences lexicographically, element by element.
// It returns the length of the longest shared leading prefix together with
// the ordering of the two sequences. A sequence that is a strict prefix of
// the other orders before it, with a prefix length equal to its own length.
//
// The returned prefix length is always at most min(len(a), len(b)), and the
// ordering is Equal exactly when both sequences have the same length and
// the prefix covers all of it.
func Slices[E cmp.Ordered](a, b []E) (int, Ordering) {
	shared := min(len(a), len(b))

	for i := range shared {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return i, Less
			}

			return i, Greater
		}
	}

	return shared, OrderingOf(cmp.Compare(len(a), len(b)))
}

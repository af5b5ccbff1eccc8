package sorted

import "facette.io/natsort"

// NaturalOrder orders string keys the way a human reads them: runs of digits
// compare by numeric value, so "item2" orders before "item10". Pass it to
// NewFunc or FromFunc as the key ordering.
func NaturalOrder(a, b string) int {
	if a == b {
		return 0
	}

	if natsort.Compare(a, b) {
		return -1
	}

	return 1
}

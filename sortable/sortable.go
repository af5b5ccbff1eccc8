// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/sortedvec/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare orders two Sortable values the way a three-way comparison
// function does: -1 when a orders before b, 0 when they are equal, and 1
// otherwise. It adapts Sortable keys to the ordering injection point of the
// sorted containers.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case a.Equals(b):
		return 0
	default:
		return 1
	}
}

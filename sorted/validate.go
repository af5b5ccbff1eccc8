package sorted

import (
	"fmt"

	"github.com/amp-labs/sortedvec/compare"
	"github.com/amp-labs/sortedvec/errors"
)

// Validate re-checks the ordering invariant and returns every adjacent pair
// that is out of order, joined into one error, or nil if the invariant
// holds.
//
// The invariant can only break through a key function that is not a pure
// total order. Debug builds catch that immediately through assertions; this
// method is the release-build diagnostic for the same condition.
func (v *Vec[T, K]) Validate() error {
	return validateOrder(len(v.items), func(i int) int {
		return v.cmp(v.key(v.items[i]), v.key(v.items[i+1]))
	})
}

// Validate re-checks the ordering invariant; see Vec.Validate.
func (v *SliceVec[T, E]) Validate() error {
	return validateOrder(len(v.items), func(i int) int {
		_, ord := v.cmp(v.key(v.items[i]), v.key(v.items[i+1]))

		return int(ord)
	})
}

// Validate re-checks the ordering invariant; see Vec.Validate.
func (v *StringVec[T]) Validate() error {
	return validateOrder(len(v.items), func(i int) int {
		_, ord := compare.Strings(v.key(v.items[i]), v.key(v.items[i+1]))

		return int(ord)
	})
}

// validateOrder reports every index i where element i orders after element
// i+1 according to compareAt.
func validateOrder(length int, compareAt func(i int) int) error {
	var errs errors.Collection

	for i := 0; i+1 < length; i++ {
		if compareAt(i) > 0 {
			errs.Add(fmt.Errorf("%w: elements %d and %d are out of order",
				errors.ErrUnsorted, i, i+1))
		}
	}

	return errs.GetError()
}

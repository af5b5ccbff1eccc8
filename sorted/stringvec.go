package sorted

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/sortedvec/assert"
	"github.com/amp-labs/sortedvec/compare"
	"github.com/amp-labs/sortedvec/optional"
)

// StringVec is a slice of T kept sorted by a string key derived from each
// element. It is the string form of SliceVec: the same prefix-aware search
// and the same word-at-a-time comparator, without converting keys to byte
// slices on every probe.
type StringVec[T any] struct {
	items []T
	key   func(T) string
}

// NewStrings creates an empty StringVec keyed by the given function.
func NewStrings[T any](key func(T) string) *StringVec[T] {
	return &StringVec[T]{key: key}
}

// FromStrings builds a StringVec from a slice that does not need to be
// sorted beforehand. The slice is sorted once and becomes the container's
// backing storage; the caller must not use it afterwards.
func FromStrings[T any](items []T, key func(T) string) *StringVec[T] {
	v := NewStrings(key)
	v.items = items
	v.sort()

	return v
}

// Find returns an element whose key equals the given key, if one exists.
// If several elements share the key, which one is returned is unspecified.
func (v *StringVec[T]) Find(key string) optional.Value[T] {
	if i, found := v.locate(key); found {
		return optional.Some(v.items[i])
	}

	return optional.None[T]()
}

// Contains reports whether an element with the given key exists. O(log n).
func (v *StringVec[T]) Contains(key string) bool {
	_, found := v.locate(key)

	return found
}

// Search searches for the given key. It returns the index of a matching
// element and true, or the index at which an element with that key would be
// inserted to preserve the order, and false.
func (v *StringVec[T]) Search(key string) (int, bool) {
	return v.locate(key)
}

// locate mirrors SliceVec.locate over string keys; see that method for the
// shared-prefix bookkeeping.
func (v *StringVec[T]) locate(target string) (int, bool) {
	size := len(v.items)
	if size == 0 {
		return 0, false
	}

	var base, lowerShared, upperShared int

	for size > 1 {
		half := size / 2
		mid := base + half
		skip := min(lowerShared, upperShared)

		key := v.key(v.items[mid])

		prefix, ord := compare.Strings(key[skip:], target[skip:])
		switch ord {
		case compare.Greater:
			upperShared = skip + prefix
		case compare.Less:
			lowerShared = skip + prefix
			base = mid
		case compare.Equal:
			return mid, true
		}

		size -= half
	}

	skip := min(lowerShared, upperShared)

	_, ord := compare.Strings(v.key(v.items[base])[skip:], target[skip:])
	if ord == compare.Equal {
		return base, true
	}

	if ord == compare.Less {
		return base + 1, false
	}

	return base, false
}

// Insert adds a value at its ordered position. O(n) because later elements
// shift right.
func (v *StringVec[T]) Insert(value T) {
	i, _ := v.locate(v.key(value))
	v.items = slices.Insert(v.items, i, value)

	assert.True(v.isSorted(), "sorted: insert broke the order invariant; the key function is not a pure total order")
}

// Remove deletes and returns one element whose key equals the given key, or
// None if no such element exists. O(n).
func (v *StringVec[T]) Remove(key string) optional.Value[T] {
	i, found := v.locate(key)
	if !found {
		return optional.None[T]()
	}

	removed := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)

	return optional.Some(removed)
}

// DedupByKey collapses every run of elements with equal keys to its first
// element, in a single linear pass.
func (v *StringVec[T]) DedupByKey() {
	v.items = slices.CompactFunc(v.items, func(a, b T) bool {
		return v.key(a) == v.key(b)
	})
}

// SplitOff splits the container in two at the given index. The receiver
// keeps elements [0, at) and the returned container holds elements
// [at, len), sharing the same key function.
//
// Panics if at is out of range.
func (v *StringVec[T]) SplitOff(at int) *StringVec[T] {
	if at < 0 || at > len(v.items) {
		panic(fmt.Sprintf("sorted: SplitOff index %d out of range [0, %d]", at, len(v.items)))
	}

	other := &StringVec[T]{
		items: slices.Clone(v.items[at:]),
		key:   v.key,
	}
	v.items = v.items[:at]

	return other
}

// Extend appends the given elements and restores the order with one full
// sort, which beats repeated single insertions for all but tiny batches.
func (v *StringVec[T]) Extend(items ...T) {
	v.items = append(v.items, items...)
	v.sort()
}

// ExtendSeq appends every element yielded by seq, then restores the order
// with one full sort.
func (v *StringVec[T]) ExtendSeq(seq iter.Seq[T]) {
	for item := range seq {
		v.items = append(v.items, item)
	}

	v.sort()
}

// Pop removes and returns the element with the greatest key, or None if the
// container is empty. O(1).
func (v *StringVec[T]) Pop() optional.Value[T] {
	if len(v.items) == 0 {
		return optional.None[T]()
	}

	last := v.items[len(v.items)-1]
	v.items = v.items[:len(v.items)-1]

	return optional.Some(last)
}

// Truncate keeps the first n elements and drops the rest. It has no effect
// if n is at least the current length.
func (v *StringVec[T]) Truncate(n int) {
	if n < len(v.items) {
		v.items = v.items[:max(n, 0)]
	}
}

// Len returns the number of elements.
func (v *StringVec[T]) Len() int {
	return len(v.items)
}

// Get returns the element at index i in ascending key order.
// Panics if i is out of range.
func (v *StringVec[T]) Get(i int) T {
	return v.items[i]
}

// Entries returns a copy of the elements in ascending key order.
func (v *StringVec[T]) Entries() []T {
	return slices.Clone(v.items)
}

// IntoSlice unwraps the container into its backing slice, which is sorted in
// ascending key order. The container is left empty and the order invariant
// is no longer enforced on the returned slice.
func (v *StringVec[T]) IntoSlice() []T {
	items := v.items
	v.items = nil

	return items
}

// Seq returns an iterator over the elements in ascending key order.
func (v *StringVec[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

// sort re-establishes the order invariant with one unstable sort.
func (v *StringVec[T]) sort() {
	slices.SortFunc(v.items, func(a, b T) int {
		_, ord := compare.Strings(v.key(a), v.key(b))

		return int(ord)
	})

	assert.True(v.isSorted(), "sorted: sort did not produce an ordered sequence; the key function is not a pure total order")
}

func (v *StringVec[T]) isSorted() bool {
	return slices.IsSortedFunc(v.items, func(a, b T) int {
		_, ord := compare.Strings(v.key(a), v.key(b))

		return int(ord)
	})
}

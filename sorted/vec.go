package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/sortedvec/assert"
	"github.com/amp-labs/sortedvec/optional"
)

// Vec is a slice of T kept sorted by a key of type K derived from each
// element. The key function and the key ordering are fixed at construction.
//
// The zero Vec is not usable; construct one with New, NewFunc, From or
// FromFunc.
type Vec[T any, K any] struct {
	items []T
	key   func(T) K
	cmp   func(K, K) int
}

// New creates an empty Vec whose keys are ordered by their natural order.
// It does not allocate until elements are inserted.
func New[T any, K cmp.Ordered](key func(T) K) *Vec[T, K] {
	return NewFunc(key, cmp.Compare[K])
}

// NewFunc creates an empty Vec with an explicit key ordering. compareKeys
// must implement a total order, returning a negative number, zero, or a
// positive number as a orders before, the same as, or after b.
func NewFunc[T any, K any](key func(T) K, compareKeys func(K, K) int) *Vec[T, K] {
	return &Vec[T, K]{key: key, cmp: compareKeys}
}

// From builds a Vec from a slice that does not need to be sorted beforehand.
// The slice is sorted once and becomes the container's backing storage; the
// caller must not use it afterwards.
func From[T any, K cmp.Ordered](items []T, key func(T) K) *Vec[T, K] {
	return FromFunc(items, key, cmp.Compare[K])
}

// FromFunc is From with an explicit key ordering.
func FromFunc[T any, K any](items []T, key func(T) K, compareKeys func(K, K) int) *Vec[T, K] {
	v := NewFunc(key, compareKeys)
	v.items = items
	v.sort()

	return v
}

// Find returns an element whose key equals the given key, if one exists.
// If several elements share the key, which one is returned is unspecified.
// O(log n).
func (v *Vec[T, K]) Find(key K) optional.Value[T] {
	if i, found := v.Search(key); found {
		return optional.Some(v.items[i])
	}

	return optional.None[T]()
}

// Contains reports whether an element with the given key exists. O(log n).
func (v *Vec[T, K]) Contains(key K) bool {
	_, found := v.Search(key)

	return found
}

// Search binary-searches for the given key. It returns the index of a
// matching element and true, or the index at which an element with that key
// would be inserted to preserve the order, and false.
func (v *Vec[T, K]) Search(key K) (int, bool) {
	return slices.BinarySearchFunc(v.items, key, func(element T, target K) int {
		return v.cmp(v.key(element), target)
	})
}

// Insert adds a value at its ordered position. O(n) because later elements
// shift right.
func (v *Vec[T, K]) Insert(value T) {
	i, _ := v.Search(v.key(value))
	v.items = slices.Insert(v.items, i, value)

	assert.True(v.isSorted(), "sorted: insert broke the order invariant; the key function is not a pure total order")
}

// Remove deletes and returns one element whose key equals the given key, or
// None if no such element exists. O(n).
func (v *Vec[T, K]) Remove(key K) optional.Value[T] {
	i, found := v.Search(key)
	if !found {
		return optional.None[T]()
	}

	removed := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)

	return optional.Some(removed)
}

// DedupByKey collapses every run of elements with equal keys to its first
// element, in a single linear pass.
func (v *Vec[T, K]) DedupByKey() {
	v.items = slices.CompactFunc(v.items, func(a, b T) bool {
		return v.cmp(v.key(a), v.key(b)) == 0
	})
}

// SplitOff splits the container in two at the given index. The receiver
// keeps elements [0, at) and the returned container holds elements
// [at, len), sharing the same key function. Both remain sorted, since a
// contiguous piece of a sorted sequence is itself sorted.
//
// Panics if at is out of range.
func (v *Vec[T, K]) SplitOff(at int) *Vec[T, K] {
	if at < 0 || at > len(v.items) {
		panic(fmt.Sprintf("sorted: SplitOff index %d out of range [0, %d]", at, len(v.items)))
	}

	other := &Vec[T, K]{
		items: slices.Clone(v.items[at:]),
		key:   v.key,
		cmp:   v.cmp,
	}
	v.items = v.items[:at]

	return other
}

// Extend appends the given elements and restores the order with one full
// sort. For m new elements this costs O((n+m) log(n+m)), which beats m
// separate O(n) insertions for all but tiny m.
func (v *Vec[T, K]) Extend(items ...T) {
	v.items = append(v.items, items...)
	v.sort()
}

// ExtendSeq appends every element yielded by seq, then restores the order
// with one full sort.
func (v *Vec[T, K]) ExtendSeq(seq iter.Seq[T]) {
	for item := range seq {
		v.items = append(v.items, item)
	}

	v.sort()
}

// Pop removes and returns the element with the greatest key, or None if the
// container is empty. O(1).
func (v *Vec[T, K]) Pop() optional.Value[T] {
	if len(v.items) == 0 {
		return optional.None[T]()
	}

	last := v.items[len(v.items)-1]
	v.items = v.items[:len(v.items)-1]

	return optional.Some(last)
}

// Truncate keeps the first n elements and drops the rest. It has no effect
// if n is at least the current length.
func (v *Vec[T, K]) Truncate(n int) {
	if n < len(v.items) {
		v.items = v.items[:max(n, 0)]
	}
}

// Len returns the number of elements.
func (v *Vec[T, K]) Len() int {
	return len(v.items)
}

// Get returns the element at index i in ascending key order.
// Panics if i is out of range.
func (v *Vec[T, K]) Get(i int) T {
	return v.items[i]
}

// Entries returns a copy of the elements in ascending key order.
func (v *Vec[T, K]) Entries() []T {
	return slices.Clone(v.items)
}

// IntoSlice unwraps the container into its backing slice, which is sorted in
// ascending key order. The container is left empty and the order invariant
// is no longer enforced on the returned slice.
func (v *Vec[T, K]) IntoSlice() []T {
	items := v.items
	v.items = nil

	return items
}

// Seq returns an iterator over the elements in ascending key order.
func (v *Vec[T, K]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

// sort re-establishes the order invariant with one unstable sort.
func (v *Vec[T, K]) sort() {
	slices.SortFunc(v.items, func(a, b T) int {
		return v.cmp(v.key(a), v.key(b))
	})

	assert.True(v.isSorted(), "sorted: sort did not produce an ordered sequence; the key function is not a pure total order")
}

func (v *Vec[T, K]) isSorted() bool {
	return slices.IsSortedFunc(v.items, func(a, b T) int {
		return v.cmp(v.key(a), v.key(b))
	})
}

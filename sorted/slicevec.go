package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/sortedvec/assert"
	"github.com/amp-labs/sortedvec/compare"
	"github.com/amp-labs/sortedvec/optional"
	"github.com/amp-labs/sortedvec/zero"
)

// SliceVec is a slice of T kept sorted by a sequence key derived from each
// element. Keys are ordered lexicographically: a key that is a strict prefix
// of another orders before it.
//
// Lookups use a prefix-aware binary search (see locate), and byte keys are
// compared with the word-at-a-time comparator of the compare package. The
// comparator strategy is fixed once, at construction.
type SliceVec[T any, E cmp.Ordered] struct {
	items []T
	key   func(T) []E
	cmp   func(a, b []E) (int, compare.Ordering)
}

// NewSlices creates an empty SliceVec keyed by the given sequence key
// function.
func NewSlices[T any, E cmp.Ordered](key func(T) []E) *SliceVec[T, E] {
	return &SliceVec[T, E]{key: key, cmp: sliceComparator[E]()}
}

// FromSlices builds a SliceVec from a slice that does not need to be sorted
// beforehand. The slice is sorted once and becomes the container's backing
// storage; the caller must not use it afterwards.
func FromSlices[T any, E cmp.Ordered](items []T, key func(T) []E) *SliceVec[T, E] {
	v := NewSlices(key)
	v.items = items
	v.sort()

	return v
}

// sliceComparator selects the comparison strategy for the key element type,
// once per container: byte keys get the chunked fast path, every other
// element type the generic element-by-element comparator. Both strategies
// return identical results on corresponding inputs.
func sliceComparator[E cmp.Ordered]() func(a, b []E) (int, compare.Ordering) {
	if _, isByte := any(zero.Value[E]()).(byte); isByte {
		return any(compare.Bytes).(func(a, b []E) (int, compare.Ordering))
	}

	return compare.Slices[E]
}

// Find returns an element whose key equals the given key, if one exists.
// If several elements share the key, which one is returned is unspecified.
// O(log n) probes, each probe comparing only the key suffix not already
// known to match.
func (v *SliceVec[T, E]) Find(key []E) optional.Value[T] {
	if i, found := v.locate(key); found {
		return optional.Some(v.items[i])
	}

	return optional.None[T]()
}

// Contains reports whether an element with the given key exists. O(log n).
func (v *SliceVec[T, E]) Contains(key []E) bool {
	_, found := v.locate(key)

	return found
}

// Search searches for the given key. It returns the index of a matching
// element and true, or the index at which an element with that key would be
// inserted to preserve the order, and false.
func (v *SliceVec[T, E]) Search(key []E) (int, bool) {
	return v.locate(key)
}

// locate is a binary search that carries shared-prefix knowledge across
// probes. lowerShared and upperShared count the leading key elements proven
// equal between the target and the element at the current lower and upper
// boundary of the candidate range. Their minimum is shared with every
// element in between (the range is sorted), so each probe compares only
// from that offset onward. For keys with long common prefixes this removes
// almost all redundant element comparisons that a classic binary search
// would perform.
//
// When the probe narrows a bound, that bound's shared-prefix count is
// overwritten with skip+prefix: prefix is measured from skip, so the total
// known match against the new boundary element is exactly skip+prefix.
func (v *SliceVec[T, E]) locate(target []E) (int, bool) {
	size := len(v.items)
	if size == 0 {
		return 0, false
	}

	var base, lowerShared, upperShared int

	for size > 1 {
		half := size / 2
		mid := base + half
		skip := min(lowerShared, upperShared)

		// Every element in [base, base+size) shares at least skip leading
		// key elements with the target, so its key is at least skip long.
		key := v.key(v.items[mid])

		prefix, ord := v.cmp(key[skip:], target[skip:])
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

	_, ord := v.cmp(v.key(v.items[base])[skip:], target[skip:])
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
func (v *SliceVec[T, E]) Insert(value T) {
	i, _ := v.locate(v.key(value))
	v.items = slices.Insert(v.items, i, value)

	assert.True(v.isSorted(), "sorted: insert broke the order invariant; the key function is not a pure total order")
}

// Remove deletes and returns one element whose key equals the given key, or
// None if no such element exists. O(n).
func (v *SliceVec[T, E]) Remove(key []E) optional.Value[T] {
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
func (v *SliceVec[T, E]) DedupByKey() {
	v.items = slices.CompactFunc(v.items, func(a, b T) bool {
		_, ord := v.cmp(v.key(a), v.key(b))

		return ord == compare.Equal
	})
}

// SplitOff splits the container in two at the given index. The receiver
// keeps elements [0, at) and the returned container holds elements
// [at, len), sharing the same key function.
//
// Panics if at is out of range.
func (v *SliceVec[T, E]) SplitOff(at int) *SliceVec[T, E] {
	if at < 0 || at > len(v.items) {
		panic(fmt.Sprintf("sorted: SplitOff index %d out of range [0, %d]", at, len(v.items)))
	}

	other := &SliceVec[T, E]{
		items: slices.Clone(v.items[at:]),
		key:   v.key,
		cmp:   v.cmp,
	}
	v.items = v.items[:at]

	return other
}

// Extend appends the given elements and restores the order with one full
// sort, which beats repeated single insertions for all but tiny batches.
func (v *SliceVec[T, E]) Extend(items ...T) {
	v.items = append(v.items, items...)
	v.sort()
}

// ExtendSeq appends every element yielded by seq, then restores the order
// with one full sort.
func (v *SliceVec[T, E]) ExtendSeq(seq iter.Seq[T]) {
	for item := range seq {
		v.items = append(v.items, item)
	}

	v.sort()
}

// Pop removes and returns the element with the greatest key, or None if the
// container is empty. O(1).
func (v *SliceVec[T, E]) Pop() optional.Value[T] {
	if len(v.items) == 0 {
		return optional.None[T]()
	}

	last := v.items[len(v.items)-1]
	v.items = v.items[:len(v.items)-1]

	return optional.Some(last)
}

// Truncate keeps the first n elements and drops the rest. It has no effect
// if n is at least the current length.
func (v *SliceVec[T, E]) Truncate(n int) {
	if n < len(v.items) {
		v.items = v.items[:max(n, 0)]
	}
}

// Len returns the number of elements.
func (v *SliceVec[T, E]) Len() int {
	return len(v.items)
}

// Get returns the element at index i in ascending key order.
// Panics if i is out of range.
func (v *SliceVec[T, E]) Get(i int) T {
	return v.items[i]
}

// Entries returns a copy of the elements in ascending key order.
func (v *SliceVec[T, E]) Entries() []T {
	return slices.Clone(v.items)
}

// IntoSlice unwraps the container into its backing slice, which is sorted in
// ascending key order. The container is left empty and the order invariant
// is no longer enforced on the returned slice.
func (v *SliceVec[T, E]) IntoSlice() []T {
	items := v.items
	v.items = nil

	return items
}

// Seq returns an iterator over the elements in ascending key order.
func (v *SliceVec[T, E]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

// sort re-establishes the order invariant with one unstable sort.
func (v *SliceVec[T, E]) sort() {
	slices.SortFunc(v.items, func(a, b T) int {
		_, ord := v.cmp(v.key(a), v.key(b))

		return int(ord)
	})

	assert.True(v.isSorted(), "sorted: sort did not produce an ordered sequence; the key function is not a pure total order")
}

func (v *SliceVec[T, E]) isSorted() bool {
	return slices.IsSortedFunc(v.items, func(a, b T) int {
		_, ord := v.cmp(v.key(a), v.key(b))

		return int(ord)
	})
}

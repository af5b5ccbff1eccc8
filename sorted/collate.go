package sorted

import (
	"iter"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/amp-labs/sortedvec/optional"
)

// CollatedStrings is a container of T ordered by the collation rules of a
// language rather than by raw byte order: "ä" sorts next to "a" under
// language.German, and collate options such as collate.IgnoreCase apply.
//
// Internally the elements are keyed by their collation sort keys, which are
// byte sequences; related strings produce sort keys with long shared
// prefixes, exactly the workload the prefix-aware search and the chunked
// byte comparator are built for.
//
// The collator is stateful, so unlike the other containers CollatedStrings
// is not safe even for concurrent read-only access.
type CollatedStrings[T any] struct {
	vec      *SliceVec[T, byte]
	collator *collate.Collator
}

// FromCollatedStrings builds a CollatedStrings container from a slice that
// does not need to be sorted beforehand, keyed by the given string key
// function under the collation rules of tag.
func FromCollatedStrings[T any](
	items []T,
	key func(T) string,
	tag language.Tag,
	opts ...collate.Option,
) *CollatedStrings[T] {
	collator := collate.New(tag, opts...)

	keyFn := func(element T) []byte {
		var buf collate.Buffer

		return collator.KeyFromString(&buf, key(element))
	}

	return &CollatedStrings[T]{
		vec:      FromSlices(items, keyFn),
		collator: collator,
	}
}

// sortKey derives the collation sort key for a lookup string.
func (c *CollatedStrings[T]) sortKey(key string) []byte {
	var buf collate.Buffer

	return c.collator.KeyFromString(&buf, key)
}

// Find returns an element whose key collates equal to the given string, if
// one exists. Note that under options like collate.IgnoreCase distinct
// strings can collate equal.
func (c *CollatedStrings[T]) Find(key string) optional.Value[T] {
	return c.vec.Find(c.sortKey(key))
}

// Contains reports whether an element collating equal to the given string
// exists.
func (c *CollatedStrings[T]) Contains(key string) bool {
	return c.vec.Contains(c.sortKey(key))
}

// Insert adds a value at its collated position. O(n).
func (c *CollatedStrings[T]) Insert(value T) {
	c.vec.Insert(value)
}

// Remove deletes and returns one element collating equal to the given
// string, or None if no such element exists. O(n).
func (c *CollatedStrings[T]) Remove(key string) optional.Value[T] {
	return c.vec.Remove(c.sortKey(key))
}

// Pop removes and returns the element that collates last, or None if the
// container is empty. O(1).
func (c *CollatedStrings[T]) Pop() optional.Value[T] {
	return c.vec.Pop()
}

// Len returns the number of elements.
func (c *CollatedStrings[T]) Len() int {
	return c.vec.Len()
}

// Entries returns a copy of the elements in collation order.
func (c *CollatedStrings[T]) Entries() []T {
	return c.vec.Entries()
}

// Seq returns an iterator over the elements in collation order.
func (c *CollatedStrings[T]) Seq() iter.Seq[T] {
	return c.vec.Seq()
}

// Validate re-checks the ordering invariant; see Vec.Validate.
func (c *CollatedStrings[T]) Validate() error {
	return c.vec.Validate()
}

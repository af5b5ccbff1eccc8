// Package sorted provides sequence containers that keep their elements
// ordered by a key derived from each element.
//
// # Overview
//
// A sorted container is a plain slice whose elements are kept sorted with
// respect to a user-supplied key function. This sits between a regular slice
// and a hash map:
//   - compact memory representation and fast iteration
//   - O(log n) lookups, against a map's O(1) and a slice's O(n)
//   - O(n) insertions and deletions
//
// The sweet spot is small-to-medium lookup tables that are read often and
// written rarely. For write-heavy or very large collections, use a map or a
// balanced tree instead.
//
// Three variants exist, differing only in their key type and search routine:
//   - [Vec] keys elements by any scalar value with an injected ordering
//     (by default the natural order of a [cmp.Ordered] type).
//   - [SliceVec] keys elements by sequences and searches with a
//     prefix-aware binary search: the number of leading key elements known
//     to match each search bound is carried across probes, so every
//     comparison skips the already-verified prefix. Byte keys additionally
//     use a word-at-a-time comparator. This pays off when many keys share
//     long prefixes, such as URLs or namespaced identifiers.
//   - [StringVec] is [SliceVec] for string keys, without per-probe
//     conversions.
//
// # Usage
//
//	type account struct {
//	    ID   int
//	    Name string
//	}
//
//	vec := sorted.From(accounts, func(a account) int { return a.ID })
//
//	if found, ok := vec.Find(42).Get(); ok {
//	    fmt.Println(found.Name)
//	}
//
// Lookup misses are ordinary outcomes reported through
// [github.com/amp-labs/sortedvec/optional.Value], never errors.
// Out-of-range indices passed to SplitOff, Truncate or Get are programming
// errors and panic.
//
// # Key functions
//
// Key functions must be pure: same element in, same key out, with no
// dependence on mutable external state. The containers re-derive keys on
// every comparison and never cache them, so an impure key function silently
// breaks the ordering invariant. Debug builds re-verify the invariant after
// construction and mutation (see the assert package); release builds do not.
//
// Duplicate keys are allowed. Their relative order is unspecified (sorting
// is unstable), and Find returns an unspecified element among those with an
// equal key.
//
// # Thread Safety
//
// The containers are not safe for concurrent mutation. Concurrent read-only
// access is safe only if the caller provides external synchronization
// around any writes.
package sorted

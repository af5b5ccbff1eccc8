// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in sorted data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [String] and
// [NaturalString]. These types are designed to work with the sorted
// containers (see [github.com/amp-labs/sortedvec/sorted.FromFunc]), which
// accept any key ordering through [Compare].
//
// The Sortable interface extends [github.com/amp-labs/sortedvec/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// A container keyed by such a type is then built with
//
//	vec := sorted.FromFunc(items, keyFn, sortable.Compare[MyType])
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. However, collections using these types may not be
// thread-safe and require external synchronization for concurrent access.
package sortable

package sortable

import "facette.io/natsort"

// NaturalString is a sortable string wrapper ordered naturally: runs of
// digits compare by numeric value instead of character by character, so
// "item2" orders before "item10".
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals returns true if both strings are identical.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan returns true if this string orders before the other in natural order.
func (s NaturalString) LessThan(other NaturalString) bool {
	if s == other {
		return false
	}

	return natsort.Compare(string(s), string(other))
}

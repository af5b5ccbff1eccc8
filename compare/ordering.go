package compare

// Ordering is the result of a three-way comparison between two values.
// Its numeric values follow the convention of [cmp.Compare], so an Ordering
// can be used directly as the result of a sort comparison function.
type Ordering int

const (
	// Less means the first value orders before the second.
	Less Ordering = -1

	// Equal means the two values order the same.
	Equal Ordering = 0

	// Greater means the first value orders after the second.
	Greater Ordering = 1
)

// String returns a human-readable representation of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "not recognized"
	}
}

// OrderingOf converts the sign of a three-way comparison result
// (such as the value returned by [cmp.Compare]) into an Ordering.
func OrderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

package sorted_test

import (
	"testing"

	"github.com/amp-labs/sortedvec/errors"
	"github.com/amp-labs/sortedvec/sorted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("clean containers validate", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, sorted.From([]int{3, 1, 2}, identity).Validate())
		require.NoError(t, sorted.FromStrings([]string{"b", "a"}, self).Validate())
		require.NoError(t, sorted.FromSlices([]string{"b", "a"}, stringBytes).Validate())
		require.NoError(t, sorted.New[int](identity).Validate())
	})

	t.Run("detects an impure key function", func(t *testing.T) {
		t.Parallel()

		// Keys read through pointers, so mutating the pointed-to values
		// after construction silently breaks the order invariant. This is
		// exactly the caller contract violation Validate exists to surface.
		a, b, c := 1, 2, 3
		vec := sorted.From([]*int{&b, &a, &c}, func(p *int) int { return *p })

		require.NoError(t, vec.Validate())

		a, c = 9, 0

		err := vec.Validate()
		require.ErrorIs(t, err, errors.ErrUnsorted)
	})

	t.Run("reports every out-of-order pair", func(t *testing.T) {
		t.Parallel()

		one, two, three, four := 1, 2, 3, 4
		vec := sorted.From(
			[]*int{&one, &two, &three, &four},
			func(p *int) int { return *p },
		)

		one, three = 10, 30

		err := vec.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "elements 0 and 1")
		assert.ErrorContains(t, err, "elements 2 and 3")
	})

	t.Run("string container detects mutated keys", func(t *testing.T) {
		t.Parallel()

		type doc struct{ title *string }

		alpha, beta := "alpha", "beta"
		vec := sorted.FromStrings(
			[]doc{{title: &beta}, {title: &alpha}},
			func(d doc) string { return *d.title },
		)

		require.NoError(t, vec.Validate())

		alpha = "zeta"

		require.ErrorIs(t, vec.Validate(), errors.ErrUnsorted)
	})
}

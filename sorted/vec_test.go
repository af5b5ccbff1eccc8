package sorted_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/sortedvec/sortable"
	"github.com/amp-labs/sortedvec/sorted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(x int) int { return x }

func TestFrom(t *testing.T) {
	t.Parallel()

	t.Run("sorts the input once", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{3, 5, 0, 10, 7, 1}, identity)
		assert.Equal(t, []int{0, 1, 3, 5, 7, 10}, vec.Entries())
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From(nil, identity)
		assert.Equal(t, 0, vec.Len())
	})

	t.Run("keeps duplicate keys", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{2, 1, 2, 1}, identity)
		assert.Equal(t, []int{1, 1, 2, 2}, vec.Entries())
	})
}

func TestVec_Find(t *testing.T) {
	t.Parallel()

	vec := sorted.From([]int{3, 5, 0, 10, 7, 1}, identity)

	t.Run("present key", func(t *testing.T) {
		t.Parallel()

		found, ok := vec.Find(5).Get()
		require.True(t, ok)
		assert.Equal(t, 5, found)
	})

	t.Run("absent key", func(t *testing.T) {
		t.Parallel()

		assert.True(t, vec.Find(6).Empty())
	})

	t.Run("derived keys", func(t *testing.T) {
		t.Parallel()

		type account struct {
			id   int
			name string
		}

		accounts := sorted.From([]account{
			{id: 10, name: "zara"},
			{id: 4, name: "ada"},
			{id: 0, name: "mel"},
		}, func(a account) int { return a.id })

		found, ok := accounts.Find(4).Get()
		require.True(t, ok)
		assert.Equal(t, "ada", found.name)

		assert.True(t, accounts.Find(5).Empty())
	})
}

func TestVec_Contains(t *testing.T) {
	t.Parallel()

	vec := sorted.From([]int{3, 5, 0, 10, 7, 1}, identity)

	assert.True(t, vec.Contains(0))
	assert.True(t, vec.Contains(10))
	assert.False(t, vec.Contains(6))
	assert.False(t, vec.Contains(-1))
	assert.False(t, vec.Contains(11))
}

func TestVec_Search(t *testing.T) {
	t.Parallel()

	vec := sorted.From([]int{1, 3, 5}, identity)

	i, found := vec.Search(3)
	assert.True(t, found)
	assert.Equal(t, 1, i)

	i, found = vec.Search(4)
	assert.False(t, found)
	assert.Equal(t, 2, i)

	i, found = vec.Search(0)
	assert.False(t, found)
	assert.Equal(t, 0, i)

	i, found = vec.Search(9)
	assert.False(t, found)
	assert.Equal(t, 3, i)
}

func TestVec_Insert(t *testing.T) {
	t.Parallel()

	t.Run("into empty container", func(t *testing.T) {
		t.Parallel()

		vec := sorted.New[int](identity)
		vec.Insert(5)

		assert.Equal(t, []int{5}, vec.Entries())
	})

	t.Run("keeps order across random insertions", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewPCG(11, 12))
		vec := sorted.New[int](identity)

		var reference []int

		for range 200 {
			n := rng.IntN(50)
			vec.Insert(n)
			reference = append(reference, n)
		}

		slices.Sort(reference)
		assert.Equal(t, reference, vec.Entries())
		require.NoError(t, vec.Validate())
	})

	t.Run("duplicate keys allowed", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{1, 2, 3}, identity)
		vec.Insert(2)

		assert.Equal(t, []int{1, 2, 2, 3}, vec.Entries())
	})
}

func TestVec_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes a present key", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{3, 1, 2}, identity)

		removed, ok := vec.Remove(2).Get()
		require.True(t, ok)
		assert.Equal(t, 2, removed)
		assert.Equal(t, []int{1, 3}, vec.Entries())
	})

	t.Run("misses are None", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{3, 1, 2}, identity)

		assert.True(t, vec.Remove(9).Empty())
		assert.Equal(t, 3, vec.Len())
	})

	t.Run("removes one element per call under duplicates", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{1, 1, 1}, identity)

		assert.True(t, vec.Remove(1).NonEmpty())
		assert.Equal(t, 2, vec.Len())
	})
}

func TestVec_DedupByKey(t *testing.T) {
	t.Parallel()

	t.Run("collapses runs of equal keys", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{1, 2, 2, 2, 3, 3}, identity)
		vec.DedupByKey()

		assert.Equal(t, []int{1, 2, 3}, vec.Entries())
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{5, 5, 1, 3, 3, 3, 1}, identity)

		vec.DedupByKey()
		once := vec.Entries()

		vec.DedupByKey()
		assert.Equal(t, once, vec.Entries())
	})

	t.Run("collapses an equal-key run to a single element", func(t *testing.T) {
		t.Parallel()

		type pair struct {
			key   int
			label string
		}

		vec := sorted.From([]pair{
			{key: 1, label: "first"},
		}, func(p pair) int { return p.key })
		vec.Insert(pair{key: 1, label: "second"})

		vec.DedupByKey()

		require.Equal(t, 1, vec.Len())
	})
}

func TestVec_SplitOff(t *testing.T) {
	t.Parallel()

	t.Run("both halves sorted and concatenation preserved", func(t *testing.T) {
		t.Parallel()

		items := []int{9, 4, 7, 1, 0, 8, 3, 2, 6, 5}
		vec := sorted.From(slices.Clone(items), identity)
		original := vec.Entries()

		other := vec.SplitOff(vec.Len() / 2)

		require.NoError(t, vec.Validate())
		require.NoError(t, other.Validate())

		assert.Equal(t, original, append(vec.Entries(), other.Entries()...))
		assert.Equal(t, 5, vec.Len())
		assert.Equal(t, 5, other.Len())
	})

	t.Run("split at zero and at len", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{2, 1}, identity)

		all := vec.SplitOff(0)
		assert.Equal(t, 0, vec.Len())
		assert.Equal(t, []int{1, 2}, all.Entries())

		none := all.SplitOff(all.Len())
		assert.Equal(t, 0, none.Len())
	})

	t.Run("returned half is usable independently", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{1, 2, 3, 4}, identity)
		other := vec.SplitOff(2)

		other.Insert(10)
		assert.True(t, other.Contains(10))
		assert.False(t, vec.Contains(10))
	})

	t.Run("panics when out of range", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{1}, identity)

		assert.Panics(t, func() { vec.SplitOff(2) })
		assert.Panics(t, func() { vec.SplitOff(-1) })
	})
}

func TestVec_Extend(t *testing.T) {
	t.Parallel()

	t.Run("appends and re-sorts once", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{5, 1}, identity)
		vec.Extend(3, 0, 4)

		assert.Equal(t, []int{0, 1, 3, 4, 5}, vec.Entries())
	})

	t.Run("from a sequence", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{2}, identity)
		vec.ExtendSeq(slices.Values([]int{9, 1}))

		assert.Equal(t, []int{1, 2, 9}, vec.Entries())
	})

	t.Run("empty extension is a no-op", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{2, 1}, identity)
		vec.Extend()

		assert.Equal(t, []int{1, 2}, vec.Entries())
	})
}

func TestVec_Pop(t *testing.T) {
	t.Parallel()

	vec := sorted.From([]int{3, 9, 1}, identity)

	popped, ok := vec.Pop().Get()
	require.True(t, ok)
	assert.Equal(t, 9, popped)
	assert.Equal(t, []int{1, 3}, vec.Entries())

	vec.Pop()
	vec.Pop()

	assert.True(t, vec.Pop().Empty())
}

func TestVec_Truncate(t *testing.T) {
	t.Parallel()

	vec := sorted.From([]int{4, 2, 3, 1}, identity)

	vec.Truncate(10)
	assert.Equal(t, 4, vec.Len())

	vec.Truncate(2)
	assert.Equal(t, []int{1, 2}, vec.Entries())

	vec.Truncate(0)
	assert.Equal(t, 0, vec.Len())
}

func TestVec_RoundTrip(t *testing.T) {
	t.Parallel()

	vec := sorted.From([]int{3, 5, 0, 10, 7, 1}, identity)
	original := vec.Entries()

	unwrapped := vec.IntoSlice()
	assert.Equal(t, original, unwrapped)
	assert.Equal(t, 0, vec.Len())

	rebuilt := sorted.From(unwrapped, identity)
	assert.Equal(t, original, rebuilt.Entries())
}

func TestVec_Seq(t *testing.T) {
	t.Parallel()

	t.Run("yields ascending key order", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{2, 0, 1}, identity)

		var got []int
		for item := range vec.Seq() {
			got = append(got, item)
		}

		assert.Equal(t, []int{0, 1, 2}, got)
	})

	t.Run("stops early when the consumer does", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{2, 0, 1}, identity)

		var got []int

		for item := range vec.Seq() {
			got = append(got, item)

			break
		}

		assert.Equal(t, []int{0}, got)
	})
}

func TestVec_Get(t *testing.T) {
	t.Parallel()

	vec := sorted.From([]int{2, 0}, identity)

	assert.Equal(t, 0, vec.Get(0))
	assert.Equal(t, 2, vec.Get(1))
	assert.Panics(t, func() { vec.Get(2) })
}

func TestVec_FindCorrectnessProperty(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(21, 22))

	for range 200 {
		xs := make([]int, rng.IntN(30))
		for i := range xs {
			xs[i] = rng.IntN(40)
		}

		s := rng.IntN(40)
		xs = slices.Insert(xs, len(xs)/2, s)

		vec := sorted.From(slices.Clone(xs), identity)

		require.True(t, vec.Find(s).NonEmpty(), "xs=%v s=%d", xs, s)

		probe := rng.IntN(40)
		require.Equal(t, slices.Contains(xs, probe), vec.Contains(probe),
			"xs=%v probe=%d", xs, probe)
	}
}

func TestVec_NaturalOrder(t *testing.T) {
	t.Parallel()

	vec := sorted.FromFunc(
		[]string{"item10", "item2", "item1"},
		func(s string) string { return s },
		sorted.NaturalOrder,
	)

	assert.Equal(t, []string{"item1", "item2", "item10"}, vec.Entries())
	assert.True(t, vec.Contains("item10"))
	assert.False(t, vec.Contains("item3"))
}

func TestVec_SortableKeys(t *testing.T) {
	t.Parallel()

	type task struct {
		name     string
		priority sortable.Int
	}

	vec := sorted.FromFunc(
		[]task{
			{name: "low", priority: 9},
			{name: "high", priority: 1},
			{name: "mid", priority: 5},
		},
		func(t task) sortable.Int { return t.priority },
		sortable.Compare[sortable.Int],
	)

	assert.Equal(t, "high", vec.Get(0).name)
	assert.Equal(t, "low", vec.Get(2).name)

	found, ok := vec.Find(5).Get()
	require.True(t, ok)
	assert.Equal(t, "mid", found.name)
}

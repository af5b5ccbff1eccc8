package sorted_test

import (
	"encoding/json"
	"testing"

	"github.com/amp-labs/sortedvec/errors"
	"github.com/amp-labs/sortedvec/sorted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVec_JSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals as a sorted array", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{3, 1, 2}, identity)

		data, err := json.Marshal(vec)
		require.NoError(t, err)
		assert.JSONEq(t, `[1,2,3]`, string(data))
	})

	t.Run("unmarshal re-sorts", func(t *testing.T) {
		t.Parallel()

		vec := sorted.New[int](identity)

		require.NoError(t, json.Unmarshal([]byte(`[9,2,5]`), vec))
		assert.Equal(t, []int{2, 5, 9}, vec.Entries())
		assert.True(t, vec.Contains(5))
	})

	t.Run("round-trip preserves iteration order", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{4, 0, 7}, identity)

		data, err := json.Marshal(vec)
		require.NoError(t, err)

		decoded := sorted.New[int](identity)
		require.NoError(t, json.Unmarshal(data, decoded))
		assert.Equal(t, vec.Entries(), decoded.Entries())
	})

	t.Run("decoding into a zero container fails", func(t *testing.T) {
		t.Parallel()

		var vec sorted.Vec[int, int]

		err := json.Unmarshal([]byte(`[1]`), &vec)
		require.ErrorIs(t, err, errors.ErrNoKeyFunction)
	})

	t.Run("propagates malformed input errors", func(t *testing.T) {
		t.Parallel()

		vec := sorted.New[int](identity)

		require.Error(t, json.Unmarshal([]byte(`{"not":"an array"}`), vec))
	})
}

func TestVec_YAML(t *testing.T) {
	t.Parallel()

	t.Run("round-trip", func(t *testing.T) {
		t.Parallel()

		vec := sorted.From([]int{8, 3, 6}, identity)

		data, err := yaml.Marshal(vec)
		require.NoError(t, err)

		decoded := sorted.New[int](identity)
		require.NoError(t, yaml.Unmarshal(data, decoded))
		assert.Equal(t, []int{3, 6, 8}, decoded.Entries())
	})

	t.Run("decoding into a zero container fails", func(t *testing.T) {
		t.Parallel()

		var vec sorted.Vec[int, int]

		err := yaml.Unmarshal([]byte("- 1\n"), &vec)
		require.ErrorIs(t, err, errors.ErrNoKeyFunction)
	})
}

func TestStringVec_Codec(t *testing.T) {
	t.Parallel()

	t.Run("JSON round-trip", func(t *testing.T) {
		t.Parallel()

		vec := sorted.FromStrings([]string{"b", "a"}, self)

		data, err := json.Marshal(vec)
		require.NoError(t, err)
		assert.JSONEq(t, `["a","b"]`, string(data))

		decoded := sorted.NewStrings(self)
		require.NoError(t, json.Unmarshal([]byte(`["z","m","a"]`), decoded))
		assert.Equal(t, []string{"a", "m", "z"}, decoded.Entries())
	})

	t.Run("YAML round-trip", func(t *testing.T) {
		t.Parallel()

		vec := sorted.FromStrings([]string{"beta", "alpha"}, self)

		data, err := yaml.Marshal(vec)
		require.NoError(t, err)

		decoded := sorted.NewStrings(self)
		require.NoError(t, yaml.Unmarshal(data, decoded))
		assert.Equal(t, []string{"alpha", "beta"}, decoded.Entries())
	})
}

func TestSliceVec_Codec(t *testing.T) {
	t.Parallel()

	t.Run("JSON round-trip", func(t *testing.T) {
		t.Parallel()

		vec := sorted.NewSlices(stringBytes)
		require.NoError(t, json.Unmarshal([]byte(`["c","a","b"]`), vec))
		assert.Equal(t, []string{"a", "b", "c"}, vec.Entries())

		data, err := json.Marshal(vec)
		require.NoError(t, err)
		assert.JSONEq(t, `["a","b","c"]`, string(data))
	})

	t.Run("decoding into a zero container fails", func(t *testing.T) {
		t.Parallel()

		var vec sorted.SliceVec[string, byte]

		err := json.Unmarshal([]byte(`["a"]`), &vec)
		require.ErrorIs(t, err, errors.ErrNoKeyFunction)
	})
}

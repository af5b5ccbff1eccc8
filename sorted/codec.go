package sorted

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/amp-labs/sortedvec/errors"
)

// The containers encode as their plain element sequence, in ascending key
// order, and re-sort when decoded. Decoding requires a receiver that was
// constructed with a key function; decoding into a zero container fails
// with errors.ErrNoKeyFunction.

// MarshalJSON encodes the elements as a JSON array in ascending key order.
func (v *Vec[T, K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.items)
}

// UnmarshalJSON decodes a JSON array of elements, replacing the current
// contents, and restores the order with one sort.
func (v *Vec[T, K]) UnmarshalJSON(data []byte) error {
	if v.key == nil || v.cmp == nil {
		return errors.ErrNoKeyFunction
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	v.items = items
	v.sort()

	return nil
}

// MarshalYAML encodes the elements as a YAML sequence in ascending key order.
func (v *Vec[T, K]) MarshalYAML() (any, error) {
	return v.items, nil
}

// UnmarshalYAML decodes a YAML sequence of elements, replacing the current
// contents, and restores the order with one sort.
func (v *Vec[T, K]) UnmarshalYAML(node *yaml.Node) error {
	if v.key == nil || v.cmp == nil {
		return errors.ErrNoKeyFunction
	}

	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}

	v.items = items
	v.sort()

	return nil
}

// MarshalJSON encodes the elements as a JSON array in ascending key order.
func (v *SliceVec[T, E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.items)
}

// UnmarshalJSON decodes a JSON array of elements, replacing the current
// contents, and restores the order with one sort.
func (v *SliceVec[T, E]) UnmarshalJSON(data []byte) error {
	if v.key == nil || v.cmp == nil {
		return errors.ErrNoKeyFunction
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	v.items = items
	v.sort()

	return nil
}

// MarshalYAML encodes the elements as a YAML sequence in ascending key order.
func (v *SliceVec[T, E]) MarshalYAML() (any, error) {
	return v.items, nil
}

// UnmarshalYAML decodes a YAML sequence of elements, replacing the current
// contents, and restores the order with one sort.
func (v *SliceVec[T, E]) UnmarshalYAML(node *yaml.Node) error {
	if v.key == nil || v.cmp == nil {
		return errors.ErrNoKeyFunction
	}

	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}

	v.items = items
	v.sort()

	return nil
}

// MarshalJSON encodes the elements as a JSON array in ascending key order.
func (v *StringVec[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.items)
}

// UnmarshalJSON decodes a JSON array of elements, replacing the current
// contents, and restores the order with one sort.
func (v *StringVec[T]) UnmarshalJSON(data []byte) error {
	if v.key == nil {
		return errors.ErrNoKeyFunction
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	v.items = items
	v.sort()

	return nil
}

// MarshalYAML encodes the elements as a YAML sequence in ascending key order.
func (v *StringVec[T]) MarshalYAML() (any, error) {
	return v.items, nil
}

// UnmarshalYAML decodes a YAML sequence of elements, replacing the current
// contents, and restores the order with one sort.
func (v *StringVec[T]) UnmarshalYAML(node *yaml.Node) error {
	if v.key == nil {
		return errors.ErrNoKeyFunction
	}

	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}

	v.items = items
	v.sort()

	return nil
}

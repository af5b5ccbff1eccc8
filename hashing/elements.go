package hashing

import (
	"hash"
	"iter"
)

// Elements adapts an iterator of Hashable elements into a single Hashable
// that feeds every element to the hash in iteration order.
//
// Combined with a sorted container's Seq, this fingerprints the container's
// contents: two containers holding equal elements hash identically no matter
// in which order the elements were inserted, because iteration is always in
// ascending key order.
//
//	digest, err := hashing.XXH3(hashing.Elements(vec.Seq()))
func Elements[T Hashable](seq iter.Seq[T]) Hashable {
	return elementsHashable[T]{seq: seq}
}

type elementsHashable[T Hashable] struct {
	seq iter.Seq[T]
}

func (e elementsHashable[T]) UpdateHash(h hash.Hash) error {
	for element := range e.seq {
		if err := element.UpdateHash(h); err != nil {
			return err
		}
	}

	return nil
}

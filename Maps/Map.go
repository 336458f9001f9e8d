// Package Maps holds what the map implementations under it have in common.
package Maps

import "iter"

// Ordered is a map that remembers the order keys were first inserted in.
type Ordered[K, V any] interface {
	Has(K) bool
	Get(K) (V, bool)
	Insert(K, V) (V, bool)
	Remove(K) (V, bool)
	Shift() (K, V, bool)
	First() (K, V, bool)
	Last() (K, V, bool)
	All() iter.Seq2[K, V]
	Len() uint
	Clear()
}

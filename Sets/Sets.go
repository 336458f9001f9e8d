// Package Sets holds what the set implementations under it have in common.
package Sets

// Set is an unordered view of a set.
type Set[E any] interface {
	Put(E) bool // reports whether E was added.
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() (E, bool)
	Range(func(E) bool)
}

// Package StSet is an insertion ordered hash set, a StMap.Table with no values. Ranks, traversal and the rest follow
// StMap.
package StSet

import (
	"iter"

	"github.com/g-m-twostay/go-st/Maps/StMap"
	"github.com/g-m-twostay/go-st/Sets"
)

var _ Sets.Set[uintptr] = (*Set[uintptr])(nil)

type Set[E any] struct {
	m *StMap.Table[E, struct{}]
}

func New[E any](capacity uint, h StMap.Hasher[E]) *Set[E] {
	return &Set[E]{StMap.New[E, struct{}](capacity, h)}
}

// NewWords returns a set of machine words using the StMap.Word hasher.
func NewWords(capacity uint) *Set[uintptr] {
	return New[uintptr](capacity, StMap.Word{})
}

func (u *Set[E]) Hasher() StMap.Hasher[E] {
	return u.m.Hasher()
}

func (u *Set[E]) Len() uint {
	return u.m.Len()
}

func (u *Set[E]) IsEmpty() bool {
	return u.m.IsEmpty()
}

func (u *Set[E]) Contains(e E) bool {
	return u.m.Has(e)
}

// Get returns the stored element equal to e.
func (u *Set[E]) Get(e E) (E, bool) {
	k, _, ok := u.m.GetKeyValue(e)
	return k, ok
}

// Insert e, reporting whether an equal element was already present. A present element isn't replaced, but a rank is
// consumed either way.
func (u *Set[E]) Insert(e E) bool {
	_, ok := u.m.Insert(e, struct{}{})
	return ok
}

// Update stores e, replacing an equal element in place and keeping its rank.
func (u *Set[E]) Update(e E) {
	u.m.Update(e, struct{}{})
}

func (u *Set[E]) Remove(e E) bool {
	_, ok := u.m.Remove(e)
	return ok
}

func (u *Set[E]) Clear() {
	u.m.Clear()
}

// First is the element with the lowest live rank.
func (u *Set[E]) First() (E, bool) {
	k, _, ok := u.m.First()
	return k, ok
}

func (u *Set[E]) Last() (E, bool) {
	k, _, ok := u.m.Last()
	return k, ok
}

// Shift removes First.
func (u *Set[E]) Shift() (E, bool) {
	k, _, ok := u.m.Shift()
	return k, ok
}

func (u *Set[E]) GetNth(rank uint64) (E, bool) {
	k, _, ok := u.m.GetNth(rank)
	return k, ok
}

func (u *Set[E]) InsertRanksFrom(rank uint64) *StMap.Ranks[E, struct{}] {
	return u.m.InsertRanksFrom(rank)
}

func (u *Set[E]) MinInsertRank() uint64 {
	return u.m.MinInsertRank()
}

func (u *Set[E]) MaxInsertRank() uint64 {
	return u.m.MaxInsertRank()
}

func (u *Set[E]) NextInsertRank() uint64 {
	return u.m.NextInsertRank()
}

func (u *Set[E]) EstimatedMemsize() uintptr {
	return u.m.EstimatedMemsize()
}

// All yields the elements in insertion order. The set must not be modified until the iteration ends.
func (u *Set[E]) All() iter.Seq[E] {
	return u.m.Keys()
}

// Foreach is StMap.Table.Foreach for elements; f may modify the set.
func (u *Set[E]) Foreach(f func(E) StMap.Action) bool {
	return u.m.Foreach(func(e E, _ struct{}) StMap.Action {
		return f(e)
	})
}

func (u *Set[E]) Clone() *Set[E] {
	return &Set[E]{u.m.Clone()}
}

// Equal reports whether u and o hold the same elements, in any order.
func (u *Set[E]) Equal(o *Set[E]) bool {
	return u.m.Equal(o.m, func(struct{}, struct{}) bool { return true })
}

// Put is Insert reporting whether e was added.
func (u *Set[E]) Put(e E) bool {
	return !u.Insert(e)
}

func (u *Set[E]) Has(e E) bool {
	return u.Contains(e)
}

func (u *Set[E]) Size() uint {
	return u.Len()
}

func (u *Set[E]) Take() (E, bool) {
	return u.Shift()
}

// Range calls f on the elements in insertion order until it returns false.
func (u *Set[E]) Range(f func(E) bool) {
	for e := range u.All() {
		if !f(e) {
			return
		}
	}
}

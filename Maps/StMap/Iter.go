package StMap

import "iter"

// All yields the entries in insertion order. The table must not be modified until the iteration ends; use Foreach to
// modify the table while visiting it.
func (u *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		u.ordered.Ascend(func(e *entry[K, V]) bool {
			return yield(e.k.inner, e.v)
		})
	}
}

// Keys yields the stored keys in insertion order. See All.
func (u *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		u.ordered.Ascend(func(e *entry[K, V]) bool {
			return yield(e.k.inner)
		})
	}
}

// Values yields the values in insertion order. See All.
func (u *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		u.ordered.Ascend(func(e *entry[K, V]) bool {
			return yield(e.v)
		})
	}
}

// Ranks is a finite, lazily evaluated sequence of insert ranks. It never holds a position inside the table, so the
// table may be modified freely between calls to Next.
type Ranks[K, V any] struct {
	t           *Table[K, V]
	next, bound uint64
}

// InsertRanksFrom returns the live ranks >= rank in increasing order, up to but excluding the table's NextInsertRank
// at the time of the call. Liveness is checked when Next is called, so ranks removed in the meantime are skipped and
// ranks inserted in the meantime are never reached. Call it again to pick those up.
func (u *Table[K, V]) InsertRanksFrom(rank uint64) *Ranks[K, V] {
	return &Ranks[K, V]{u, rank, u.counter}
}

// Next rank of the sequence. The bool is false once the sequence is exhausted, and stays false.
func (r *Ranks[K, V]) Next() (rank uint64, ok bool) {
	if r.next >= r.bound {
		return 0, false
	}
	r.t.ordered.AscendRange(probe[K, V](r.next), probe[K, V](r.bound), func(e *entry[K, V]) bool {
		rank, ok = e.k.rank, true
		return false
	})
	if ok {
		r.next = rank + 1
	} else {
		r.next = r.bound
	}
	return
}

// All drains the rest of the sequence.
func (r *Ranks[K, V]) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for rank, ok := r.Next(); ok; rank, ok = r.Next() {
			if !yield(rank) {
				return
			}
		}
	}
}

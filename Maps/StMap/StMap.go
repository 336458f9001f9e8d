/*
Package StMap implements an insertion ordered hash table with caller defined hashing and equality.

# Indexes
A Table keeps two indexes over the same entries. The keyed index maps a key's hash to a chain of entries and answers
point lookups. The ordered index is a B-tree keyed by insert rank and answers everything that depends on order: first
and last entries, lookups by rank, and iteration. Every live entry is in both indexes exactly once.

# Insert ranks
Each entry gets an insert rank when it is first inserted. Ranks come from a counter that only grows: removing a key
and inserting it again gives it a new, higher rank, and ranks are never reused until Clear resets the counter.
Updating a key in place keeps its rank. Insert consumes a rank on every call, including calls that only overwrite
the value of an existing key, so ranks of a table are unique but not necessarily contiguous.

# Mutation during traversal
Foreach and ForeachCheck visit entries by walking a sequence of ranks and re-checking that each rank is still alive
before visiting it, so the callback may insert and delete freely. All, Keys and Values don't support mutation.

# Usage
A Table isn't safe for concurrent use.
*/
package StMap

import (
	"unsafe"

	"github.com/g-m-twostay/go-st/Maps"
	"github.com/google/btree"
)

var _ Maps.Ordered[uintptr, uintptr] = (*Table[uintptr, uintptr])(nil)

// degree of the B-tree backing the ordered index.
const degree = 16

// Table is an insertion ordered hash table. Use New to create one; the zero value isn't usable.
type Table[K, V any] struct {
	index   map[uint64]*entry[K, V]
	ordered *btree.BTreeG[*entry[K, V]]
	h       Hasher[K]
	counter uint64 // next insert rank.
	size    uint   // entries in index; len(index) counts chains, not entries.
	hint    uint
}

// New returns an empty table sized for capacity entries. A capacity of 0 defers allocation to the first insert.
func New[K, V any](capacity uint, h Hasher[K]) *Table[K, V] {
	return &Table[K, V]{
		index:   make(map[uint64]*entry[K, V], capacity),
		ordered: btree.NewWithFreeListG(degree, byRank[K, V], btree.NewFreeListG[*entry[K, V]](btree.DefaultFreeListSize)),
		h:       h,
		hint:    capacity,
	}
}

// NewWords returns a table of machine words using the Word hasher.
func NewWords[V any](capacity uint) *Table[uintptr, V] {
	return New[uintptr, V](capacity, Word{})
}

// Hasher returns the Hasher the table was created with.
func (u *Table[K, V]) Hasher() Hasher[K] {
	return u.h
}

// Len returns the number of entries.
func (u *Table[K, V]) Len() uint {
	return u.size
}

func (u *Table[K, V]) IsEmpty() bool {
	return u.size == 0
}

// find the entry equal to k in the chain of hash, along with its predecessor in that chain.
func (u *Table[K, V]) find(k K, hash uint64) (prev, e *entry[K, V]) {
	for e = u.index[hash]; e != nil; prev, e = e, e.next {
		if u.h.Equal(k, e.k.inner) {
			return
		}
	}
	return nil, nil
}

func (u *Table[K, V]) link(e *entry[K, V]) {
	e.next = u.index[e.hash]
	u.index[e.hash] = e
	u.size++
}

func (u *Table[K, V]) unlink(prev, e *entry[K, V]) {
	if prev != nil {
		prev.next = e.next
	} else if e.next != nil {
		u.index[e.hash] = e.next
	} else {
		delete(u.index, e.hash)
	}
	e.next = nil
	u.size--
}

// add a new entry to both indexes.
func (u *Table[K, V]) add(e *entry[K, V]) {
	u.link(e)
	if _, replaced := u.ordered.ReplaceOrInsert(e); replaced {
		panic(&CorruptError{e.k.rank, "rank already taken"})
	}
}

// drop an entry from both indexes.
func (u *Table[K, V]) drop(prev, e *entry[K, V]) {
	u.unlink(prev, e)
	if _, ok := u.ordered.Delete(e); !ok {
		panic(&CorruptError{e.k.rank, "keyed entry missing from ordered index"})
	}
}

// detach e, which must be live, when only the entry itself is known.
func (u *Table[K, V]) detach(e *entry[K, V]) {
	var prev *entry[K, V]
	for c := u.index[e.hash]; c != e; prev, c = c, c.next {
		if c == nil {
			panic(&CorruptError{e.k.rank, "ordered entry missing from keyed index"})
		}
	}
	u.drop(prev, e)
}

// nth returns the live entry with the given rank, or nil.
func (u *Table[K, V]) nth(rank uint64) *entry[K, V] {
	e, _ := u.ordered.Get(probe[K, V](rank))
	return e
}

// Has reports whether a key equal to k is stored.
func (u *Table[K, V]) Has(k K) bool {
	_, e := u.find(k, u.h.Hash(k))
	return e != nil
}

// Get the value stored for k.
func (u *Table[K, V]) Get(k K) (V, bool) {
	if _, e := u.find(k, u.h.Hash(k)); e != nil {
		return e.v, true
	}
	return *new(V), false
}

// GetKeyValue returns the stored key equal to k, which needn't be identical to k, and its value.
func (u *Table[K, V]) GetKeyValue(k K) (K, V, bool) {
	if _, e := u.find(k, u.h.Hash(k)); e != nil {
		return e.k.inner, e.v, true
	}
	return *new(K), *new(V), false
}

// Insert v for k. If an equal key is already stored, its value is replaced and the old value returned with true; the
// stored key and its rank stay as they are. A rank is consumed either way.
func (u *Table[K, V]) Insert(k K, v V) (old V, ok bool) {
	rank := u.counter
	u.counter++
	hash := u.h.Hash(k)
	if _, e := u.find(k, hash); e != nil {
		old, e.v = e.v, v
		return old, true
	}
	u.add(&entry[K, V]{k: key[K]{k, rank}, v: v, hash: hash})
	return
}

// InsertUnique adds k without looking for an equal key first. The caller must know k is absent; inserting a present
// key leaves two entries that compare equal, and which one later lookups find is unspecified.
func (u *Table[K, V]) InsertUnique(k K, v V) {
	rank := u.counter
	u.counter++
	u.add(&entry[K, V]{k: key[K]{k, rank}, v: v, hash: u.h.Hash(k)})
}

// Update stores k and v, replacing both the stored key and value if an equal key is present. Use it when equal keys
// can have different representations and the newest one should be kept. The rank of an existing entry is kept. If no
// equal key is present Update behaves like Insert.
func (u *Table[K, V]) Update(k K, v V) {
	hash := u.h.Hash(k)
	if prev, e := u.find(k, hash); e != nil {
		u.unlink(prev, e)
		e.k.inner, e.v, e.hash = k, v, hash
		u.link(e)
		return
	}
	rank := u.counter
	u.counter++
	u.add(&entry[K, V]{k: key[K]{k, rank}, v: v, hash: hash})
}

// Remove k, returning its value.
func (u *Table[K, V]) Remove(k K) (V, bool) {
	_, v, ok := u.RemoveEntry(k)
	return v, ok
}

// RemoveEntry removes k, returning the stored key and its value.
func (u *Table[K, V]) RemoveEntry(k K) (K, V, bool) {
	prev, e := u.find(k, u.h.Hash(k))
	if e == nil {
		return *new(K), *new(V), false
	}
	u.drop(prev, e)
	return e.k.inner, e.v, true
}

// Shift removes the first entry in insertion order.
func (u *Table[K, V]) Shift() (K, V, bool) {
	e, ok := u.ordered.Min()
	if !ok {
		return *new(K), *new(V), false
	}
	u.detach(e)
	return e.k.inner, e.v, true
}

// Clear removes all entries and resets the rank counter to 0.
func (u *Table[K, V]) Clear() {
	clear(u.index)
	u.ordered.Clear(true)
	u.counter, u.size = 0, 0
}

// First returns the entry with the lowest live rank.
func (u *Table[K, V]) First() (K, V, bool) {
	if e, ok := u.ordered.Min(); ok {
		return e.k.inner, e.v, true
	}
	return *new(K), *new(V), false
}

// Last returns the entry with the highest live rank.
func (u *Table[K, V]) Last() (K, V, bool) {
	if e, ok := u.ordered.Max(); ok {
		return e.k.inner, e.v, true
	}
	return *new(K), *new(V), false
}

// GetNth returns the entry inserted with the given rank if it's still live.
func (u *Table[K, V]) GetNth(rank uint64) (K, V, bool) {
	if e := u.nth(rank); e != nil {
		return e.k.inner, e.v, true
	}
	return *new(K), *new(V), false
}

// MinInsertRank is the rank of First, or 0 for an empty table. 0 is also a valid rank, so check IsEmpty to tell the two
// apart.
func (u *Table[K, V]) MinInsertRank() uint64 {
	if e, ok := u.ordered.Min(); ok {
		return e.k.rank
	}
	return 0
}

// MaxInsertRank is the rank of Last, or 0 for an empty table.
func (u *Table[K, V]) MaxInsertRank() uint64 {
	if e, ok := u.ordered.Max(); ok {
		return e.k.rank
	}
	return 0
}

// NextInsertRank is the rank the next Insert will consume.
func (u *Table[K, V]) NextInsertRank() uint64 {
	return u.counter
}

// EstimatedMemsize is a rough count of the bytes held by the table. It's advisory only.
func (u *Table[K, V]) EstimatedMemsize() uintptr {
	var e entry[K, V]
	slots := max(u.size, u.hint)
	perSlot := unsafe.Sizeof(e.hash) + unsafe.Sizeof(&e) // keyed index: hash and chain head.
	perEntry := unsafe.Sizeof(e) + unsafe.Sizeof(&e)     // the entry and its ordered index slot.
	return unsafe.Sizeof(*u) + uintptr(slots)*perSlot + uintptr(u.size)*perEntry
}

// Clone returns a deep copy of the table: same entries, ranks and rank counter, sharing nothing with u except the
// Hasher. Keys and values are copied by assignment.
func (u *Table[K, V]) Clone() *Table[K, V] {
	c := New[K, V](max(u.size, u.hint), u.h)
	c.counter = u.counter
	u.ordered.Ascend(func(e *entry[K, V]) bool {
		c.add(&entry[K, V]{k: e.k, v: e.v, hash: e.hash})
		return true
	})
	return c
}

// Equal reports whether u and o hold the same keys with values equal under eq. Order and ranks don't matter. Keys of u
// are looked up in o with o's Hasher.
func (u *Table[K, V]) Equal(o *Table[K, V], eq func(a, b V) bool) bool {
	if u.size != o.size {
		return false
	}
	for k, v := range u.All() {
		if ov, ok := o.Get(k); !ok || !eq(v, ov) {
			return false
		}
	}
	return true
}

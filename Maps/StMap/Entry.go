package StMap

// Entry is the result of a single lookup, either occupied or vacant. It borrows its table: it's only valid until the
// table is next modified by anything other than the entry itself.
type Entry[K, V any] struct {
	t    *Table[K, V]
	k    K
	hash uint64
	prev *entry[K, V]
	e    *entry[K, V]
}

// Entry looks up k once and returns a view of the result.
func (u *Table[K, V]) Entry(k K) Entry[K, V] {
	hash := u.h.Hash(k)
	prev, e := u.find(k, hash)
	return Entry[K, V]{u, k, hash, prev, e}
}

// Occupied returns the occupied view if an equal key is stored.
func (x Entry[K, V]) Occupied() (OccupiedEntry[K, V], bool) {
	return OccupiedEntry[K, V]{x.t, x.prev, x.e}, x.e != nil
}

// Vacant returns the vacant view if no equal key is stored.
func (x Entry[K, V]) Vacant() (VacantEntry[K, V], bool) {
	return VacantEntry[K, V]{x.t, x.k, x.hash}, x.e == nil
}

// Key is the stored key if occupied, otherwise the key passed to Table.Entry.
func (x Entry[K, V]) Key() K {
	if x.e != nil {
		return x.e.k.inner
	}
	return x.k
}

// OrInsert returns the stored value, inserting v first if vacant.
func (x Entry[K, V]) OrInsert(v V) *V {
	if x.e != nil {
		return &x.e.v
	}
	return VacantEntry[K, V]{x.t, x.k, x.hash}.Insert(v)
}

// OrInsertWith is OrInsert with the value computed only when needed.
func (x Entry[K, V]) OrInsertWith(f func() V) *V {
	if x.e != nil {
		return &x.e.v
	}
	return VacantEntry[K, V]{x.t, x.k, x.hash}.Insert(f())
}

// OrInsertWithKey is OrInsertWith passing the key to f.
func (x Entry[K, V]) OrInsertWithKey(f func(K) V) *V {
	if x.e != nil {
		return &x.e.v
	}
	return VacantEntry[K, V]{x.t, x.k, x.hash}.Insert(f(x.k))
}

// AndModify calls f on the stored value if occupied.
func (x Entry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	if x.e != nil {
		f(&x.e.v)
	}
	return x
}

type OccupiedEntry[K, V any] struct {
	t    *Table[K, V]
	prev *entry[K, V]
	e    *entry[K, V]
}

func (x OccupiedEntry[K, V]) Key() K {
	return x.e.k.inner
}

func (x OccupiedEntry[K, V]) Get() V {
	return x.e.v
}

// GetMut returns a pointer to the stored value, valid for as long as the entry.
func (x OccupiedEntry[K, V]) GetMut() *V {
	return &x.e.v
}

// IntoMut is GetMut, for code that's done with the entry.
func (x OccupiedEntry[K, V]) IntoMut() *V {
	return &x.e.v
}

// Insert replaces the stored value, returning the old one. The rank isn't changed and no rank is consumed.
func (x OccupiedEntry[K, V]) Insert(v V) V {
	old := x.e.v
	x.e.v = v
	return old
}

// Remove the entry from the table, returning its value.
func (x OccupiedEntry[K, V]) Remove() V {
	_, v := x.RemoveEntry()
	return v
}

// RemoveEntry removes the entry from the table, returning the stored key and value.
func (x OccupiedEntry[K, V]) RemoveEntry() (K, V) {
	x.t.drop(x.prev, x.e)
	return x.e.k.inner, x.e.v
}

type VacantEntry[K, V any] struct {
	t    *Table[K, V]
	k    K
	hash uint64
}

func (x VacantEntry[K, V]) Key() K {
	return x.k
}

// IntoKey gives back the key without inserting anything.
func (x VacantEntry[K, V]) IntoKey() K {
	return x.k
}

// Insert v under the entry's key with the next rank, returning a pointer to the stored value.
func (x VacantEntry[K, V]) Insert(v V) *V {
	e := &entry[K, V]{k: key[K]{x.k, x.t.counter}, v: v, hash: x.hash}
	x.t.counter++
	x.t.add(e)
	return &e.v
}

package StTable

import (
	"unsafe"

	"github.com/g-m-twostay/go-st/Maps/StMap"
)

// Table mirrors the layout of st_table. The unexported fields stand in for st_table's private ones.
type Table struct {
	_          [4]uint8 // entry_power, bin_power, size_ind
	_          uint32   // rebuilds_num
	Type       *HashType
	NumEntries Index
	engine     *StMap.Table[Data, Data] // bins
	_          [2]Index                 // entries_start, entries_bound
	_          uintptr                  // entries
}

func InitWithSize(t *HashType, size Index) *Table {
	return &Table{Type: t, engine: StMap.New[Data, Data](uint(size), keys{t})}
}

func Init(t *HashType) *Table {
	return InitWithSize(t, 0)
}

func InitNumTable() *Table { return Init(NumHash) }
func InitNumTableWithSize(size Index) *Table { return InitWithSize(NumHash, size) }
func InitStrTable() *Table { return Init(StrHash) }
func InitStrTableWithSize(size Index) *Table { return InitWithSize(StrHash, size) }
func InitStrCaseTable() *Table { return Init(StrCaseHash) }
func InitStrCaseTableWithSize(size Index) *Table { return InitWithSize(StrCaseHash, size) }

// repack the public fields from the engine. Every exported method defers it.
func (u *Table) repack() {
	if u.engine == nil {
		u.NumEntries = 0
		return
	}
	u.NumEntries = Index(u.engine.Len())
}

// Delete removes *key. If found, the stored key replaces *key, its value goes to value, and Delete returns true.
// Otherwise *value is zeroed. value may be nil.
func (u *Table) Delete(key, value *Data) bool {
	defer u.repack()
	k, v, ok := u.engine.RemoveEntry(*key)
	if !ok {
		if value != nil {
			*value = 0
		}
		return false
	}
	*key = k
	if value != nil {
		*value = v
	}
	return true
}

// DeleteSafe is Delete.
func (u *Table) DeleteSafe(key, value *Data, never Data) bool {
	return u.Delete(key, value)
}

// Shift removes the oldest entry into key and value, either of which may be nil.
func (u *Table) Shift(key, value *Data) bool {
	defer u.repack()
	k, v, ok := u.engine.Shift()
	if !ok {
		if value != nil {
			*value = 0
		}
		return false
	}
	if key != nil {
		*key = k
	}
	if value != nil {
		*value = v
	}
	return true
}

// Insert stores value for key and reports whether key was already present. An existing entry keeps its stored key.
func (u *Table) Insert(key, value Data) bool {
	defer u.repack()
	_, ok := u.engine.Insert(key, value)
	return ok
}

// Insert2 is Insert, except that when key is absent it's replaced by f(key) before being stored, typically to make a
// copy the table can own. f may use the table.
func (u *Table) Insert2(key, value Data, f func(Data) Data) bool {
	defer u.repack()
	if u.engine.Has(key) {
		u.engine.Insert(key, value)
		return true
	}
	u.repack()
	u.engine.Insert(f(key), value)
	return false
}

// Lookup stores the value of key in value, which may be nil.
func (u *Table) Lookup(key Data, value *Data) bool {
	defer u.repack()
	v, ok := u.engine.Get(key)
	if ok && value != nil {
		*value = v
	}
	return ok
}

// GetKey stores the key equal to key that the table holds in result, which may be nil.
func (u *Table) GetKey(key Data, result *Data) bool {
	defer u.repack()
	k, _, ok := u.engine.GetKeyValue(key)
	if ok && result != nil {
		*result = k
	}
	return ok
}

// Update calls f with the stored key and value of key, or with key and 0 if absent, and acts on its answer.
//
// On Continue: if f changed neither word of an existing entry nothing happens. If f kept the key word, the value is
// stored like Insert does, consuming a rank. If f replaced the key word, the new key and value are stored like
// StMap.Table.Update does: an equal existing entry is rewritten in place, otherwise the new key goes to the back.
//
// Delete removes the existing entry. Anything else leaves the table alone. f may use the table; the answer applies to
// its state afterward. Returns whether key was present when f was called.
func (u *Table) Update(key Data, f func(key, value *Data, existing bool) RetVal) bool {
	defer u.repack()
	k0, v0, existing := u.engine.GetKeyValue(key)
	if !existing {
		k0, v0 = key, 0
	}
	k, v := k0, v0
	u.repack()
	switch f(&k, &v, existing) {
	case Continue:
		switch {
		case existing && k == k0 && v == v0:
		case k == k0:
			u.engine.Insert(k, v)
		default:
			u.engine.Update(k, v)
		}
	case Delete:
		if existing {
			u.engine.Remove(key)
		}
	}
	return existing
}

func (u *Table) wrap(f func(k, v Data) RetVal) func(k, v Data) RetVal {
	return func(k, v Data) RetVal {
		u.repack()
		return f(k, v)
	}
}

// Foreach calls f on every entry in insertion order. See StMap.Table.Foreach for what f may do. Returns false if f
// returned Stop.
func (u *Table) Foreach(f func(k, v Data) RetVal) bool {
	defer u.repack()
	return u.engine.Foreach(u.wrap(f))
}

func (u *Table) ForeachCheck(f func(k, v Data) RetVal, never Data) bool {
	defer u.repack()
	return u.engine.ForeachCheck(u.wrap(f))
}

// Keys copies keys in insertion order into buf, returning how many were copied.
func (u *Table) Keys(buf []Data) Index {
	defer u.repack()
	n := 0
	for k := range u.engine.Keys() {
		if n == len(buf) {
			break
		}
		buf[n] = k
		n++
	}
	return Index(n)
}

func (u *Table) KeysCheck(buf []Data, never Data) Index {
	return u.Keys(buf)
}

// Values is Keys for values.
func (u *Table) Values(buf []Data) Index {
	defer u.repack()
	n := 0
	for v := range u.engine.Values() {
		if n == len(buf) {
			break
		}
		buf[n] = v
		n++
	}
	return Index(n)
}

func (u *Table) ValuesCheck(buf []Data, never Data) Index {
	return u.Values(buf)
}

// AddDirect inserts a key the caller knows is absent.
func (u *Table) AddDirect(key, value Data) {
	defer u.repack()
	u.engine.InsertUnique(key, value)
}

// AddDirectWithHash is AddDirect; the precomputed hash is ignored since the table hashes with its own HashType.
func (u *Table) AddDirectWithHash(key, value Data, hash Index) {
	u.AddDirect(key, value)
}

// Free releases the entries. u must not be used afterward.
func (u *Table) Free() {
	u.engine, u.Type = nil, nil
	u.repack()
}

// CleanupSafe does nothing: deleted entries never linger.
func (u *Table) CleanupSafe(never Data) {}

func (u *Table) Clear() {
	defer u.repack()
	u.engine.Clear()
}

// Copy returns an independent table with the same entries in the same order.
func (u *Table) Copy() *Table {
	defer u.repack()
	c := &Table{Type: u.Type, engine: u.engine.Clone()}
	c.repack()
	return c
}

// Memsize estimates the bytes held by u.
func (u *Table) Memsize() uintptr {
	defer u.repack()
	return unsafe.Sizeof(*u) + u.engine.EstimatedMemsize()
}

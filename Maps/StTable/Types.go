/*
Package StTable is a table of machine words with the key semantics chosen at runtime, shaped after MRI's st_table.

A Table's header has the same size as st_table, and its Type and NumEntries fields sit at the same offsets, so code
that reads those two fields of an st_table reads them correctly from a Table. Everything else about the header is
private. NumEntries is recomputed after every call, and before every callback the Table makes, so it's always current
from the point of view of the caller.

Keys and values are opaque words. What a key means is up to its HashType: the presets treat keys as numbers or as
pointers to NUL terminated strings.
*/
package StTable

import "github.com/g-m-twostay/go-st/Maps/StMap"

// Data is st_data_t.
type Data = uintptr

// Index is st_index_t.
type Index = uintptr

// RetVal is what callbacks return to steer Foreach, ForeachCheck and Update.
type RetVal = StMap.Action

const (
	Continue = StMap.Continue
	Stop     = StMap.Stop
	Delete   = StMap.Delete
	Check    = StMap.Check
)

// CompareFunc returns 0 iff a and b are equal keys.
type CompareFunc func(a, b Data) int

type HashFunc func(Data) Index

// HashType gives a Table its key semantics, the same way a struct st_hash_type does. Keys that compare equal must
// hash the same. A HashType must outlive every Table using it.
type HashType struct {
	Compare CompareFunc
	Hash    HashFunc
}

// keys adapts a HashType to the engine.
type keys struct {
	t *HashType
}

func (u keys) Hash(k Data) uint64 {
	return uint64(u.t.Hash(k))
}

// Equal treats identical words as equal without asking Compare.
func (u keys) Equal(a, b Data) bool {
	return a == b || u.t.Compare(a, b) == 0
}

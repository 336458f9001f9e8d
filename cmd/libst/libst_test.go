package main

import (
	"testing"
	"unsafe"

	"github.com/g-m-twostay/go-st/Maps/StTable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumTable(t *testing.T) {
	p := st_init_numtable_with_size(8)
	defer st_free_table(p)
	u := table(p)
	assert.Same(t, StTable.NumHash, u.Type)
	assert.Same(t, StTable.NumHash, hashType(p._type))

	assert.EqualValues(t, 0, st_insert(p, 1, 10))
	assert.EqualValues(t, 1, st_insert(p, 1, 11))
	st_add_direct(p, 2, 20)
	st_add_direct_with_hash(p, 3, 30, 0)
	assert.EqualValues(t, 3, p.num_entries)
	assert.EqualValues(t, 1, st_lookup(p, 2, nil))
	assert.EqualValues(t, 0, st_lookup(p, 4, nil))
	assert.EqualValues(t, 1, st_get_key(p, 3, nil))

	var v StTable.Data
	require.True(t, u.Lookup(1, &v))
	assert.EqualValues(t, 11, v)

	c := st_copy(p)
	defer st_free_table(c)
	assert.Equal(t, p._type, c._type)
	assert.NotEqual(t, p.handle, c.handle)
	assert.EqualValues(t, 1, st_shift(p, nil, nil))
	assert.EqualValues(t, 2, p.num_entries)
	assert.EqualValues(t, 3, c.num_entries)

	assert.NotZero(t, st_memsize(p))
	st_cleanup_safe(p, 0)
	st_clear(p)
	assert.EqualValues(t, 0, p.num_entries)
	assert.EqualValues(t, 0, st_keys(p, nil, 0))
	assert.EqualValues(t, 3, c.num_entries)
}

func TestPresetTables(t *testing.T) {
	p := st_init_strtable()
	assert.Same(t, StTable.StrHash, table(p).Type)
	st_free_table(p)

	p = st_init_strcasetable_with_size(4)
	assert.Same(t, StTable.StrCaseHash, table(p).Type)
	st_free_table(p)

	p = st_init_numtable()
	assert.Same(t, StTable.NumHash, table(p).Type)
	assert.Same(t, hashType(p._type), hashType(p._type))
	st_free_table(p)
}

func TestHelpers(t *testing.T) {
	assert.EqualValues(t, 0, st_numcmp(5, 5))
	assert.EqualValues(t, 1, st_numcmp(5, 6))
	assert.EqualValues(t, 9, st_numhash(9))
	assert.EqualValues(t, StTable.HashUint32(1, 2), st_hash_uint32(1, 2))
	assert.EqualValues(t, StTable.HashUint(1, 2), st_hash_uint(1, 2))
	assert.EqualValues(t, StTable.HashStart(7), st_hash_start(7))
	assert.EqualValues(t, 7, st_hash_end(7))
	b := []byte("abc")
	assert.EqualValues(t, StTable.Hash(b, 3), st_hash(unsafe.Pointer(&b[0]), 3, 3))
}

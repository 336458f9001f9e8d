package main

/*
#include <stdlib.h>
#include "st.h"
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/g-m-twostay/go-st/Maps/StTable"
	"github.com/g-m-twostay/go-st/internal/logger"
)

func data(p *C.st_data_t) *StTable.Data {
	return (*StTable.Data)(unsafe.Pointer(p))
}

func words(p *C.st_data_t, n C.st_index_t) []StTable.Data {
	return unsafe.Slice(data(p), n)
}

//export st_init_table_with_size
func st_init_table_with_size(t *C.struct_st_hash_type, size C.st_index_t) *C.st_table {
	p := wrap(StTable.InitWithSize(hashType(t), StTable.Index(size)), t)
	logger.Debug("st_init_table", "table", unsafe.Pointer(p), "size", uintptr(size))
	return p
}

//export st_init_table
func st_init_table(t *C.struct_st_hash_type) *C.st_table {
	return st_init_table_with_size(t, 0)
}

//export st_init_numtable
func st_init_numtable() *C.st_table {
	return st_init_table(&C.st_hashtype_num)
}

//export st_init_numtable_with_size
func st_init_numtable_with_size(size C.st_index_t) *C.st_table {
	return st_init_table_with_size(&C.st_hashtype_num, size)
}

//export st_init_strtable
func st_init_strtable() *C.st_table {
	return st_init_table(&C.st_hashtype_str)
}

//export st_init_strtable_with_size
func st_init_strtable_with_size(size C.st_index_t) *C.st_table {
	return st_init_table_with_size(&C.st_hashtype_str, size)
}

//export st_init_strcasetable
func st_init_strcasetable() *C.st_table {
	return st_init_table(&C.st_hashtype_strcase)
}

//export st_init_strcasetable_with_size
func st_init_strcasetable_with_size(size C.st_index_t) *C.st_table {
	return st_init_table_with_size(&C.st_hashtype_strcase, size)
}

//export st_delete
func st_delete(p *C.st_table, key, value *C.st_data_t) C.int {
	u := acquire("st_delete", p)
	defer release(p, u)
	return cbool(u.Delete(data(key), data(value)))
}

//export st_delete_safe
func st_delete_safe(p *C.st_table, key, value *C.st_data_t, never C.st_data_t) C.int {
	u := acquire("st_delete_safe", p)
	defer release(p, u)
	return cbool(u.DeleteSafe(data(key), data(value), StTable.Data(never)))
}

//export st_shift
func st_shift(p *C.st_table, key, value *C.st_data_t) C.int {
	u := acquire("st_shift", p)
	defer release(p, u)
	return cbool(u.Shift(data(key), data(value)))
}

//export st_insert
func st_insert(p *C.st_table, key, value C.st_data_t) C.int {
	u := acquire("st_insert", p)
	defer release(p, u)
	return cbool(u.Insert(StTable.Data(key), StTable.Data(value)))
}

//export st_insert2
func st_insert2(p *C.st_table, key, value C.st_data_t, f unsafe.Pointer) C.int {
	u := acquire("st_insert2", p)
	defer release(p, u)
	return cbool(u.Insert2(StTable.Data(key), StTable.Data(value), func(k StTable.Data) StTable.Data {
		release(p, u)
		return StTable.Data(C.stgo_call_func((*[0]byte)(f), C.st_data_t(k)))
	}))
}

//export st_lookup
func st_lookup(p *C.st_table, key C.st_data_t, value *C.st_data_t) C.int {
	u := acquire("st_lookup", p)
	defer release(p, u)
	return cbool(u.Lookup(StTable.Data(key), data(value)))
}

//export st_get_key
func st_get_key(p *C.st_table, key C.st_data_t, result *C.st_data_t) C.int {
	u := acquire("st_get_key", p)
	defer release(p, u)
	return cbool(u.GetKey(StTable.Data(key), data(result)))
}

//export st_update
func st_update(p *C.st_table, key C.st_data_t, f unsafe.Pointer, arg C.st_data_t) C.int {
	u := acquire("st_update", p)
	defer release(p, u)
	return cbool(u.Update(StTable.Data(key), func(k, v *StTable.Data, existing bool) StTable.RetVal {
		release(p, u)
		return StTable.RetVal(C.stgo_call_update((*[0]byte)(f), (*C.st_data_t)(unsafe.Pointer(k)), (*C.st_data_t)(unsafe.Pointer(v)), arg, cbool(existing)))
	}))
}

func visitor(p *C.st_table, u *StTable.Table, f unsafe.Pointer, arg C.st_data_t) func(k, v StTable.Data) StTable.RetVal {
	return func(k, v StTable.Data) StTable.RetVal {
		release(p, u)
		return StTable.RetVal(C.stgo_call_foreach((*[0]byte)(f), C.st_data_t(k), C.st_data_t(v), arg))
	}
}

//export st_foreach
func st_foreach(p *C.st_table, f unsafe.Pointer, arg C.st_data_t) C.int {
	u := acquire("st_foreach", p)
	defer release(p, u)
	u.Foreach(visitor(p, u, f, arg))
	return 0
}

//export st_foreach_check
func st_foreach_check(p *C.st_table, f unsafe.Pointer, arg, never C.st_data_t) C.int {
	u := acquire("st_foreach_check", p)
	defer release(p, u)
	u.ForeachCheck(visitor(p, u, f, arg), StTable.Data(never))
	return 0
}

//export st_keys
func st_keys(p *C.st_table, keys *C.st_data_t, size C.st_index_t) C.st_index_t {
	u := acquire("st_keys", p)
	defer release(p, u)
	return C.st_index_t(u.Keys(words(keys, size)))
}

//export st_keys_check
func st_keys_check(p *C.st_table, keys *C.st_data_t, size C.st_index_t, never C.st_data_t) C.st_index_t {
	u := acquire("st_keys_check", p)
	defer release(p, u)
	return C.st_index_t(u.KeysCheck(words(keys, size), StTable.Data(never)))
}

//export st_values
func st_values(p *C.st_table, values *C.st_data_t, size C.st_index_t) C.st_index_t {
	u := acquire("st_values", p)
	defer release(p, u)
	return C.st_index_t(u.Values(words(values, size)))
}

//export st_values_check
func st_values_check(p *C.st_table, values *C.st_data_t, size C.st_index_t, never C.st_data_t) C.st_index_t {
	u := acquire("st_values_check", p)
	defer release(p, u)
	return C.st_index_t(u.ValuesCheck(words(values, size), StTable.Data(never)))
}

//export st_add_direct
func st_add_direct(p *C.st_table, key, value C.st_data_t) {
	u := acquire("st_add_direct", p)
	defer release(p, u)
	u.AddDirect(StTable.Data(key), StTable.Data(value))
}

//export st_add_direct_with_hash
func st_add_direct_with_hash(p *C.st_table, key, value C.st_data_t, hash C.st_index_t) {
	u := acquire("st_add_direct_with_hash", p)
	defer release(p, u)
	u.AddDirectWithHash(StTable.Data(key), StTable.Data(value), StTable.Index(hash))
}

//export st_free_table
func st_free_table(p *C.st_table) {
	u := acquire("st_free_table", p)
	u.Free()
	cgo.Handle(p.handle).Delete()
	C.free(unsafe.Pointer(p))
}

//export st_cleanup_safe
func st_cleanup_safe(p *C.st_table, never C.st_data_t) {
	u := acquire("st_cleanup_safe", p)
	defer release(p, u)
	u.CleanupSafe(StTable.Data(never))
}

//export st_clear
func st_clear(p *C.st_table) {
	u := acquire("st_clear", p)
	defer release(p, u)
	u.Clear()
}

//export st_copy
func st_copy(p *C.st_table) *C.st_table {
	u := acquire("st_copy", p)
	defer release(p, u)
	return wrap(u.Copy(), p._type)
}

//export st_memsize
func st_memsize(p *C.st_table) C.size_t {
	u := acquire("st_memsize", p)
	defer release(p, u)
	return C.size_t(u.Memsize())
}

//export st_numcmp
func st_numcmp(x, y C.st_data_t) C.int {
	return C.int(StTable.NumCmp(StTable.Data(x), StTable.Data(y)))
}

//export st_numhash
func st_numhash(n C.st_data_t) C.st_index_t {
	return C.st_index_t(StTable.NumHashFunc(StTable.Data(n)))
}

//export st_strhash
func st_strhash(s C.st_data_t) C.st_index_t {
	return C.st_index_t(StTable.StrHashFunc(StTable.Data(s)))
}

//export st_strcasehash
func st_strcasehash(s C.st_data_t) C.st_index_t {
	return C.st_index_t(StTable.StrCaseHashFunc(StTable.Data(s)))
}

//export st_locale_insensitive_strcasecmp
func st_locale_insensitive_strcasecmp(s1, s2 *C.char) C.int {
	return C.int(StTable.StrCaseCmp(StTable.Data(unsafe.Pointer(s1)), StTable.Data(unsafe.Pointer(s2))))
}

//export st_locale_insensitive_strncasecmp
func st_locale_insensitive_strncasecmp(s1, s2 *C.char, n C.size_t) C.int {
	return C.int(StTable.StrNCaseCmp(StTable.Data(unsafe.Pointer(s1)), StTable.Data(unsafe.Pointer(s2)), uintptr(n)))
}

//export st_strcasecmp
func st_strcasecmp(s1, s2 *C.char) C.int {
	return st_locale_insensitive_strcasecmp(s1, s2)
}

//export st_strncasecmp
func st_strncasecmp(s1, s2 *C.char, n C.size_t) C.int {
	return st_locale_insensitive_strncasecmp(s1, s2, n)
}

//export st_hash
func st_hash(ptr unsafe.Pointer, n C.size_t, h C.st_index_t) C.st_index_t {
	return C.st_index_t(StTable.Hash(unsafe.Slice((*byte)(ptr), n), StTable.Index(h)))
}

//export st_hash_uint32
func st_hash_uint32(h C.st_index_t, i C.uint32_t) C.st_index_t {
	return C.st_index_t(StTable.HashUint32(StTable.Index(h), uint32(i)))
}

//export st_hash_uint
func st_hash_uint(h, i C.st_index_t) C.st_index_t {
	return C.st_index_t(StTable.HashUint(StTable.Index(h), StTable.Index(i)))
}

//export st_hash_start
func st_hash_start(h C.st_index_t) C.st_index_t {
	return C.st_index_t(StTable.HashStart(StTable.Index(h)))
}

//export st_hash_end
func st_hash_end(h C.st_index_t) C.st_index_t {
	return C.st_index_t(StTable.HashEnd(StTable.Index(h)))
}

// Command libst builds an st_hash compatible shared library:
//
//	go build -buildmode=c-shared -o libst.so ./cmd/libst
//
// Logging is off unless ST_DEBUG is set; see internal/logger.
package main

/*
#include <stdlib.h>
#include "st.h"
*/
import "C"

import (
	"fmt"
	"os"
	"runtime/cgo"
	"sync"
	"unsafe"

	"github.com/g-m-twostay/go-st/Maps/StTable"
	"github.com/g-m-twostay/go-st/internal/logger"
)

func init() {
	opts, envErr := logger.FromEnv(os.Getenv)
	if err := logger.Init(opts); err != nil {
		fmt.Fprintln(os.Stderr, "libst: logging disabled:", err)
		return
	}
	switch {
	case envErr == nil:
	case opts.Enabled:
		logger.Warn("ignoring bad logging setting", "err", envErr)
	default:
		fmt.Fprintln(os.Stderr, "libst: logging disabled:", envErr)
	}
}

func main() {}

var (
	typesMu sync.Mutex
	// descriptors live as long as the process, so entries are never evicted.
	types = map[*C.struct_st_hash_type]*StTable.HashType{
		&C.st_hashtype_num:     StTable.NumHash,
		&C.st_hashtype_str:     StTable.StrHash,
		&C.st_hashtype_strcase: StTable.StrCaseHash,
	}
)

// hashType returns the Go view of a C descriptor. Presets map to their Go implementations directly.
func hashType(t *C.struct_st_hash_type) *StTable.HashType {
	typesMu.Lock()
	defer typesMu.Unlock()
	if h, ok := types[t]; ok {
		return h
	}
	h := &StTable.HashType{
		Compare: func(a, b StTable.Data) int {
			return int(C.stgo_call_compare(t, C.st_data_t(a), C.st_data_t(b)))
		},
		Hash: func(k StTable.Data) StTable.Index {
			return StTable.Index(C.stgo_call_hash(t, C.st_data_t(k)))
		},
	}
	types[t] = h
	return h
}

// wrap allocates the C header for u. The header holds a handle, not a pointer, to u.
func wrap(u *StTable.Table, t *C.struct_st_hash_type) *C.st_table {
	p := (*C.st_table)(C.calloc(1, C.sizeof_st_table))
	p._type = t
	p.handle = C.uintptr_t(cgo.NewHandle(u))
	p.num_entries = C.st_index_t(u.NumEntries)
	return p
}

func table(p *C.st_table) *StTable.Table {
	return cgo.Handle(p.handle).Value().(*StTable.Table)
}

// acquire the Go table behind p. Every acquire must be paired with a deferred release.
func acquire(op string, p *C.st_table) *StTable.Table {
	logger.Debug(op, "table", unsafe.Pointer(p), "entries", uintptr(p.num_entries))
	return table(p)
}

// release copies the public fields of u back to p. It also runs before every callback into C.
func release(p *C.st_table, u *StTable.Table) {
	p.num_entries = C.st_index_t(u.NumEntries)
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

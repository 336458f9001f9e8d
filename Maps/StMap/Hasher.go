package StMap

import (
	"bytes"

	Go_St "github.com/g-m-twostay/go-st"
	"golang.org/x/exp/constraints"
)

// Hasher is the pair of functions a Table uses to place and compare keys. It's fixed for the lifetime of a Table.
// Implementations must be pure: Equal(a, b) implies Hash(a)==Hash(b), and neither may depend on anything that changes
// while a key is stored. The table calls Hash exactly once per lookup or write and never mixes anything into the result.
type Hasher[K any] interface {
	Hash(K) uint64
	Equal(a, b K) bool
}

// Funcs adapts a caller supplied hash and equality function pair into a Hasher.
type Funcs[K any] struct {
	HashF  func(K) uint64
	EqualF func(a, b K) bool
}

func (u Funcs[K]) Hash(k K) uint64 {
	return u.HashF(k)
}

func (u Funcs[K]) Equal(a, b K) bool {
	return u.EqualF(a, b)
}

// Word is the default Hasher for opaque machine words: identity hash and numeric equality.
type Word struct{}

func (Word) Hash(k uintptr) uint64 {
	return uint64(k)
}

func (Word) Equal(a, b uintptr) bool {
	return a == b
}

// Integer is Word for any integer type.
type Integer[K constraints.Integer] struct{}

func (Integer[K]) Hash(k K) uint64 {
	return uint64(k)
}

func (Integer[K]) Equal(a, b K) bool {
	return a == b
}

// String hashes strings with xxhash using a fixed Seed. Tables built with equal Seeds hash identically.
type String struct {
	Seed Go_St.Hasher
}

func (u String) Hash(k string) uint64 {
	return u.Seed.HashString(k)
}

func (String) Equal(a, b string) bool {
	return a == b
}

// Bytes is String for byte slices. The table doesn't copy keys, so a slice must not change while it's stored.
type Bytes struct {
	Seed Go_St.Hasher
}

func (u Bytes) Hash(k []byte) uint64 {
	return u.Seed.HashBytes(k)
}

func (Bytes) Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

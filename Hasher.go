package Go_St

import "github.com/cespare/xxhash/v2"

// Hasher is a fixed xxhash seed. The zero value is a valid seed, and two Hashers with the same value always agree,
// so it's safe to use where hashes must be stable across tables and processes.
type Hasher uint64

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint64 {
	var d xxhash.Digest
	d.ResetWithSeed(uint64(u))
	_, _ = d.Write(b)
	return d.Sum64()
}

// HashString directly hashes a string without copying it to a byte slice.
func (u Hasher) HashString(v string) uint64 {
	var d xxhash.Digest
	d.ResetWithSeed(uint64(u))
	_, _ = d.WriteString(v)
	return d.Sum64()
}

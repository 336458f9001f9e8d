package StTable

import (
	"encoding/binary"

	Go_St "github.com/g-m-twostay/go-st"
)

// Hash mixes b into h. Hashes built by chaining these functions are stable across runs but not across platforms:
// integers are mixed in native byte order.
func Hash(b []byte, h Index) Index {
	return Index(Go_St.Fnv1a32(uint32(h), b))
}

func HashUint32(h Index, i uint32) Index {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], i)
	return Hash(b[:], h)
}

func HashUint(h, i Index) Index {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], uint64(i))
	return Hash(b[:], h)
}

// HashStart begins a chain from the seed h.
func HashStart(h Index) Index {
	return HashUint(Index(Go_St.Fnv32Offset), h)
}

func HashEnd(h Index) Index {
	return h
}

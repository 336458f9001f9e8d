package Go_St

import (
	"hash/fnv"
	"math/rand"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

var rg = rand.New(rand.NewSource(0))

func randBytes(n int) []byte {
	b := make([]byte, n)
	rg.Read(b)
	return b
}

func TestFnv_MatchesStdlib(t *testing.T) {
	for n := range 64 {
		b := randBytes(n)
		h32 := fnv.New32a()
		h32.Write(b)
		assert.Equal(t, h32.Sum32(), Fnv1a32(Fnv32Offset, b))
		h64 := fnv.New64a()
		h64.Write(b)
		assert.Equal(t, h64.Sum64(), Fnv1a64(Fnv64Offset, b))
	}
}

func TestFnv_Continues(t *testing.T) {
	b := randBytes(100)
	whole := Fnv1a32(Fnv32Offset, b)
	assert.Equal(t, whole, Fnv1a32(Fnv1a32(Fnv32Offset, b[:37]), b[37:]))
	assert.Equal(t, Fnv1a64(Fnv64Offset, b), Fnv1a64(Fnv1a64(Fnv64Offset, b[:1]), b[1:]))
}

func TestFnv_Fold(t *testing.T) {
	lower := func(c byte) byte {
		if 'A' <= c && c <= 'Z' {
			return c + 'a' - 'A'
		}
		return c
	}
	s := "Hello, World"
	assert.Equal(t, Fnv1a64(Fnv64Offset, strings.ToLower(s)), Fnv1a64Fold(Fnv64Offset, s, lower))
	assert.Equal(t, Fnv1a64Fold(Fnv64Offset, "ABC", lower), Fnv1a64Fold(Fnv64Offset, []byte("abc"), lower))
	assert.Equal(t, Fnv1a32(Fnv32Offset, s), Fnv1a32(Fnv32Offset, []byte(s)))
}

func TestHasher(t *testing.T) {
	var zero Hasher
	assert.Equal(t, xxhash.Sum64String("abc"), zero.HashString("abc"))
	assert.Equal(t, xxhash.Sum64([]byte("abc")), zero.HashBytes([]byte("abc")))

	h := Hasher(rg.Uint64())
	for range 32 {
		b := randBytes(rg.Intn(80))
		assert.Equal(t, h.HashBytes(b), h.HashString(string(b)))
		assert.Equal(t, h.HashBytes(b), Hasher(uint64(h)).HashBytes(b))
	}
	assert.Equal(t, h.HashBytes(nil), h.HashString(""))
	assert.NotEqual(t, Hasher(1).HashString("abc"), Hasher(2).HashString("abc"))
}

package Go_St

const (
	Fnv32Offset uint32 = 0x811c9dc5
	Fnv32Prime  uint32 = 16777619
	Fnv64Offset uint64 = 0xcbf29ce484222325
	Fnv64Prime  uint64 = 0x100000001b3
)

// Bytes is anything that indexes to bytes without a copy.
type Bytes interface {
	~string | ~[]byte
}

// Fnv1a32 folds b into the running FNV-1a state h. Pass Fnv32Offset to start a fresh hash, or a previous result to
// continue one.
func Fnv1a32[T Bytes](h uint32, b T) uint32 {
	for i := 0; i < len(b); i++ {
		h ^= uint32(b[i])
		h *= Fnv32Prime
	}
	return h
}

// Fnv1a64 is the 64 bit variant of Fnv1a32.
func Fnv1a64[T Bytes](h uint64, b T) uint64 {
	for i := 0; i < len(b); i++ {
		h ^= uint64(b[i])
		h *= Fnv64Prime
	}
	return h
}

// Fnv1a64Fold is Fnv1a64 with every byte passed through f first.
func Fnv1a64Fold[T Bytes](h uint64, b T, f func(byte) byte) uint64 {
	for i := 0; i < len(b); i++ {
		h ^= uint64(f(b[i]))
		h *= Fnv64Prime
	}
	return h
}

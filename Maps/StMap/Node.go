package StMap

// key pairs a stored key with the insert rank of its slot in the ordered index. Only inner takes part in hashing and
// equality, and only through the Hasher of the table owning it; keys of different tables are never compared.
type key[K any] struct {
	inner K
	rank  uint64
}

// entry is shared by both indexes: the hash chain of the keyed index links it through next, and the ordered index
// holds the same pointer sorted by rank.
type entry[K, V any] struct {
	k    key[K]
	v    V
	hash uint64
	next *entry[K, V]
}

func byRank[K, V any](a, b *entry[K, V]) bool {
	return a.k.rank < b.k.rank
}

// probe is a stand-in entry used to search the ordered index by rank.
func probe[K, V any](rank uint64) *entry[K, V] {
	return &entry[K, V]{k: key[K]{rank: rank}}
}

package StMap

import "fmt"

// CorruptError is the panic value used when the keyed and ordered indexes disagree about an entry. It can only happen
// if a Hasher breaks its contract, for example by hashing equal keys differently.
type CorruptError struct {
	Rank uint64
	Msg  string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("StMap: corrupt table at rank %d: %s", e.Rank, e.Msg)
}

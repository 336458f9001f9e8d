package StMap

// Action tells Foreach what to do after visiting an entry. The values match st_retval.
type Action byte

const (
	Continue Action = iota // visit the next entry.
	Stop                   // end the traversal.
	Delete                 // remove the visited entry, then continue.
	Check                  // continue; kept apart from Continue for callers ported from st_foreach_check.
)

// Foreach calls f on every entry in insertion order until f returns Stop. f may insert, update and remove entries of u
// while it runs. An entry removed before it's reached is never visited, no entry is visited twice, and entries inserted
// by f are visited after the ones already present. Returns false if f stopped the traversal.
//
// Clearing the table from f resets the rank counter, so entries inserted after the Clear may be skipped.
func (u *Table[K, V]) Foreach(f func(K, V) Action) bool {
	return u.traverse(f, false)
}

// ForeachCheck is Foreach that additionally checks, before each step, whether the lowest live rank has moved past the
// current position, and restarts the rank sequence from it if so. Its results are the same as Foreach; it saves
// walking over ranks that f has removed in bulk.
//
// st_foreach_check in MRI instead detects a table rebuilt under it and reports an error. This check never fails and
// never moves the position backwards: a lowest live rank below the position only means entries were inserted and then
// rebuilt by Clear, and restarting there would visit entries again. Check is treated as Continue here and in Foreach.
func (u *Table[K, V]) ForeachCheck(f func(K, V) Action) bool {
	return u.traverse(f, true)
}

func (u *Table[K, V]) traverse(f func(K, V) Action, check bool) bool {
	ranks := u.InsertRanksFrom(0)
	var last uint64
	seen := false
	for {
		if check {
			ranks = u.resync(ranks)
		}
		rank, ok := ranks.Next()
		if !ok {
			// nothing visited means f never ran, so nothing new can have been inserted.
			if !seen || u.size == 0 || u.MaxInsertRank() <= last {
				return true
			}
			ranks = u.InsertRanksFrom(last + 1)
			continue
		}
		last, seen = rank, true
		e := u.nth(rank)
		if e == nil {
			continue
		}
		switch f(e.k.inner, e.v) {
		case Stop:
			return false
		case Delete:
			// f may have removed it already.
			if u.nth(rank) == e {
				u.detach(e)
			}
		}
	}
}

// resync skips r ahead to the lowest live rank if everything between has been removed.
func (u *Table[K, V]) resync(r *Ranks[K, V]) *Ranks[K, V] {
	if u.size > 0 {
		if lo := u.MinInsertRank(); lo > r.next {
			return u.InsertRanksFrom(lo)
		}
	}
	return r
}

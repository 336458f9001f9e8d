package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/g-m-twostay/go-st/Maps/StMap"
	"github.com/g-m-twostay/go-st/Maps/StTable"
)

// only StMap, StTable and linkedhashmap keep insertion order; the rest are here for scale.
const benchmarkItemCount = 1024

func setupStMap(b *testing.B) *StMap.Table[uintptr, uintptr] {
	b.Helper()
	m := StMap.NewWords[uintptr](benchmarkItemCount)
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Insert(i, i)
	}
	return m
}

func setupStTable(b *testing.B) *StTable.Table {
	b.Helper()
	m := StTable.InitNumTableWithSize(benchmarkItemCount)
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Insert(i, i)
	}
	return m
}

func setupLinked(b *testing.B) *linkedhashmap.Map {
	b.Helper()
	m := linkedhashmap.New()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Put(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()
	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()
	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupBuiltin(b *testing.B) map[uintptr]uintptr {
	b.Helper()
	m := make(map[uintptr]uintptr, benchmarkItemCount)
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m[i] = i
	}
	return m
}

func BenchmarkReadStMap(b *testing.B) {
	m := setupStMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadStTable(b *testing.B) {
	m := setupStTable(b)
	b.ResetTimer()
	var j uintptr
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if m.Lookup(i, &j); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadLinkedHashMap(b *testing.B) {
	m := setupLinked(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j.(uintptr) != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadBuiltin(b *testing.B) {
	m := setupBuiltin(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if m[i] != i {
				b.Fail()
			}
		}
	}
}

// insert everything, then delete everything in insertion order.
func BenchmarkChurnStMap(b *testing.B) {
	for range b.N {
		m := StMap.NewWords[uintptr](0)
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Insert(i, i)
		}
		for !m.IsEmpty() {
			m.Shift()
		}
	}
}

func BenchmarkChurnStTable(b *testing.B) {
	for range b.N {
		m := StTable.InitNumTable()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Insert(i, i)
		}
		for m.Shift(nil, nil) {
		}
	}
}

func BenchmarkChurnLinkedHashMap(b *testing.B) {
	for range b.N {
		m := linkedhashmap.New()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Put(i, i)
		}
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Remove(i)
		}
	}
}

func BenchmarkChurnHashMap(b *testing.B) {
	for range b.N {
		m := hashmap.New[uintptr, uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Del(i)
		}
	}
}

func BenchmarkChurnHaxMap(b *testing.B) {
	for range b.N {
		m := haxmap.New[uintptr, uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Del(i)
		}
	}
}

func BenchmarkIterateStMap(b *testing.B) {
	m := setupStMap(b)
	b.ResetTimer()
	for range b.N {
		n := 0
		m.Foreach(func(k, v uintptr) StMap.Action {
			n++
			return StMap.Continue
		})
		if n != benchmarkItemCount {
			b.Fail()
		}
	}
}

func BenchmarkIterateLinkedHashMap(b *testing.B) {
	m := setupLinked(b)
	b.ResetTimer()
	for range b.N {
		n := 0
		for it := m.Iterator(); it.Next(); {
			n++
		}
		if n != benchmarkItemCount {
			b.Fail()
		}
	}
}

func BenchmarkIterateHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		n := 0
		m.ForEach(func(k, v uintptr) bool {
			n++
			return true
		})
		if n != benchmarkItemCount {
			b.Fail()
		}
	}
}

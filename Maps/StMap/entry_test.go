package StMap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Vacant(t *testing.T) {
	m := New[string, int](0, String{})
	m.Insert("a", 1)
	x := m.Entry("b")
	_, ok := x.Occupied()
	assert.False(t, ok)
	vac, ok := x.Vacant()
	require.True(t, ok)
	assert.Equal(t, "b", vac.Key())
	next := m.NextInsertRank()
	p := vac.Insert(2)
	assert.Equal(t, 2, *p)
	*p = 3
	v, _ := m.Get("b")
	assert.Equal(t, 3, v)
	k, _, ok := m.GetNth(next)
	assert.True(t, ok)
	assert.Equal(t, "b", k)
	assert.Equal(t, next+1, m.NextInsertRank())
}

func TestEntry_Occupied(t *testing.T) {
	m := New[*int, int](0, boxed)
	a := box(1)
	m.Insert(a, 10)
	m.Insert(box(2), 20)
	next := m.NextInsertRank()

	occ, ok := m.Entry(box(1)).Occupied()
	require.True(t, ok)
	assert.Same(t, a, occ.Key())
	assert.Equal(t, 10, occ.Get())
	*occ.GetMut() += 1
	assert.Equal(t, 11, occ.Insert(12))
	*occ.IntoMut() *= 2
	v, _ := m.Get(box(1))
	assert.Equal(t, 24, v)
	assert.Equal(t, next, m.NextInsertRank())

	occ, _ = m.Entry(box(2)).Occupied()
	assert.Equal(t, 20, occ.Remove())
	assert.False(t, m.Has(box(2)))

	occ, _ = m.Entry(box(1)).Occupied()
	k, v := occ.RemoveEntry()
	assert.Same(t, a, k)
	assert.Equal(t, 24, v)
	assert.True(t, m.IsEmpty())
}

func TestEntry_Compositions(t *testing.T) {
	m := New[string, []string](0, String{})
	words := []string{"apple", "avocado", "banana", "blueberry", "cherry"}
	for _, w := range words {
		p := m.Entry(w[:1]).OrInsertWith(func() []string { return nil })
		*p = append(*p, w)
	}
	ks, vs := collect(m)
	assert.Equal(t, []string{"a", "b", "c"}, ks)
	assert.Equal(t, [][]string{{"apple", "avocado"}, {"banana", "blueberry"}, {"cherry"}}, vs)

	counts := New[string, int](0, String{})
	for _, w := range []string{"x", "y", "x", "x"} {
		counts.Entry(w).AndModify(func(v *int) { *v++ }).OrInsert(1)
	}
	x, _ := counts.Get("x")
	y, _ := counts.Get("y")
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)

	p := counts.Entry("zz").OrInsertWithKey(func(k string) int { return len(k) })
	assert.Equal(t, 2, *p)
	assert.Equal(t, "zz", counts.Entry("zz").Key())
	vac, _ := counts.Entry("q").Vacant()
	assert.Equal(t, "q", vac.IntoKey())
	assert.False(t, counts.Has("q"))
}

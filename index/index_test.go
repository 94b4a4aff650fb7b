package index

import (
	"testing"

	"github.com/magiconair/properties/assert"
)

type widget struct {
	id    int
	group int
	note  string
}

func TestHashIndexUniqueOverwrites(t *testing.T) {
	h := NewHashIndex[widget, int](16, true,
		func(w *widget) int { return w.id },
		func(k int) uint32 { return HashFields(uint32(k)) },
		func(a, b int) bool { return a == b },
	)
	a := &widget{id: 1, note: "first"}
	b := &widget{id: 1, note: "second"}
	h.Insert(a)
	h.Insert(b)

	got, ok := h.Get(1)
	assert.Equal(t, ok, true)
	assert.Equal(t, got.note, "second")
	assert.Equal(t, h.Len(), 1)
}

func TestHashIndexNonUniqueSlice(t *testing.T) {
	h := NewHashIndex[widget, int](16, false,
		func(w *widget) int { return w.group },
		func(k int) uint32 { return HashFields(uint32(k)) },
		func(a, b int) bool { return a == b },
	)
	rows := []*widget{
		{id: 1, group: 5}, {id: 2, group: 5}, {id: 3, group: 9},
	}
	for _, r := range rows {
		h.Insert(r)
	}
	var seen []int
	h.Slice(5, func(w *widget) bool {
		seen = append(seen, w.id)
		return true
	})
	assert.Equal(t, len(seen), 2)
}

func TestHashIndexRemove(t *testing.T) {
	h := NewHashIndex[widget, int](16, true,
		func(w *widget) int { return w.id },
		func(k int) uint32 { return HashFields(uint32(k)) },
		func(a, b int) bool { return a == b },
	)
	a := &widget{id: 1}
	h.Insert(a)
	h.Remove(a)
	_, ok := h.Get(1)
	assert.Equal(t, ok, false)
}

type treeKey struct {
	group, id int
}

func treeLess(a, b treeKey) bool {
	if a.group != b.group {
		return a.group < b.group
	}
	return a.id < b.id
}

func TestTreeIndexAscendFindsSmallestInPrefix(t *testing.T) {
	tr := NewTreeIndex[widget, treeKey](
		func(w *widget) treeKey { return treeKey{group: w.group, id: w.id} },
		treeLess,
	)
	for _, w := range []*widget{
		{id: 30, group: 1}, {id: 10, group: 1}, {id: 20, group: 1}, {id: 5, group: 2},
	} {
		tr.Insert(w)
	}
	var first *widget
	tr.AscendMatch(treeKey{group: 1, id: -1 << 30}, func(k treeKey) bool { return k.group == 1 },
		func(w *widget) bool {
			first = w
			return false
		})
	assert.Equal(t, first.id, 10)
}

func TestTreeIndexReplaceOnEqualKeyKeepsLatest(t *testing.T) {
	tr := NewTreeIndex[widget, int](
		func(w *widget) int { return w.group },
		func(a, b int) bool { return a < b },
	)
	tr.Insert(&widget{id: 1, group: 7})
	tr.Insert(&widget{id: 2, group: 7})
	got, ok := tr.Get(7)
	assert.Equal(t, ok, true)
	assert.Equal(t, got.id, 2)
	assert.Equal(t, tr.Len(), 1)
}

func TestDenseKey(t *testing.T) {
	// customer: (c_id up to 3000, c_d_id up to 10, c_w_id up to numWare=2)
	key := DenseKey([]int{1, 1, 1}, []int{3000, 10, 2})
	assert.Equal(t, key, 0)

	key2 := DenseKey([]int{1, 1, 2}, []int{3000, 10, 2})
	assert.Equal(t, key2, 1)
}

func TestArrayIndexDirectAddress(t *testing.T) {
	a := NewArrayIndex[widget](10, func(w *widget) int { return w.id })
	w := &widget{id: 3}
	a.Insert(w)
	got, ok := a.Get(3)
	assert.Equal(t, ok, true)
	assert.Equal(t, got, w)

	a.Remove(w)
	_, ok = a.Get(3)
	assert.Equal(t, ok, false)
}

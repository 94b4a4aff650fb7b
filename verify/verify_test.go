package verify

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"tpcc/configs"
	"tpcc/schema"
	"tpcc/store"
)

func buildEngine(t *testing.T, numWare int32) *store.Engine {
	t.Helper()
	orig := configs.NumWare
	configs.SetNumWare(numWare)
	t.Cleanup(func() { configs.SetNumWare(orig) })
	return store.NewEngine()
}

func TestCompareIdenticalEnginesAllCorrect(t *testing.T) {
	a := buildEngine(t, 1)
	b := buildEngine(t, 1)
	for _, e := range []*store.Engine{a, b} {
		w := schema.NewWarehouse()
		w.WID = 1
		w.Name.Assign("depot")
		e.Warehouse.Add(w)
	}
	results := Compare(a, b)
	for _, r := range results {
		assert.Equal(t, r.Correct, true)
	}
}

func TestCompareDetectsMismatch(t *testing.T) {
	a := buildEngine(t, 1)
	b := buildEngine(t, 1)
	wa := schema.NewWarehouse()
	wa.WID = 1
	wa.Name.Assign("depot-a")
	a.Warehouse.Add(wa)
	wb := schema.NewWarehouse()
	wb.WID = 1
	wb.Name.Assign("depot-b")
	b.Warehouse.Add(wb)

	results := Compare(a, b)
	assert.Equal(t, results[0].Table, "Warehouse")
	assert.Equal(t, results[0].Correct, false)
}

func TestCompareSortsBeforeComparing(t *testing.T) {
	a := buildEngine(t, 2)
	b := buildEngine(t, 2)
	for _, wid := range []int32{2, 1} {
		w := schema.NewWarehouse()
		w.WID = wid
		a.Warehouse.Add(w)
	}
	for _, wid := range []int32{1, 2} {
		w := schema.NewWarehouse()
		w.WID = wid
		b.Warehouse.Add(w)
	}
	results := Compare(a, b)
	assert.Equal(t, results[0].Correct, true)
}

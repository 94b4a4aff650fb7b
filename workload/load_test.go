package workload

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"tpcc/configs"
	"tpcc/store"
)

func TestPopulateFillsBaseTablesInRange(t *testing.T) {
	orig := configs.NumWare
	configs.SetNumWare(1)
	t.Cleanup(func() { configs.SetNumWare(orig) })

	e := store.NewEngine()
	Populate(e, 99)

	_, ok := e.Warehouse.Get(1)
	assert.Equal(t, ok, true)
	_, ok = e.District.Get(1, 5)
	assert.Equal(t, ok, true)
	_, ok = e.Customer.Get(1500, 5, 1)
	assert.Equal(t, ok, true)
	_, ok = e.Item.Get(int32(configs.ItemTblSize()))
	assert.Equal(t, ok, true)
	_, ok = e.Stock.Get(1, 1)
	assert.Equal(t, ok, true)
}

func TestPopulateThenDispatchGeneratedProgramsSucceeds(t *testing.T) {
	orig := configs.NumWare
	configs.SetNumWare(2)
	t.Cleanup(func() { configs.SetNumWare(orig) })

	e := store.NewEngine()
	Populate(e, 5)
	d := NewDispatcher(e)
	ran := d.Run(NewGenerator(5, 100))
	assert.Equal(t, ran, 100)
}

package workload

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"tpcc/configs"
	"tpcc/schema"
	"tpcc/store"
)

func seedMinimalEngine(t *testing.T, numWare int32) *store.Engine {
	t.Helper()
	orig := configs.NumWare
	configs.SetNumWare(numWare)
	t.Cleanup(func() { configs.SetNumWare(orig) })

	e := store.NewEngine()
	for w := int32(1); w <= numWare; w++ {
		wh := schema.NewWarehouse()
		wh.WID = w
		e.Warehouse.Add(wh)
		for d := int32(1); d <= 10; d++ {
			dist := schema.NewDistrict()
			dist.WID, dist.DID = w, d
			dist.NextOID = 3001
			e.District.Add(dist)
			for c := int32(1); c <= 3000; c++ {
				cust := schema.NewCustomer()
				cust.CID, cust.DID, cust.WID = c, d, w
				cust.Last.Assign("BARBARBAR")
				cust.Credit.Assign("GC")
				e.Customer.Add(cust)
			}
		}
	}
	for i := int32(1); i <= 100; i++ {
		it := schema.NewItem()
		it.IID = i
		it.Price = 5
		it.Data.Assign("plain")
		e.Item.Add(it)
		for w := int32(1); w <= numWare; w++ {
			st := schema.NewStock()
			st.IID, st.WID = i, w
			st.Quantity = 50
			st.Data.Assign("plain")
			e.Stock.Add(st)
		}
	}
	return e
}

func TestSliceSourceDrains(t *testing.T) {
	src := NewSliceSource([]Program{{Tag: TagStockLevel}, {Tag: TagDelivery}})
	assert.Equal(t, src.Len(), 2)
	_, ok := src.Next()
	assert.Equal(t, ok, true)
	assert.Equal(t, src.Len(), 1)
	_, ok = src.Next()
	assert.Equal(t, ok, true)
	_, ok = src.Next()
	assert.Equal(t, ok, false)
}

func TestGeneratorProducesExactCount(t *testing.T) {
	orig := configs.NumWare
	configs.SetNumWare(1)
	t.Cleanup(func() { configs.SetNumWare(orig) })

	g := NewGenerator(7, 50)
	n := 0
	for {
		_, ok := g.Next()
		if !ok {
			break
		}
		n++
	}
	assert.Equal(t, n, 50)
}

func TestDispatcherRunsGeneratedProgramsAgainstEngine(t *testing.T) {
	e := seedMinimalEngine(t, 1)
	configs.SetNumWare(1)

	g := NewGenerator(42, 200)
	d := NewDispatcher(e)
	ran := d.Run(g)
	assert.Equal(t, ran, 200)
}

func TestDispatcherDispatchesSliceSourceByTag(t *testing.T) {
	e := seedMinimalEngine(t, 1)
	d := NewDispatcher(e)

	var args NewOrderArgs
	args.WID, args.DID, args.CID = 1, 1, 1
	args.OLCnt = 1
	args.AllLocal = 1
	args.IID[0] = 1
	args.SupplyWID[0] = 1
	args.Quantity[0] = 3

	src := NewSliceSource([]Program{{Tag: TagNewOrder, NewOrder: args}})
	ran := d.Run(src)
	assert.Equal(t, ran, 1)

	district, _ := e.District.Get(1, 1)
	assert.Equal(t, district.NextOID, int32(3002))
}

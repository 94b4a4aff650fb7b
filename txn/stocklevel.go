package txn

import (
	mapset "github.com/deckarep/golang-set/v2"

	"tpcc/configs"
	"tpcc/schema"
	"tpcc/store"
)

// StockLevelInput asks how many distinct items among the last 20 orders of
// (w_id, d_id) are low on stock.
type StockLevelInput struct {
	WID, DID  int32
	Threshold int32
}

// StockLevelTx executes the StockLevel transaction: count the distinct
// items, across the last 20 orders placed in the district, whose remaining
// stock quantity is below Threshold.
func StockLevelTx(e *store.Engine, in StockLevelInput) int {
	district, ok := e.District.Get(in.WID, in.DID)
	configs.Assert(ok, "StockLevel: district not found")

	lower := district.NextOID - 20
	if lower < 1 {
		lower = 1
	}
	low := mapset.NewThreadUnsafeSet[int32]()
	for oid := lower; oid < district.NextOID; oid++ {
		e.OrderLine.SliceByOrder(oid, in.DID, in.WID, func(l *schema.OrderLine) bool {
			stock, found := e.Stock.Get(l.IID, in.WID)
			if found && stock.Quantity < in.Threshold {
				low.Add(l.IID)
			}
			return true
		})
	}
	configs.DPrintf("StockLevel: %d/%d has %d low-stock items below threshold %d", in.WID, in.DID, low.Cardinality(), in.Threshold)
	return low.Cardinality()
}

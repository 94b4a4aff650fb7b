package workload

import (
	"github.com/jinzhu/copier"

	"tpcc/configs"
	"tpcc/store"
	"tpcc/txn"
)

// Dispatcher pulls Programs off a Source and runs them against an Engine,
// following the ancestor's TPCStmt.TPCClient dispatch loop in shape — a
// switch over a tag calling the matching Handle*-equivalent — but
// synchronous, single-threaded, and with no coordinator/participant
// round-trip in between.
type Dispatcher struct {
	Engine *store.Engine
}

// NewDispatcher returns a Dispatcher bound to e.
func NewDispatcher(e *store.Engine) *Dispatcher {
	return &Dispatcher{Engine: e}
}

// Run drains src, dispatching every Program to its matching txn function.
// Each Program is deep-copied before execution, mirroring the ancestor's
// per-iteration copier.CopyWithOption(&tmp, stmt.GetOrder(), ...), so a
// Source backed by mutable shared storage (a round-robin buffer, a reused
// decode target) can safely be handed to more than one Dispatcher.
func (d *Dispatcher) Run(src Source) int {
	count := 0
	for {
		p, ok := src.Next()
		if !ok {
			return count
		}
		var clone Program
		configs.CheckError(copier.CopyWithOption(&clone, &p, copier.Option{DeepCopy: true}))
		d.dispatch(clone)
		count++
	}
}

func (d *Dispatcher) dispatch(p Program) {
	switch p.Tag {
	case TagNewOrder:
		a := p.NewOrder
		n := int(a.OLCnt)
		txn.NewOrderTx(d.Engine, txn.NewOrderInput{
			WID: a.WID, DID: a.DID, CID: a.CID, EntryD: a.EntryD, OLCnt: a.OLCnt, AllLocal: a.AllLocal,
			IID: a.IID[:n], SupplyWID: a.SupplyWID[:n], Quantity: a.Quantity[:n],
		})
	case TagPayment:
		a := p.Payment
		txn.PaymentTx(d.Engine, txn.PaymentInput{
			WID: a.WID, DID: a.DID, CWID: a.CWID, CDID: a.CDID, ByName: a.ByName,
			CID: a.CID, CLast: a.CLast, Amount: a.Amount, Date: a.Date,
		})
	case TagOrderStatus:
		a := p.OrderStatus
		txn.OrderStatusTx(d.Engine, txn.OrderStatusInput{
			WID: a.WID, DID: a.DID, ByName: a.ByName, CID: a.CID, CLast: a.CLast,
		})
	case TagDelivery:
		a := p.Delivery
		txn.DeliveryTx(d.Engine, txn.DeliveryInput{WID: a.WID, CarrierID: a.CarrierID, Date: a.Date})
	case TagStockLevel:
		a := p.StockLevel
		txn.StockLevelTx(d.Engine, txn.StockLevelInput{WID: a.WID, DID: a.DID, Threshold: a.Threshold})
	default:
		configs.Assert(false, "dispatcher: unknown program tag")
	}
}

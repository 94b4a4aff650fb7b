package txn

import (
	"tpcc/configs"
	"tpcc/schema"
	"tpcc/store"
)

// DeliveryInput names the warehouse-wide batch delivery carrier and date.
type DeliveryInput struct {
	WID       int32
	CarrierID int32
	Date      int64
}

// DeliveryResult reports, per district, which order (if any) was delivered.
type DeliveryResult struct {
	DID     int32
	OID     int32
	Skipped bool
}

// DeliveryTx executes the Delivery transaction: for every district in the
// warehouse, it delivers the single oldest pending order, if one exists.
// A district with no pending new_order is skipped rather than aborting the
// whole batch, per the reference's per-district independence.
func DeliveryTx(e *store.Engine, in DeliveryInput) []DeliveryResult {
	results := make([]DeliveryResult, 0, 10)
	for did := int32(1); did <= 10; did++ {
		entry, found := e.NewOrder.SmallestPending(did, in.WID)
		if !found {
			results = append(results, DeliveryResult{DID: did, Skipped: true})
			configs.DPrintf("Delivery: district %d/%d has no pending order", in.WID, did)
			continue
		}

		order, ok := e.Order.Get(entry.OID, entry.DID, entry.WID)
		configs.Assert(ok, "Delivery: new_order references a missing order")
		order.CarrierID = in.CarrierID

		var total float64
		e.OrderLine.SliceByOrder(order.OID, order.DID, order.WID, func(l *schema.OrderLine) bool {
			l.DeliveryD = in.Date
			total += l.Amount
			return true
		})

		customer, ok := e.Customer.Get(order.CID, order.DID, order.WID)
		configs.Assert(ok, "Delivery: order references a missing customer")
		customer.Balance += total
		customer.DeliveryCnt++

		e.NewOrder.Delete(entry)
		results = append(results, DeliveryResult{DID: did, OID: order.OID})
	}
	return results
}

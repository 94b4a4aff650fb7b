package txn

import (
	"tpcc/configs"
	"tpcc/schema"
	"tpcc/store"
)

// OrderStatusInput resolves a customer either by c_id or by c_last, as in Payment.
type OrderStatusInput struct {
	WID, DID int32
	ByName   bool
	CID      int32
	CLast    string
}

// OrderStatusOutput reports the resolved customer, their most recent order
// and that order's lines.
type OrderStatusOutput struct {
	Customer *schema.Customer
	Order    *schema.Order
	Found    bool
	Lines    []*schema.OrderLine
}

// OrderStatusTx executes the OrderStatus transaction: resolve a customer,
// find the most recent order they placed in this district, and collect that
// order's lines.
func OrderStatusTx(e *store.Engine, in OrderStatusInput) OrderStatusOutput {
	customer, ok := selectCustomer(e, in.DID, in.WID, in.ByName, in.CID, in.CLast)
	configs.Assert(ok, "OrderStatus: customer not found")

	order, found := e.Order.MostRecentForCustomer(in.DID, in.WID, customer.CID)
	out := OrderStatusOutput{Customer: customer, Order: order, Found: found}
	if !found {
		configs.DPrintf("OrderStatus: customer %d/%d/%d has placed no orders", in.WID, in.DID, customer.CID)
		return out
	}

	e.OrderLine.SliceByOrder(order.OID, order.DID, order.WID, func(l *schema.OrderLine) bool {
		out.Lines = append(out.Lines, l)
		return true
	})
	return out
}

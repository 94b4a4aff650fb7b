package txn

import (
	"sort"

	"tpcc/configs"
	"tpcc/schema"
	"tpcc/store"
)

// PaymentInput carries either a c_id or a c_last, per ByName.
type PaymentInput struct {
	WID, DID   int32
	CWID, CDID int32
	ByName     bool
	CID        int32
	CLast      string
	Amount     float64
	Date       int64
}

// PaymentOutput returns the rows Payment touches, for callers that want to
// report or verify against them without a second lookup.
type PaymentOutput struct {
	Warehouse *schema.Warehouse
	District  *schema.District
	Customer  *schema.Customer
}

// PaymentTx executes the Payment transaction: it posts Amount against the
// named warehouse, district and customer, and appends a history row.
func PaymentTx(e *store.Engine, in PaymentInput) PaymentOutput {
	warehouse, ok := e.Warehouse.Get(in.WID)
	configs.Assert(ok, "Payment: warehouse not found")
	district, ok := e.District.Get(in.WID, in.DID)
	configs.Assert(ok, "Payment: district not found")

	customer, ok := selectCustomer(e, in.CDID, in.CWID, in.ByName, in.CID, in.CLast)
	configs.Assert(ok, "Payment: customer not found")

	warehouse.YTD += in.Amount
	district.YTD += in.Amount
	customer.Balance += in.Amount
	customer.YTDPayment += in.Amount
	// c_payment_cnt is carried only as a sentinel-width field (PaymentCnt);
	// DeliveryCnt is the one counter this engine actually maintains, and
	// Delivery is the transaction that increments it.

	if customer.Credit.String() == "BC" {
		note := customer.Data.String()
		prefix := itoa(customer.CID) + " " + itoa(customer.DID) + " " + itoa(customer.WID) + " " +
			itoa(in.DID) + " " + itoa(in.WID) + " $" + ftoa(in.Amount) + " " + dateToken(in.Date) + " | "
		customer.Data.Assign(prefix + note)
	}

	history := schema.NewHistory()
	history.CID, history.CDID, history.CWID = customer.CID, customer.DID, customer.WID
	history.DID, history.WID = in.DID, in.WID
	history.Date = in.Date
	history.Amount = in.Amount
	history.Data.Assign(warehouse.Name.String() + "    " + district.Name.String())
	e.History.Add(history)

	configs.DPrintf("Payment committed: customer %d/%d/%d paid %.2f", customer.WID, customer.DID, customer.CID, in.Amount)
	return PaymentOutput{Warehouse: warehouse, District: district, Customer: customer}
}

// selectCustomer resolves a customer either directly by (c_id, d_id, w_id)
// or, when byName, by taking the customer whose c_first sorts at the
// midpoint (rounding down) among every customer sharing (d_id, w_id,
// c_last), the reference's tie-break rule for an ambiguous c_last.
func selectCustomer(e *store.Engine, did, wid int32, byName bool, cid int32, last string) (*schema.Customer, bool) {
	if !byName {
		return e.Customer.Get(cid, did, wid)
	}
	var matches []*schema.Customer
	e.Customer.SliceByLastName(did, wid, last, func(c *schema.Customer) bool {
		matches = append(matches, c)
		return true
	})
	if len(matches) == 0 {
		return nil, false
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].First.CompareFold(matches[j].First) < 0
	})
	idx := len(matches) / 2
	if len(matches)%2 == 0 {
		idx--
	}
	return matches[idx], true
}

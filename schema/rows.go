package schema

import "tpcc/pstring"

// Field widths, matching the reference implementation's fixed-capacity
// string columns.
const (
	nameWidth     = 10
	streetWidth   = 20
	cityWidth     = 20
	stateWidth    = 2
	zipWidth      = 9
	phoneWidth    = 16
	creditWidth   = 2
	custDataWidth = 500
	itemNameWidth = 24
	itemDataWidth = 50
	distInfoWidth = 24
	histDataWidth = 24
	firstWidth    = 16
	middleWidth   = 2
	lastWidth     = 16
)

// Warehouse is the w_* row.
type Warehouse struct {
	WID                                        int32
	Name, Street1, Street2, City, State, Zip   pstring.String
	Tax, YTD                                   float64
}

// NewWarehouse returns a Warehouse with every field at its sentinel default.
func NewWarehouse() Warehouse {
	return Warehouse{
		WID: IntSentinel,
		Name: pstring.New(nameWidth), Street1: pstring.New(streetWidth), Street2: pstring.New(streetWidth),
		City: pstring.New(cityWidth), State: pstring.New(stateWidth), Zip: pstring.New(zipWidth),
		Tax: FloatSentinel, YTD: FloatSentinel,
	}
}

// Equal compares two Warehouse rows using the schema's tolerance rules.
func (w Warehouse) Equal(o Warehouse) bool {
	return w.WID == o.WID &&
		w.Name.Equal(o.Name) && w.Street1.Equal(o.Street1) && w.Street2.Equal(o.Street2) &&
		w.City.Equal(o.City) && w.State.Equal(o.State) && w.Zip.Equal(o.Zip) &&
		FloatEqual(w.Tax, o.Tax) && FloatEqual(w.YTD, o.YTD)
}

// District is the d_* row.
type District struct {
	DID, WID                                  int32
	Name, Street1, Street2, City, State, Zip  pstring.String
	Tax, YTD                                  float64
	NextOID                                   int32
}

// NewDistrict returns a District with every field at its sentinel default.
func NewDistrict() District {
	return District{
		DID: IntSentinel, WID: IntSentinel,
		Name: pstring.New(nameWidth), Street1: pstring.New(streetWidth), Street2: pstring.New(streetWidth),
		City: pstring.New(cityWidth), State: pstring.New(stateWidth), Zip: pstring.New(zipWidth),
		Tax: FloatSentinel, YTD: FloatSentinel, NextOID: IntSentinel,
	}
}

// Equal compares two District rows using the schema's tolerance rules.
func (d District) Equal(o District) bool {
	return d.DID == o.DID && d.WID == o.WID &&
		d.Name.Equal(o.Name) && d.Street1.Equal(o.Street1) && d.Street2.Equal(o.Street2) &&
		d.City.Equal(o.City) && d.State.Equal(o.State) && d.Zip.Equal(o.Zip) &&
		FloatEqual(d.Tax, o.Tax) && FloatEqual(d.YTD, o.YTD) && d.NextOID == o.NextOID
}

// Customer is the c_* row (21 fields in the reference schema).
type Customer struct {
	CID, DID, WID                                       int32
	First, Middle, Last                                 pstring.String
	Street1, Street2, City, State, Zip, Phone            pstring.String
	Since                                                int64
	Credit                                               pstring.String
	CreditLim, Discount, Balance, YTDPayment             float64
	PaymentCnt                                           int32 // unused by any implemented transaction, held for schema-width fidelity
	DeliveryCnt                                          int32 // incremented by Delivery
	Data                                                 pstring.String
}

// NewCustomer returns a Customer with every field at its sentinel default.
func NewCustomer() Customer {
	return Customer{
		CID: IntSentinel, DID: IntSentinel, WID: IntSentinel,
		First: pstring.New(firstWidth), Middle: pstring.New(middleWidth), Last: pstring.New(lastWidth),
		Street1: pstring.New(streetWidth), Street2: pstring.New(streetWidth), City: pstring.New(cityWidth),
		State: pstring.New(stateWidth), Zip: pstring.New(zipWidth), Phone: pstring.New(phoneWidth),
		Since: DateSentinel, Credit: pstring.New(creditWidth),
		CreditLim: FloatSentinel, Discount: FloatSentinel, Balance: FloatSentinel, YTDPayment: FloatSentinel,
		PaymentCnt: IntSentinel, DeliveryCnt: IntSentinel,
		Data: pstring.New(custDataWidth),
	}
}

// Equal compares two Customer rows using the schema's tolerance rules.
func (c Customer) Equal(o Customer) bool {
	return c.CID == o.CID && c.DID == o.DID && c.WID == o.WID &&
		c.First.Equal(o.First) && c.Middle.Equal(o.Middle) && c.Last.Equal(o.Last) &&
		c.Street1.Equal(o.Street1) && c.Street2.Equal(o.Street2) && c.City.Equal(o.City) &&
		c.State.Equal(o.State) && c.Zip.Equal(o.Zip) && c.Phone.Equal(o.Phone) &&
		c.Since == o.Since && c.Credit.Equal(o.Credit) &&
		FloatEqual(c.CreditLim, o.CreditLim) && FloatEqual(c.Discount, o.Discount) &&
		FloatEqual(c.Balance, o.Balance) && FloatEqual(c.YTDPayment, o.YTDPayment) &&
		c.PaymentCnt == o.PaymentCnt && c.DeliveryCnt == o.DeliveryCnt && c.Data.Equal(o.Data)
}

// Item is the i_* row.
type Item struct {
	IID, IMID int32
	Name      pstring.String
	Price     float64
	Data      pstring.String
}

// NewItem returns an Item with every field at its sentinel default.
func NewItem() Item {
	return Item{
		IID: IntSentinel, IMID: IntSentinel,
		Name: pstring.New(itemNameWidth), Price: FloatSentinel, Data: pstring.New(itemDataWidth),
	}
}

// Equal compares two Item rows using the schema's tolerance rules.
func (i Item) Equal(o Item) bool {
	return i.IID == o.IID && i.IMID == o.IMID && i.Name.Equal(o.Name) &&
		FloatEqual(i.Price, o.Price) && i.Data.Equal(o.Data)
}

// Stock is the s_* row (17 fields, including ten per-district dist strings).
type Stock struct {
	IID, WID             int32
	Quantity             int32
	Dist                 [10]pstring.String
	YTD, OrderCnt, RemoteCnt int32
	Data                 pstring.String
}

// NewStock returns a Stock with every field at its sentinel default.
func NewStock() Stock {
	s := Stock{
		IID: IntSentinel, WID: IntSentinel, Quantity: IntSentinel,
		YTD: IntSentinel, OrderCnt: IntSentinel, RemoteCnt: IntSentinel,
		Data: pstring.New(itemDataWidth),
	}
	for i := range s.Dist {
		s.Dist[i] = pstring.New(distInfoWidth)
	}
	return s
}

// DistInfo returns the dist_<d> field for district d (1-based, 1..10:
// dist_01..dist_10); any d outside that range selects dist_10.
func (s *Stock) DistInfo(d int32) *pstring.String {
	idx := d - 1
	if idx < 0 || idx > 9 {
		idx = 9
	}
	return &s.Dist[idx]
}

// Equal compares two Stock rows using the schema's tolerance rules.
func (s Stock) Equal(o Stock) bool {
	if s.IID != o.IID || s.WID != o.WID || s.Quantity != o.Quantity {
		return false
	}
	for i := range s.Dist {
		if !s.Dist[i].Equal(o.Dist[i]) {
			return false
		}
	}
	return s.YTD == o.YTD && s.OrderCnt == o.OrderCnt && s.RemoteCnt == o.RemoteCnt && s.Data.Equal(o.Data)
}

// Order is the o_* row.
type Order struct {
	OID, DID, WID, CID int32
	EntryD             int64
	CarrierID          int32
	OLCnt              int32
	AllLocal           bool
}

// NewOrderRow returns an Order row with every field at its sentinel default.
func NewOrderRow() Order {
	return Order{
		OID: IntSentinel, DID: IntSentinel, WID: IntSentinel, CID: IntSentinel,
		EntryD: DateSentinel, CarrierID: IntSentinel, OLCnt: IntSentinel, AllLocal: false,
	}
}

// Equal compares two Order rows using the schema's tolerance rules.
func (r Order) Equal(o Order) bool {
	return r.OID == o.OID && r.DID == o.DID && r.WID == o.WID && r.CID == o.CID &&
		r.EntryD == o.EntryD && r.CarrierID == o.CarrierID && r.OLCnt == o.OLCnt && r.AllLocal == o.AllLocal
}

// NewOrderEntry is the no_* row: just the pending-delivery key.
type NewOrderEntry struct {
	OID, DID, WID int32
}

// NewNewOrderEntry returns a NewOrderEntry with every field at its
// sentinel default.
func NewNewOrderEntry() NewOrderEntry {
	return NewOrderEntry{OID: IntSentinel, DID: IntSentinel, WID: IntSentinel}
}

// Equal compares two NewOrderEntry rows.
func (n NewOrderEntry) Equal(o NewOrderEntry) bool {
	return n.OID == o.OID && n.DID == o.DID && n.WID == o.WID
}

// OrderLine is the ol_* row.
type OrderLine struct {
	OID, DID, WID, Number int32
	IID, SupplyWID        int32
	DeliveryD             int64
	Quantity              int32
	Amount                float64
	DistInfo              pstring.String
}

// NewOrderLine returns an OrderLine with every field at its sentinel default.
func NewOrderLine() OrderLine {
	return OrderLine{
		OID: IntSentinel, DID: IntSentinel, WID: IntSentinel, Number: IntSentinel,
		IID: IntSentinel, SupplyWID: IntSentinel,
		DeliveryD: DateSentinel, Quantity: IntSentinel, Amount: FloatSentinel,
		DistInfo: pstring.New(distInfoWidth),
	}
}

// Equal compares two OrderLine rows using the schema's tolerance rules.
func (l OrderLine) Equal(o OrderLine) bool {
	return l.OID == o.OID && l.DID == o.DID && l.WID == o.WID && l.Number == o.Number &&
		l.IID == o.IID && l.SupplyWID == o.SupplyWID && l.DeliveryD == o.DeliveryD &&
		l.Quantity == o.Quantity && FloatEqual(l.Amount, o.Amount) && l.DistInfo.Equal(o.DistInfo)
}

// History is the h_* row. Append-only: never looked up by key, only
// iterated at verification time, so it carries no sentinel-equals-anything
// comparator quirk: Equal compares every field.
type History struct {
	CID, CDID, CWID, DID, WID int32
	Date                      int64
	Amount                    float64
	Data                      pstring.String
}

// NewHistory returns a History row with every field at its sentinel default.
func NewHistory() History {
	return History{
		CID: IntSentinel, CDID: IntSentinel, CWID: IntSentinel, DID: IntSentinel, WID: IntSentinel,
		Date: DateSentinel, Amount: FloatSentinel, Data: pstring.New(histDataWidth),
	}
}

// Equal compares two History rows using the schema's tolerance rules.
func (h History) Equal(o History) bool {
	return h.CID == o.CID && h.CDID == o.CDID && h.CWID == o.CWID && h.DID == o.DID && h.WID == o.WID &&
		h.Date == o.Date && FloatEqual(h.Amount, o.Amount) && h.Data.Equal(o.Data)
}

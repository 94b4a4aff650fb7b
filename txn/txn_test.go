package txn

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"tpcc/configs"
	"tpcc/schema"
	"tpcc/store"
)

// seedEngine builds a one-warehouse engine with district 1, customer 1,
// two items (one "original", one not) and matching stock, ready for the
// five transactions to run against.
func seedEngine(t *testing.T) *store.Engine {
	t.Helper()
	orig := configs.NumWare
	configs.SetNumWare(1)
	t.Cleanup(func() { configs.SetNumWare(orig) })

	e := store.NewEngine()

	w := schema.NewWarehouse()
	w.WID = 1
	w.Tax = 0.1
	w.YTD = 0
	e.Warehouse.Add(w)

	d := schema.NewDistrict()
	d.WID, d.DID = 1, 1
	d.Tax = 0.05
	d.YTD = 0
	d.NextOID = 3001
	e.District.Add(d)

	c := schema.NewCustomer()
	c.CID, c.DID, c.WID = 1, 1, 1
	c.Last.Assign("BARBARBAR")
	c.First.Assign("Mike")
	c.Credit.Assign("GC")
	c.Discount = 0.02
	c.Balance = 0
	c.DeliveryCnt = 0
	c.CreditLim = 50000
	e.Customer.Add(c)

	it1 := schema.NewItem()
	it1.IID = 1
	it1.Price = 10
	it1.Name.Assign("widget")
	it1.Data.Assign("plain item data")
	e.Item.Add(it1)

	it2 := schema.NewItem()
	it2.IID = 2
	it2.Price = 20
	it2.Name.Assign("gadget")
	it2.Data.Assign("original manufacturer data")
	e.Item.Add(it2)

	for iid := int32(1); iid <= 2; iid++ {
		s := schema.NewStock()
		s.IID, s.WID = iid, 1
		s.Quantity = 50
		if iid == 2 {
			s.Data.Assign("original stock data")
		} else {
			s.Data.Assign("ordinary stock data")
		}
		e.Stock.Add(s)
	}
	return e
}

func TestNewOrderCommitsOrderAndDecrementsStock(t *testing.T) {
	e := seedEngine(t)
	out := NewOrderTx(e, NewOrderInput{
		WID: 1, DID: 1, CID: 1, EntryD: 100, OLCnt: 2, AllLocal: 1,
		IID: []int32{1, 2}, SupplyWID: []int32{1, 1}, Quantity: []int32{5, 5},
	})
	assert.Equal(t, out.OK, true)
	assert.Equal(t, out.OID, int32(3001))
	assert.Equal(t, out.BrandGrade[0], "G")
	assert.Equal(t, out.BrandGrade[1], "B")

	stock, _ := e.Stock.Get(1, 1)
	assert.Equal(t, stock.Quantity, int32(45))

	district, _ := e.District.Get(1, 1)
	assert.Equal(t, district.NextOID, int32(3002))

	lineCount := 0
	e.OrderLine.SliceByOrder(3001, 1, 1, func(*schema.OrderLine) bool { lineCount++; return true })
	assert.Equal(t, lineCount, 2)
}

func TestNewOrderReplenishesOnInsufficientStock(t *testing.T) {
	e := seedEngine(t)
	NewOrderTx(e, NewOrderInput{
		WID: 1, DID: 1, CID: 1, EntryD: 100, OLCnt: 1, AllLocal: 1,
		IID: []int32{1}, SupplyWID: []int32{1}, Quantity: []int32{50},
	})
	stock, _ := e.Stock.Get(1, 1)
	assert.Equal(t, stock.Quantity, int32(91))
}

func TestNewOrderAbortsOnMissingItem(t *testing.T) {
	e := seedEngine(t)
	out := NewOrderTx(e, NewOrderInput{
		WID: 1, DID: 1, CID: 1, EntryD: 100, OLCnt: 2, AllLocal: 1,
		IID: []int32{1, 999}, SupplyWID: []int32{1, 1}, Quantity: []int32{1, 1},
	})
	assert.Equal(t, out.OK, false)

	district, _ := e.District.Get(1, 1)
	assert.Equal(t, district.NextOID, int32(3001))
}

func TestPaymentUpdatesBalancesAndHistory(t *testing.T) {
	e := seedEngine(t)
	out := PaymentTx(e, PaymentInput{WID: 1, DID: 1, CWID: 1, CDID: 1, CID: 1, Amount: 150, Date: 42})
	assert.Equal(t, out.Customer.Balance, 150.0)
	assert.Equal(t, out.Warehouse.YTD, 150.0)
	assert.Equal(t, out.District.YTD, 150.0)
	assert.Equal(t, e.History.Rows()[0].Amount, 150.0)
}

func TestPaymentByNamePicksMedianFirst(t *testing.T) {
	e := seedEngine(t)
	for i, first := range []string{"Zack", "Amy"} {
		c := schema.NewCustomer()
		c.CID, c.DID, c.WID = int32(i+2), 1, 1
		c.Last.Assign("BARBARBAR")
		c.First.Assign(first)
		e.Customer.Add(c)
	}
	// three customers share the last name: Amy(3), Mike(1), Zack(2) sorted by first.
	out := PaymentTx(e, PaymentInput{WID: 1, DID: 1, CWID: 1, CDID: 1, ByName: true, CLast: "BARBARBAR", Amount: 10, Date: 1})
	assert.Equal(t, out.Customer.CID, int32(1))
}

func TestPaymentBCCreditComposesCData(t *testing.T) {
	e := seedEngine(t)
	customer, _ := e.Customer.Get(1, 1, 1)
	customer.Credit.Assign("BC")
	customer.Data.Assign("old note")

	PaymentTx(e, PaymentInput{WID: 1, DID: 1, CWID: 1, CDID: 1, CID: 1, Amount: 10, Date: 1})

	got := customer.Data.String()
	want := "1 1 1 1 1 $10.000000 1 | old note"
	assert.Equal(t, got, want)
}

func TestOrderStatusFindsMostRecentOrderAndLines(t *testing.T) {
	e := seedEngine(t)
	NewOrderTx(e, NewOrderInput{
		WID: 1, DID: 1, CID: 1, EntryD: 1, OLCnt: 1, AllLocal: 1,
		IID: []int32{1}, SupplyWID: []int32{1}, Quantity: []int32{1},
	})
	NewOrderTx(e, NewOrderInput{
		WID: 1, DID: 1, CID: 1, EntryD: 2, OLCnt: 2, AllLocal: 1,
		IID: []int32{1, 2}, SupplyWID: []int32{1, 1}, Quantity: []int32{1, 1},
	})
	out := OrderStatusTx(e, OrderStatusInput{WID: 1, DID: 1, CID: 1})
	assert.Equal(t, out.Found, true)
	assert.Equal(t, out.Order.OID, int32(3002))
	assert.Equal(t, len(out.Lines), 2)
}

func TestDeliverySkipsDistrictsWithNoPendingOrders(t *testing.T) {
	e := seedEngine(t)
	results := DeliveryTx(e, DeliveryInput{WID: 1, CarrierID: 5, Date: 7})
	assert.Equal(t, len(results), 10)
	assert.Equal(t, results[0].DID, int32(1))
	assert.Equal(t, results[0].Skipped, true)
}

func TestDeliveryDeliversPendingOrderAndCreditsCustomer(t *testing.T) {
	e := seedEngine(t)
	NewOrderTx(e, NewOrderInput{
		WID: 1, DID: 1, CID: 1, EntryD: 1, OLCnt: 1, AllLocal: 1,
		IID: []int32{1}, SupplyWID: []int32{1}, Quantity: []int32{1},
	})
	before, _ := e.Customer.Get(1, 1, 1)
	beforeBalance := before.Balance

	results := DeliveryTx(e, DeliveryInput{WID: 1, CarrierID: 5, Date: 7})
	assert.Equal(t, results[0].Skipped, false)
	assert.Equal(t, results[0].OID, int32(3001))

	order, _ := e.Order.Get(3001, 1, 1)
	assert.Equal(t, order.CarrierID, int32(5))

	after, _ := e.Customer.Get(1, 1, 1)
	if !(after.Balance > beforeBalance) {
		t.Fatalf("expected customer balance to increase, got %v -> %v", beforeBalance, after.Balance)
	}
	assert.Equal(t, after.DeliveryCnt, int32(1))

	_, stillPending := e.NewOrder.SmallestPending(1, 1)
	assert.Equal(t, stillPending, false)
}

func TestStockLevelCountsDistinctLowStockItems(t *testing.T) {
	e := seedEngine(t)
	NewOrderTx(e, NewOrderInput{
		WID: 1, DID: 1, CID: 1, EntryD: 1, OLCnt: 2, AllLocal: 1,
		IID: []int32{1, 2}, SupplyWID: []int32{1, 1}, Quantity: []int32{45, 45},
	})
	count := StockLevelTx(e, StockLevelInput{WID: 1, DID: 1, Threshold: 10})
	assert.Equal(t, count, 2)
}

package workload

import (
	"math/rand"

	"tpcc/configs"
)

// Generator produces a deterministic pseudo-random sequence of Programs,
// mixed in the standard TPC-C proportions (45% NewOrder, 43% Payment, 4%
// each of OrderStatus/Delivery/StockLevel), grounded on the ancestor's
// TPCClient loop shape: a burst of NewOrder/Payment calls interleaved with
// an occasional OrderStatus, followed by a Delivery+StockLevel pair, here
// flattened into a single weighted draw per Program instead of a fixed
// 20-iteration inner loop, since this engine has no coordinator round-trips
// to amortize.
type Generator struct {
	rng       *rand.Rand
	remaining int32
	numWare   int32
	numItems  int32
}

// NewGenerator returns a Generator that will yield count Programs, seeded
// for reproducibility.
func NewGenerator(seed int64, count int32) *Generator {
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		remaining: count,
		numWare:   configs.NumWare,
		numItems:  int32(configs.ItemTblSize()),
	}
}

// Next draws the next Program from the mix, or false once count Programs
// have been produced.
func (g *Generator) Next() (Program, bool) {
	if g.remaining <= 0 {
		return Program{}, false
	}
	g.remaining--

	wid := g.randWare()
	did := int32(g.rng.Intn(10)) + 1

	switch roll := g.rng.Intn(100); {
	case roll < 45:
		return g.newOrder(wid, did), true
	case roll < 88:
		return g.payment(wid, did), true
	case roll < 92:
		return g.orderStatus(wid, did), true
	case roll < 96:
		return g.delivery(wid), true
	default:
		return g.stockLevel(wid, did), true
	}
}

func (g *Generator) randWare() int32 {
	return int32(g.rng.Intn(int(g.numWare))) + 1
}

func (g *Generator) randCustomer() int32 {
	return int32(g.rng.Intn(3000)) + 1
}

func (g *Generator) randItem() int32 {
	return int32(g.rng.Intn(int(g.numItems))) + 1
}

func (g *Generator) newOrder(wid, did int32) Program {
	n := g.rng.Intn(11) + 5 // 5..15 lines, the TPC-C bound
	var args NewOrderArgs
	args.WID, args.DID, args.CID = wid, did, g.randCustomer()
	args.EntryD = int64(g.rng.Intn(1_000_000))
	args.OLCnt = int32(n)
	args.AllLocal = 1
	for i := 0; i < n; i++ {
		supply := wid
		if g.numWare > 1 && g.rng.Intn(100) == 0 {
			supply = int32(g.rng.Intn(int(g.numWare))) + 1
			if supply != wid {
				args.AllLocal = 0
			}
		}
		args.IID[i] = g.randItem()
		args.SupplyWID[i] = supply
		args.Quantity[i] = int32(g.rng.Intn(10)) + 1
	}
	return Program{Tag: TagNewOrder, NewOrder: args}
}

func (g *Generator) payment(wid, did int32) Program {
	byName := g.rng.Intn(2) == 0
	args := PaymentArgs{WID: wid, DID: did, CWID: wid, CDID: did, ByName: byName, Amount: float64(g.rng.Intn(500000)) / 100}
	if byName {
		args.CLast = "BARBARBAR"
	} else {
		args.CID = g.randCustomer()
	}
	return Program{Tag: TagPayment, Payment: args}
}

func (g *Generator) orderStatus(wid, did int32) Program {
	byName := g.rng.Intn(2) == 0
	args := OrderStatusArgs{WID: wid, DID: did, ByName: byName}
	if byName {
		args.CLast = "BARBARBAR"
	} else {
		args.CID = g.randCustomer()
	}
	return Program{Tag: TagOrderStatus, OrderStatus: args}
}

func (g *Generator) delivery(wid int32) Program {
	return Program{Tag: TagDelivery, Delivery: DeliveryArgs{
		WID: wid, CarrierID: int32(g.rng.Intn(10)) + 1, Date: int64(g.rng.Intn(1_000_000)),
	}}
}

func (g *Generator) stockLevel(wid, did int32) Program {
	return Program{Tag: TagStockLevel, StockLevel: StockLevelArgs{WID: wid, DID: did, Threshold: int32(g.rng.Intn(10)) + 10}}
}

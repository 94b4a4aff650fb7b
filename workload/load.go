package workload

import (
	"math/rand"
	"strconv"

	"tpcc/configs"
	"tpcc/schema"
	"tpcc/store"
)

// lastNameSyllables builds a c_last the standard TPC-C way: three
// syllables chosen by digit, concatenated.
var lastNameSyllables = []string{
	"BAR", "OUGHT", "ABLE", "PRI", "PRES",
	"ESE", "ANTI", "CALLY", "ATION", "EING",
}

func syllableName(n int32) string {
	a := n / 100
	b := (n / 10) % 10
	c := n % 10
	return lastNameSyllables[a] + lastNameSyllables[b] + lastNameSyllables[c]
}

// Populate fills every base table (everything but order/new_order/
// order_line/history, which only exist once transactions create them) with
// deterministic synthetic rows, satisfying the same role a real fixture
// loader would: something for the five transactions to read before the
// dispatcher's first Program runs. Sized and keyed from the same
// configs.NumWare/ItemTblSize formulas the store package uses to size its
// slabs, so every row Populate writes lands in range.
func Populate(e *store.Engine, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	numWare := configs.NumWare
	numItems := int32(configs.ItemTblSize())

	for i := int32(1); i <= numItems; i++ {
		it := schema.NewItem()
		it.IID = i
		it.IMID = int32(rng.Intn(10000)) + 1
		it.Name.Assign("item" + strconv.Itoa(int(i)))
		it.Price = float64(rng.Intn(10000)+100) / 100
		data := "common item data"
		if rng.Intn(10) == 0 {
			data = "original " + data
		}
		it.Data.Assign(data)
		e.Item.Add(it)
	}

	for w := int32(1); w <= numWare; w++ {
		wh := schema.NewWarehouse()
		wh.WID = w
		wh.Name.Assign("WH" + strconv.Itoa(int(w)))
		wh.Tax = float64(rng.Intn(2000)) / 10000
		wh.YTD = 300000
		e.Warehouse.Add(wh)

		for i := int32(1); i <= numItems; i++ {
			st := schema.NewStock()
			st.IID, st.WID = i, w
			st.Quantity = int32(rng.Intn(91)) + 10
			data := "common stock data"
			if rng.Intn(10) == 0 {
				data = "original " + data
			}
			st.Data.Assign(data)
			for d := range st.Dist {
				st.Dist[d].Assign("dist" + strconv.Itoa(d+1) + "info")
			}
			e.Stock.Add(st)
		}

		for d := int32(1); d <= 10; d++ {
			dist := schema.NewDistrict()
			dist.WID, dist.DID = w, d
			dist.Name.Assign("DIST" + strconv.Itoa(int(d)))
			dist.Tax = float64(rng.Intn(2000)) / 10000
			dist.YTD = 30000
			dist.NextOID = 3001
			e.District.Add(dist)

			for c := int32(1); c <= 3000; c++ {
				cust := schema.NewCustomer()
				cust.CID, cust.DID, cust.WID = c, d, w
				nameSeed := c
				if c > 999 {
					nameSeed = c % 1000
				}
				cust.Last.Assign(syllableName(nameSeed))
				cust.First.Assign("FN" + strconv.Itoa(int(c)))
				cust.Middle.Assign("OE")
				credit := "GC"
				if rng.Intn(10) == 0 {
					credit = "BC"
				}
				cust.Credit.Assign(credit)
				cust.CreditLim = 50000
				cust.Discount = float64(rng.Intn(5000)) / 10000
				cust.Balance = -10
				cust.YTDPayment = 10
				cust.PaymentCnt = 1
				cust.DeliveryCnt = 0
				cust.Since = 0
				cust.Data.Assign("customer data")
				e.Customer.Add(cust)
			}
		}
	}
}

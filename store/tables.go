package store

import (
	"tpcc/index"
	"tpcc/pstring"
	"tpcc/schema"
)

// indexer is the uniform lifecycle surface every concrete index
// satisfies. The table types below do not use it: each calls its own
// indices directly.
type indexer[Row any] interface {
	Insert(*Row)
	Remove(*Row)
	Update(*Row)
}

// --- warehouse ---------------------------------------------------------

// WarehouseTable stores warehouse rows, addressed directly by w_id.
type WarehouseTable struct {
	slab    *Slab[schema.Warehouse]
	Primary *index.ArrayIndex[schema.Warehouse]
}

func newWarehouseTable(slabCap, addressSpace int) *WarehouseTable {
	primary := index.NewArrayIndex[schema.Warehouse](addressSpace, func(w *schema.Warehouse) int {
		return int(w.WID) - 1
	})
	return &WarehouseTable{slab: NewSlab[schema.Warehouse](slabCap), Primary: primary}
}

// Add inserts row and returns a stable pointer to it.
func (t *WarehouseTable) Add(row schema.Warehouse) *schema.Warehouse {
	r := t.slab.Alloc(row)
	t.Primary.Insert(r)
	return r
}

// Get returns the warehouse with the given w_id.
func (t *WarehouseTable) Get(wid int32) (*schema.Warehouse, bool) {
	return t.Primary.Get(int(wid) - 1)
}

// Rows returns every live warehouse row.
func (t *WarehouseTable) Rows() []*schema.Warehouse { return t.slab.Rows() }

// --- district -----------------------------------------------------------

// DistrictTable stores district rows, addressed directly by (w_id, d_id).
type DistrictTable struct {
	slab    *Slab[schema.District]
	Primary *index.ArrayIndex[schema.District]
	numWare int
}

func newDistrictTable(slabCap, numWare int) *DistrictTable {
	primary := index.NewArrayIndex[schema.District](numWare*10, func(d *schema.District) int {
		return index.DenseKey([]int{int(d.WID), int(d.DID)}, []int{numWare, 10})
	})
	return &DistrictTable{slab: NewSlab[schema.District](slabCap), Primary: primary, numWare: numWare}
}

// Add inserts row and returns a stable pointer to it.
func (t *DistrictTable) Add(row schema.District) *schema.District {
	r := t.slab.Alloc(row)
	t.Primary.Insert(r)
	return r
}

// Get returns the district with the given (w_id, d_id).
func (t *DistrictTable) Get(wid, did int32) (*schema.District, bool) {
	return t.Primary.Get(index.DenseKey([]int{int(wid), int(did)}, []int{t.numWare, 10}))
}

// Rows returns every live district row.
func (t *DistrictTable) Rows() []*schema.District { return t.slab.Rows() }

// --- customer -----------------------------------------------------------

type customerLastKey struct {
	did, wid int32
	last     string
}

// CustomerTable stores customer rows, addressed directly by
// (c_id, d_id, w_id) and additionally indexed by (d_id, w_id, c_last) for
// by-name lookups.
type CustomerTable struct {
	slab       *Slab[schema.Customer]
	Primary    *index.ArrayIndex[schema.Customer]
	ByLastName *index.HashIndex[schema.Customer, customerLastKey]
	numWare    int
}

func newCustomerTable(slabCap, numWare int) *CustomerTable {
	primary := index.NewArrayIndex[schema.Customer](3000*10*numWare, func(c *schema.Customer) int {
		return index.DenseKey([]int{int(c.CID), int(c.DID), int(c.WID)}, []int{3000, 10, numWare})
	})
	byLast := index.NewHashIndex[schema.Customer, customerLastKey](slabCap, false,
		func(c *schema.Customer) customerLastKey {
			return customerLastKey{did: c.DID, wid: c.WID, last: c.Last.String()}
		},
		func(k customerLastKey) uint32 {
			return index.HashFields(uint32(k.did), uint32(k.wid), hashString(k.last))
		},
		func(a, b customerLastKey) bool { return a == b },
	)
	return &CustomerTable{slab: NewSlab[schema.Customer](slabCap), Primary: primary, ByLastName: byLast, numWare: numWare}
}

// Add inserts row and returns a stable pointer to it.
func (t *CustomerTable) Add(row schema.Customer) *schema.Customer {
	r := t.slab.Alloc(row)
	t.Primary.Insert(r)
	t.ByLastName.Insert(r)
	return r
}

// Get returns the customer with the given (c_id, d_id, w_id).
func (t *CustomerTable) Get(cid, did, wid int32) (*schema.Customer, bool) {
	return t.Primary.Get(index.DenseKey([]int{int(cid), int(did), int(wid)}, []int{3000, 10, t.numWare}))
}

// SliceByLastName invokes fn on every customer sharing (d_id, w_id, c_last).
func (t *CustomerTable) SliceByLastName(did, wid int32, last string, fn func(*schema.Customer) bool) {
	t.ByLastName.Slice(customerLastKey{did: did, wid: wid, last: last}, fn)
}

// Rows returns every live customer row.
func (t *CustomerTable) Rows() []*schema.Customer { return t.slab.Rows() }

// hashString folds a c_last value into the same per-field hasher every
// other composite key uses, reusing pstring.String.Hash32 (rather than
// walking bytes again here) for the string contribution.
func hashString(s string) uint32 {
	return pstring.From(len(s), s).Hash32()
}

// --- item -----------------------------------------------------------

// ItemTable stores item rows, addressed directly by i_id. Read-only
// after loading.
type ItemTable struct {
	slab    *Slab[schema.Item]
	Primary *index.ArrayIndex[schema.Item]
}

func newItemTable(slabCap int) *ItemTable {
	primary := index.NewArrayIndex[schema.Item](slabCap, func(i *schema.Item) int { return int(i.IID) - 1 })
	return &ItemTable{slab: NewSlab[schema.Item](slabCap), Primary: primary}
}

// Add inserts row and returns a stable pointer to it.
func (t *ItemTable) Add(row schema.Item) *schema.Item {
	r := t.slab.Alloc(row)
	t.Primary.Insert(r)
	return r
}

// Get returns the item with the given i_id.
func (t *ItemTable) Get(iid int32) (*schema.Item, bool) {
	return t.Primary.Get(int(iid) - 1)
}

// Rows returns every live item row.
func (t *ItemTable) Rows() []*schema.Item { return t.slab.Rows() }

// --- stock -----------------------------------------------------------

// StockTable stores stock rows, addressed directly by (i_id, w_id).
type StockTable struct {
	slab    *Slab[schema.Stock]
	Primary *index.ArrayIndex[schema.Stock]
	numItem int
}

func newStockTable(slabCap, numItem int) *StockTable {
	primary := index.NewArrayIndex[schema.Stock](slabCap, func(s *schema.Stock) int {
		return index.DenseKey([]int{int(s.IID), int(s.WID)}, []int{numItem, slabCap / numItem})
	})
	return &StockTable{slab: NewSlab[schema.Stock](slabCap), Primary: primary, numItem: numItem}
}

// Add inserts row and returns a stable pointer to it.
func (t *StockTable) Add(row schema.Stock) *schema.Stock {
	r := t.slab.Alloc(row)
	t.Primary.Insert(r)
	return r
}

// Get returns the stock with the given (i_id, w_id).
func (t *StockTable) Get(iid, wid int32) (*schema.Stock, bool) {
	return t.Primary.Get(index.DenseKey([]int{int(iid), int(wid)}, []int{t.numItem, t.slab.cap / t.numItem}))
}

// Rows returns every live stock row.
func (t *StockTable) Rows() []*schema.Stock { return t.slab.Rows() }

// --- order -----------------------------------------------------------

type orderPrimaryKey struct{ oid, did, wid int32 }
type orderTreeKey struct{ did, wid, cid int32 }

func orderTreeLess(a, b orderTreeKey) bool {
	if a.did != b.did {
		return a.did < b.did
	}
	if a.wid != b.wid {
		return a.wid < b.wid
	}
	return a.cid < b.cid
}

// OrderTable stores order rows, addressed by (o_id, d_id, w_id) and
// additionally indexed by an ordered tree on (d_id, w_id, c_id) for
// OrderStatus's "most recent order for this customer" lookup.
type OrderTable struct {
	slab      *Slab[schema.Order]
	Primary   *index.HashIndex[schema.Order, orderPrimaryKey]
	ByCustomer *index.TreeIndex[schema.Order, orderTreeKey]
}

func newOrderTable(slabCap int) *OrderTable {
	primary := index.NewHashIndex[schema.Order, orderPrimaryKey](slabCap, true,
		func(o *schema.Order) orderPrimaryKey { return orderPrimaryKey{o.OID, o.DID, o.WID} },
		func(k orderPrimaryKey) uint32 { return index.HashFields(uint32(k.oid), uint32(k.did), uint32(k.wid)) },
		func(a, b orderPrimaryKey) bool { return a == b },
	)
	byCustomer := index.NewTreeIndex[schema.Order, orderTreeKey](
		func(o *schema.Order) orderTreeKey { return orderTreeKey{o.DID, o.WID, o.CID} },
		orderTreeLess,
	)
	return &OrderTable{slab: NewSlab[schema.Order](slabCap), Primary: primary, ByCustomer: byCustomer}
}

// Add inserts row and returns a stable pointer to it.
func (t *OrderTable) Add(row schema.Order) *schema.Order {
	r := t.slab.Alloc(row)
	t.Primary.Insert(r)
	t.ByCustomer.Insert(r)
	return r
}

// Get returns the order with the given (o_id, d_id, w_id).
func (t *OrderTable) Get(oid, did, wid int32) (*schema.Order, bool) {
	return t.Primary.Get(orderPrimaryKey{oid, did, wid})
}

// MostRecentForCustomer returns the highest-o_id order for (d_id, w_id, c_id).
func (t *OrderTable) MostRecentForCustomer(did, wid, cid int32) (*schema.Order, bool) {
	return t.ByCustomer.Get(orderTreeKey{did, wid, cid})
}

// Rows returns every live order row.
func (t *OrderTable) Rows() []*schema.Order { return t.slab.Rows() }

// --- new_order -----------------------------------------------------------

type newOrderPrimaryKey struct{ oid, did, wid int32 }
type newOrderTreeKey struct{ did, wid, oid int32 }

func newOrderTreeLess(a, b newOrderTreeKey) bool {
	if a.did != b.did {
		return a.did < b.did
	}
	if a.wid != b.wid {
		return a.wid < b.wid
	}
	return a.oid < b.oid
}

// NewOrderTable stores new_order rows: the set of orders still pending
// delivery. Addressed by (o_id, d_id, w_id) and additionally ordered by
// (d_id, w_id, o_id) so Delivery can find the smallest pending o_id per
// district in ascending order.
type NewOrderTable struct {
	slab     *Slab[schema.NewOrderEntry]
	Primary  *index.HashIndex[schema.NewOrderEntry, newOrderPrimaryKey]
	Pending  *index.TreeIndex[schema.NewOrderEntry, newOrderTreeKey]
}

func newNewOrderTable(slabCap int) *NewOrderTable {
	primary := index.NewHashIndex[schema.NewOrderEntry, newOrderPrimaryKey](slabCap, true,
		func(n *schema.NewOrderEntry) newOrderPrimaryKey { return newOrderPrimaryKey{n.OID, n.DID, n.WID} },
		func(k newOrderPrimaryKey) uint32 { return index.HashFields(uint32(k.oid), uint32(k.did), uint32(k.wid)) },
		func(a, b newOrderPrimaryKey) bool { return a == b },
	)
	pending := index.NewTreeIndex[schema.NewOrderEntry, newOrderTreeKey](
		func(n *schema.NewOrderEntry) newOrderTreeKey { return newOrderTreeKey{n.DID, n.WID, n.OID} },
		newOrderTreeLess,
	)
	return &NewOrderTable{slab: NewSlab[schema.NewOrderEntry](slabCap), Primary: primary, Pending: pending}
}

// Add inserts row and returns a stable pointer to it.
func (t *NewOrderTable) Add(row schema.NewOrderEntry) *schema.NewOrderEntry {
	r := t.slab.Alloc(row)
	t.Primary.Insert(r)
	t.Pending.Insert(r)
	return r
}

// SmallestPending returns the lowest-o_id pending new_order for (d_id, w_id).
func (t *NewOrderTable) SmallestPending(did, wid int32) (*schema.NewOrderEntry, bool) {
	var found *schema.NewOrderEntry
	t.Pending.AscendMatch(newOrderTreeKey{did: did, wid: wid, oid: -1 << 31},
		func(k newOrderTreeKey) bool { return k.did == did && k.wid == wid },
		func(n *schema.NewOrderEntry) bool {
			found = n
			return false
		})
	return found, found != nil
}

// Delete removes row from every index and frees its slot.
func (t *NewOrderTable) Delete(row *schema.NewOrderEntry) {
	t.Primary.Remove(row)
	t.Pending.Remove(row)
	t.slab.Free(row)
}

// Rows returns every live new_order row.
func (t *NewOrderTable) Rows() []*schema.NewOrderEntry { return t.slab.Rows() }

// --- order_line -----------------------------------------------------------

type orderLinePrimaryKey struct{ oid, did, wid, number int32 }
type orderLineSliceKey struct{ oid, did, wid int32 }

// OrderLineTable stores order_line rows, addressed by the full composite
// key and additionally indexed by (o_id, d_id, w_id) for slice scans.
type OrderLineTable struct {
	slab    *Slab[schema.OrderLine]
	Primary *index.HashIndex[schema.OrderLine, orderLinePrimaryKey]
	ByOrder *index.HashIndex[schema.OrderLine, orderLineSliceKey]
}

func newOrderLineTable(slabCap int) *OrderLineTable {
	primary := index.NewHashIndex[schema.OrderLine, orderLinePrimaryKey](slabCap, true,
		func(l *schema.OrderLine) orderLinePrimaryKey { return orderLinePrimaryKey{l.OID, l.DID, l.WID, l.Number} },
		func(k orderLinePrimaryKey) uint32 {
			return index.HashFields(uint32(k.oid), uint32(k.did), uint32(k.wid), uint32(k.number))
		},
		func(a, b orderLinePrimaryKey) bool { return a == b },
	)
	byOrder := index.NewHashIndex[schema.OrderLine, orderLineSliceKey](slabCap, false,
		func(l *schema.OrderLine) orderLineSliceKey { return orderLineSliceKey{l.OID, l.DID, l.WID} },
		func(k orderLineSliceKey) uint32 { return index.HashFields(uint32(k.oid), uint32(k.did), uint32(k.wid)) },
		func(a, b orderLineSliceKey) bool { return a == b },
	)
	return &OrderLineTable{slab: NewSlab[schema.OrderLine](slabCap), Primary: primary, ByOrder: byOrder}
}

// Add inserts row and returns a stable pointer to it.
func (t *OrderLineTable) Add(row schema.OrderLine) *schema.OrderLine {
	r := t.slab.Alloc(row)
	t.Primary.Insert(r)
	t.ByOrder.Insert(r)
	return r
}

// SliceByOrder invokes fn on every order_line belonging to (o_id, d_id, w_id).
func (t *OrderLineTable) SliceByOrder(oid, did, wid int32, fn func(*schema.OrderLine) bool) {
	t.ByOrder.Slice(orderLineSliceKey{oid, did, wid}, fn)
}

// Rows returns every live order_line row.
func (t *OrderLineTable) Rows() []*schema.OrderLine { return t.slab.Rows() }

// --- history -----------------------------------------------------------

// HistoryTable stores history rows. Append-only: never looked up by key,
// so it carries no index at all, only the slab.
type HistoryTable struct {
	slab *Slab[schema.History]
}

func newHistoryTable(slabCap int) *HistoryTable {
	return &HistoryTable{slab: NewSlab[schema.History](slabCap)}
}

// Add appends row and returns a stable pointer to it.
func (t *HistoryTable) Add(row schema.History) *schema.History {
	return t.slab.Alloc(row)
}

// Rows returns every history row.
func (t *HistoryTable) Rows() []*schema.History { return t.slab.Rows() }

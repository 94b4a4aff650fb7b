// Package workload turns a sequence of pre-chosen transaction invocations
// into calls against a store.Engine, the way the ancestor's TPCStmt pulled
// pooled orders off a shuffled deck and dispatched them to Handle* methods.
package workload

// Tag names which of the five transaction procedures a Program invokes.
type Tag int

const (
	TagNewOrder Tag = iota
	TagPayment
	TagOrderStatus
	TagDelivery
	TagStockLevel
)

func (t Tag) String() string {
	switch t {
	case TagNewOrder:
		return "NewOrder"
	case TagPayment:
		return "Payment"
	case TagOrderStatus:
		return "OrderStatus"
	case TagDelivery:
		return "Delivery"
	case TagStockLevel:
		return "StockLevel"
	default:
		return "Unknown"
	}
}

// Program is one pre-generated transaction invocation: a Tag plus exactly
// one of the five populated input structs. Only the field matching Tag is
// read by the dispatcher.
type Program struct {
	Tag Tag

	NewOrder    NewOrderArgs
	Payment     PaymentArgs
	OrderStatus OrderStatusArgs
	Delivery    DeliveryArgs
	StockLevel  StockLevelArgs
}

// NewOrderArgs mirrors txn.NewOrderInput, reshaped into fixed-width arrays
// so a Program value is self-contained and copier-cloneable without slice
// aliasing across iterations.
type NewOrderArgs struct {
	WID, DID, CID int32
	EntryD        int64
	OLCnt         int32
	AllLocal      int32
	IID           [15]int32
	SupplyWID     [15]int32
	Quantity      [15]int32
}

// PaymentArgs mirrors txn.PaymentInput.
type PaymentArgs struct {
	WID, DID   int32
	CWID, CDID int32
	ByName     bool
	CID        int32
	CLast      string
	Amount     float64
	Date       int64
}

// OrderStatusArgs mirrors txn.OrderStatusInput.
type OrderStatusArgs struct {
	WID, DID int32
	ByName   bool
	CID      int32
	CLast    string
}

// DeliveryArgs mirrors txn.DeliveryInput.
type DeliveryArgs struct {
	WID       int32
	CarrierID int32
	Date      int64
}

// StockLevelArgs mirrors txn.StockLevelInput.
type StockLevelArgs struct {
	WID, DID  int32
	Threshold int32
}

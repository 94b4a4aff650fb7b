package configs

// Workload parameters (overridable via flags or a .properties file).
var (
	NumWare     int32 = 2
	NumPrograms int32 = 100
)

// Debugging toggles, mirroring the ancestor's ShowDebugInfo/ShowTestInfo
// family: a single master switch with narrower switches that default on
// whenever the master is on.
const (
	debugInfoDefault = false
)

var (
	ShowDebugInfo = debugInfoDefault
	ShowWarnings  = false || ShowDebugInfo
	ShowTestInfo  = false || ShowDebugInfo
)

// SetNumWare overrides the warehouse count.
func SetNumWare(w int32) {
	NumWare = w
}

// SetNumPrograms overrides the program-sequence length used by the
// built-in deterministic generator.
func SetNumPrograms(p int32) {
	NumPrograms = p
}

// SetDebug toggles verbose logging.
func SetDebug(on bool) {
	ShowDebugInfo = on
	ShowWarnings = on
	ShowTestInfo = on
	refreshLogger()
}

// Table capacity formulas, straight from the reference sizing (§3 of the
// data-model spec): every table's slab is sized once at startup from
// NumWare/NumPrograms so that normal operation never needs to grow it.

// WarehouseTblSize returns the warehouse table capacity.
func WarehouseTblSize() int { return 8 * (int(NumWare)/8 + 1) }

// DistrictTblSize returns the district table capacity.
func DistrictTblSize() int { return 8 * ((int(NumWare)*10)/8 + 1) }

// CustomerTblSize returns the customer table capacity.
func CustomerTblSize() int { return DistrictTblSize() * 3000 }

// ItemTblSize returns the item table capacity.
func ItemTblSize() int { return 100000 }

// StockTblSize returns the stock table capacity.
func StockTblSize() int { return int(NumWare) * ItemTblSize() }

// OrderTblSize returns the order table capacity.
func OrderTblSize() int {
	return int(float64(CustomerTblSize())*1.5 + 0.5*float64(NumPrograms))
}

// NewOrderTblSize returns the new_order table capacity.
func NewOrderTblSize() int {
	return int(float64(OrderTblSize())*0.3 + 0.5*float64(NumPrograms))
}

// OrderLineTblSize returns the order_line table capacity.
func OrderLineTblSize() int { return OrderTblSize() * 12 }

// HistoryTblSize returns the history table capacity.
func HistoryTblSize() int { return OrderTblSize() }

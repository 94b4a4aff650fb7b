package store

import "tpcc/configs"

// Engine owns every table in the schema, sized once from the current
// configs.NumWare/configs.NumPrograms.
type Engine struct {
	Warehouse *WarehouseTable
	District  *DistrictTable
	Customer  *CustomerTable
	Item      *ItemTable
	Stock     *StockTable
	Order     *OrderTable
	NewOrder  *NewOrderTable
	OrderLine *OrderLineTable
	History   *HistoryTable
}

// NewEngine builds an Engine with every table's slab and indices sized
// per the capacity formulas in package configs.
func NewEngine() *Engine {
	numWare := int(configs.NumWare)
	itemCap := configs.ItemTblSize()
	return &Engine{
		Warehouse: newWarehouseTable(configs.WarehouseTblSize(), numWare),
		District:  newDistrictTable(configs.DistrictTblSize(), numWare),
		Customer:  newCustomerTable(configs.CustomerTblSize(), numWare),
		Item:      newItemTable(itemCap),
		Stock:     newStockTable(configs.StockTblSize(), itemCap),
		Order:     newOrderTable(configs.OrderTblSize()),
		NewOrder:  newNewOrderTable(configs.NewOrderTblSize()),
		OrderLine: newOrderLineTable(configs.OrderLineTblSize()),
		History:   newHistoryTable(configs.HistoryTblSize()),
	}
}

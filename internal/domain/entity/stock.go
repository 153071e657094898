package entity

import "time"

// StockKey identifica una celda de stock: un SKU en una bodega.
// Es la unidad mínima sobre la que se toman locks y se aplican mutaciones.
type StockKey struct {
	WarehouseID string
	SKU         string
}

// InventoryItem cantidad actual de un SKU en una bodega.
// Invariante: Quantity >= 0 en todo momento observable.
type InventoryItem struct {
	WarehouseID string
	SKU         string
	Quantity    int
	LastUpdated time.Time
}

// Key devuelve la clave de celda del item.
func (i InventoryItem) Key() StockKey {
	return StockKey{WarehouseID: i.WarehouseID, SKU: i.SKU}
}

package entity

// Warehouse representa una bodega donde se almacena inventario (multi-bodega).
// Metadatos de solo lectura provistos por el almacén externo; el motor no los muta.
type Warehouse struct {
	ID       string
	Name     string
	Location string
	Region   string
	TradeHub bool // bodega concentradora de distribución regional
	Capacity int
}

package entity

import "time"

// Señales numéricas calculadas por proveedores externos (análisis de
// envejecimiento, scoring de potencial de venta). El motor las consume como
// parámetros; nunca las produce.

// SalesPrediction potencial de venta de un SKU en una bodega.
type SalesPrediction struct {
	WarehouseID         string
	SKU                 string
	PredictedDailySales float64
	SalesPotentialScore float64
	SeasonalFactor      float64
	RegionalFactor      float64
	Confidence          float64
}

// AgingInfo urgencia por envejecimiento de un SKU en una bodega.
type AgingInfo struct {
	WarehouseID        string
	SKU                string
	EntryDate          time.Time
	DaysInWarehouse    int
	AgingThresholdDays int
	PriorityScore      float64
	IsCritical         bool
	Category           string
}

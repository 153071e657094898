package entity

import "time"

// AlertSeverity severidad de una alerta de stock crítico.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// StockAlert alerta generada cuando una celda cae bajo su umbral mínimo.
type StockAlert struct {
	ID              string
	WarehouseID     string
	SKU             string
	CurrentQuantity int
	Threshold       int
	Severity        AlertSeverity
	Timestamp       time.Time
	Resolved        bool
}

package entity

import "time"

// AuditLogEntry registro inmutable de una mutación de stock.
// Append-only: se crea cuando el coordinador reporta una mutación y nunca
// se modifica después.
type AuditLogEntry struct {
	ID             string
	OperationType  string
	WarehouseID    string
	SKU            string
	QuantityBefore int
	QuantityAfter  int
	ChangeAmount   int
	TriggeredBy    string
	TransferID     string
	Timestamp      time.Time
}

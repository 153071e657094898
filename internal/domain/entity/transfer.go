package entity

import "time"

// TransferStatus estados del ciclo de vida de un traslado.
//
//	pending → {awaiting_approval → {approved → completed | rejected},
//	           completed, failed, rolled_back}
type TransferStatus string

const (
	TransferPending          TransferStatus = "pending"
	TransferAwaitingApproval TransferStatus = "awaiting_approval"
	TransferApproved         TransferStatus = "approved"
	TransferRejected         TransferStatus = "rejected"
	TransferCompleted        TransferStatus = "completed"
	TransferFailed           TransferStatus = "failed"
	TransferRolledBack       TransferStatus = "rolled_back"
)

// IsTerminal indica si el estado ya no admite transiciones.
func (s TransferStatus) IsTerminal() bool {
	switch s {
	case TransferCompleted, TransferFailed, TransferRejected, TransferRolledBack:
		return true
	}
	return false
}

// TransferRequest solicitud de traslado entre dos bodegas.
// La crea y muta únicamente el coordinador; nunca se borra (queda para auditoría).
type TransferRequest struct {
	ID                string
	SourceWarehouseID string
	TargetWarehouseID string
	SKU               string
	Quantity          int
	Status            TransferStatus
	Reason            string
	PriorityScore     float64
	RequiresApproval  bool
	CreatedAt         time.Time
	CompletedAt       *time.Time
}

// Tipos de alternativa propuesta tras un rechazo.
const (
	AlternativeReducedQuantity = "reduced_quantity"
	AlternativeDifferentSource = "alternative_source"
)

// TransferAlternative propuesta alternativa generada al rechazar un traslado.
type TransferAlternative struct {
	Type              string
	Description       string
	SourceWarehouseID string
	TargetWarehouseID string
	SKU               string
	Quantity          int
}

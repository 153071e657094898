package entity

import "github.com/shopspring/decimal"

// OperationMode modo de operación del sistema frente a aprobaciones humanas.
type OperationMode string

const (
	// ModeAutonomous ningún traslado requiere aprobación.
	ModeAutonomous OperationMode = "autonomous"
	// ModeSupervised los traslados sobre los umbrales requieren aprobación.
	ModeSupervised OperationMode = "supervised"
)

// ApprovalConfig política de aprobación vigente para todo el proceso.
// Se configura al inicio y puede reemplazarse en caliente; la lee cada
// decisión de aprobación.
type ApprovalConfig struct {
	HighValueThreshold    decimal.Decimal
	HighQuantityThreshold int
	Mode                  OperationMode
}

// DefaultApprovalConfig valores por defecto: supervisado, 10000 de valor,
// 500 unidades.
func DefaultApprovalConfig() ApprovalConfig {
	return ApprovalConfig{
		HighValueThreshold:    decimal.NewFromInt(10000),
		HighQuantityThreshold: 500,
		Mode:                  ModeSupervised,
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/traslados-api/internal/domain/entity"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ExecuteTransferRequest payload para crear y ejecutar un traslado.
type ExecuteTransferRequest struct {
	SourceWarehouseID string `json:"source_warehouse_id" validate:"required"`
	TargetWarehouseID string `json:"target_warehouse_id" validate:"required"`
	SKU               string `json:"sku" validate:"required"`
	Quantity          int    `json:"quantity" validate:"gt=0"`
	Reason            string `json:"reason"`
}

// TransferResponse representación HTTP de un traslado.
type TransferResponse struct {
	ID                string     `json:"id"`
	SourceWarehouseID string     `json:"source_warehouse_id"`
	TargetWarehouseID string     `json:"target_warehouse_id"`
	SKU               string     `json:"sku"`
	Quantity          int        `json:"quantity"`
	Status            string     `json:"status"`
	Reason            string     `json:"reason,omitempty"`
	PriorityScore     float64    `json:"priority_score,omitempty"`
	RequiresApproval  bool       `json:"requires_approval"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

// NewTransferResponse convierte la entidad de dominio a su DTO.
func NewTransferResponse(t entity.TransferRequest) TransferResponse {
	return TransferResponse{
		ID:                t.ID,
		SourceWarehouseID: t.SourceWarehouseID,
		TargetWarehouseID: t.TargetWarehouseID,
		SKU:               t.SKU,
		Quantity:          t.Quantity,
		Status:            string(t.Status),
		Reason:            t.Reason,
		PriorityScore:     t.PriorityScore,
		RequiresApproval:  t.RequiresApproval,
		CreatedAt:         t.CreatedAt,
		CompletedAt:       t.CompletedAt,
	}
}

// AlternativeResponse propuesta alternativa tras un rechazo.
type AlternativeResponse struct {
	Type              string `json:"type"`
	Description       string `json:"description"`
	SourceWarehouseID string `json:"source_warehouse_id"`
	TargetWarehouseID string `json:"target_warehouse_id"`
	SKU               string `json:"sku"`
	Quantity          int    `json:"quantity"`
}

// NewAlternativeResponses convierte las alternativas de dominio.
func NewAlternativeResponses(alts []entity.TransferAlternative) []AlternativeResponse {
	out := make([]AlternativeResponse, 0, len(alts))
	for _, a := range alts {
		out = append(out, AlternativeResponse{
			Type:              a.Type,
			Description:       a.Description,
			SourceWarehouseID: a.SourceWarehouseID,
			TargetWarehouseID: a.TargetWarehouseID,
			SKU:               a.SKU,
			Quantity:          a.Quantity,
		})
	}
	return out
}

// SetStockRequest fija el stock de una celda bodega/SKU.
type SetStockRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required"`
	SKU         string `json:"sku" validate:"required"`
	Quantity    int    `json:"quantity" validate:"min=0"`
}

// SetPriceRequest fija el precio unitario de un SKU.
type SetPriceRequest struct {
	SKU   string          `json:"sku" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// StockResponse celda de inventario.
type StockResponse struct {
	WarehouseID string `json:"warehouse_id"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
}

// ApprovalConfigDTO configuración de aprobaciones del coordinador.
type ApprovalConfigDTO struct {
	HighValueThreshold    decimal.Decimal `json:"high_value_threshold"`
	HighQuantityThreshold int             `json:"high_quantity_threshold"`
	Mode                  string          `json:"mode"`
}

// ProcessRequest entrada del ciclo de evaluación/ejecución de un deficit.
type ProcessRequest struct {
	WarehouseID   string             `json:"warehouse_id" validate:"required"`
	SKU           string             `json:"sku" validate:"required"`
	Threshold     int                `json:"threshold" validate:"min=0"`
	AgingPriority float64            `json:"aging_priority"`
	AgingCritical bool               `json:"aging_critical"`
	SalesScores   map[string]float64 `json:"sales_scores,omitempty"`
}

// WarehouseResponse ficha de una bodega conocida.
type WarehouseResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Region   string `json:"region"`
	TradeHub bool   `json:"trade_hub"`
	Capacity int    `json:"capacity"`
}

// NewWarehouseResponses convierte las bodegas de dominio.
func NewWarehouseResponses(warehouses []entity.Warehouse) []WarehouseResponse {
	out := make([]WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, WarehouseResponse{
			ID:       w.ID,
			Name:     w.Name,
			Location: w.Location,
			Region:   w.Region,
			TradeHub: w.TradeHub,
			Capacity: w.Capacity,
		})
	}
	return out
}

// SetThresholdRequest fija el umbral mínimo de una celda del monitor.
type SetThresholdRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required"`
	SKU         string `json:"sku" validate:"required"`
	Threshold   int    `json:"threshold" validate:"min=0"`
}

// AlertResponse alerta de stock crítico.
type AlertResponse struct {
	ID              string    `json:"id"`
	WarehouseID     string    `json:"warehouse_id"`
	SKU             string    `json:"sku"`
	CurrentQuantity int       `json:"current_quantity"`
	Threshold       int       `json:"threshold"`
	Severity        string    `json:"severity"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewAlertResponses convierte las alertas de dominio.
func NewAlertResponses(alerts []entity.StockAlert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertResponse{
			ID:              a.ID,
			WarehouseID:     a.WarehouseID,
			SKU:             a.SKU,
			CurrentQuantity: a.CurrentQuantity,
			Threshold:       a.Threshold,
			Severity:        string(a.Severity),
			Timestamp:       a.Timestamp,
		})
	}
	return out
}

// AuditEntryResponse entrada del audit log de stock.
type AuditEntryResponse struct {
	ID             string    `json:"id"`
	OperationType  string    `json:"operation_type"`
	WarehouseID    string    `json:"warehouse_id"`
	SKU            string    `json:"sku"`
	QuantityBefore int       `json:"quantity_before"`
	QuantityAfter  int       `json:"quantity_after"`
	ChangeAmount   int       `json:"change_amount"`
	TriggeredBy    string    `json:"triggered_by"`
	TransferID     string    `json:"transfer_id,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewAuditEntryResponses convierte las entradas de auditoría de dominio.
func NewAuditEntryResponses(entries []entity.AuditLogEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:             e.ID,
			OperationType:  e.OperationType,
			WarehouseID:    e.WarehouseID,
			SKU:            e.SKU,
			QuantityBefore: e.QuantityBefore,
			QuantityAfter:  e.QuantityAfter,
			ChangeAmount:   e.ChangeAmount,
			TriggeredBy:    e.TriggeredBy,
			TransferID:     e.TransferID,
			Timestamp:      e.Timestamp,
		})
	}
	return out
}

// DiscrepancyResponse diferencia entre el total esperado y el real de un SKU.
type DiscrepancyResponse struct {
	SKU        string `json:"sku"`
	Expected   int    `json:"expected"`
	Actual     int    `json:"actual"`
	Difference int    `json:"difference"`
}

// VerificationResponse resultado de la verificación diaria de totales.
type VerificationResponse struct {
	VerifiedAt    time.Time             `json:"verified_at"`
	SKUsChecked   int                   `json:"skus_checked"`
	Discrepancies []DiscrepancyResponse `json:"discrepancies"`
	AllValid      bool                  `json:"all_valid"`
}

// ProcessResponse resultado del ciclo de proceso.
type ProcessResponse struct {
	Action     string `json:"action"`
	Reason     string `json:"reason,omitempty"`
	TransferID string `json:"transfer_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
}

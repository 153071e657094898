package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/traslados-api/internal/application/dto"
	"github.com/jhoicas/traslados-api/internal/application/transfer"
	"github.com/jhoicas/traslados-api/internal/application/validation"
	"github.com/jhoicas/traslados-api/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP de stock, auditoría y configuración.
type StockHandler struct {
	coordinator *transfer.Coordinator
	validator   *validation.StockValidator
}

// NewStockHandler construye el handler.
func NewStockHandler(coordinator *transfer.Coordinator, validator *validation.StockValidator) *StockHandler {
	return &StockHandler{coordinator: coordinator, validator: validator}
}

// GetStock godoc
// @Summary      Stock de una celda bodega/SKU
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  path  string  true  "ID de bodega"
// @Param        sku           path  string  true  "SKU"
// @Success      200  {object}  dto.StockResponse
// @Router       /api/stock/{warehouse_id}/{sku} [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	warehouseID := c.Params("warehouse_id")
	sku := c.Params("sku")
	return c.JSON(dto.StockResponse{
		WarehouseID: warehouseID,
		SKU:         sku,
		Quantity:    h.coordinator.GetStock(warehouseID, sku),
	})
}

// GetTotalStock godoc
// @Summary      Stock total de un SKU en todas las bodegas
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stock/totals/{sku} [get]
func (h *StockHandler) GetTotalStock(c *fiber.Ctx) error {
	sku := c.Params("sku")
	return c.JSON(fiber.Map{"sku": sku, "total": h.coordinator.GetTotalStock(sku)})
}

// SetStock godoc
// @Summary      Fijar el stock de una celda (alimentación desde el almacén externo)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetStockRequest  true  "bodega, sku, cantidad"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock [put]
func (h *StockHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.WarehouseID == "" || in.SKU == "" || in.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	h.coordinator.SetStock(in.WarehouseID, in.SKU, in.Quantity)
	return c.JSON(dto.StockResponse{WarehouseID: in.WarehouseID, SKU: in.SKU, Quantity: in.Quantity})
}

// SetPrice godoc
// @Summary      Fijar el precio unitario de un SKU
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetPriceRequest  true  "sku, precio"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/prices [put]
func (h *StockHandler) SetPrice(c *fiber.Ctx) error {
	var in dto.SetPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SKU == "" || in.Price.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	h.coordinator.SetProductPrice(in.SKU, in.Price)
	return c.JSON(fiber.Map{"sku": in.SKU, "price": in.Price.String()})
}

// GetApprovalConfig godoc
// @Summary      Configuración de aprobaciones vigente
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ApprovalConfigDTO
// @Router       /api/config/approvals [get]
func (h *StockHandler) GetApprovalConfig(c *fiber.Ctx) error {
	cfg := h.coordinator.GetApprovalConfig()
	return c.JSON(dto.ApprovalConfigDTO{
		HighValueThreshold:    cfg.HighValueThreshold,
		HighQuantityThreshold: cfg.HighQuantityThreshold,
		Mode:                  string(cfg.Mode),
	})
}

// UpdateApprovalConfig godoc
// @Summary      Actualizar la configuración de aprobaciones
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApprovalConfigDTO  true  "umbrales y modo"
// @Success      200   {object}  dto.ApprovalConfigDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/config/approvals [put]
func (h *StockHandler) UpdateApprovalConfig(c *fiber.Ctx) error {
	var in dto.ApprovalConfigDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mode := entity.OperationMode(in.Mode)
	if mode != entity.ModeAutonomous && mode != entity.ModeSupervised {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "modo inválido: use autonomous o supervised"})
	}
	cfg := entity.ApprovalConfig{
		HighValueThreshold:    in.HighValueThreshold,
		HighQuantityThreshold: in.HighQuantityThreshold,
		Mode:                  mode,
	}
	h.coordinator.SetApprovalConfig(cfg)
	return c.JSON(in)
}

// GetAuditLog godoc
// @Summary      Log de auditoría de cambios de stock
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        sku           query  string  false  "Filtrar por SKU"
// @Success      200  {array}  dto.AuditEntryResponse
// @Router       /api/audit [get]
func (h *StockHandler) GetAuditLog(c *fiber.Ctx) error {
	entries := h.validator.GetAuditLog(c.Query("warehouse_id"), c.Query("sku"))
	return c.JSON(fiber.Map{"total": len(entries), "entries": dto.NewAuditEntryResponses(entries)})
}

// DailyVerification godoc
// @Summary      Verificación diaria de integridad del stock
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VerificationResponse
// @Router       /api/audit/verification [post]
func (h *StockHandler) DailyVerification(c *fiber.Ctx) error {
	report := h.validator.DailyStockVerification(h.coordinator.StockSnapshot())

	out := dto.VerificationResponse{
		VerifiedAt:    report.VerifiedAt,
		SKUsChecked:   report.SKUsChecked,
		Discrepancies: make([]dto.DiscrepancyResponse, 0, len(report.Discrepancies)),
		AllValid:      report.AllValid,
	}
	for _, d := range report.Discrepancies {
		out.Discrepancies = append(out.Discrepancies, dto.DiscrepancyResponse{
			SKU:        d.SKU,
			Expected:   d.Expected,
			Actual:     d.Actual,
			Difference: d.Difference,
		})
	}
	return c.JSON(out)
}

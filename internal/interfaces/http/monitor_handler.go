package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/traslados-api/internal/application/dto"
	"github.com/jhoicas/traslados-api/internal/application/monitor"
	"github.com/jhoicas/traslados-api/internal/domain"
)

// MonitorHandler maneja las peticiones HTTP del monitor de inventario.
type MonitorHandler struct {
	monitor          *monitor.InventoryMonitor
	defaultThreshold int
}

// NewMonitorHandler construye el handler.
func NewMonitorHandler(m *monitor.InventoryMonitor, defaultThreshold int) *MonitorHandler {
	return &MonitorHandler{monitor: m, defaultThreshold: defaultThreshold}
}

// ListWarehouses godoc
// @Summary      Bodegas conocidas por el monitor
// @Tags         monitor
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/warehouses [get]
func (h *MonitorHandler) ListWarehouses(c *fiber.Ctx) error {
	return c.JSON(dto.NewWarehouseResponses(h.monitor.Warehouses()))
}

// SetThreshold godoc
// @Summary      Fijar el umbral mínimo de una celda
// @Tags         monitor
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetThresholdRequest  true  "bodega, sku, umbral"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/monitor/thresholds [put]
func (h *MonitorHandler) SetThreshold(c *fiber.Ctx) error {
	var in dto.SetThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.WarehouseID == "" || in.SKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id y sku son requeridos"})
	}
	if err := h.monitor.SetThreshold(in.WarehouseID, in.SKU, in.Threshold); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"warehouse_id": in.WarehouseID, "sku": in.SKU, "threshold": in.Threshold})
}

// DetectAlerts godoc
// @Summary      Correr un ciclo de detección de stock crítico
// @Tags         monitor
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/monitor/alerts [get]
func (h *MonitorHandler) DetectAlerts(c *fiber.Ctx) error {
	alerts := h.monitor.DetectCriticalStock(h.defaultThreshold)
	return c.JSON(fiber.Map{"total": len(alerts), "alerts": dto.NewAlertResponses(alerts)})
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/traslados-api/internal/application/dto"
	"github.com/jhoicas/traslados-api/internal/application/transfer"
	"github.com/jhoicas/traslados-api/internal/domain"
)

// TransferHandler maneja las peticiones HTTP de traslados (protegido).
type TransferHandler struct {
	coordinator *transfer.Coordinator
}

// NewTransferHandler construye el handler.
func NewTransferHandler(coordinator *transfer.Coordinator) *TransferHandler {
	return &TransferHandler{coordinator: coordinator}
}

func transferError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrTransferNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransferState):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Execute godoc
// @Summary      Crear y ejecutar un traslado entre bodegas
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExecuteTransferRequest  true  "origen, destino, sku, cantidad"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Execute(c *fiber.Ctx) error {
	var in dto.ExecuteTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	reason := in.Reason
	if reason == "" {
		reason = "manual_transfer"
	}
	t, err := h.coordinator.ExecuteTransfer(
		in.SourceWarehouseID, in.TargetWarehouseID, in.SKU, in.Quantity, reason, 0, 0)
	if err != nil {
		return transferError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTransferResponse(*t))
}

// Approve godoc
// @Summary      Aprobar un traslado pendiente de aprobación
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del traslado"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/approve [post]
func (h *TransferHandler) Approve(c *fiber.Ctx) error {
	t, err := h.coordinator.ApproveTransfer(c.Params("id"))
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(dto.NewTransferResponse(*t))
}

// Reject godoc
// @Summary      Rechazar un traslado y recibir alternativas
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del traslado"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/reject [post]
func (h *TransferHandler) Reject(c *fiber.Ctx) error {
	alts, err := h.coordinator.RejectTransfer(c.Params("id"))
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":       "rejected",
		"alternatives": dto.NewAlternativeResponses(alts),
	})
}

// ListPending godoc
// @Summary      Traslados a la espera de aprobación
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/transfers/pending [get]
func (h *TransferHandler) ListPending(c *fiber.Ctx) error {
	pending := h.coordinator.GetPendingApprovals()
	out := make([]dto.TransferResponse, 0, len(pending))
	for _, t := range pending {
		out = append(out, dto.NewTransferResponse(*t))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Historial completo de traslados
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	all := h.coordinator.GetAllTransfers()
	out := make([]dto.TransferResponse, 0, len(all))
	for _, t := range all {
		out = append(out, dto.NewTransferResponse(*t))
	}
	return c.JSON(out)
}

// Process godoc
// @Summary      Ciclo completo: evaluar déficit, elegir origen y trasladar
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessRequest  true  "bodega destino, sku, umbral"
// @Success      200   {object}  dto.ProcessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transfers/process [post]
func (h *TransferHandler) Process(c *fiber.Ctx) error {
	var in dto.ProcessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.WarehouseID == "" || in.SKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id y sku son requeridos"})
	}
	outcome, err := h.coordinator.Process(in.WarehouseID, in.SKU, in.Threshold)
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(dto.ProcessResponse{
		Action:     string(outcome.Action),
		Reason:     outcome.Reason,
		TransferID: outcome.TransferID,
		Status:     string(outcome.Status),
		Quantity:   outcome.Quantity,
	})
}

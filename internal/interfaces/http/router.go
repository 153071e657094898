package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/traslados-api/internal/application/monitor"
	"github.com/jhoicas/traslados-api/internal/application/transfer"
	"github.com/jhoicas/traslados-api/internal/application/validation"
)

// RouterDeps dependencias para el router. Monitor es opcional: sin él no se
// registran las rutas del monitor de inventario.
type RouterDeps struct {
	Coordinator      *transfer.Coordinator
	Validator        *validation.StockValidator
	Monitor          *monitor.InventoryMonitor
	DefaultThreshold int
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Traslados
	transfers := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.Coordinator)
	transfers.Post("/", transferHandler.Execute)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/pending", transferHandler.ListPending)
	transfers.Post("/process", transferHandler.Process)

	// Aprobación/rechazo: solo admin o supervisor
	approvals := transfers.Group("/", RequireRole("admin", "supervisor"))
	approvals.Post("/:id/approve", transferHandler.Approve)
	approvals.Post("/:id/reject", transferHandler.Reject)

	// Stock, precios, configuración y auditoría
	stockHandler := NewStockHandler(deps.Coordinator, deps.Validator)
	stock := api.Group("/stock")
	stock.Get("/totals/:sku", stockHandler.GetTotalStock)
	stock.Get("/:warehouse_id/:sku", stockHandler.GetStock)
	stock.Put("/", stockHandler.SetStock)
	stock.Put("/prices", stockHandler.SetPrice)

	config := api.Group("/config")
	config.Get("/approvals", stockHandler.GetApprovalConfig)
	config.Put("/approvals", RequireRole("admin", "supervisor"), stockHandler.UpdateApprovalConfig)

	audit := api.Group("/audit")
	audit.Get("/", stockHandler.GetAuditLog)
	audit.Post("/verification", stockHandler.DailyVerification)

	// Monitor de inventario
	if deps.Monitor != nil {
		monitorHandler := NewMonitorHandler(deps.Monitor, deps.DefaultThreshold)
		api.Get("/warehouses", monitorHandler.ListWarehouses)
		mon := api.Group("/monitor")
		mon.Get("/alerts", monitorHandler.DetectAlerts)
		mon.Put("/thresholds", monitorHandler.SetThreshold)
	}
}

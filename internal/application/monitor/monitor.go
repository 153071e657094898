package monitor

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/traslados-api/internal/domain"
	"github.com/jhoicas/traslados-api/internal/domain/entity"
)

const actorName = "InventoryMonitor"

// Broadcaster puerto hacia el bus de mensajes para difundir alertas.
type Broadcaster interface {
	BroadcastAlert(sender string, payload entity.AlertPayload) []entity.AgentMessage
}

// Summary resultado de un ciclo de monitoreo.
type Summary struct {
	ItemsChecked int
	Alerts       []entity.StockAlert
	Notified     int
}

// InventoryMonitor vigila niveles de stock contra umbrales mínimos por celda
// y difunde alertas de stock crítico por el bus. Mantiene su propia vista del
// inventario (alimentada por el almacén externo), separada del ledger
// autoritativo del coordinador.
type InventoryMonitor struct {
	mu         sync.Mutex
	thresholds map[entity.StockKey]int
	inventory  map[entity.StockKey]entity.InventoryItem
	warehouses map[string]entity.Warehouse

	bus Broadcaster
	log zerolog.Logger
}

// NewInventoryMonitor construye el monitor. bus puede ser nil si no se
// difunden alertas.
func NewInventoryMonitor(bus Broadcaster, log zerolog.Logger) *InventoryMonitor {
	return &InventoryMonitor{
		thresholds: make(map[entity.StockKey]int),
		inventory:  make(map[entity.StockKey]entity.InventoryItem),
		warehouses: make(map[string]entity.Warehouse),
		bus:        bus,
		log:        log.With().Str("actor", actorName).Logger(),
	}
}

// RegisterWarehouse registra (o actualiza) la ficha de una bodega conocida.
func (m *InventoryMonitor) RegisterWarehouse(w entity.Warehouse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warehouses[w.ID] = w
}

// Warehouses devuelve las bodegas conocidas ordenadas por ID.
func (m *InventoryMonitor) Warehouses() []entity.Warehouse {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Warehouse, 0, len(m.warehouses))
	for _, w := range m.warehouses {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SetThreshold fija el umbral mínimo de una celda.
func (m *InventoryMonitor) SetThreshold(warehouseID, sku string, threshold int) error {
	if threshold < 0 {
		return fmt.Errorf("%w: el umbral no puede ser negativo (%d)", domain.ErrValidation, threshold)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.thresholds[entity.StockKey{WarehouseID: warehouseID, SKU: sku}] = threshold
	return nil
}

// GetThreshold devuelve el umbral de una celda si está definido.
func (m *InventoryMonitor) GetThreshold(warehouseID, sku string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.thresholds[entity.StockKey{WarehouseID: warehouseID, SKU: sku}]
	return t, ok
}

// UpdateStock actualiza la vista del monitor para una celda.
func (m *InventoryMonitor) UpdateStock(warehouseID, sku string, quantity int) entity.InventoryItem {
	item := entity.InventoryItem{
		WarehouseID: warehouseID,
		SKU:         sku,
		Quantity:    quantity,
		LastUpdated: time.Now().UTC(),
	}
	m.mu.Lock()
	m.inventory[item.Key()] = item
	m.mu.Unlock()
	return item
}

// GetStock devuelve la vista del monitor para una celda.
func (m *InventoryMonitor) GetStock(warehouseID, sku string) (entity.InventoryItem, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.inventory[entity.StockKey{WarehouseID: warehouseID, SKU: sku}]
	return item, ok
}

// WarehouseInventory vista completa de una bodega.
func (m *InventoryMonitor) WarehouseInventory(warehouseID string) []entity.InventoryItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.InventoryItem
	for key, item := range m.inventory {
		if key.WarehouseID == warehouseID {
			out = append(out, item)
		}
	}
	return out
}

// DetectCriticalStock recorre la vista y genera una alerta por cada celda
// bajo su umbral (el propio si está definido, defaultThreshold si no).
func (m *InventoryMonitor) DetectCriticalStock(defaultThreshold int) []entity.StockAlert {
	m.mu.Lock()
	var alerts []entity.StockAlert
	for key, item := range m.inventory {
		threshold, ok := m.thresholds[key]
		if !ok {
			threshold = defaultThreshold
		}
		if item.Quantity < threshold {
			alerts = append(alerts, entity.StockAlert{
				ID:              uuid.NewString(),
				WarehouseID:     key.WarehouseID,
				SKU:             key.SKU,
				CurrentQuantity: item.Quantity,
				Threshold:       threshold,
				Severity:        severityFor(item.Quantity, threshold),
				Timestamp:       time.Now().UTC(),
			})
		}
	}
	m.mu.Unlock()

	if len(alerts) > 0 {
		m.log.Info().Int("alertas", len(alerts)).Msg("stock crítico detectado")
	}
	return alerts
}

// severityFor bandas de severidad según la fracción del umbral restante.
func severityFor(quantity, threshold int) entity.AlertSeverity {
	if quantity == 0 {
		return entity.SeverityCritical
	}
	ratio := float64(quantity) / float64(threshold)
	switch {
	case ratio < 0.25:
		return entity.SeverityHigh
	case ratio < 0.5:
		return entity.SeverityMedium
	default:
		return entity.SeverityLow
	}
}

// NotifyLowStock difunde cada alerta por el bus; devuelve cuántas se
// difundieron.
func (m *InventoryMonitor) NotifyLowStock(alerts []entity.StockAlert) int {
	if m.bus == nil {
		return 0
	}
	for _, alert := range alerts {
		m.bus.BroadcastAlert(actorName, entity.AlertPayload{Alert: alert})
	}
	return len(alerts)
}

// Process ciclo completo: detectar stock crítico y difundir alertas.
func (m *InventoryMonitor) Process(defaultThreshold int) Summary {
	alerts := m.DetectCriticalStock(defaultThreshold)
	notified := m.NotifyLowStock(alerts)

	m.mu.Lock()
	checked := len(m.inventory)
	m.mu.Unlock()

	return Summary{ItemsChecked: checked, Alerts: alerts, Notified: notified}
}

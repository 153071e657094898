package validation

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/traslados-api/internal/domain/entity"
)

// Result resultado estructurado de una validación: válida o lista de errores.
type Result struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

func resultFrom(errs []string) Result {
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// Discrepancy diferencia entre el total esperado y el real de un SKU.
type Discrepancy struct {
	SKU        string
	Expected   int
	Actual     int
	Difference int
}

// VerificationReport resultado de la verificación diaria de totales.
type VerificationReport struct {
	VerifiedAt    time.Time
	SKUsChecked   int
	Discrepancies []Discrepancy
	AllValid      bool
}

// StockValidator valida invariantes de stock y mantiene el audit log
// append-only. No posee stock autoritativo: trabaja sobre snapshots que le
// entrega el coordinador.
type StockValidator struct {
	mu            sync.Mutex
	auditLog      []entity.AuditLogEntry
	snapshot      map[entity.StockKey]int
	totalRegistry map[string]int
	log           zerolog.Logger
}

// NewStockValidator construye el validador.
func NewStockValidator(log zerolog.Logger) *StockValidator {
	return &StockValidator{
		snapshot:      make(map[entity.StockKey]int),
		totalRegistry: make(map[string]int),
		log:           log,
	}
}

// ValidateAtomicTransfer verifica que un traslado pueda aplicarse como unidad
// atómica: cantidad positiva, bodegas distintas, stock suficiente en origen y
// que el origen no quede negativo.
func (v *StockValidator) ValidateAtomicTransfer(
	sourceWarehouseID, targetWarehouseID, sku string,
	quantity int,
	stock map[entity.StockKey]int,
) Result {
	var errs []string

	if quantity <= 0 {
		errs = append(errs, fmt.Sprintf("la cantidad debe ser positiva: %d", quantity))
	}
	if sourceWarehouseID == targetWarehouseID {
		errs = append(errs, "bodega origen y destino no pueden ser la misma")
	}

	sourceStock := stock[entity.StockKey{WarehouseID: sourceWarehouseID, SKU: sku}]
	if sourceStock < quantity {
		errs = append(errs, fmt.Sprintf(
			"stock insuficiente: %s/%s disponible=%d, solicitado=%d",
			sourceWarehouseID, sku, sourceStock, quantity,
		))
	}
	if sourceStock-quantity < 0 {
		errs = append(errs, "el traslado dejaría stock negativo en la bodega origen")
	}

	return resultFrom(errs)
}

// CheckNoNegativeStock recorre un snapshot completo y reporta toda celda
// bajo cero (invariante de no-negatividad).
func (v *StockValidator) CheckNoNegativeStock(stock map[entity.StockKey]int) Result {
	var errs []string
	for key, qty := range stock {
		if qty < 0 {
			errs = append(errs, fmt.Sprintf(
				"stock negativo detectado: %s/%s = %d", key.WarehouseID, key.SKU, qty,
			))
		}
	}
	return resultFrom(errs)
}

// VerifyStockConservation verifica que el total de un SKU en todas las bodegas
// sea el mismo antes y después de un traslado.
func (v *StockValidator) VerifyStockConservation(
	sku string,
	before, after map[entity.StockKey]int,
) Result {
	totalBefore := totalFor(before, sku)
	totalAfter := totalFor(after, sku)

	var errs []string
	if totalBefore != totalAfter {
		errs = append(errs, fmt.Sprintf(
			"violación de conservación de stock: %s total antes=%d, total después=%d",
			sku, totalBefore, totalAfter,
		))
	}
	return resultFrom(errs)
}

func totalFor(stock map[entity.StockKey]int, sku string) int {
	total := 0
	for key, qty := range stock {
		if key.SKU == sku {
			total += qty
		}
	}
	return total
}

// RegisterTotalStock registra el total esperado de un SKU para la
// verificación diaria.
func (v *StockValidator) RegisterTotalStock(sku string, total int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.totalRegistry[sku] = total
}

// DailyStockVerification compara los totales registrados contra los reales
// del snapshot actual y reporta cada discrepancia con su diferencia con signo.
func (v *StockValidator) DailyStockVerification(stock map[entity.StockKey]int) VerificationReport {
	actualTotals := make(map[string]int)
	for key, qty := range stock {
		actualTotals[key.SKU] += qty
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	report := VerificationReport{
		VerifiedAt:  time.Now().UTC(),
		SKUsChecked: len(v.totalRegistry),
	}
	for sku, expected := range v.totalRegistry {
		actual := actualTotals[sku]
		if actual != expected {
			report.Discrepancies = append(report.Discrepancies, Discrepancy{
				SKU:        sku,
				Expected:   expected,
				Actual:     actual,
				Difference: actual - expected,
			})
		}
	}
	report.AllValid = len(report.Discrepancies) == 0

	if !report.AllValid {
		v.log.Warn().
			Int("discrepancias", len(report.Discrepancies)).
			Msg("verificación diaria de stock con diferencias")
	}
	return report
}

// LogStockChange registra una mutación de stock en el audit log.
// Best-effort: nunca falla ni bloquea la operación que la reporta.
func (v *StockValidator) LogStockChange(
	operationType, warehouseID, sku string,
	quantityBefore, quantityAfter int,
	triggeredBy, transferID string,
) entity.AuditLogEntry {
	entry := entity.AuditLogEntry{
		ID:             uuid.NewString(),
		OperationType:  operationType,
		WarehouseID:    warehouseID,
		SKU:            sku,
		QuantityBefore: quantityBefore,
		QuantityAfter:  quantityAfter,
		ChangeAmount:   quantityAfter - quantityBefore,
		TriggeredBy:    triggeredBy,
		TransferID:     transferID,
		Timestamp:      time.Now().UTC(),
	}

	v.mu.Lock()
	v.auditLog = append(v.auditLog, entry)
	v.mu.Unlock()

	v.log.Debug().
		Str("operacion", operationType).
		Str("bodega", warehouseID).
		Str("sku", sku).
		Int("antes", quantityBefore).
		Int("despues", quantityAfter).
		Str("actor", triggeredBy).
		Msg("mutación de stock auditada")
	return entry
}

// GetAuditLog devuelve el audit log, filtrable por bodega y/o SKU
// (cadena vacía = sin filtro).
func (v *StockValidator) GetAuditLog(warehouseID, sku string) []entity.AuditLogEntry {
	v.mu.Lock()
	defer v.mu.Unlock()

	entries := make([]entity.AuditLogEntry, 0, len(v.auditLog))
	for _, e := range v.auditLog {
		if warehouseID != "" && e.WarehouseID != warehouseID {
			continue
		}
		if sku != "" && e.SKU != sku {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// TakeSnapshot guarda una copia del snapshot de stock entregado, para
// verificaciones de conservación posteriores.
func (v *StockValidator) TakeSnapshot(stock map[entity.StockKey]int) {
	copied := make(map[entity.StockKey]int, len(stock))
	for k, q := range stock {
		copied[k] = q
	}
	v.mu.Lock()
	v.snapshot = copied
	v.mu.Unlock()
}

// GetSnapshot devuelve una copia del último snapshot tomado.
func (v *StockValidator) GetSnapshot() map[entity.StockKey]int {
	v.mu.Lock()
	defer v.mu.Unlock()
	copied := make(map[entity.StockKey]int, len(v.snapshot))
	for k, q := range v.snapshot {
		copied[k] = q
	}
	return copied
}

package transfer

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/traslados-api/internal/application/validation"
	"github.com/jhoicas/traslados-api/internal/domain"
	"github.com/jhoicas/traslados-api/internal/domain/entity"
	policy "github.com/jhoicas/traslados-api/internal/domain/transfer"
)

const actorName = "TransferCoordinator"

// Policy constantes de política del coordinador. Los defaults preservan el
// comportamiento histórico: el origen retiene el 20% de su stock y la
// alternativa de rechazo propone la mitad de la cantidad.
type Policy struct {
	RetentionRatio     float64
	AlternativeDivisor int
}

// DefaultPolicy política por defecto.
func DefaultPolicy() Policy {
	return Policy{RetentionRatio: 0.2, AlternativeDivisor: 2}
}

// TransferNeed necesidad de traslado detectada para una celda de stock.
type TransferNeed struct {
	WarehouseID     string
	SKU             string
	CurrentStock    int
	Threshold       int
	Deficit         int
	PriorityScore   float64
	AgingPriority   float64
	IsAgingCritical bool
}

// ProcessAction variantes de resultado del pipeline Process.
type ProcessAction string

const (
	ActionNone         ProcessAction = "none"
	ActionNoSource     ProcessAction = "no_source"
	ActionInsufficient ProcessAction = "insufficient"
	ActionTransferred  ProcessAction = "transferred"
)

// ProcessOutcome resultado discriminado del pipeline: los casos "no hay acción
// viable" son variantes, no errores.
type ProcessOutcome struct {
	Action     ProcessAction
	Reason     string
	TransferID string
	Status     entity.TransferStatus
	Quantity   int
}

// Coordinator coordina traslados entre bodegas: posee el ledger autoritativo
// en memoria, evalúa necesidad, selecciona origen/destino, aplica la política
// de aprobación y ejecuta la mutación atómica de dos celdas con rollback.
//
// El mutex interno protege los mapas del coordinador (integridad de memoria);
// NO sustituye los locks por recurso que los llamadores deben tomar alrededor
// de secuencias leer-luego-escribir sobre un par de celdas.
type Coordinator struct {
	mu             sync.Mutex
	stock          map[entity.StockKey]int
	prices         map[string]decimal.Decimal
	transfers      []*entity.TransferRequest
	approvalQueue  []*entity.TransferRequest
	approvalConfig entity.ApprovalConfig

	decMu     sync.Mutex
	decisions []entity.Decision

	policy    Policy
	validator *validation.StockValidator
	log       zerolog.Logger
}

// NewCoordinator construye el coordinador. El validador registra el audit log
// de cada mutación; con nil se construye uno propio.
func NewCoordinator(pol Policy, validator *validation.StockValidator, log zerolog.Logger) *Coordinator {
	if pol.RetentionRatio <= 0 || pol.RetentionRatio >= 1 {
		pol.RetentionRatio = DefaultPolicy().RetentionRatio
	}
	if pol.AlternativeDivisor <= 0 {
		pol.AlternativeDivisor = DefaultPolicy().AlternativeDivisor
	}
	if validator == nil {
		validator = validation.NewStockValidator(log)
	}
	return &Coordinator{
		stock:          make(map[entity.StockKey]int),
		prices:         make(map[string]decimal.Decimal),
		approvalConfig: entity.DefaultApprovalConfig(),
		policy:         pol,
		validator:      validator,
		log:            log.With().Str("actor", actorName).Logger(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger y configuración
// ──────────────────────────────────────────────────────────────────────────────

// SetStock fija la cantidad de una celda de stock (alimentado por el almacén
// externo vía este setter; el motor nunca consulta el almacén por sí mismo).
func (c *Coordinator) SetStock(warehouseID, sku string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stock[entity.StockKey{WarehouseID: warehouseID, SKU: sku}] = quantity
}

// GetStock devuelve la cantidad actual de una celda (lectura pura).
func (c *Coordinator) GetStock(warehouseID, sku string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stock[entity.StockKey{WarehouseID: warehouseID, SKU: sku}]
}

// GetTotalStock total de un SKU en todas las bodegas (lectura pura).
func (c *Coordinator) GetTotalStock(sku string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for key, qty := range c.stock {
		if key.SKU == sku {
			total += qty
		}
	}
	return total
}

// StockSnapshot copia del ledger completo, para el validador.
func (c *Coordinator) StockSnapshot() map[entity.StockKey]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make(map[entity.StockKey]int, len(c.stock))
	for k, q := range c.stock {
		snapshot[k] = q
	}
	return snapshot
}

// SetProductPrice fija el precio unitario de un SKU.
func (c *Coordinator) SetProductPrice(sku string, price decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prices[sku] = price
}

// SetApprovalConfig reemplaza la política de aprobación vigente.
func (c *Coordinator) SetApprovalConfig(cfg entity.ApprovalConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.approvalConfig = cfg
}

// GetApprovalConfig devuelve la política de aprobación vigente.
func (c *Coordinator) GetApprovalConfig() entity.ApprovalConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.approvalConfig
}

// SetOperationMode cambia el modo de operación (autónomo/supervisado).
func (c *Coordinator) SetOperationMode(mode entity.OperationMode) {
	c.mu.Lock()
	c.approvalConfig.Mode = mode
	c.mu.Unlock()

	c.logDecision("mode_change",
		fmt.Sprintf("modo de operación cambiado a %s", mode),
		map[string]any{"mode": string(mode)},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluación de necesidad y selección de bodegas
// ──────────────────────────────────────────────────────────────────────────────

// EvaluateTransferNeed evalúa si una celda necesita traslado entrante.
// Devuelve nil si el stock actual alcanza el umbral; si no, la necesidad con
// el déficit y una prioridad compuesta 1 + aging + ventas/100.
func (c *Coordinator) EvaluateTransferNeed(
	warehouseID, sku string,
	threshold int,
	agingPriority, salesPotential float64,
) *TransferNeed {
	current := c.GetStock(warehouseID, sku)
	if current >= threshold {
		return nil
	}

	priority := 1.0
	if agingPriority > 0 {
		priority += agingPriority
	}
	if salesPotential > 0 {
		priority += salesPotential / 100.0
	}

	need := &TransferNeed{
		WarehouseID:   warehouseID,
		SKU:           sku,
		CurrentStock:  current,
		Threshold:     threshold,
		Deficit:       threshold - current,
		PriorityScore: math.Round(priority*1000) / 1000,
	}

	c.logDecision("transfer_need_evaluation",
		fmt.Sprintf("stock (%d) bajo el umbral (%d), déficit %d", current, threshold, need.Deficit),
		map[string]any{
			"warehouse_id": warehouseID,
			"sku":          sku,
			"deficit":      need.Deficit,
			"priority":     need.PriorityScore,
		},
	)
	return need
}

// SelectSourceWarehouse elige la bodega origen para cubrir un déficit.
// Candidatas: bodegas con el SKU, distintas del destino, que queden en o sobre
// safetyThreshold tras ceder requiredQty. Con scores de venta se prefiere el
// MENOR score (mover stock desde donde peor se vende), desempatando por mayor
// cantidad disponible; sin scores, la mayor cantidad disponible.
func (c *Coordinator) SelectSourceWarehouse(
	sku, targetWarehouseID string,
	requiredQty, safetyThreshold int,
	salesScores map[string]float64,
) (string, bool) {
	type candidate struct {
		warehouseID string
		quantity    int
		score       float64
	}

	c.mu.Lock()
	var candidates []candidate
	for key, qty := range c.stock {
		if key.SKU != sku || key.WarehouseID == targetWarehouseID {
			continue
		}
		if qty-safetyThreshold >= requiredQty {
			candidates = append(candidates, candidate{
				warehouseID: key.WarehouseID,
				quantity:    qty,
				score:       salesScores[key.WarehouseID],
			})
		}
	}
	c.mu.Unlock()

	if len(candidates) == 0 {
		return "", false
	}

	useScores := len(salesScores) > 0
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if useScores && a.score != b.score {
			return a.score < b.score
		}
		if a.quantity != b.quantity {
			return a.quantity > b.quantity
		}
		// la iteración del mapa no tiene orden: el id cierra el desempate
		return a.warehouseID < b.warehouseID
	})
	return candidates[0].warehouseID, true
}

// GetSafeTransferAmount cantidad máxima trasladable desde una bodega sin
// romper su piso de seguridad. Función pura sobre el ledger, sin efectos.
func (c *Coordinator) GetSafeTransferAmount(
	sourceWarehouseID, sku string,
	requestedQty, safetyThreshold int,
) int {
	available := c.GetStock(sourceWarehouseID, sku)
	return policy.SafeAmount(available, requestedQty, safetyThreshold)
}

// CalculateTransferQuantity acota el déficit solicitado para que el origen
// retenga al menos la fracción de retención de su stock previo.
func (c *Coordinator) CalculateTransferQuantity(
	sourceWarehouseID, targetWarehouseID, sku string,
	deficit int,
) int {
	sourceStock := c.GetStock(sourceWarehouseID, sku)
	max := policy.MaxTransferable(sourceStock, c.policy.RetentionRatio)
	qty := deficit
	if qty > max {
		qty = max
	}
	if qty < 0 {
		return 0
	}
	return qty
}

// SelectTargetWarehouse elige el destino con mayor potencial de venta entre
// las predicciones candidatas (excluyendo el origen). Empates: primera vista.
func (c *Coordinator) SelectTargetWarehouse(
	sku, sourceWarehouseID string,
	candidatePredictions []entity.SalesPrediction,
) (string, bool) {
	var best *entity.SalesPrediction
	for i := range candidatePredictions {
		p := &candidatePredictions[i]
		if p.WarehouseID == sourceWarehouseID {
			continue
		}
		if best == nil || p.SalesPotentialScore > best.SalesPotentialScore {
			best = p
		}
	}
	if best == nil {
		return "", false
	}

	c.logDecision("target_warehouse_selection",
		fmt.Sprintf("mayor potencial de venta: %s (score %.1f)", best.WarehouseID, best.SalesPotentialScore),
		map[string]any{
			"sku":      sku,
			"selected": best.WarehouseID,
			"score":    best.SalesPotentialScore,
		},
	)
	return best.WarehouseID, true
}

// ──────────────────────────────────────────────────────────────────────────────
// Aprobación y ejecución
// ──────────────────────────────────────────────────────────────────────────────

// RequiresApproval indica si un traslado exige aprobación humana según la
// política vigente: nunca en modo autónomo; en supervisado, cuando el valor
// (precio × cantidad) o la cantidad alcanzan sus umbrales.
func (c *Coordinator) RequiresApproval(sku string, quantity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.approvalConfig.Mode == entity.ModeAutonomous {
		return false
	}
	totalValue := c.prices[sku].Mul(decimal.NewFromInt(int64(quantity)))
	if totalValue.GreaterThanOrEqual(c.approvalConfig.HighValueThreshold) {
		return true
	}
	return quantity >= c.approvalConfig.HighQuantityThreshold
}

// ValidateTransfer valida la solicitud antes de crearla: cantidad positiva,
// bodegas distintas y stock suficiente en origen.
func (c *Coordinator) ValidateTransfer(sourceWarehouseID, targetWarehouseID, sku string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser positiva (%d)", domain.ErrValidation, quantity)
	}
	if sourceWarehouseID == targetWarehouseID {
		return fmt.Errorf("%w: bodega origen y destino no pueden ser la misma", domain.ErrValidation)
	}
	available := c.GetStock(sourceWarehouseID, sku)
	if available < quantity {
		return fmt.Errorf("%w: %s/%s disponible=%d, solicitado=%d",
			domain.ErrInsufficientStock, sourceWarehouseID, sku, available, quantity)
	}
	return nil
}

// ExecuteTransfer valida, crea la solicitud y, si no requiere aprobación,
// aplica el commit atómico. Si la política exige aprobación, el traslado
// queda en awaiting_approval y NO se muta stock.
func (c *Coordinator) ExecuteTransfer(
	sourceWarehouseID, targetWarehouseID, sku string,
	quantity int,
	reason string,
	agingPriority, salesPotential float64,
) (*entity.TransferRequest, error) {
	if err := c.ValidateTransfer(sourceWarehouseID, targetWarehouseID, sku, quantity); err != nil {
		return nil, err
	}

	transfer := &entity.TransferRequest{
		ID:                uuid.NewString(),
		SourceWarehouseID: sourceWarehouseID,
		TargetWarehouseID: targetWarehouseID,
		SKU:               sku,
		Quantity:          quantity,
		Status:            entity.TransferPending,
		Reason:            reason,
		PriorityScore:     agingPriority + salesPotential/100.0,
		CreatedAt:         time.Now().UTC(),
	}

	if c.RequiresApproval(sku, quantity) {
		transfer.Status = entity.TransferAwaitingApproval
		transfer.RequiresApproval = true

		c.mu.Lock()
		c.approvalQueue = append(c.approvalQueue, transfer)
		c.transfers = append(c.transfers, transfer)
		c.mu.Unlock()

		c.logDecision("transfer_awaiting_approval",
			"traslado de alto valor, a la espera de aprobación humana",
			map[string]any{"transfer_id": transfer.ID, "sku": sku, "quantity": quantity},
		)
		return transfer, nil
	}

	return c.commitTransfer(transfer)
}

// commitTransfer aplica el débito/crédito de las dos celdas como unidad:
// o ambas cambian o ninguna. El chequeo de negatividad tras aplicar es una
// doble verificación defensiva del invariante; si dispara, ambas celdas
// vuelven a su valor previo antes de propagar el error.
func (c *Coordinator) commitTransfer(transfer *entity.TransferRequest) (*entity.TransferRequest, error) {
	srcKey := entity.StockKey{WarehouseID: transfer.SourceWarehouseID, SKU: transfer.SKU}
	tgtKey := entity.StockKey{WarehouseID: transfer.TargetWarehouseID, SKU: transfer.SKU}

	c.mu.Lock()
	sourceBefore := c.stock[srcKey]
	targetBefore := c.stock[tgtKey]

	if sourceBefore < transfer.Quantity {
		transfer.Status = entity.TransferFailed
		c.appendTransferLocked(transfer)
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: commit atómico fallido %s/%s disponible=%d, solicitado=%d",
			domain.ErrInsufficientStock,
			transfer.SourceWarehouseID, transfer.SKU, sourceBefore, transfer.Quantity)
	}

	c.stock[srcKey] = sourceBefore - transfer.Quantity
	c.stock[tgtKey] = targetBefore + transfer.Quantity

	if c.stock[srcKey] < 0 {
		c.stock[srcKey] = sourceBefore
		c.stock[tgtKey] = targetBefore
		transfer.Status = entity.TransferRolledBack
		c.appendTransferLocked(transfer)
		c.mu.Unlock()

		c.validator.LogStockChange("transfer_rollback",
			transfer.SourceWarehouseID, transfer.SKU, sourceBefore, sourceBefore, actorName, transfer.ID)
		c.validator.LogStockChange("transfer_rollback",
			transfer.TargetWarehouseID, transfer.SKU, targetBefore, targetBefore, actorName, transfer.ID)
		return nil, fmt.Errorf("%w: stock negativo detectado en commit, rollback aplicado", domain.ErrValidation)
	}

	now := time.Now().UTC()
	transfer.Status = entity.TransferCompleted
	transfer.CompletedAt = &now
	c.appendTransferLocked(transfer)
	sourceAfter := c.stock[srcKey]
	targetAfter := c.stock[tgtKey]
	c.mu.Unlock()

	c.validator.LogStockChange("transfer_out",
		transfer.SourceWarehouseID, transfer.SKU, sourceBefore, sourceAfter, actorName, transfer.ID)
	c.validator.LogStockChange("transfer_in",
		transfer.TargetWarehouseID, transfer.SKU, targetBefore, targetAfter, actorName, transfer.ID)

	c.logDecision("transfer_completed",
		fmt.Sprintf("traslado completado: %s -> %s, %s x%d",
			transfer.SourceWarehouseID, transfer.TargetWarehouseID, transfer.SKU, transfer.Quantity),
		map[string]any{
			"transfer_id":        transfer.ID,
			"source_stock_after": sourceAfter,
			"target_stock_after": targetAfter,
		},
	)
	return transfer, nil
}

// appendTransferLocked agrega la solicitud al historial si no está ya
// (los traslados aprobados ya fueron registrados al encolarse).
// Requiere c.mu tomado.
func (c *Coordinator) appendTransferLocked(transfer *entity.TransferRequest) {
	for _, t := range c.transfers {
		if t.ID == transfer.ID {
			return
		}
	}
	c.transfers = append(c.transfers, transfer)
}

// ApproveTransfer aprueba un traslado en awaiting_approval y ejecuta el
// commit atómico.
func (c *Coordinator) ApproveTransfer(transferID string) (*entity.TransferRequest, error) {
	transfer := c.findTransfer(transferID)
	if transfer == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransferNotFound, transferID)
	}
	if transfer.Status != entity.TransferAwaitingApproval {
		return nil, fmt.Errorf("%w: el traslado no espera aprobación (estado %s)",
			domain.ErrInvalidTransferState, transfer.Status)
	}

	transfer.Status = entity.TransferApproved
	return c.commitTransfer(transfer)
}

// RejectTransfer rechaza un traslado en awaiting_approval y sintetiza hasta
// dos alternativas: misma ruta a la mitad de cantidad y/o una bodega origen
// distinta si existe.
func (c *Coordinator) RejectTransfer(transferID string) ([]entity.TransferAlternative, error) {
	transfer := c.findTransfer(transferID)
	if transfer == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransferNotFound, transferID)
	}
	if transfer.Status != entity.TransferAwaitingApproval {
		return nil, fmt.Errorf("%w: solo puede rechazarse un traslado en awaiting_approval (estado %s)",
			domain.ErrInvalidTransferState, transfer.Status)
	}

	transfer.Status = entity.TransferRejected

	var alternatives []entity.TransferAlternative

	halfQty := policy.ReducedQuantity(transfer.Quantity, c.policy.AlternativeDivisor)
	if halfQty > 0 {
		alternatives = append(alternatives, entity.TransferAlternative{
			Type:              entity.AlternativeReducedQuantity,
			Description:       fmt.Sprintf("traslado con cantidad reducida: %d unidades", halfQty),
			SourceWarehouseID: transfer.SourceWarehouseID,
			TargetWarehouseID: transfer.TargetWarehouseID,
			SKU:               transfer.SKU,
			Quantity:          halfQty,
		})
	}

	altSource, ok := c.SelectSourceWarehouse(transfer.SKU, transfer.TargetWarehouseID, transfer.Quantity, 0, nil)
	if ok && altSource != transfer.SourceWarehouseID {
		alternatives = append(alternatives, entity.TransferAlternative{
			Type:              entity.AlternativeDifferentSource,
			Description:       fmt.Sprintf("bodega origen alternativa: %s", altSource),
			SourceWarehouseID: altSource,
			TargetWarehouseID: transfer.TargetWarehouseID,
			SKU:               transfer.SKU,
			Quantity:          transfer.Quantity,
		})
	}

	c.logDecision("transfer_rejected_alternatives",
		"traslado rechazado, alternativas propuestas",
		map[string]any{"transfer_id": transferID, "alternatives": len(alternatives)},
	)
	return alternatives, nil
}

func (c *Coordinator) findTransfer(transferID string) *entity.TransferRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.transfers {
		if t.ID == transferID {
			return t
		}
	}
	for _, t := range c.approvalQueue {
		if t.ID == transferID {
			return t
		}
	}
	return nil
}

// GetPendingApprovals traslados a la espera de aprobación humana.
func (c *Coordinator) GetPendingApprovals() []*entity.TransferRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	pending := make([]*entity.TransferRequest, 0, len(c.approvalQueue))
	for _, t := range c.approvalQueue {
		if t.Status == entity.TransferAwaitingApproval {
			pending = append(pending, t)
		}
	}
	return pending
}

// GetAllTransfers historial completo de traslados.
func (c *Coordinator) GetAllTransfers() []*entity.TransferRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*entity.TransferRequest, len(c.transfers))
	copy(out, c.transfers)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Priorización y pipeline
// ──────────────────────────────────────────────────────────────────────────────

// PrioritizeTransferWithAging une cada necesidad con su señal de
// envejecimiento por (bodega, SKU) y reordena: críticas primero, luego por
// prioridad de envejecimiento descendente. Sin señal: prioridad 0, no crítica.
func (c *Coordinator) PrioritizeTransferWithAging(
	needs []TransferNeed,
	agingSignals []entity.AgingInfo,
) []TransferNeed {
	agingMap := make(map[entity.StockKey]entity.AgingInfo, len(agingSignals))
	for _, a := range agingSignals {
		agingMap[entity.StockKey{WarehouseID: a.WarehouseID, SKU: a.SKU}] = a
	}

	out := make([]TransferNeed, len(needs))
	copy(out, needs)
	for i := range out {
		key := entity.StockKey{WarehouseID: out[i].WarehouseID, SKU: out[i].SKU}
		if aging, ok := agingMap[key]; ok {
			out[i].AgingPriority = aging.PriorityScore
			out[i].IsAgingCritical = aging.IsCritical
		} else {
			out[i].AgingPriority = 0
			out[i].IsAgingCritical = false
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsAgingCritical != out[j].IsAgingCritical {
			return out[i].IsAgingCritical
		}
		return out[i].AgingPriority > out[j].AgingPriority
	})
	return out
}

// Process pipeline de conveniencia: evaluar necesidad → elegir origen →
// acotar cantidad → ejecutar. Los casos sin acción viable son variantes del
// resultado; solo las violaciones de contrato devuelven error.
func (c *Coordinator) Process(warehouseID, sku string, threshold int) (ProcessOutcome, error) {
	need := c.EvaluateTransferNeed(warehouseID, sku, threshold, 0, 0)
	if need == nil {
		return ProcessOutcome{Action: ActionNone, Reason: "stock sobre el umbral"}, nil
	}

	source, ok := c.SelectSourceWarehouse(sku, warehouseID, need.Deficit, 0, nil)
	if !ok {
		return ProcessOutcome{Action: ActionNoSource, Reason: "sin bodega origen apta"}, nil
	}

	qty := c.CalculateTransferQuantity(source, warehouseID, sku, need.Deficit)
	if qty <= 0 {
		return ProcessOutcome{Action: ActionInsufficient, Reason: "cantidad trasladable nula"}, nil
	}

	transfer, err := c.ExecuteTransfer(source, warehouseID, sku, qty, "auto_transfer", 0, 0)
	if err != nil {
		return ProcessOutcome{}, err
	}
	return ProcessOutcome{
		Action:     ActionTransferred,
		TransferID: transfer.ID,
		Status:     transfer.Status,
		Quantity:   qty,
	}, nil
}

// Decisions copia de la traza de decisiones del motor.
func (c *Coordinator) Decisions() []entity.Decision {
	c.decMu.Lock()
	defer c.decMu.Unlock()
	out := make([]entity.Decision, len(c.decisions))
	copy(out, c.decisions)
	return out
}

// Validator acceso al validador asociado (audit log).
func (c *Coordinator) Validator() *validation.StockValidator {
	return c.validator
}

func (c *Coordinator) logDecision(decisionType, reasoning string, details map[string]any) {
	decision := entity.Decision{
		ID:           uuid.NewString(),
		Actor:        actorName,
		DecisionType: decisionType,
		Reasoning:    reasoning,
		Details:      details,
		Timestamp:    time.Now().UTC(),
	}

	c.decMu.Lock()
	c.decisions = append(c.decisions, decision)
	c.decMu.Unlock()

	c.log.Info().
		Str("decision", decisionType).
		Fields(details).
		Msg(reasoning)
}

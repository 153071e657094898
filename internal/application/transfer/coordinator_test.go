package transfer_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/traslados-api/internal/application/transfer"
	"github.com/jhoicas/traslados-api/internal/application/validation"
	"github.com/jhoicas/traslados-api/internal/domain"
	"github.com/jhoicas/traslados-api/internal/domain/entity"
)

func newCoordinator() *transfer.Coordinator {
	return transfer.NewCoordinator(transfer.DefaultPolicy(), validation.NewStockValidator(zerolog.Nop()), zerolog.Nop())
}

// newAutonomousCoordinator no exige aprobaciones: todo traslado válido se
// aplica directo.
func newAutonomousCoordinator() *transfer.Coordinator {
	c := newCoordinator()
	cfg := c.GetApprovalConfig()
	cfg.Mode = entity.ModeAutonomous
	c.SetApprovalConfig(cfg)
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluación de necesidad
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluateTransferNeed_StockSobreElUmbral(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH1", "SKU1", 50)

	need := c.EvaluateTransferNeed("WH1", "SKU1", 40, 0, 0)

	assert.Nil(t, need, "sin déficit no hay necesidad de traslado")
}

func TestEvaluateTransferNeed_StockEnElUmbralExacto(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH1", "SKU1", 40)

	assert.Nil(t, c.EvaluateTransferNeed("WH1", "SKU1", 40, 0, 0),
		"stock igual al umbral no genera necesidad")
}

func TestEvaluateTransferNeed_CalculaDeficitYPrioridad(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH1", "SKU1", 5)

	need := c.EvaluateTransferNeed("WH1", "SKU1", 40, 0, 0)

	require.NotNil(t, need)
	assert.Equal(t, 35, need.Deficit)
	assert.Equal(t, 5, need.CurrentStock)
	assert.InDelta(t, 1.0, need.PriorityScore, 1e-9, "prioridad base sin señales")
}

func TestEvaluateTransferNeed_PrioridadCompuesta(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH1", "SKU1", 5)

	// 1 + aging 2.5 + ventas 80/100 = 4.3
	need := c.EvaluateTransferNeed("WH1", "SKU1", 40, 2.5, 80)

	require.NotNil(t, need)
	assert.InDelta(t, 4.3, need.PriorityScore, 1e-9)
}

func TestEvaluateTransferNeed_CeldaInexistenteCuentaComoCero(t *testing.T) {
	c := newCoordinator()

	need := c.EvaluateTransferNeed("WH9", "SKU9", 10, 0, 0)

	require.NotNil(t, need)
	assert.Equal(t, 10, need.Deficit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Selección de bodega origen
// ──────────────────────────────────────────────────────────────────────────────

func TestSelectSourceWarehouse_SinScoresEligeMayorStock(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH1", "SKU1", 30)
	c.SetStock("WH2", "SKU1", 90)
	c.SetStock("WH3", "SKU1", 60)

	source, ok := c.SelectSourceWarehouse("SKU1", "WH-target", 10, 0, nil)

	require.True(t, ok)
	assert.Equal(t, "WH2", source)
}

func TestSelectSourceWarehouse_ExcluyeElDestino(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH1", "SKU1", 100)
	c.SetStock("WH2", "SKU1", 50)

	source, ok := c.SelectSourceWarehouse("SKU1", "WH1", 10, 0, nil)

	require.True(t, ok)
	assert.Equal(t, "WH2", source, "la bodega destino no puede ser origen de sí misma")
}

func TestSelectSourceWarehouse_RespetaElPisoDeSeguridad(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH1", "SKU1", 45)

	// 45 - 40 < 10: WH1 quedaría bajo el piso.
	_, ok := c.SelectSourceWarehouse("SKU1", "WH-target", 10, 40, nil)
	assert.False(t, ok)

	// 45 - 30 >= 10: califica.
	source, ok := c.SelectSourceWarehouse("SKU1", "WH-target", 10, 30, nil)
	require.True(t, ok)
	assert.Equal(t, "WH1", source)
}

func TestSelectSourceWarehouse_ConScoresPrefiereElMenor(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH-A", "SKU1", 80)
	c.SetStock("WH-B", "SKU1", 20)

	// WH-A vende mejor (score alto): el stock debe salir de WH-B, que vende peor.
	source, ok := c.SelectSourceWarehouse("SKU1", "WH-target", 10, 0, map[string]float64{
		"WH-A": 200,
		"WH-B": 150,
	})

	require.True(t, ok)
	assert.Equal(t, "WH-B", source)
}

func TestSelectSourceWarehouse_EmpateDeScoreDesempataPorStock(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH-A", "SKU1", 80)
	c.SetStock("WH-B", "SKU1", 20)

	source, ok := c.SelectSourceWarehouse("SKU1", "WH-target", 10, 0, map[string]float64{
		"WH-A": 100,
		"WH-B": 100,
	})

	require.True(t, ok)
	assert.Equal(t, "WH-A", source, "a igualdad de score gana la de mayor stock")
}

func TestSelectSourceWarehouse_SinCandidatas(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH1", "SKU1", 5)

	_, ok := c.SelectSourceWarehouse("SKU1", "WH-target", 50, 0, nil)

	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cantidades
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateTransferQuantity_RetieneElVeintePorCiento(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH1", "SKU1", 100)

	// Déficit enorme: el origen solo cede hasta el 80% de su stock.
	qty := c.CalculateTransferQuantity("WH1", "WH2", "SKU1", 500)

	assert.Equal(t, 80, qty)
}

func TestCalculateTransferQuantity_DeficitPequenoSaleCompleto(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH1", "SKU1", 100)

	assert.Equal(t, 35, c.CalculateTransferQuantity("WH1", "WH2", "SKU1", 35))
}

func TestCalculateTransferQuantity_OrigenSinStock(t *testing.T) {
	c := newCoordinator()

	assert.Equal(t, 0, c.CalculateTransferQuantity("WH1", "WH2", "SKU1", 35))
}

func TestGetSafeTransferAmount_AcotaPorElPiso(t *testing.T) {
	c := newCoordinator()
	c.SetStock("WH1", "SKU1", 100)

	assert.Equal(t, 60, c.GetSafeTransferAmount("WH1", "SKU1", 90, 40))
	assert.Equal(t, 30, c.GetSafeTransferAmount("WH1", "SKU1", 30, 40))
	assert.Equal(t, 0, c.GetSafeTransferAmount("WH1", "SKU1", 10, 150))
}

// ──────────────────────────────────────────────────────────────────────────────
// Selección de destino
// ──────────────────────────────────────────────────────────────────────────────

func TestSelectTargetWarehouse_EligeElMayorPotencial(t *testing.T) {
	c := newCoordinator()

	target, ok := c.SelectTargetWarehouse("SKU1", "WH-src", []entity.SalesPrediction{
		{WarehouseID: "WH1", SKU: "SKU1", SalesPotentialScore: 120},
		{WarehouseID: "WH2", SKU: "SKU1", SalesPotentialScore: 300},
		{WarehouseID: "WH3", SKU: "SKU1", SalesPotentialScore: 80},
	})

	require.True(t, ok)
	assert.Equal(t, "WH2", target)
}

func TestSelectTargetWarehouse_ExcluyeElOrigen(t *testing.T) {
	c := newCoordinator()

	target, ok := c.SelectTargetWarehouse("SKU1", "WH2", []entity.SalesPrediction{
		{WarehouseID: "WH1", SKU: "SKU1", SalesPotentialScore: 120},
		{WarehouseID: "WH2", SKU: "SKU1", SalesPotentialScore: 300},
	})

	require.True(t, ok)
	assert.Equal(t, "WH1", target)
}

func TestSelectTargetWarehouse_EmpateGanaLaPrimera(t *testing.T) {
	c := newCoordinator()

	target, ok := c.SelectTargetWarehouse("SKU1", "WH-src", []entity.SalesPrediction{
		{WarehouseID: "WH1", SKU: "SKU1", SalesPotentialScore: 100},
		{WarehouseID: "WH2", SKU: "SKU1", SalesPotentialScore: 100},
	})

	require.True(t, ok)
	assert.Equal(t, "WH1", target)
}

func TestSelectTargetWarehouse_SinCandidatas(t *testing.T) {
	c := newCoordinator()

	_, ok := c.SelectTargetWarehouse("SKU1", "WH1", nil)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de aprobación
// ──────────────────────────────────────────────────────────────────────────────

func TestRequiresApproval_ValorAltoEnModoSupervisado(t *testing.T) {
	c := newCoordinator()
	c.SetApprovalConfig(entity.ApprovalConfig{
		HighValueThreshold:    decimal.NewFromInt(5000),
		HighQuantityThreshold: 500,
		Mode:                  entity.ModeSupervised,
	})
	c.SetProductPrice("SKU1", decimal.NewFromInt(1000))

	// 10 x 1000 = 10000 >= 5000
	assert.True(t, c.RequiresApproval("SKU1", 10))
	// 4 x 1000 = 4000 < 5000 y 4 < 500
	assert.False(t, c.RequiresApproval("SKU1", 4))
}

func TestRequiresApproval_CantidadAlta(t *testing.T) {
	c := newCoordinator()
	c.SetApprovalConfig(entity.ApprovalConfig{
		HighValueThreshold:    decimal.NewFromInt(1000000),
		HighQuantityThreshold: 500,
		Mode:                  entity.ModeSupervised,
	})

	assert.True(t, c.RequiresApproval("SKU-sin-precio", 500))
	assert.False(t, c.RequiresApproval("SKU-sin-precio", 499))
}

func TestRequiresApproval_ModoAutonomoNuncaExige(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetProductPrice("SKU1", decimal.NewFromInt(99999))

	assert.False(t, c.RequiresApproval("SKU1", 1000))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ejecución y commit atómico
// ──────────────────────────────────────────────────────────────────────────────

func TestExecuteTransfer_AplicaAmbasCeldas(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 100)
	c.SetStock("WH2", "SKU1", 10)

	tr, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 40, "reposicion", 0, 0)

	require.NoError(t, err)
	assert.Equal(t, entity.TransferCompleted, tr.Status)
	require.NotNil(t, tr.CompletedAt)
	assert.Equal(t, 60, c.GetStock("WH1", "SKU1"))
	assert.Equal(t, 50, c.GetStock("WH2", "SKU1"))
}

func TestExecuteTransfer_ConservaElTotal(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 100)
	c.SetStock("WH2", "SKU1", 10)
	before := c.StockSnapshot()

	_, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 40, "reposicion", 0, 0)
	require.NoError(t, err)

	res := c.Validator().VerifyStockConservation("SKU1", before, c.StockSnapshot())
	assert.True(t, res.IsValid)
	assert.Equal(t, 110, c.GetTotalStock("SKU1"))
}

func TestExecuteTransfer_StockInsuficiente(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 10)

	_, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 40, "reposicion", 0, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, c.GetStock("WH1", "SKU1"), "un traslado rechazado no muta stock")
	assert.Equal(t, 0, c.GetStock("WH2", "SKU1"))
}

func TestExecuteTransfer_CantidadInvalida(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 100)

	_, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 0, "r", 0, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = c.ExecuteTransfer("WH1", "WH2", "SKU1", -3, "r", 0, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExecuteTransfer_MismaBodega(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 100)

	_, err := c.ExecuteTransfer("WH1", "WH1", "SKU1", 10, "r", 0, 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExecuteTransfer_RegistraAuditoriaDeAmbosLados(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 100)

	tr, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 40, "reposicion", 0, 0)
	require.NoError(t, err)

	entries := c.Validator().GetAuditLog("", "SKU1")
	require.Len(t, entries, 2)
	assert.Equal(t, "transfer_out", entries[0].OperationType)
	assert.Equal(t, -40, entries[0].ChangeAmount)
	assert.Equal(t, tr.ID, entries[0].TransferID)
	assert.Equal(t, "transfer_in", entries[1].OperationType)
	assert.Equal(t, 40, entries[1].ChangeAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de aprobación
// ──────────────────────────────────────────────────────────────────────────────

func TestExecuteTransfer_QuedaEnEsperaSinMutarStock(t *testing.T) {
	c := newCoordinator()
	c.SetApprovalConfig(entity.ApprovalConfig{
		HighValueThreshold:    decimal.NewFromInt(5000),
		HighQuantityThreshold: 500,
		Mode:                  entity.ModeSupervised,
	})
	c.SetProductPrice("SKU1", decimal.NewFromInt(1000))
	c.SetStock("WH1", "SKU1", 100)

	tr, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 10, "alto valor", 0, 0)

	require.NoError(t, err)
	assert.Equal(t, entity.TransferAwaitingApproval, tr.Status)
	assert.True(t, tr.RequiresApproval)
	assert.Equal(t, 100, c.GetStock("WH1", "SKU1"), "pendiente de aprobación: el stock no cambia")
	assert.Equal(t, 0, c.GetStock("WH2", "SKU1"))

	pending := c.GetPendingApprovals()
	require.Len(t, pending, 1)
	assert.Equal(t, tr.ID, pending[0].ID)
}

func TestApproveTransfer_CompletaElTraslado(t *testing.T) {
	c := newCoordinator()
	c.SetProductPrice("SKU1", decimal.NewFromInt(1000))
	c.SetStock("WH1", "SKU1", 100)

	tr, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 10, "alto valor", 0, 0)
	require.NoError(t, err)
	require.Equal(t, entity.TransferAwaitingApproval, tr.Status)

	approved, err := c.ApproveTransfer(tr.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.TransferCompleted, approved.Status)
	assert.Equal(t, 90, c.GetStock("WH1", "SKU1"))
	assert.Equal(t, 10, c.GetStock("WH2", "SKU1"))
	assert.Empty(t, c.GetPendingApprovals())
}

func TestApproveTransfer_NoExiste(t *testing.T) {
	c := newCoordinator()

	_, err := c.ApproveTransfer("no-existe")

	assert.ErrorIs(t, err, domain.ErrTransferNotFound)
}

func TestApproveTransfer_EstadoInvalido(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 100)

	tr, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 10, "r", 0, 0)
	require.NoError(t, err)
	require.Equal(t, entity.TransferCompleted, tr.Status)

	_, err = c.ApproveTransfer(tr.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransferState)

	// Idempotencia negativa: aprobar dos veces tampoco vale.
	c2 := newCoordinator()
	c2.SetProductPrice("SKU1", decimal.NewFromInt(1000))
	c2.SetStock("WH1", "SKU1", 100)
	tr2, err := c2.ExecuteTransfer("WH1", "WH2", "SKU1", 10, "r", 0, 0)
	require.NoError(t, err)
	_, err = c2.ApproveTransfer(tr2.ID)
	require.NoError(t, err)
	_, err = c2.ApproveTransfer(tr2.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransferState)
}

func TestRejectTransfer_ProponeAlternativas(t *testing.T) {
	c := newCoordinator()
	c.SetProductPrice("SKU1", decimal.NewFromInt(1000))
	c.SetStock("WH1", "SKU1", 100)
	c.SetStock("WH3", "SKU1", 300)

	tr, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 20, "alto valor", 0, 0)
	require.NoError(t, err)

	alts, err := c.RejectTransfer(tr.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.TransferRejected, tr.Status)
	require.Len(t, alts, 2)

	assert.Equal(t, entity.AlternativeReducedQuantity, alts[0].Type)
	assert.Equal(t, 10, alts[0].Quantity, "la mitad de 20")
	assert.Equal(t, "WH1", alts[0].SourceWarehouseID)

	assert.Equal(t, entity.AlternativeDifferentSource, alts[1].Type)
	assert.Equal(t, "WH3", alts[1].SourceWarehouseID)
	assert.Equal(t, 20, alts[1].Quantity)

	assert.Equal(t, 100, c.GetStock("WH1", "SKU1"), "rechazar no muta stock")
}

func TestRejectTransfer_SinOrigenAlternativo(t *testing.T) {
	c := newCoordinator()
	c.SetProductPrice("SKU1", decimal.NewFromInt(1000))
	c.SetStock("WH1", "SKU1", 100)

	tr, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 20, "alto valor", 0, 0)
	require.NoError(t, err)

	alts, err := c.RejectTransfer(tr.ID)

	require.NoError(t, err)
	require.Len(t, alts, 1, "sin otra bodega con stock solo queda la cantidad reducida")
	assert.Equal(t, entity.AlternativeReducedQuantity, alts[0].Type)
}

func TestRejectTransfer_EstadoInvalido(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 100)

	tr, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 10, "r", 0, 0)
	require.NoError(t, err)

	_, err = c.RejectTransfer(tr.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransferState)
}

// ──────────────────────────────────────────────────────────────────────────────
// Priorización por envejecimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestPrioritizeTransferWithAging_CriticasPrimero(t *testing.T) {
	c := newCoordinator()

	needs := []transfer.TransferNeed{
		{WarehouseID: "WH1", SKU: "SKU1", Deficit: 10},
		{WarehouseID: "WH2", SKU: "SKU2", Deficit: 5},
		{WarehouseID: "WH3", SKU: "SKU3", Deficit: 8},
	}
	signals := []entity.AgingInfo{
		{WarehouseID: "WH2", SKU: "SKU2", PriorityScore: 1.5, IsCritical: false},
		{WarehouseID: "WH3", SKU: "SKU3", PriorityScore: 0.5, IsCritical: true},
	}

	out := c.PrioritizeTransferWithAging(needs, signals)

	require.Len(t, out, 3)
	assert.Equal(t, "WH3", out[0].WarehouseID, "la crítica va primero aunque su score sea menor")
	assert.True(t, out[0].IsAgingCritical)
	assert.Equal(t, "WH2", out[1].WarehouseID)
	assert.Equal(t, "WH1", out[2].WarehouseID, "sin señal: prioridad 0, al final")
}

func TestPrioritizeTransferWithAging_NoMutaLaEntrada(t *testing.T) {
	c := newCoordinator()

	needs := []transfer.TransferNeed{
		{WarehouseID: "WH1", SKU: "SKU1"},
		{WarehouseID: "WH2", SKU: "SKU2"},
	}
	signals := []entity.AgingInfo{
		{WarehouseID: "WH2", SKU: "SKU2", PriorityScore: 9, IsCritical: true},
	}

	_ = c.PrioritizeTransferWithAging(needs, signals)

	assert.Equal(t, "WH1", needs[0].WarehouseID, "el slice de entrada queda intacto")
	assert.Zero(t, needs[0].AgingPriority)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pipeline Process
// ──────────────────────────────────────────────────────────────────────────────

func TestProcess_FlujoCompleto(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 5)
	c.SetStock("WH2", "SKU1", 200)

	outcome, err := c.Process("WH1", "SKU1", 40)

	require.NoError(t, err)
	assert.Equal(t, transfer.ActionTransferred, outcome.Action)
	assert.Equal(t, 35, outcome.Quantity)
	assert.Equal(t, entity.TransferCompleted, outcome.Status)
	assert.Equal(t, 40, c.GetStock("WH1", "SKU1"))
	assert.Equal(t, 165, c.GetStock("WH2", "SKU1"))
	assert.Equal(t, 205, c.GetTotalStock("SKU1"))
}

func TestProcess_SinDeficit(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 50)

	outcome, err := c.Process("WH1", "SKU1", 40)

	require.NoError(t, err)
	assert.Equal(t, transfer.ActionNone, outcome.Action)
}

func TestProcess_SinBodegaOrigen(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 5)

	outcome, err := c.Process("WH1", "SKU1", 40)

	require.NoError(t, err)
	assert.Equal(t, transfer.ActionNoSource, outcome.Action)
	assert.Equal(t, 5, c.GetStock("WH1", "SKU1"), "sin origen no hay mutación")
}

func TestProcess_TrasladoSupervisadoQuedaEnEspera(t *testing.T) {
	c := newCoordinator()
	c.SetApprovalConfig(entity.ApprovalConfig{
		HighValueThreshold:    decimal.NewFromInt(1000000),
		HighQuantityThreshold: 30,
		Mode:                  entity.ModeSupervised,
	})
	c.SetStock("WH1", "SKU1", 5)
	c.SetStock("WH2", "SKU1", 200)

	outcome, err := c.Process("WH1", "SKU1", 40)

	require.NoError(t, err)
	assert.Equal(t, transfer.ActionTransferred, outcome.Action)
	assert.Equal(t, entity.TransferAwaitingApproval, outcome.Status)
	assert.Equal(t, 5, c.GetStock("WH1", "SKU1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Trazabilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestDecisions_RegistraLaTraza(t *testing.T) {
	c := newAutonomousCoordinator()
	c.SetStock("WH1", "SKU1", 5)
	c.SetStock("WH2", "SKU1", 200)

	_, err := c.Process("WH1", "SKU1", 40)
	require.NoError(t, err)

	decisions := c.Decisions()
	require.NotEmpty(t, decisions)

	types := make(map[string]bool)
	for _, d := range decisions {
		types[d.DecisionType] = true
		assert.Equal(t, "TransferCoordinator", d.Actor)
		assert.NotEmpty(t, d.ID)
	}
	assert.True(t, types["transfer_need_evaluation"])
	assert.True(t, types["transfer_completed"])
}

func TestGetAllTransfers_HistorialSinDuplicados(t *testing.T) {
	c := newCoordinator()
	c.SetProductPrice("SKU1", decimal.NewFromInt(1000))
	c.SetStock("WH1", "SKU1", 100)

	tr, err := c.ExecuteTransfer("WH1", "WH2", "SKU1", 10, "alto valor", 0, 0)
	require.NoError(t, err)
	_, err = c.ApproveTransfer(tr.ID)
	require.NoError(t, err)

	all := c.GetAllTransfers()
	require.Len(t, all, 1, "aprobar no duplica la entrada del historial")
	assert.Equal(t, entity.TransferCompleted, all[0].Status)
}

package transfer_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/traslados-api/internal/application/transfer"
	"github.com/jhoicas/traslados-api/internal/coordination"
	"github.com/jhoicas/traslados-api/internal/domain/entity"
)

// arma un bus con el coordinador registrado como actor.
func newBusWithCoordinator(t *testing.T) (*coordination.MessageBus, *transfer.Coordinator) {
	t.Helper()
	c := newAutonomousCoordinator()
	b := coordination.NewMessageBus(zerolog.Nop())
	b.RegisterHandler(transfer.ActorName, c.HandleMessage)
	return b, c
}

func TestHandleMessage_SolicitudDeTraslado(t *testing.T) {
	b, c := newBusWithCoordinator(t)
	c.SetStock("WH1", "SKU1", 100)

	msg := entity.NewMessage("InventoryMonitor", transfer.ActorName, entity.TransferRequestPayload{
		SourceWarehouseID: "WH1",
		TargetWarehouseID: "WH2",
		SKU:               "SKU1",
		Quantity:          30,
		Reason:            "stock critico",
	})
	resp := b.SendMessage(msg)

	require.NotNil(t, resp)
	assert.Equal(t, entity.MessageTransferResponse, resp.Type)
	assert.Equal(t, msg.ID, resp.CorrelationID)

	payload, ok := resp.Payload.(entity.TransferResponsePayload)
	require.True(t, ok)
	assert.True(t, payload.Accepted)
	assert.Equal(t, entity.TransferCompleted, payload.Status)
	assert.Equal(t, 70, c.GetStock("WH1", "SKU1"))
	assert.Equal(t, 30, c.GetStock("WH2", "SKU1"))
}

func TestHandleMessage_TrasladoInvalidoRespondeError(t *testing.T) {
	b, c := newBusWithCoordinator(t)
	c.SetStock("WH1", "SKU1", 5)

	resp := b.SendMessage(entity.NewMessage("InventoryMonitor", transfer.ActorName, entity.TransferRequestPayload{
		SourceWarehouseID: "WH1",
		TargetWarehouseID: "WH2",
		SKU:               "SKU1",
		Quantity:          50,
	}))

	require.NotNil(t, resp)
	assert.Equal(t, entity.MessageError, resp.Type, "stock insuficiente viaja como mensaje de error")
	assert.Equal(t, 5, c.GetStock("WH1", "SKU1"))
}

func TestHandleMessage_ConsultaDeStock(t *testing.T) {
	b, c := newBusWithCoordinator(t)
	c.SetStock("WH1", "SKU1", 40)
	c.SetStock("WH2", "SKU1", 60)

	resp := b.RequestData("InventoryMonitor", transfer.ActorName, entity.DataRequestPayload{
		DataType:    "stock",
		WarehouseID: "WH1",
		SKU:         "SKU1",
	})

	require.NotNil(t, resp)
	payload, ok := resp.Payload.(entity.DataResponsePayload)
	require.True(t, ok)
	assert.Equal(t, 40, payload.Quantity)

	resp = b.RequestData("InventoryMonitor", transfer.ActorName, entity.DataRequestPayload{
		DataType: "total_stock",
		SKU:      "SKU1",
	})
	require.NotNil(t, resp)
	payload, ok = resp.Payload.(entity.DataResponsePayload)
	require.True(t, ok)
	assert.Equal(t, 100, payload.Quantity)
}

func TestHandleMessage_TipoDesconocidoSeIgnora(t *testing.T) {
	b, _ := newBusWithCoordinator(t)

	resp := b.SendMessage(entity.NewMessage("x", transfer.ActorName, entity.StatusUpdatePayload{Actor: "x"}))

	assert.Nil(t, resp)
}

package transfer

import (
	"github.com/jhoicas/traslados-api/internal/domain/entity"
)

// ActorName nombre bajo el que el coordinador se registra en el bus.
const ActorName = actorName

// HandleMessage atiende los mensajes dirigidos al coordinador por el bus:
// solicitudes de traslado y peticiones de datos de stock. Los tipos que no
// le competen se ignoran sin respuesta.
func (c *Coordinator) HandleMessage(msg entity.AgentMessage) (*entity.AgentMessage, error) {
	switch payload := msg.Payload.(type) {
	case entity.TransferRequestPayload:
		transfer, err := c.ExecuteTransfer(
			payload.SourceWarehouseID, payload.TargetWarehouseID,
			payload.SKU, payload.Quantity, payload.Reason, 0, 0,
		)
		if err != nil {
			return nil, err
		}
		reply := entity.NewMessage(actorName, msg.Sender, entity.TransferResponsePayload{
			TransferID: transfer.ID,
			Status:     transfer.Status,
			Accepted:   transfer.Status != entity.TransferRejected,
			Detail:     transfer.Reason,
		})
		return &reply, nil

	case entity.DataRequestPayload:
		resp := entity.DataResponsePayload{
			DataType:    payload.DataType,
			WarehouseID: payload.WarehouseID,
			SKU:         payload.SKU,
		}
		switch payload.DataType {
		case "stock":
			resp.Quantity = c.GetStock(payload.WarehouseID, payload.SKU)
		case "total_stock":
			resp.Quantity = c.GetTotalStock(payload.SKU)
		default:
			return nil, nil
		}
		reply := entity.NewMessage(actorName, msg.Sender, resp)
		return &reply, nil
	}
	return nil, nil
}

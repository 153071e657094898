package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageType tipos de mensaje intercambiados entre actores.
type MessageType string

const (
	MessageDataRequest      MessageType = "data_request"
	MessageDataResponse     MessageType = "data_response"
	MessageAlert            MessageType = "alert"
	MessageTransferRequest  MessageType = "transfer_request"
	MessageTransferResponse MessageType = "transfer_response"
	MessageError            MessageType = "error"
	MessageStatusUpdate     MessageType = "status_update"
)

// MessagePayload unión etiquetada de payloads: un struct concreto por tipo de
// mensaje, para que los handlers hagan type switch en lugar de inspeccionar
// mapas sin tipo.
type MessagePayload interface {
	MessageType() MessageType
}

// DataRequestPayload petición de datos punto a punto.
type DataRequestPayload struct {
	DataType    string
	WarehouseID string
	SKU         string
	Params      map[string]string
}

func (DataRequestPayload) MessageType() MessageType { return MessageDataRequest }

// DataResponsePayload respuesta a una petición de datos.
type DataResponsePayload struct {
	DataType    string
	WarehouseID string
	SKU         string
	Quantity    int
	Score       float64
}

func (DataResponsePayload) MessageType() MessageType { return MessageDataResponse }

// AlertPayload difusión de una alerta de stock.
type AlertPayload struct {
	Alert StockAlert
}

func (AlertPayload) MessageType() MessageType { return MessageAlert }

// TransferRequestPayload solicitud de traslado enviada al coordinador.
type TransferRequestPayload struct {
	SourceWarehouseID string
	TargetWarehouseID string
	SKU               string
	Quantity          int
	Reason            string
}

func (TransferRequestPayload) MessageType() MessageType { return MessageTransferRequest }

// TransferResponsePayload resultado de una solicitud de traslado.
type TransferResponsePayload struct {
	TransferID string
	Status     TransferStatus
	Accepted   bool
	Detail     string
}

func (TransferResponsePayload) MessageType() MessageType { return MessageTransferResponse }

// ErrorPayload notificación de fallo de un actor.
type ErrorPayload struct {
	FailedActor       string
	ErrorMessage      string
	OriginalMessageID string
}

func (ErrorPayload) MessageType() MessageType { return MessageError }

// StatusUpdatePayload actualización de estado de un actor.
type StatusUpdatePayload struct {
	Actor  string
	Status string
	Detail string
}

func (StatusUpdatePayload) MessageType() MessageType { return MessageStatusUpdate }

// AgentMessage mensaje entre actores nombrados. Inmutable tras su creación;
// se retiene en el log del bus para auditoría y depuración.
type AgentMessage struct {
	ID            string
	Sender        string
	Receiver      string
	Type          MessageType
	Payload       MessagePayload
	Timestamp     time.Time
	CorrelationID string
}

// NewMessage construye un mensaje con id generado y tipo derivado del payload.
func NewMessage(sender, receiver string, payload MessagePayload) AgentMessage {
	return AgentMessage{
		ID:        uuid.NewString(),
		Sender:    sender,
		Receiver:  receiver,
		Type:      payload.MessageType(),
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

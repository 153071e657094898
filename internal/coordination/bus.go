package coordination

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/traslados-api/internal/domain/entity"
)

// systemActor remitente de las notificaciones de fallo emitidas por el bus.
const systemActor = "system"

// defaultLockTimeout plazo por defecto para los locks tomados vía el bus.
const defaultLockTimeout = 10 * time.Second

// Handler procesa un mensaje dirigido a un actor. Puede devolver una
// respuesta (nil = sin respuesta) o un error, que el bus convierte en un
// mensaje de error hacia el remitente.
type Handler func(entity.AgentMessage) (*entity.AgentMessage, error)

// MessageBus canal síncrono request/response y broadcast entre actores
// nombrados. Los handlers corren secuencialmente en orden de registro; el bus
// no planifica trabajo en goroutines. Todo intercambio queda en el log.
type MessageBus struct {
	mu       sync.Mutex
	handlers map[string][]Handler
	actors   []string // orden de registro, para broadcasts deterministas
	msgLog   []entity.AgentMessage

	locks       *ResourceLock
	lockTimeout time.Duration
	log         zerolog.Logger
}

// NewMessageBus construye el bus con su registro de locks propio.
func NewMessageBus(log zerolog.Logger) *MessageBus {
	return &MessageBus{
		handlers:    make(map[string][]Handler),
		locks:       NewResourceLock(log),
		lockTimeout: defaultLockTimeout,
		log:         log,
	}
}

// SetLockTimeout ajusta el plazo de adquisición de locks tomados vía el bus.
func (b *MessageBus) SetLockTimeout(timeout time.Duration) {
	if timeout > 0 {
		b.lockTimeout = timeout
	}
}

// RegisterHandler registra un handler bajo el nombre de un actor. Un actor
// puede tener varios handlers; se invocan en orden de registro.
func (b *MessageBus) RegisterHandler(actorName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.handlers[actorName]; !ok {
		b.actors = append(b.actors, actorName)
	}
	b.handlers[actorName] = append(b.handlers[actorName], handler)
}

// SendMessage entrega un mensaje al receptor y devuelve la primera respuesta
// no vacía, con su correlation id apuntando al mensaje original. Si un handler
// falla, el bus responde al remitente con un mensaje de error y notifica a
// todos los demás actores registrados (difusión de conciencia de fallo, no
// recuperación).
func (b *MessageBus) SendMessage(message entity.AgentMessage) *entity.AgentMessage {
	b.appendLog(message)
	b.log.Info().
		Str("de", message.Sender).
		Str("para", message.Receiver).
		Str("tipo", string(message.Type)).
		Msg("mensaje enviado")

	b.mu.Lock()
	handlers := make([]Handler, len(b.handlers[message.Receiver]))
	copy(handlers, b.handlers[message.Receiver])
	b.mu.Unlock()

	if len(handlers) == 0 {
		b.log.Warn().Str("actor", message.Receiver).Msg("sin handler registrado")
		return nil
	}

	for _, handler := range handlers {
		response, err := handler(message)
		if err != nil {
			errorMsg := entity.NewMessage(message.Receiver, message.Sender, entity.ErrorPayload{
				FailedActor:       message.Receiver,
				ErrorMessage:      err.Error(),
				OriginalMessageID: message.ID,
			})
			errorMsg.CorrelationID = message.ID
			b.appendLog(errorMsg)

			// una notificación de error fallida no vuelve a abanicarse:
			// evita la cascada
			if message.Type != entity.MessageError {
				b.NotifyActorsOfError(message.Receiver, err)
			}
			return &errorMsg
		}
		if response != nil {
			response.CorrelationID = message.ID
			b.appendLog(*response)
			return response
		}
	}
	return nil
}

// RequestData petición punto a punto de datos a un proveedor.
func (b *MessageBus) RequestData(requester, provider string, payload entity.DataRequestPayload) *entity.AgentMessage {
	return b.SendMessage(entity.NewMessage(requester, provider, payload))
}

// BroadcastAlert difunde una alerta a todos los actores salvo el remitente;
// devuelve las respuestas no vacías.
func (b *MessageBus) BroadcastAlert(sender string, payload entity.AlertPayload) []entity.AgentMessage {
	var responses []entity.AgentMessage
	for _, actorName := range b.registeredActors() {
		if actorName == sender {
			continue
		}
		if resp := b.SendMessage(entity.NewMessage(sender, actorName, payload)); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}

// NotifyActorsOfError informa a los demás actores que un actor falló,
// excluyendo al fallido y a los nombres indicados.
func (b *MessageBus) NotifyActorsOfError(failedActor string, cause error, exclude ...string) []entity.AgentMessage {
	excluded := make(map[string]bool, len(exclude)+1)
	excluded[failedActor] = true
	for _, name := range exclude {
		excluded[name] = true
	}

	var notifications []entity.AgentMessage
	for _, actorName := range b.registeredActors() {
		if excluded[actorName] {
			continue
		}
		msg := entity.NewMessage(systemActor, actorName, entity.ErrorPayload{
			FailedActor:  failedActor,
			ErrorMessage: cause.Error(),
		})
		if resp := b.SendMessage(msg); resp != nil {
			notifications = append(notifications, *resp)
		}
	}
	return notifications
}

// AcquireResource toma el lock de una clave con el plazo por defecto.
func (b *MessageBus) AcquireResource(resourceKey, actorName string) bool {
	return b.locks.Acquire(resourceKey, actorName, b.lockTimeout)
}

// ReleaseResource libera el lock de una clave.
func (b *MessageBus) ReleaseResource(resourceKey, actorName string) bool {
	return b.locks.Release(resourceKey, actorName)
}

// Locks acceso directo al registro de locks (plazos propios).
func (b *MessageBus) Locks() *ResourceLock {
	return b.locks
}

// GetMessageLog log cronológico completo de mensajes.
func (b *MessageBus) GetMessageLog() []entity.AgentMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]entity.AgentMessage, len(b.msgLog))
	copy(out, b.msgLog)
	return out
}

// GetActorMessages mensajes enviados o recibidos por un actor.
func (b *MessageBus) GetActorMessages(actorName string) []entity.AgentMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []entity.AgentMessage
	for _, m := range b.msgLog {
		if m.Sender == actorName || m.Receiver == actorName {
			out = append(out, m)
		}
	}
	return out
}

func (b *MessageBus) registeredActors() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.actors))
	copy(out, b.actors)
	return out
}

func (b *MessageBus) appendLog(message entity.AgentMessage) {
	b.mu.Lock()
	b.msgLog = append(b.msgLog, message)
	b.mu.Unlock()
}

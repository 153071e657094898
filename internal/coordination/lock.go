package coordination

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ResourceLock exclusión mutua por clave de recurso (ej. "bodega:SKU").
// Cada clave admite a lo sumo un dueño; el registro de slots se protege con
// un lock corto para no correr en la creación de entradas.
type ResourceLock struct {
	mu     sync.Mutex
	slots  map[string]chan struct{}
	owners map[string]string
	log    zerolog.Logger
}

// NewResourceLock construye el registro de locks.
func NewResourceLock(log zerolog.Logger) *ResourceLock {
	return &ResourceLock{
		slots:  make(map[string]chan struct{}),
		owners: make(map[string]string),
		log:    log,
	}
}

func (l *ResourceLock) slot(resourceKey string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[resourceKey]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[resourceKey] = ch
	}
	return ch
}

// Acquire bloquea hasta timeout por la propiedad exclusiva de la clave.
// Devuelve false si vence el plazo; el timeout es un fallo duro que se
// reporta al llamador, nunca se reintenta en silencio.
func (l *ResourceLock) Acquire(resourceKey, owner string, timeout time.Duration) bool {
	ch := l.slot(resourceKey)

	select {
	case ch <- struct{}{}:
	default:
		if timeout <= 0 {
			l.log.Warn().Str("recurso", resourceKey).Str("actor", owner).Msg("lock no disponible")
			return false
		}
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case ch <- struct{}{}:
		case <-timer.C:
			l.log.Warn().Str("recurso", resourceKey).Str("actor", owner).Msg("lock no adquirido (timeout)")
			return false
		}
	}

	l.mu.Lock()
	l.owners[resourceKey] = owner
	l.mu.Unlock()

	l.log.Debug().Str("recurso", resourceKey).Str("actor", owner).Msg("lock adquirido")
	return true
}

// Release libera la clave solo si el llamador es el dueño registrado: un
// actor no puede soltar el lock de otro.
func (l *ResourceLock) Release(resourceKey, owner string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.slots[resourceKey]
	if !ok {
		return false
	}
	if l.owners[resourceKey] != owner {
		l.log.Warn().
			Str("recurso", resourceKey).
			Str("actor", owner).
			Str("dueno", l.owners[resourceKey]).
			Msg("intento de liberar lock ajeno")
		return false
	}

	select {
	case <-ch:
		delete(l.owners, resourceKey)
		return true
	default:
		return false
	}
}

// IsLocked consulta no bloqueante del estado de una clave.
func (l *ResourceLock) IsLocked(resourceKey string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[resourceKey]
	return ok && len(ch) == 1
}

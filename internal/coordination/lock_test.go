package coordination_test

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/traslados-api/internal/coordination"
)

func newLocks() *coordination.ResourceLock {
	return coordination.NewResourceLock(zerolog.Nop())
}

func TestAcquire_LockLibre(t *testing.T) {
	l := newLocks()

	assert.True(t, l.Acquire("WH1:SKU1", "actor-a", time.Second))
	assert.True(t, l.IsLocked("WH1:SKU1"))
}

func TestAcquire_LockOcupadoVenceElPlazo(t *testing.T) {
	l := newLocks()
	require.True(t, l.Acquire("WH1:SKU1", "actor-a", time.Second))

	start := time.Now()
	ok := l.Acquire("WH1:SKU1", "actor-b", 50*time.Millisecond)

	assert.False(t, ok, "el segundo actor no debe obtener el lock")
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, l.IsLocked("WH1:SKU1"), "el lock sigue en poder del primero")
}

func TestAcquire_ClavesDistintasNoCompiten(t *testing.T) {
	l := newLocks()

	assert.True(t, l.Acquire("WH1:SKU1", "actor-a", time.Second))
	assert.True(t, l.Acquire("WH2:SKU1", "actor-b", time.Second))
}

func TestRelease_SoloElDueno(t *testing.T) {
	l := newLocks()
	require.True(t, l.Acquire("WH1:SKU1", "actor-a", time.Second))

	assert.False(t, l.Release("WH1:SKU1", "actor-b"), "un actor no libera el lock de otro")
	assert.True(t, l.IsLocked("WH1:SKU1"))

	assert.True(t, l.Release("WH1:SKU1", "actor-a"))
	assert.False(t, l.IsLocked("WH1:SKU1"))
}

func TestRelease_ClaveNuncaAdquirida(t *testing.T) {
	l := newLocks()

	assert.False(t, l.Release("no-existe", "actor-a"))
}

func TestAcquire_TrasLiberarPuedeTomarloOtro(t *testing.T) {
	l := newLocks()
	require.True(t, l.Acquire("WH1:SKU1", "actor-a", time.Second))
	require.True(t, l.Release("WH1:SKU1", "actor-a"))

	assert.True(t, l.Acquire("WH1:SKU1", "actor-b", time.Second))
	assert.True(t, l.Release("WH1:SKU1", "actor-b"))
}

func TestAcquire_ExclusionBajoConcurrencia(t *testing.T) {
	l := newLocks()

	var mu sync.Mutex
	inSection := 0
	maxSeen := 0
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !l.Acquire("WH1:SKU1", "worker", 2*time.Second) {
				return
			}
			mu.Lock()
			inSection++
			if inSection > maxSeen {
				maxSeen = inSection
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inSection--
			mu.Unlock()
			l.Release("WH1:SKU1", "worker")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen, "nunca debe haber dos actores dentro de la sección crítica")
}

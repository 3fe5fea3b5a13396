package discord

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserLimiter(t *testing.T) {
	l := newUserLimiter(50 * time.Millisecond)

	require.True(t, l.Allow("a"))
	require.False(t, l.Allow("a")) // dentro de la ventana
	require.True(t, l.Allow("b")) // otro usuario no se ve afectado

	time.Sleep(60 * time.Millisecond)
	require.True(t, l.Allow("a"))
}

// Un click en el guild B no puede cancelar el refresh pendiente del guild A.
func TestGuildDebouncerIsPerGuild(t *testing.T) {
	d := newGuildDebouncer(20 * time.Millisecond)

	var firedA, firedB int32
	d.Schedule(1, func() { atomic.AddInt32(&firedA, 1) })
	d.Schedule(2, func() { atomic.AddInt32(&firedB, 1) })

	time.Sleep(80 * time.Millisecond)
	require.Equal(t, int32(1), atomic.LoadInt32(&firedA))
	require.Equal(t, int32(1), atomic.LoadInt32(&firedB))
}

func TestGuildDebouncerCoalescesSameGuild(t *testing.T) {
	d := newGuildDebouncer(20 * time.Millisecond)

	var fired int32
	d.Schedule(1, func() { atomic.AddInt32(&fired, 1) })
	d.Schedule(1, func() { atomic.AddInt32(&fired, 1) })
	d.Schedule(1, func() { atomic.AddInt32(&fired, 1) })

	time.Sleep(80 * time.Millisecond)
	require.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

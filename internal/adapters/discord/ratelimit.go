package discord

import (
	"sync"
	"time"
)

// userLimiter: una ventana de enfriamiento por usuario. Frena el spam de
// comandos que hacen N requests al proveedor de stats.
type userLimiter struct {
	mu   sync.Mutex
	next map[string]time.Time
	win  time.Duration
}

func newUserLimiter(window time.Duration) *userLimiter {
	return &userLimiter{next: map[string]time.Time{}, win: window}
}

func (l *userLimiter) Allow(userID string) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.next[userID]; ok && now.Before(until) {
		return false
	}
	l.next[userID] = now.Add(l.win)
	return true
}

// guildDebouncer: un timer pendiente por guild. Programar de nuevo dentro
// de la ventana reemplaza SOLO el disparo de ese guild; los demás siguen.
type guildDebouncer struct {
	mu     sync.Mutex
	timers map[int64]*time.Timer
	win    time.Duration
}

func newGuildDebouncer(window time.Duration) *guildDebouncer {
	return &guildDebouncer{timers: map[int64]*time.Timer{}, win: window}
}

func (d *guildDebouncer) Schedule(gid int64, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[gid]; ok {
		t.Stop()
	}
	d.timers[gid] = time.AfterFunc(d.win, fn)
}

package discord

import (
	"log"
	"time"
)

// step mide cuánto tardó un tramo con fan-out al proveedor de stats.
// Uso: defer step("leaderboard.total")()
func step(label string) func() {
	start := time.Now()
	return func() { log.Printf("[trace] %s tardó %s", label, time.Since(start)) }
}

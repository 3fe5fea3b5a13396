package fortnite

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout: el proveedor no respondió dentro de la ventana (10s).
	ErrTimeout = errors.New("fortnite: timeout")
	// ErrPlayerNotFound: el envelope vino con status != 200 (cuenta inexistente).
	ErrPlayerNotFound = errors.New("fortnite: player not found")
	// ErrStatsUnavailable: la cuenta existe pero no hay stats (perfil privado
	// o sin partidas). No es un error de la cuenta, es un resultado válido.
	ErrStatsUnavailable = errors.New("fortnite: stats unavailable")
)

// APIError: respuesta sin envelope usable (HTTP no-2xx sin cuerpo parseable,
// o 2xx cuyo JSON no trae el campo status del proveedor).
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fortnite api status %d: %s", e.Status, e.Body)
}

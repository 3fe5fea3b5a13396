package httphealth

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"
)

// Server expone /healthz para el supervisor del deploy. No hay webhooks
// entrantes en este bot; el listener existe solo como superficie de liveness.
type Server struct {
	db  *sql.DB
	mux *http.ServeMux
}

func New(db *sql.DB) *Server {
	s := &Server{db: db, mux: http.NewServeMux()}
	s.mux.HandleFunc("/healthz", s.handleHealthz)
	return s
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		http.Error(w, "db: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) Start(addr string) {
	log.Printf("🌐 HTTP listening on %s", addr)
	if err := http.ListenAndServe(addr, s.mux); err != nil {
		log.Fatalf("http server: %v", err)
	}
}

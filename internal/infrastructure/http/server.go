package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"

	"quotelog/internal/application"
	"quotelog/internal/domain"
)

// Ensure Latest implements application.Observer.
var _ application.Observer = (*Latest)(nil)

// Latest holds the most recent captured record. The capture loop writes it
// through Observe; the status endpoints read it.
type Latest struct {
	mu  sync.RWMutex
	rec domain.Record
	set bool
}

func (l *Latest) Observe(rec domain.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rec, l.set = rec, true
}

// Snapshot returns the last record and whether one has been captured yet.
func (l *Latest) Snapshot() (domain.Record, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rec, l.set
}

type Server struct {
	latest *Latest
}

func NewServer(latest *Latest) *Server { return &Server{latest: latest} }

func (s *Server) GetLatestQuote(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.latest.Snapshot()
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

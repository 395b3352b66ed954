// internal/sim/server.go
package sim

import (
	"encoding/json"
	"line-defense/internal/metrics"
	"net/http"
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Store keeps finished runs for the /runs endpoint.
type Store struct {
	mu      sync.RWMutex
	results []Result
}

func NewStore() *Store { return &Store{} }

func (s *Store) Add(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
}

// All returns a copy ordered by run index.
func (s *Store) All() []Result {
	s.mu.RLock()
	out := make([]Result, len(s.results))
	copy(out, s.results)
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Run < out[j].Run })
	return out
}

// NewRouter serves metrics, finished runs and a liveness probe.
func NewRouter(m *metrics.Metrics, store *Store) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/runs", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, store.All())
	})
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	return r
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

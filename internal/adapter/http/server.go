package http

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/couchcryptid/fars-accident-service/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service is the subset of the pipeline the HTTP layer needs.
type Service interface {
	sharedobs.ReadinessChecker
	Summarize(ctx context.Context, years []int) (domain.SummaryTable, error)
	MapState(ctx context.Context, state, year int) error
}

// MapFiles locates rendered state maps on disk.
type MapFiles interface {
	Path(state, year int) string
	ContentType() string
}

// Server exposes health, readiness, metrics, summary and map HTTP endpoints.
type Server struct {
	httpServer *http.Server
	svc        Service
	maps       MapFiles
	logger     *slog.Logger

	// mapLocks serializes remove, render and serve per state/year file.
	mapLocks sync.Map // mapKey -> *sync.Mutex
}

type mapKey struct{ state, year int }

func (s *Server) lockMap(state, year int) func() {
	v, _ := s.mapLocks.LoadOrStore(mapKey{state, year}, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics,
// /summary and /map/{state}/{year} routes.
func NewServer(addr string, svc Service, maps MapFiles, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		svc:    svc,
		maps:   maps,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(svc))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /summary", s.handleSummary)
	mux.HandleFunc("GET /map/{state}/{year}", s.handleMap)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleSummary serves GET /summary?years=2013,2014,2015.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	years, err := parseYears(r.URL.Query().Get("years"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	table, err := s.svc.Summarize(r.Context(), years)
	if err != nil {
		s.logger.Error("summary failed", "years", years, "error", err)
		writeError(w, statusFor(err), err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, table)
}

// handleMap renders the requested state map and serves the image. When there
// is nothing to draw it answers 204.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	state, err := strconv.Atoi(r.PathValue("state"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid state %q", r.PathValue("state")))
		return
	}
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid year %q", r.PathValue("year")))
		return
	}

	unlock := s.lockMap(state, year)
	defer unlock()

	path := s.maps.Path(state, year)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("remove stale map", "path", path, "error", err)
	}

	if err := s.svc.MapState(r.Context(), state, year); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("map failed", "state", state, "year", year, "error", err)
		}
		writeError(w, status, err)
		return
	}

	if _, err := os.Stat(path); err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", s.maps.ContentType())
	http.ServeFile(w, r, path)
}

func parseYears(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("years query parameter is required")
	}
	parts := strings.Split(raw, ",")
	years := make([]int, 0, len(parts))
	for _, p := range parts {
		y, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", p)
		}
		years = append(years, y)
	}
	return years, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrFileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	sharedobs.WriteJSON(w, status, map[string]string{"error": err.Error()})
}

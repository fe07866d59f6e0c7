// Package handler implements the HTTP handlers for the Gate Register API.
// All handlers are methods on Server. Methods are split into files by
// resource (health.go, register.go, export.go, lookup.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/gate-register/internal/domain"
	"github.com/pkordes/gate-register/internal/register"
	"github.com/pkordes/gate-register/internal/service"
)

// RegisterServicer defines the operations the register handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching a data source.
type RegisterServicer interface {
	View(ctx context.Context, state register.State, limit int) (service.RegisterPage, error)
	Export(ctx context.Context, criteria domain.FilterCriteria, spec domain.SortSpec, now time.Time) (domain.Export, error)
	ByErf(ctx context.Context, erf string, spec domain.SortSpec) (service.ErfView, error)
	Entry(ctx context.Context, id uuid.UUID) (domain.GateEntry, error)
}

// Server implements every API endpoint. Mount Routes() on the main router.
type Server struct {
	register RegisterServicer
	now      func() time.Time
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil now uses time.Now; a nil log uses slog.Default().
func NewServer(reg RegisterServicer, now func() time.Time, log *slog.Logger) *Server {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{register: reg, now: now, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes returns the API routes. Cross-cutting middleware is applied by
// the caller on the parent router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Route("/gate-register", func(r chi.Router) {
		r.Get("/", s.GetGateRegister)
		r.Get("/export", s.GetGateRegisterExport)
		r.Get("/erf/{erf}", s.GetGateRegisterErf)
		r.Get("/entries/{id}", s.GetGateRegisterEntry)
	})
	return r
}

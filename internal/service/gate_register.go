// Package service contains the business logic for the Gate Register API.
// Services load data through interfaces and hand it to the register
// view-model; no SQL or HTTP lives here.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/gate-register/internal/domain"
	"github.com/pkordes/gate-register/internal/register"
)

// EntrySource supplies gate entries. It is satisfied by repo.GateEntryRepo
// (Postgres) and *source.Client (upstream REST API).
type EntrySource interface {
	// List returns every entry.
	List(ctx context.Context) ([]domain.GateEntry, error)
	// ListByErf returns the entries registered on one ERF.
	ListByErf(ctx context.Context, erf string) ([]domain.GateEntry, error)
	// GetByID returns one entry or domain.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (domain.GateEntry, error)
}

// RegisterPage is one page of the register as the guard sees it.
// Stats and Total cover the whole filtered view, not just this page.
type RegisterPage struct {
	Entries    []domain.GateEntry
	Rows       []register.DisplayRow
	Stats      domain.Stats
	State      register.State
	Pagination domain.PaginationParams
	Total      int
}

// ErfView is every entry on one property, as a guard checks it at the gate.
type ErfView struct {
	Erf     string
	Entries []domain.GateEntry
	Rows    []register.DisplayRow
	Stats   domain.Stats
}

// GateRegisterService serves register views and exports.
type GateRegisterService struct {
	source EntrySource
	log    *slog.Logger
}

// NewGateRegisterService constructs a GateRegisterService reading from src.
// A nil logger falls back to slog.Default().
func NewGateRegisterService(src EntrySource, log *slog.Logger) *GateRegisterService {
	if log == nil {
		log = slog.Default()
	}
	return &GateRegisterService{source: src, log: log}
}

// View loads every entry and returns the requested page of the register
// under state. limit follows domain.NewPaginationParams rules.
func (s *GateRegisterService) View(ctx context.Context, state register.State, limit int) (RegisterPage, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return RegisterPage{}, fmt.Errorf("service.GateRegisterService.View: %w", err)
	}

	view := register.Build(entries, state.Criteria, state.Sort)
	s.checkVehicleCounts(ctx, view.Stats)

	params := domain.NewPaginationParams(&state.Page, &limit)
	state.Page = params.Page
	start, end := params.Bounds(len(view.Entries))
	page := view.Entries[start:end]

	return RegisterPage{
		Entries:    page,
		Rows:       register.DisplayRows(page),
		Stats:      view.Stats,
		State:      state,
		Pagination: params,
		Total:      len(view.Entries),
	}, nil
}

// Export loads every entry and renders the filtered, sorted register as CSV.
// now stamps the filename.
func (s *GateRegisterService) Export(ctx context.Context, criteria domain.FilterCriteria, spec domain.SortSpec, now time.Time) (domain.Export, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return domain.Export{}, fmt.Errorf("service.GateRegisterService.Export: %w", err)
	}

	view := register.Build(entries, criteria, spec)
	s.checkVehicleCounts(ctx, view.Stats)

	export := register.Export(view.Entries, criteria, now)
	s.log.InfoContext(ctx, "gate register exported",
		"filename", export.Filename,
		"filtered", criteria.Active(),
		"entries", len(view.Entries),
		"rows", export.Rows,
	)
	return export, nil
}

// ByErf returns the entries on one ERF sorted by spec. A blank ERF is a
// validation error. An ERF with no entries yields an empty view.
func (s *GateRegisterService) ByErf(ctx context.Context, erf string, spec domain.SortSpec) (ErfView, error) {
	erf = strings.TrimSpace(erf)
	if erf == "" {
		return ErfView{}, fmt.Errorf("service.GateRegisterService.ByErf: %w: erf number is required", domain.ErrValidation)
	}

	entries, err := s.source.ListByErf(ctx, erf)
	if err != nil {
		return ErfView{}, fmt.Errorf("service.GateRegisterService.ByErf: %w", err)
	}

	view := register.Build(entries, domain.DefaultFilterCriteria(), spec)
	s.checkVehicleCounts(ctx, view.Stats)

	return ErfView{
		Erf:     erf,
		Entries: view.Entries,
		Rows:    register.DisplayRows(view.Entries),
		Stats:   view.Stats,
	}, nil
}

// Entry returns a single gate entry.
func (s *GateRegisterService) Entry(ctx context.Context, id uuid.UUID) (domain.GateEntry, error) {
	e, err := s.source.GetByID(ctx, id)
	if err != nil {
		return domain.GateEntry{}, fmt.Errorf("service.GateRegisterService.Entry: %w", err)
	}
	return e, nil
}

func (s *GateRegisterService) load(ctx context.Context) ([]domain.GateEntry, error) {
	entries, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}
	s.log.DebugContext(ctx, "gate entries loaded", "count", len(entries))
	return entries, nil
}

// checkVehicleCounts surfaces entries whose stored vehicle counter drifted
// from their registration list. The list is what gets counted either way.
func (s *GateRegisterService) checkVehicleCounts(ctx context.Context, stats domain.Stats) {
	if stats.VehicleCountMismatches == 0 {
		return
	}
	s.log.WarnContext(ctx, "vehicle count mismatch",
		"entries", stats.VehicleCountMismatches,
		"vehicles_counted", stats.VehiclesTotal,
	)
}

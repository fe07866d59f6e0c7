package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkordes/gate-register/internal/domain"
)

// EntryCreator persists new gate entries. It is satisfied by repo.GateEntryRepo.
type EntryCreator interface {
	Create(ctx context.Context, entry domain.GateEntry) (domain.GateEntry, error)
}

// GateImportService loads gate entries into the register store.
type GateImportService struct {
	store EntryCreator
	log   *slog.Logger
}

// NewGateImportService constructs a GateImportService writing to store.
// A nil logger falls back to slog.Default().
func NewGateImportService(store EntryCreator, log *slog.Logger) *GateImportService {
	if log == nil {
		log = slog.Default()
	}
	return &GateImportService{store: store, log: log}
}

// Import creates every entry in order and returns the created records.
// Entries without an ERF number are rejected up front so a bad file writes
// nothing; the first store error stops the import. Callers wanting
// all-or-nothing semantics run it inside a transaction.
func (s *GateImportService) Import(ctx context.Context, entries []domain.GateEntry) ([]domain.GateEntry, error) {
	for i, e := range entries {
		if strings.TrimSpace(e.ErfNumber) == "" {
			return nil, fmt.Errorf("service.GateImportService.Import: %w: entry %d has no erf number", domain.ErrValidation, i+1)
		}
	}

	created := make([]domain.GateEntry, 0, len(entries))
	vehicles := 0
	for i, e := range entries {
		c, err := s.store.Create(ctx, e)
		if err != nil {
			return nil, fmt.Errorf("service.GateImportService.Import: entry %d: %w", i+1, err)
		}
		created = append(created, c)
		vehicles += c.VehicleCount()
	}

	s.log.InfoContext(ctx, "gate entries imported", "entries", len(created), "vehicles", vehicles)
	return created, nil
}

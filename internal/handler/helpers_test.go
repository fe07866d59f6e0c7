package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/gate-register/internal/domain"
	"github.com/pkordes/gate-register/internal/handler"
	"github.com/pkordes/gate-register/internal/register"
	"github.com/pkordes/gate-register/internal/service"
)

// ---- mock RegisterServicer -------------------------------------------------

type mockRegisterServicer struct {
	view   func(ctx context.Context, state register.State, limit int) (service.RegisterPage, error)
	export func(ctx context.Context, criteria domain.FilterCriteria, spec domain.SortSpec, now time.Time) (domain.Export, error)
	byErf  func(ctx context.Context, erf string, spec domain.SortSpec) (service.ErfView, error)
	entry  func(ctx context.Context, id uuid.UUID) (domain.GateEntry, error)
}

func (m *mockRegisterServicer) View(ctx context.Context, state register.State, limit int) (service.RegisterPage, error) {
	return m.view(ctx, state, limit)
}

func (m *mockRegisterServicer) Export(ctx context.Context, criteria domain.FilterCriteria, spec domain.SortSpec, now time.Time) (domain.Export, error) {
	return m.export(ctx, criteria, spec, now)
}

func (m *mockRegisterServicer) ByErf(ctx context.Context, erf string, spec domain.SortSpec) (service.ErfView, error) {
	return m.byErf(ctx, erf, spec)
}

func (m *mockRegisterServicer) Entry(ctx context.Context, id uuid.UUID) (domain.GateEntry, error) {
	return m.entry(ctx, id)
}

// compile-time check: mockRegisterServicer must satisfy handler.RegisterServicer.
var _ handler.RegisterServicer = (*mockRegisterServicer)(nil)

// ---- helpers ---------------------------------------------------------------

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestHandler(svc handler.RegisterServicer) http.Handler {
	return handler.NewServer(svc, fixedClock, nil).Routes()
}

func do(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func ptr(s string) *string { return &s }

func entryFixture() domain.GateEntry {
	return domain.GateEntry{
		ID:                   uuid.MustParse("6f1c1c2e-8a43-4b8e-9a55-0e8e1b8b2f10"),
		ResidentStatus:       domain.StatusOwnerResident,
		FirstName:            ptr("Thandi"),
		Surname:              ptr("Nkosi"),
		PhoneNumber:          ptr("0821234567"),
		StreetNumber:         "12",
		StreetName:           "Acacia Avenue",
		ErfNumber:            "101",
		IntercomCode:         ptr("1201"),
		VehicleRegistrations: []string{"ABC123GP", "XYZ789GP"},
	}
}

// entryList is an in-memory service.EntrySource for tests that run the real
// GateRegisterService behind the handlers.
type entryList []domain.GateEntry

func (l entryList) List(context.Context) ([]domain.GateEntry, error) { return l, nil }

func (l entryList) ListByErf(_ context.Context, erf string) ([]domain.GateEntry, error) {
	out := []domain.GateEntry{}
	for _, e := range l {
		if e.ErfNumber == erf {
			out = append(out, e)
		}
	}
	return out, nil
}

func (l entryList) GetByID(_ context.Context, id uuid.UUID) (domain.GateEntry, error) {
	for _, e := range l {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.GateEntry{}, domain.ErrNotFound
}

var _ service.EntrySource = entryList(nil)

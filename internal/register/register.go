// Package register is the gate register view-model: it turns a loaded list
// of gate entries plus the current filter and sort state into the list the
// guard sees, its summary statistics, and a flat CSV export.
//
// Everything here is synchronous and side-effect free. Inputs are never
// mutated and no function returns an error: missing fields degrade to ""
// or 0 instead. Fetching entries is the caller's job.
package register

import "github.com/pkordes/gate-register/internal/domain"

// View is the derived state of a register screen.
type View struct {
	Entries []domain.GateEntry
	Stats   domain.Stats
}

// Build filters then sorts entries and computes stats over the result.
func Build(entries []domain.GateEntry, criteria domain.FilterCriteria, spec domain.SortSpec) View {
	sorted := Sort(Filter(entries, criteria), spec)
	return View{
		Entries: sorted,
		Stats:   ComputeStats(sorted),
	}
}

package register

import (
	"strings"

	"github.com/pkordes/gate-register/internal/domain"
)

// ComputeStats summarises entries, normally the filtered and sorted view
// rather than everything loaded.
//
// VehiclesTotal always counts registrations directly. A precomputed
// TotalVehicles counter is only compared, never trusted.
func ComputeStats(entries []domain.GateEntry) domain.Stats {
	s := domain.Stats{TotalEntries: len(entries)}
	for _, e := range entries {
		switch strings.ToLower(e.ResidentStatus) {
		case string(domain.FilterResident):
			s.Residents++
		case string(domain.FilterOwner):
			s.Owners++
		case string(domain.FilterOwnerResident):
			s.OwnerResidents++
		}
		s.VehiclesTotal += e.VehicleCount()
		if e.VehicleCountMismatch() {
			s.VehicleCountMismatches++
		}
	}
	return s
}

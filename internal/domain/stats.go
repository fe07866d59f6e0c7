package domain

// Stats summarises the entries in the current register view.
//
// Residents, Owners and OwnerResidents are disjoint. Entries with a blank
// or unrecognised status count only towards TotalEntries.
type Stats struct {
	TotalEntries   int `json:"total_entries"`
	Residents      int `json:"residents"`
	Owners         int `json:"owners"`
	OwnerResidents int `json:"owner_residents"`
	VehiclesTotal  int `json:"vehicles_total"`

	// VehicleCountMismatches counts entries whose precomputed vehicle counter
	// disagrees with their registration list.
	VehicleCountMismatches int `json:"vehicle_count_mismatches"`
}

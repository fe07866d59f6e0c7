// Package domain contains the core data types for the Gate Register service.
// This package depends only on google/uuid and is imported by every other
// internal package (register, repo, source, service, handler).
package domain

import "github.com/google/uuid"

// Resident status literals as supplied by the estate's records.
// Comparison against these is always case-insensitive.
const (
	StatusResident      = "Resident"
	StatusOwner         = "Owner"
	StatusOwnerResident = "Owner-Resident"
)

// GateEntry is one resident, owner, or occupant record as seen by security.
//
// Optional fields are pointers: nil means the source did not supply a value.
// StreetNumber and ErfNumber hold integers as text because upstream data is
// not always clean; they sort numerically and search textually.
//
// VehicleRegistrations keeps source order. The first registration is the
// entry's primary vehicle.
type GateEntry struct {
	ID             uuid.UUID `json:"id"`
	ResidentStatus string    `json:"resident_status"`
	FirstName      *string   `json:"first_name,omitempty"`
	Surname        *string   `json:"surname,omitempty"`
	PhoneNumber    *string   `json:"phone_number,omitempty"`
	StreetNumber   string    `json:"street_number"`
	StreetName     string    `json:"street_name"`
	ErfNumber      string    `json:"erf_number"`
	IntercomCode   *string   `json:"intercom_code,omitempty"`

	VehicleRegistrations []string `json:"vehicle_registrations"`

	// TotalVehicles is a counter some sources precompute. When present it
	// should equal len(VehicleRegistrations); the slice wins when it doesn't.
	TotalVehicles *int `json:"total_vehicles,omitempty"`
}

// Text returns the value of an optional string field, or "" when absent.
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// VehicleCount returns the number of registrations attached to the entry.
func (e GateEntry) VehicleCount() int {
	return len(e.VehicleRegistrations)
}

// PrimaryVehicle returns the first registration, or "" when there is none.
func (e GateEntry) PrimaryVehicle() string {
	if len(e.VehicleRegistrations) == 0 {
		return ""
	}
	return e.VehicleRegistrations[0]
}

// VehicleCountMismatch reports whether the entry carries a precomputed
// vehicle counter that disagrees with its registration list.
func (e GateEntry) VehicleCountMismatch() bool {
	return e.TotalVehicles != nil && *e.TotalVehicles != len(e.VehicleRegistrations)
}

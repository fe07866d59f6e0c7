package register

import (
	"github.com/google/uuid"

	"github.com/pkordes/gate-register/internal/domain"
)

// DisplayRow is one line of the on-screen register table.
//
// Entries with several vehicles span several rows. Only the row with
// GroupStart set carries the identity columns; the rest show just the
// vehicle. This blanking is a display convention and never applies to
// ExportRows.
type DisplayRow struct {
	EntryID    uuid.UUID `json:"entry_id"`
	GroupStart bool      `json:"group_start"`
	GroupSize  int       `json:"group_size"`

	ResidentStatus      string `json:"resident_status"`
	FirstName           string `json:"first_name"`
	Surname             string `json:"surname"`
	PhoneNumber         string `json:"phone_number"`
	StreetNumber        string `json:"street_number"`
	StreetName          string `json:"street_name"`
	VehicleRegistration string `json:"vehicle_registration"`
	ErfNumber           string `json:"erf_number"`
	IntercomCode        string `json:"intercom_code"`
}

// DisplayRows groups entries for display, in entry order.
func DisplayRows(entries []domain.GateEntry) []DisplayRow {
	rows := make([]DisplayRow, 0, exportRowCount(entries))
	for _, e := range entries {
		size := max(len(e.VehicleRegistrations), 1)
		for i := 0; i < size; i++ {
			r := DisplayRow{EntryID: e.ID, GroupSize: size}
			if i < len(e.VehicleRegistrations) {
				r.VehicleRegistration = e.VehicleRegistrations[i]
			}
			if i == 0 {
				r.GroupStart = true
				r.ResidentStatus = e.ResidentStatus
				r.FirstName = domain.Text(e.FirstName)
				r.Surname = domain.Text(e.Surname)
				r.PhoneNumber = domain.Text(e.PhoneNumber)
				r.StreetNumber = e.StreetNumber
				r.StreetName = e.StreetName
				r.ErfNumber = e.ErfNumber
				r.IntercomCode = domain.Text(e.IntercomCode)
			}
			rows = append(rows, r)
		}
	}
	return rows
}

package domain

// ExportRow is a single row in the gate register CSV export.
// It is a flat, denormalized view: one row per vehicle, with the entry's
// identity fields repeated on every row. Entries with no vehicles yield one
// row with an empty VehicleRegistration.
type ExportRow struct {
	ResidentStatus      string
	FirstName           string
	Surname             string
	PhoneNumber         string
	StreetNumber        string
	StreetName          string
	VehicleRegistration string
	ErfNumber           string
	IntercomCode        string
}

// Export is a finished CSV document ready to hand to a download sink.
type Export struct {
	Filename string
	Content  []byte
	// Rows is the number of data rows, excluding the header.
	Rows int
}

package register_test

import (
	"github.com/google/uuid"

	"github.com/pkordes/gate-register/internal/domain"
)

func ptr(s string) *string { return &s }

// entry builds a GateEntry with just the fields a test cares about.
func entry(status, erf string, vehicles ...string) domain.GateEntry {
	return domain.GateEntry{
		ID:                   uuid.New(),
		ResidentStatus:       status,
		ErfNumber:            erf,
		VehicleRegistrations: vehicles,
	}
}

// estate returns a small but varied register used across tests.
func estate() []domain.GateEntry {
	return []domain.GateEntry{
		{
			ID:                   uuid.New(),
			ResidentStatus:       "Owner-Resident",
			FirstName:            ptr("Thabo"),
			Surname:              ptr("Mokoena"),
			PhoneNumber:          ptr("082 555 0101"),
			StreetNumber:         "14",
			StreetName:           "Main Street",
			ErfNumber:            "12",
			IntercomCode:         ptr("1402"),
			VehicleRegistrations: []string{"ABC123GP", "XYZ789GP"},
		},
		{
			ID:             uuid.New(),
			ResidentStatus: "Resident",
			FirstName:      ptr("Anna"),
			Surname:        ptr("van der Merwe"),
			StreetNumber:   "3",
			StreetName:     "Acacia Avenue",
			ErfNumber:      "5",
		},
		{
			ID:                   uuid.New(),
			ResidentStatus:       "Owner",
			FirstName:            ptr("Pieter"),
			Surname:              ptr("Botha"),
			PhoneNumber:          ptr("083 111 2222"),
			StreetNumber:         "27",
			StreetName:           "Protea Road",
			ErfNumber:            "101",
			VehicleRegistrations: []string{"CA 456-789"},
		},
		{
			ID:                   uuid.New(),
			ResidentStatus:       "resident",
			FirstName:            ptr("Lerato"),
			StreetNumber:         "9",
			StreetName:           "Main Street",
			ErfNumber:            "44",
			IntercomCode:         ptr("0907"),
			VehicleRegistrations: []string{"LM55ZZGP"},
		},
		{
			ID:           uuid.New(),
			StreetNumber: "",
			StreetName:   "",
			ErfNumber:    "",
		},
	}
}

func erfs(entries []domain.GateEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ErfNumber
	}
	return out
}

func ids(entries []domain.GateEntry) []uuid.UUID {
	out := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

package source

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/gate-register/internal/domain"
)

// flexText accepts a JSON string, number or boolean and keeps its text.
// null, objects and arrays leave it unset. The upstream API is not
// consistent about whether ERF and street numbers are strings or numbers.
type flexText struct {
	val string
	set bool
}

func (f *flexText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case 'n', '{', '[':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f.val, f.set = s, true
	default:
		f.val, f.set = string(b), true
	}
	return nil
}

func (f flexText) textPtr() *string {
	if !f.set {
		return nil
	}
	s := f.val
	return &s
}

// intPtr returns the value as an integer when it is one.
func (f flexText) intPtr() *int {
	if !f.set {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(f.val))
	if err != nil {
		return nil
	}
	return &n
}

// wireEntry is the upstream JSON shape of a gate entry.
type wireEntry struct {
	ID                   flexText   `json:"id"`
	ResidentStatus       flexText   `json:"resident_status"`
	FirstName            flexText   `json:"first_name"`
	Surname              flexText   `json:"surname"`
	PhoneNumber          flexText   `json:"phone_number"`
	StreetNumber         flexText   `json:"street_number"`
	StreetName           flexText   `json:"street_name"`
	ErfNumber            flexText   `json:"erf_number"`
	IntercomCode         flexText   `json:"intercom_code"`
	VehicleRegistrations []flexText `json:"vehicle_registrations"`
	TotalVehicles        flexText   `json:"total_vehicles"`
}

func (w wireEntry) toDomain() domain.GateEntry {
	e := domain.GateEntry{
		ResidentStatus:       strings.TrimSpace(w.ResidentStatus.val),
		FirstName:            w.FirstName.textPtr(),
		Surname:              w.Surname.textPtr(),
		PhoneNumber:          w.PhoneNumber.textPtr(),
		StreetNumber:         w.StreetNumber.val,
		StreetName:           w.StreetName.val,
		ErfNumber:            w.ErfNumber.val,
		IntercomCode:         w.IntercomCode.textPtr(),
		VehicleRegistrations: make([]string, 0, len(w.VehicleRegistrations)),
		TotalVehicles:        w.TotalVehicles.intPtr(),
	}
	if id, err := uuid.Parse(w.ID.val); err == nil {
		e.ID = id
	}
	for _, v := range w.VehicleRegistrations {
		if reg := strings.TrimSpace(v.val); v.set && reg != "" {
			e.VehicleRegistrations = append(e.VehicleRegistrations, reg)
		}
	}
	return e
}

// DecodeEntries decodes the upstream register JSON: either a bare array of
// entries or an object wrapping the array in "data". Field types are read
// permissively; see flexText.
func DecodeEntries(body []byte) ([]domain.GateEntry, error) {
	body = bytes.TrimSpace(body)

	var wire []wireEntry
	if len(body) > 0 && body[0] == '{' {
		var envelope struct {
			Data []wireEntry `json:"data"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, err
		}
		wire = envelope.Data
	} else if err := json.Unmarshal(body, &wire); err != nil {
		return nil, err
	}

	entries := make([]domain.GateEntry, 0, len(wire))
	for _, w := range wire {
		entries = append(entries, w.toDomain())
	}
	return entries, nil
}

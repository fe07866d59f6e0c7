package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/gate-register/internal/domain"
	"github.com/pkordes/gate-register/internal/register"
	"github.com/pkordes/gate-register/internal/service"
)

// EntryResponse is the JSON shape of one gate entry.
type EntryResponse struct {
	ID                   uuid.UUID `json:"id"`
	ResidentStatus       string    `json:"resident_status"`
	FirstName            *string   `json:"first_name,omitempty"`
	Surname              *string   `json:"surname,omitempty"`
	PhoneNumber          *string   `json:"phone_number,omitempty"`
	StreetNumber         string    `json:"street_number"`
	StreetName           string    `json:"street_name"`
	ErfNumber            string    `json:"erf_number"`
	IntercomCode         *string   `json:"intercom_code,omitempty"`
	VehicleRegistrations []string  `json:"vehicle_registrations"`
	VehicleCount         int       `json:"vehicle_count"`
}

// Pagination describes the page returned and the size of the whole view.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// RegisterResponse is the body of GET /gate-register.
type RegisterResponse struct {
	Data       []EntryResponse       `json:"data"`
	Rows       []register.DisplayRow `json:"rows"`
	Stats      domain.Stats          `json:"stats"`
	Filter     domain.FilterCriteria `json:"filter"`
	Sort       domain.SortSpec       `json:"sort"`
	Pagination Pagination            `json:"pagination"`
}

// GetGateRegister handles GET /gate-register.
// Supports ?status=, ?search=, ?sort=, ?dir=, ?toggle=, ?page= and ?limit=.
func (s *Server) GetGateRegister(w http.ResponseWriter, r *http.Request) {
	params, err := bindRegisterParams(r.URL.Query())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	state, err := params.state()
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	page, err := s.register.View(r.Context(), state, params.limit())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToResponse(page))
}

// --- mapping helpers --------------------------------------------------------

func pageToResponse(p service.RegisterPage) RegisterResponse {
	data := make([]EntryResponse, len(p.Entries))
	for i, e := range p.Entries {
		data[i] = entryToResponse(e)
	}
	rows := p.Rows
	if rows == nil {
		rows = []register.DisplayRow{}
	}
	return RegisterResponse{
		Data:   data,
		Rows:   rows,
		Stats:  p.Stats,
		Filter: p.State.Criteria,
		Sort:   p.State.Sort,
		Pagination: Pagination{
			Page:  p.Pagination.Page,
			Limit: p.Pagination.Limit,
			Total: p.Total,
		},
	}
}

// entryToResponse maps a domain.GateEntry to its JSON shape. Vehicle lists
// are never null in the response.
func entryToResponse(e domain.GateEntry) EntryResponse {
	vehicles := e.VehicleRegistrations
	if vehicles == nil {
		vehicles = []string{}
	}
	return EntryResponse{
		ID:                   e.ID,
		ResidentStatus:       e.ResidentStatus,
		FirstName:            e.FirstName,
		Surname:              e.Surname,
		PhoneNumber:          e.PhoneNumber,
		StreetNumber:         e.StreetNumber,
		StreetName:           e.StreetName,
		ErfNumber:            e.ErfNumber,
		IntercomCode:         e.IntercomCode,
		VehicleRegistrations: vehicles,
		VehicleCount:         len(vehicles),
	}
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/gate-register/internal/domain"
	"github.com/pkordes/gate-register/internal/register"
	"github.com/pkordes/gate-register/internal/service"
)

// ErfResponse is the body of GET /gate-register/erf/{erf}.
type ErfResponse struct {
	Erf   string                `json:"erf"`
	Data  []EntryResponse       `json:"data"`
	Rows  []register.DisplayRow `json:"rows"`
	Stats domain.Stats          `json:"stats"`
	Sort  domain.SortSpec       `json:"sort"`
}

// GetGateRegisterErf handles GET /gate-register/erf/{erf}.
// Supports ?sort= and ?dir=; other register parameters are ignored.
func (s *Server) GetGateRegisterErf(w http.ResponseWriter, r *http.Request) {
	params, err := bindRegisterParams(r.URL.Query())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	spec, err := params.sortSpec()
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	view, err := s.register.ByErf(r.Context(), chi.URLParam(r, "erf"), spec)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, erfToResponse(view, spec))
}

// GetGateRegisterEntry handles GET /gate-register/entries/{id}.
func (s *Server) GetGateRegisterEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, fmt.Errorf("%w: invalid entry id", domain.ErrValidation))
		return
	}

	e, err := s.register.Entry(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entryToResponse(e))
}

func erfToResponse(v service.ErfView, spec domain.SortSpec) ErfResponse {
	data := make([]EntryResponse, len(v.Entries))
	for i, e := range v.Entries {
		data[i] = entryToResponse(e)
	}
	rows := v.Rows
	if rows == nil {
		rows = []register.DisplayRow{}
	}
	return ErfResponse{Erf: v.Erf, Data: data, Rows: rows, Stats: v.Stats, Sort: spec}
}

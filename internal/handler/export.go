package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// utf8BOM makes spreadsheet applications read the export as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// GetGateRegisterExport handles GET /gate-register/export.
// It takes the same filter and sort parameters as GET /gate-register and
// returns the whole matching view, one CSV row per vehicle, as a download.
// Paging parameters are ignored.
func (s *Server) GetGateRegisterExport(w http.ResponseWriter, r *http.Request) {
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

	export, err := s.register.Export(r.Context(), state.Criteria, state.Sort, s.now())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(export.Filename)))
	w.Header().Set("Content-Length", strconv.Itoa(len(utf8BOM)+len(export.Content)))
	w.Header().Set("X-Export-Rows", strconv.Itoa(export.Rows))
	w.WriteHeader(http.StatusOK)

	// Write errors mean the client went away; there is no one left to tell.
	_, _ = w.Write(utf8BOM)
	_, _ = w.Write(export.Content)
}

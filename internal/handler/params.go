package handler

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/gate-register/internal/domain"
	"github.com/pkordes/gate-register/internal/register"
)

// registerParams are the query parameters shared by the register endpoints.
// Every parameter is optional.
type registerParams struct {
	Status *string
	Search *string
	Sort   *string
	Dir    *string
	Toggle *string
	Page   *int
	Limit  *int
}

// bindRegisterParams reads the query string the same way generated
// oapi-codegen servers do: form style, exploded, nothing required.
func bindRegisterParams(q url.Values) (registerParams, error) {
	var p registerParams
	bindings := []struct {
		name string
		dest any
	}{
		{"status", &p.Status},
		{"search", &p.Search},
		{"sort", &p.Sort},
		{"dir", &p.Dir},
		{"toggle", &p.Toggle},
		{"page", &p.Page},
		{"limit", &p.Limit},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, q, b.dest); err != nil {
			return registerParams{}, fmt.Errorf("%w: invalid %s parameter", domain.ErrValidation, b.name)
		}
	}
	return p, nil
}

// state turns the parameters into a register state. sort and dir set the
// current sort; toggle then applies a header click on top of it, so a
// client can send back the state it was given plus the column clicked.
func (p registerParams) state() (register.State, error) {
	s := register.NewState()

	status, err := domain.ParseStatusFilter(deref(p.Status))
	if err != nil {
		return register.State{}, err
	}
	sort, err := p.sortSpec()
	if err != nil {
		return register.State{}, err
	}
	s = register.Reduce(s, register.SetStatusFilter{Status: status})
	s = register.Reduce(s, register.SetSearch{Term: strings.TrimSpace(deref(p.Search))})
	s.Sort = sort

	if p.Toggle != nil {
		toggle, err := domain.ParseSortColumn(*p.Toggle)
		if err != nil {
			return register.State{}, err
		}
		s = register.Reduce(s, register.ToggleSort{Column: toggle})
	}
	if p.Page != nil {
		s = register.Reduce(s, register.SetPage{Page: *p.Page})
	}
	return s, nil
}

// sortSpec reads sort and dir. Missing values take the defaults.
func (p registerParams) sortSpec() (domain.SortSpec, error) {
	col, err := domain.ParseSortColumn(deref(p.Sort))
	if err != nil {
		return domain.SortSpec{}, err
	}
	dir, err := domain.ParseSortDirection(deref(p.Dir))
	if err != nil {
		return domain.SortSpec{}, err
	}
	return domain.SortSpec{Column: col, Direction: dir}, nil
}

// limit returns the requested page size, or 0 for the default.
func (p registerParams) limit() int {
	if p.Limit == nil {
		return 0
	}
	return *p.Limit
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package register

import (
	"strings"

	"github.com/pkordes/gate-register/internal/domain"
)

// Filter returns the entries matching both the status filter and the search
// term, in their original order. The result is never nil.
func Filter(entries []domain.GateEntry, criteria domain.FilterCriteria) []domain.GateEntry {
	out := make([]domain.GateEntry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, criteria) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether a single entry passes the criteria.
func Matches(e domain.GateEntry, criteria domain.FilterCriteria) bool {
	return matchesStatus(e, criteria.Status) && matchesSearch(e, strings.ToLower(criteria.Search))
}

// matchesStatus is an exact case-insensitive comparison: "owner" does not
// match "Owner-Resident".
func matchesStatus(e domain.GateEntry, f domain.StatusFilter) bool {
	if f == "" || f == domain.FilterAll {
		return true
	}
	return strings.ToLower(e.ResidentStatus) == string(f)
}

// matchesSearch expects term to be lower-cased already.
func matchesSearch(e domain.GateEntry, term string) bool {
	if term == "" {
		return true
	}
	fields := [...]string{
		domain.Text(e.FirstName),
		domain.Text(e.Surname),
		e.StreetName,
		e.StreetNumber,
		e.ErfNumber,
		domain.Text(e.PhoneNumber),
		domain.Text(e.IntercomCode),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	for _, v := range e.VehicleRegistrations {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

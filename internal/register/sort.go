package register

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pkordes/gate-register/internal/domain"
)

// Sort returns a sorted copy of entries. The sort is stable: entries with
// equal keys keep their relative order in both directions.
func Sort(entries []domain.GateEntry, spec domain.SortSpec) []domain.GateEntry {
	out := make([]domain.GateEntry, len(entries))
	copy(out, entries)
	slices.SortStableFunc(out, comparator(spec))
	return out
}

// comparator returns the three-way comparison used by one Sort call.
// Text columns capture a collator, which keeps internal buffers and is not
// safe for concurrent use, so the result must not outlive or leave that call.
func comparator(spec domain.SortSpec) func(a, b domain.GateEntry) int {
	var base func(a, b domain.GateEntry) int
	switch spec.Column {
	case domain.ColumnStreetNumber:
		base = func(a, b domain.GateEntry) int {
			return cmp.Compare(leadingInt(a.StreetNumber), leadingInt(b.StreetNumber))
		}
	case domain.ColumnErfNumber:
		base = func(a, b domain.GateEntry) int {
			return cmp.Compare(leadingInt(a.ErfNumber), leadingInt(b.ErfNumber))
		}
	default:
		key := stringKey(spec.Column)
		col := collate.New(language.English)
		base = func(a, b domain.GateEntry) int {
			return col.CompareString(key(a), key(b))
		}
	}

	if spec.Direction == domain.Desc {
		return func(a, b domain.GateEntry) int { return -base(a, b) }
	}
	return base
}

// stringKey returns the lower-cased text key extractor for a column.
// Unknown columns fall back to street name, the default sort column.
func stringKey(c domain.SortColumn) func(domain.GateEntry) string {
	var raw func(domain.GateEntry) string
	switch c {
	case domain.ColumnResidentStatus:
		raw = func(e domain.GateEntry) string { return e.ResidentStatus }
	case domain.ColumnFirstName:
		raw = func(e domain.GateEntry) string { return domain.Text(e.FirstName) }
	case domain.ColumnSurname:
		raw = func(e domain.GateEntry) string { return domain.Text(e.Surname) }
	case domain.ColumnPhoneNumber:
		raw = func(e domain.GateEntry) string { return domain.Text(e.PhoneNumber) }
	case domain.ColumnIntercomCode:
		raw = func(e domain.GateEntry) string { return domain.Text(e.IntercomCode) }
	case domain.ColumnVehicleRegistrations:
		raw = domain.GateEntry.PrimaryVehicle
	default:
		raw = func(e domain.GateEntry) string { return e.StreetName }
	}
	return func(e domain.GateEntry) string { return strings.ToLower(raw(e)) }
}

// leadingInt parses the integer prefix of s the way a lenient form field
// would: leading spaces and an optional sign are allowed, parsing stops at
// the first non-digit, and text with no digits (or too many) yields 0.
// "12A" is 12; "A12" is 0.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

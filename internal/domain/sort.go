package domain

import (
	"fmt"
	"strings"
)

// SortColumn names one of the nine sortable register columns.
type SortColumn string

const (
	ColumnResidentStatus       SortColumn = "resident_status"
	ColumnFirstName            SortColumn = "first_name"
	ColumnSurname              SortColumn = "surname"
	ColumnPhoneNumber          SortColumn = "phone_number"
	ColumnStreetNumber         SortColumn = "street_nr"
	ColumnStreetName           SortColumn = "street_name"
	ColumnVehicleRegistrations SortColumn = "vehicle_registrations"
	ColumnErfNumber            SortColumn = "erf_nr"
	ColumnIntercomCode         SortColumn = "intercom_code"
)

// SortColumns lists every sortable column in display order.
var SortColumns = []SortColumn{
	ColumnResidentStatus,
	ColumnFirstName,
	ColumnSurname,
	ColumnPhoneNumber,
	ColumnStreetNumber,
	ColumnStreetName,
	ColumnVehicleRegistrations,
	ColumnErfNumber,
	ColumnIntercomCode,
}

// SortDirection is either ascending or descending.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// SortSpec is the transient sort state of a register view.
type SortSpec struct {
	Column    SortColumn    `json:"column"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortSpec returns the sort applied when a view is first opened.
func DefaultSortSpec() SortSpec {
	return SortSpec{Column: ColumnStreetName, Direction: Asc}
}

// ParseSortColumn validates a column name. An empty value yields the default column.
func ParseSortColumn(s string) (SortColumn, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSortSpec().Column, nil
	}
	for _, c := range SortColumns {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sort column %q", ErrValidation, s)
}

// ParseSortDirection validates a direction. An empty value yields Asc.
func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Asc, nil
	case Asc, Desc:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown sort direction %q", ErrValidation, s)
	}
}

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Desc {
		return Asc
	}
	return Desc
}

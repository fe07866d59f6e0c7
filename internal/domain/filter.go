package domain

import (
	"fmt"
	"strings"
)

// StatusFilter selects entries by resident status.
type StatusFilter string

const (
	FilterAll           StatusFilter = "all"
	FilterResident      StatusFilter = "resident"
	FilterOwner         StatusFilter = "owner"
	FilterOwnerResident StatusFilter = "owner-resident"
)

// ParseStatusFilter converts a query value into a StatusFilter.
// Matching is case-insensitive and an empty value means FilterAll.
// Unknown values wrap ErrValidation.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterResident, FilterOwner, FilterOwnerResident:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown status filter %q", ErrValidation, s)
	}
}

// FilterCriteria is the transient filter state of a register view.
// It is never persisted.
type FilterCriteria struct {
	Status StatusFilter `json:"status"`
	Search string       `json:"search"`
}

// DefaultFilterCriteria returns criteria that match every entry.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{Status: FilterAll}
}

// Active reports whether the criteria narrow the register at all.
func (c FilterCriteria) Active() bool {
	return (c.Status != "" && c.Status != FilterAll) || strings.TrimSpace(c.Search) != ""
}

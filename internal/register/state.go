package register

import "github.com/pkordes/gate-register/internal/domain"

// State is everything a register screen keeps between interactions.
type State struct {
	Criteria domain.FilterCriteria
	Sort     domain.SortSpec
	Page     int
}

// NewState returns the state of a freshly opened register: no filter,
// sorted by street name ascending, first page.
func NewState() State {
	return State{
		Criteria: domain.DefaultFilterCriteria(),
		Sort:     domain.DefaultSortSpec(),
		Page:     1,
	}
}

// Action is a user interaction applied by Reduce.
type Action interface {
	apply(State) State
}

// SetStatusFilter replaces the status filter and returns to the first page.
type SetStatusFilter struct{ Status domain.StatusFilter }

// SetSearch replaces the search term and returns to the first page.
type SetSearch struct{ Term string }

// ToggleSort is a click on a column header. Clicking the sorted column
// flips the direction; clicking another column sorts by it ascending.
type ToggleSort struct{ Column domain.SortColumn }

// SetPage moves to a page. Values below 1 clamp to 1.
type SetPage struct{ Page int }

func (a SetStatusFilter) apply(s State) State {
	s.Criteria.Status = a.Status
	s.Page = 1
	return s
}

func (a SetSearch) apply(s State) State {
	s.Criteria.Search = a.Term
	s.Page = 1
	return s
}

func (a ToggleSort) apply(s State) State {
	if s.Sort.Column == a.Column {
		s.Sort.Direction = s.Sort.Direction.Flip()
		return s
	}
	s.Sort = domain.SortSpec{Column: a.Column, Direction: domain.Asc}
	return s
}

func (a SetPage) apply(s State) State {
	s.Page = max(a.Page, 1)
	return s
}

// Reduce returns the state that results from applying action to s.
// s itself is left unchanged.
func Reduce(s State, action Action) State {
	if action == nil {
		return s
	}
	return action.apply(s)
}

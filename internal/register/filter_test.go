package register_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/gate-register/internal/domain"
	"github.com/pkordes/gate-register/internal/register"
)

func TestFilter_AllKeepsEverythingInOrder(t *testing.T) {
	entries := estate()

	got := register.Filter(entries, domain.DefaultFilterCriteria())

	assert.Equal(t, ids(entries), ids(got))
}

func TestFilter_ZeroValueCriteriaMatchesAll(t *testing.T) {
	entries := estate()

	got := register.Filter(entries, domain.FilterCriteria{})

	assert.Len(t, got, len(entries))
}

func TestFilter_StatusIsExactMatch(t *testing.T) {
	got := register.Filter(estate(), domain.FilterCriteria{Status: domain.FilterOwner})

	// "Owner-Resident" must not leak into an "owner" filter.
	require.Len(t, got, 1)
	assert.Equal(t, "Owner", got[0].ResidentStatus)
}

func TestFilter_OwnerFilterExcludesOwnerResident(t *testing.T) {
	entries := []domain.GateEntry{entry("Owner-Resident", "12", "ABC123GP")}

	got := register.Filter(entries, domain.FilterCriteria{Status: domain.FilterOwner})

	assert.Empty(t, got)
}

func TestFilter_StatusIsCaseInsensitive(t *testing.T) {
	got := register.Filter(estate(), domain.FilterCriteria{Status: domain.FilterResident})

	// "Resident" and "resident" both match; blank status does not.
	assert.Equal(t, []string{"5", "44"}, erfs(got))
}

func TestFilter_OwnerResidentFilter(t *testing.T) {
	got := register.Filter(estate(), domain.FilterCriteria{Status: domain.FilterOwnerResident})

	require.Len(t, got, 1)
	assert.Equal(t, "12", got[0].ErfNumber)
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := register.Filter(estate(), domain.FilterCriteria{Search: "main"})

	assert.Equal(t, []string{"12", "44"}, erfs(got))
}

func TestFilter_SearchMatchesVehicleRegistration(t *testing.T) {
	entries := []domain.GateEntry{
		entry("Owner-Resident", "12", "ABC123GP", "XYZ789GP"),
		entry("Resident", "5"),
	}

	got := register.Filter(entries, domain.FilterCriteria{Search: "gp"})

	require.Len(t, got, 1)
	assert.Equal(t, "12", got[0].ErfNumber)
}

func TestFilter_SearchMatchesSecondaryVehicle(t *testing.T) {
	got := register.Filter(estate(), domain.FilterCriteria{Search: "xyz789"})

	assert.Equal(t, []string{"12"}, erfs(got))
}

func TestFilter_SearchFields(t *testing.T) {
	cases := []struct {
		name string
		term string
		want []string
	}{
		{"first name", "PIETER", []string{"101"}},
		{"surname", "merwe", []string{"5"}},
		{"street number text", "27", []string{"101"}},
		{"erf text", "44", []string{"44"}},
		{"phone", "555 01", []string{"12"}},
		{"intercom", "0907", []string{"44"}},
		{"street name", "acacia", []string{"5"}},
		{"no match", "zzzz-nothing", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := register.Filter(estate(), domain.FilterCriteria{Search: tc.term})
			assert.Equal(t, tc.want, erfs(got))
		})
	}
}

func TestFilter_AbsentFieldsNeverMatch(t *testing.T) {
	// An entry with every optional field nil must not match terms like
	// "nil", "null" or "undefined".
	blank := domain.GateEntry{}
	for _, term := range []string{"nil", "null", "undefined", "<nil>"} {
		got := register.Filter([]domain.GateEntry{blank}, domain.FilterCriteria{Search: term})
		assert.Empty(t, got, term)
	}
}

func TestFilter_StatusAndSearchCombine(t *testing.T) {
	got := register.Filter(estate(), domain.FilterCriteria{Status: domain.FilterResident, Search: "main"})

	assert.Equal(t, []string{"44"}, erfs(got))
}

func TestFilter_EmptyResultIsNotNil(t *testing.T) {
	got := register.Filter(nil, domain.FilterCriteria{Search: "x"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_Idempotent(t *testing.T) {
	criteria := []domain.FilterCriteria{
		{Status: domain.FilterAll},
		{Status: domain.FilterResident},
		{Status: domain.FilterAll, Search: "gp"},
		{Status: domain.FilterOwner, Search: "street"},
	}
	for _, c := range criteria {
		once := register.Filter(estate(), c)
		twice := register.Filter(once, c)
		assert.Equal(t, ids(once), ids(twice), "criteria %+v", c)
	}
}

func TestMatches(t *testing.T) {
	e := entry("Owner", "7", "GP1")

	assert.True(t, register.Matches(e, domain.FilterCriteria{Status: domain.FilterOwner, Search: "gp"}))
	assert.False(t, register.Matches(e, domain.FilterCriteria{Status: domain.FilterResident}))
}

func TestFilter_KeepsExactlyTheMatchingEntries(t *testing.T) {
	c := domain.FilterCriteria{Status: domain.FilterAll, Search: "GP"}
	want := []uuid.UUID{}
	for _, e := range estate() {
		if register.Matches(e, c) {
			want = append(want, e.ID)
		}
	}

	require.NotEmpty(t, want)
	assert.Equal(t, want, ids(register.Filter(estate(), c)))
}

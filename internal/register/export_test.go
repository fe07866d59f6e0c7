package register_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/gate-register/internal/domain"
	"github.com/pkordes/gate-register/internal/register"
)

func TestExportRows_ExpandsOneRowPerVehicle(t *testing.T) {
	entries := register.Sort([]domain.GateEntry{
		entry("Owner-Resident", "12", "ABC123GP", "XYZ789GP"),
		entry("Resident", "5"),
	}, domain.SortSpec{Column: domain.ColumnErfNumber, Direction: domain.Asc})

	rows := register.ExportRows(entries)

	require.Len(t, rows, 3)
	assert.Equal(t, "5", rows[0].ErfNumber)
	assert.Empty(t, rows[0].VehicleRegistration)
	assert.Equal(t, "12", rows[1].ErfNumber)
	assert.Equal(t, "ABC123GP", rows[1].VehicleRegistration)
	assert.Equal(t, "12", rows[2].ErfNumber)
	assert.Equal(t, "XYZ789GP", rows[2].VehicleRegistration)
}

func TestExportRows_RepeatsIdentityOnEveryRow(t *testing.T) {
	rows := register.ExportRows(estate()[:1])

	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "Owner-Resident", r.ResidentStatus)
		assert.Equal(t, "Thabo", r.FirstName)
		assert.Equal(t, "Mokoena", r.Surname)
		assert.Equal(t, "082 555 0101", r.PhoneNumber)
		assert.Equal(t, "14", r.StreetNumber)
		assert.Equal(t, "Main Street", r.StreetName)
		assert.Equal(t, "12", r.ErfNumber)
		assert.Equal(t, "1402", r.IntercomCode)
	}
}

func TestExportRows_RowCountInvariant(t *testing.T) {
	entries := estate()
	want := 0
	for _, e := range entries {
		want += max(len(e.VehicleRegistrations), 1)
	}

	rows := register.ExportRows(entries)

	assert.Len(t, rows, want)
	assert.Len(t, rows, 6)
}

func TestExportRows_Empty(t *testing.T) {
	rows := register.ExportRows(nil)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestEncodeCSV_HeaderOnlyForEmptyExport(t *testing.T) {
	out := string(register.EncodeCSV(nil))

	assert.Equal(t,
		`"RESIDENT STATUS","FIRST NAME","SURNAME","PHONE NUMBER","STREET NR","STREET NAME","VEHICLE REGISTRATION NR","ERF NR","INTERCOM NR"`+"\r\n",
		out)
}

func TestEncodeCSV_EveryFieldQuotedAndAbsentIsEmpty(t *testing.T) {
	rows := register.ExportRows([]domain.GateEntry{entry("Resident", "5")})

	out := string(register.EncodeCSV(rows))
	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")

	require.Len(t, lines, 2)
	assert.Equal(t, `"Resident","","","","","","","5",""`, lines[1])
	assert.NotContains(t, out, "nil")
	assert.NotContains(t, out, "null")
	assert.NotContains(t, out, "undefined")
}

func TestEncodeCSV_EscapesQuotesAndCommas(t *testing.T) {
	e := entry("Owner", "9", "GP, 1")
	e.Surname = ptr(`O"Neil`)

	out := register.EncodeCSV(register.ExportRows([]domain.GateEntry{e}))

	// The output must round-trip through a standard CSV reader.
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, register.ExportHeader, records[0])
	assert.Equal(t, `O"Neil`, records[1][2])
	assert.Equal(t, "GP, 1", records[1][6])
}

func TestEncodeCSV_NineColumnsPerLine(t *testing.T) {
	out := register.EncodeCSV(register.ExportRows(estate()))

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 7)
	for _, rec := range records {
		assert.Len(t, rec, 9)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 30, 0, 0, time.FixedZone("SAST", 2*60*60))

	cases := []struct {
		name     string
		criteria domain.FilterCriteria
		want     string
	}{
		{"all", domain.FilterCriteria{Status: domain.FilterAll}, "gate-register-2025-03-01T08-30-00Z.csv"},
		{"zero value", domain.FilterCriteria{}, "gate-register-2025-03-01T08-30-00Z.csv"},
		{"status", domain.FilterCriteria{Status: domain.FilterOwner}, "gate-register-2025-03-01T08-30-00Z-owner.csv"},
		{"search", domain.FilterCriteria{Status: domain.FilterAll, Search: "gp"}, "gate-register-2025-03-01T08-30-00Z-filtered.csv"},
		{"both", domain.FilterCriteria{Status: domain.FilterOwnerResident, Search: "gp"}, "gate-register-2025-03-01T08-30-00Z-owner-resident-filtered.csv"},
		{"blank search", domain.FilterCriteria{Status: domain.FilterAll, Search: "   "}, "gate-register-2025-03-01T08-30-00Z.csv"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, register.ExportFilename(tc.criteria, now))
		})
	}
}

func TestExport(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	got := register.Export(estate(), domain.FilterCriteria{Status: domain.FilterAll}, now)

	assert.Equal(t, "gate-register-2025-03-01T08-00-00Z.csv", got.Filename)
	assert.Equal(t, 6, got.Rows)
	assert.True(t, bytes.HasPrefix(got.Content, []byte(`"RESIDENT STATUS"`)))
}

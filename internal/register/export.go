package register

import (
	"bytes"
	"strings"
	"time"

	"github.com/pkordes/gate-register/internal/domain"
)

// ExportHeader is the first line of every CSV export, in column order.
var ExportHeader = []string{
	"RESIDENT STATUS",
	"FIRST NAME",
	"SURNAME",
	"PHONE NUMBER",
	"STREET NR",
	"STREET NAME",
	"VEHICLE REGISTRATION NR",
	"ERF NR",
	"INTERCOM NR",
}

// ExportRows flattens entries into one row per vehicle. Every row repeats
// the entry's identity so each CSV line stands alone. An entry with no
// vehicles yields a single row with an empty registration.
func ExportRows(entries []domain.GateEntry) []domain.ExportRow {
	rows := make([]domain.ExportRow, 0, exportRowCount(entries))
	for _, e := range entries {
		base := domain.ExportRow{
			ResidentStatus: e.ResidentStatus,
			FirstName:      domain.Text(e.FirstName),
			Surname:        domain.Text(e.Surname),
			PhoneNumber:    domain.Text(e.PhoneNumber),
			StreetNumber:   e.StreetNumber,
			StreetName:     e.StreetName,
			ErfNumber:      e.ErfNumber,
			IntercomCode:   domain.Text(e.IntercomCode),
		}
		if len(e.VehicleRegistrations) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, v := range e.VehicleRegistrations {
			r := base
			r.VehicleRegistration = v
			rows = append(rows, r)
		}
	}
	return rows
}

func exportRowCount(entries []domain.GateEntry) int {
	n := 0
	for _, e := range entries {
		n += max(len(e.VehicleRegistrations), 1)
	}
	return n
}

// EncodeCSV renders the header and rows as CSV text. Every field is quoted,
// including empty ones, and lines end in CRLF.
//
// encoding/csv only quotes fields that need it, so the writer is hand-rolled.
func EncodeCSV(rows []domain.ExportRow) []byte {
	var buf bytes.Buffer
	writeRecord(&buf, ExportHeader)
	for _, r := range rows {
		writeRecord(&buf, exportRecord(r))
	}
	return buf.Bytes()
}

func exportRecord(r domain.ExportRow) []string {
	return []string{
		r.ResidentStatus,
		r.FirstName,
		r.Surname,
		r.PhoneNumber,
		r.StreetNumber,
		r.StreetName,
		r.VehicleRegistration,
		r.ErfNumber,
		r.IntercomCode,
	}
}

func writeRecord(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}

// filenameTimeLayout is RFC 3339 in UTC with the colons swapped for dashes
// so the name is valid on every filesystem.
const filenameTimeLayout = "2006-01-02T15-04-05Z"

// ExportFilename names an export taken at now under the given criteria:
//
//	gate-register-2025-03-01T08-30-00Z.csv
//	gate-register-2025-03-01T08-30-00Z-owner-filtered.csv
//
// The status suffix is omitted for "all"; "-filtered" marks a search term.
func ExportFilename(criteria domain.FilterCriteria, now time.Time) string {
	var b strings.Builder
	b.WriteString("gate-register-")
	b.WriteString(now.UTC().Format(filenameTimeLayout))
	if criteria.Status != "" && criteria.Status != domain.FilterAll {
		b.WriteByte('-')
		b.WriteString(string(criteria.Status))
	}
	if strings.TrimSpace(criteria.Search) != "" {
		b.WriteString("-filtered")
	}
	b.WriteString(".csv")
	return b.String()
}

// Export builds the complete CSV document for entries.
func Export(entries []domain.GateEntry, criteria domain.FilterCriteria, now time.Time) domain.Export {
	rows := ExportRows(entries)
	return domain.Export{
		Filename: ExportFilename(criteria, now),
		Content:  EncodeCSV(rows),
		Rows:     len(rows),
	}
}

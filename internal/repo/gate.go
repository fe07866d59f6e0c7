// Package repo contains all database access logic for the Gate Register service.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/gate-register/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GateEntryRepo defines the persistence operations for gate entries.
// The service layer depends on this interface through its own EntrySource,
// so it can be unit-tested with a mock.
type GateEntryRepo interface {
	// List returns every entry with its vehicles in registration order,
	// oldest entry first.
	List(ctx context.Context) ([]domain.GateEntry, error)

	// GetByID retrieves a single entry by its UUID primary key.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.GateEntry, error)

	// ListByErf returns all entries registered against an ERF number.
	ListByErf(ctx context.Context, erf string) ([]domain.GateEntry, error)

	// Create inserts an entry and its vehicles in one statement and returns
	// the persisted record with its DB-generated ID.
	Create(ctx context.Context, entry domain.GateEntry) (domain.GateEntry, error)
}

// pgGateEntryRepo is the Postgres implementation of GateEntryRepo.
type pgGateEntryRepo struct {
	db db
}

// NewGateEntryRepo constructs a GateEntryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewGateEntryRepo(db db) GateEntryRepo {
	return &pgGateEntryRepo{db: db}
}

// selectEntries aggregates vehicles per resident. The FILTER clause keeps
// residents without vehicles from getting a {NULL} array.
const selectEntries = `
	SELECT r.id, r.resident_status, r.first_name, r.surname, r.phone_number,
	       r.street_number, r.street_name, r.erf_number, r.intercom_code,
	       r.total_vehicles,
	       COALESCE(
	           array_agg(v.registration ORDER BY v.position) FILTER (WHERE v.id IS NOT NULL),
	           '{}'
	       ) AS vehicles
	FROM residents r
	LEFT JOIN vehicles v ON v.resident_id = r.id`

// List returns all entries, oldest first.
func (r *pgGateEntryRepo) List(ctx context.Context) ([]domain.GateEntry, error) {
	const q = selectEntries + `
	GROUP BY r.id
	ORDER BY r.created_at, r.id`

	entries, err := r.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.GateEntryRepo.List: %w", err)
	}
	return entries, nil
}

// GetByID retrieves an entry by primary key.
func (r *pgGateEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.GateEntry, error) {
	const q = selectEntries + `
	WHERE r.id = @id
	GROUP BY r.id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	e, err := scanEntry(row)
	if err != nil {
		return domain.GateEntry{}, fmt.Errorf("repo.GateEntryRepo.GetByID: %w", err)
	}
	return e, nil
}

// ListByErf returns the entries on one ERF, oldest first.
func (r *pgGateEntryRepo) ListByErf(ctx context.Context, erf string) ([]domain.GateEntry, error) {
	const q = selectEntries + `
	WHERE r.erf_number = @erf
	GROUP BY r.id
	ORDER BY r.created_at, r.id`

	entries, err := r.query(ctx, q, pgx.NamedArgs{"erf": erf})
	if err != nil {
		return nil, fmt.Errorf("repo.GateEntryRepo.ListByErf: %w", err)
	}
	return entries, nil
}

// Create inserts the resident row and its vehicles with a single writable
// CTE, so a failure leaves nothing behind even outside a transaction.
func (r *pgGateEntryRepo) Create(ctx context.Context, entry domain.GateEntry) (domain.GateEntry, error) {
	const q = `
		WITH ins AS (
			INSERT INTO residents (resident_status, first_name, surname, phone_number,
			                       street_number, street_name, erf_number, intercom_code,
			                       total_vehicles)
			VALUES (@resident_status, @first_name, @surname, @phone_number,
			        @street_number, @street_name, @erf_number, @intercom_code,
			        @total_vehicles)
			RETURNING id
		), veh AS (
			INSERT INTO vehicles (resident_id, registration, position)
			SELECT ins.id, t.registration, t.ord - 1
			FROM ins, unnest(@vehicles::text[]) WITH ORDINALITY AS t(registration, ord)
			RETURNING 1
		)
		SELECT id FROM ins`

	vehicles := entry.VehicleRegistrations
	if vehicles == nil {
		vehicles = []string{}
	}
	args := pgx.NamedArgs{
		"resident_status": entry.ResidentStatus,
		"first_name":      entry.FirstName, // nil becomes NULL
		"surname":         entry.Surname,
		"phone_number":    entry.PhoneNumber,
		"street_number":   entry.StreetNumber,
		"street_name":     entry.StreetName,
		"erf_number":      entry.ErfNumber,
		"intercom_code":   entry.IntercomCode,
		"total_vehicles":  entry.TotalVehicles,
		"vehicles":        vehicles,
	}

	var id pgtype.UUID
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		return domain.GateEntry{}, fmt.Errorf("repo.GateEntryRepo.Create: %w", err)
	}

	created := entry
	created.ID = uuid.UUID(id.Bytes)
	created.VehicleRegistrations = vehicles
	return created, nil
}

func (r *pgGateEntryRepo) query(ctx context.Context, q string, args ...any) ([]domain.GateEntry, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.GateEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return entries, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanEntry to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntry maps a single database row into a domain.GateEntry.
// Nullable text columns become nil pointers rather than empty strings.
func scanEntry(s scanner) (domain.GateEntry, error) {
	var (
		e        domain.GateEntry
		id       pgtype.UUID
		first    pgtype.Text
		surname  pgtype.Text
		phone    pgtype.Text
		intercom pgtype.Text
		total    pgtype.Int4
	)

	err := s.Scan(&id, &e.ResidentStatus, &first, &surname, &phone,
		&e.StreetNumber, &e.StreetName, &e.ErfNumber, &intercom,
		&total, &e.VehicleRegistrations)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.GateEntry{}, domain.ErrNotFound
		}
		return domain.GateEntry{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.FirstName = textPtr(first)
	e.Surname = textPtr(surname)
	e.PhoneNumber = textPtr(phone)
	e.IntercomCode = textPtr(intercom)
	if total.Valid {
		n := int(total.Int32)
		e.TotalVehicles = &n
	}
	return e, nil
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// Package app assembles the pieces the binaries share: the configured
// entry source, the transactional import and the process logger.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/gate-register/internal/config"
	"github.com/pkordes/gate-register/internal/domain"
	"github.com/pkordes/gate-register/internal/repo"
	"github.com/pkordes/gate-register/internal/service"
	"github.com/pkordes/gate-register/internal/source"
	"github.com/pkordes/gate-register/migrations"
)

// OpenFunc opens an entry source and returns a func that releases it.
type OpenFunc func(ctx context.Context, cfg config.Config, log *slog.Logger) (service.EntrySource, func(), error)

// NewLogger returns a JSON logger writing to w at the configured level.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l}))
}

// OpenEntrySource builds the EntrySource selected by cfg.DataSource.
func OpenEntrySource(ctx context.Context, cfg config.Config, log *slog.Logger) (service.EntrySource, func(), error) {
	switch cfg.DataSource {
	case config.SourceREST:
		session := source.NewSession(cfg.RegisterAPIToken)
		log.InfoContext(ctx, "register api source", "url", cfg.RegisterAPIURL, "authenticated", session.Active())
		return source.NewClient(cfg.RegisterAPIURL, nil, session), func() {}, nil

	case config.SourcePostgres:
		pool, err := openPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, fmt.Errorf("app.OpenEntrySource: %w", err)
		}
		return repo.NewGateEntryRepo(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("app.OpenEntrySource: unknown data source %q", cfg.DataSource)
	}
}

// ImportEntries writes entries to the Postgres register in a single
// transaction: either every entry is created or none is.
// The REST source is read-only and is rejected.
func ImportEntries(ctx context.Context, cfg config.Config, log *slog.Logger, entries []domain.GateEntry) ([]domain.GateEntry, error) {
	if cfg.DataSource != config.SourcePostgres {
		return nil, fmt.Errorf("app.ImportEntries: data source %q is read-only", cfg.DataSource)
	}
	pool, err := openPool(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("app.ImportEntries: %w", err)
	}
	defer pool.Close()

	var created []domain.GateEntry
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var err error
		created, err = service.NewGateImportService(repo.NewGateEntryRepo(tx), log).Import(ctx, entries)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("app.ImportEntries: %w", err)
	}
	return created, nil
}

// openPool connects to cfg.DatabaseURL and applies migrations when
// cfg.MigrateOnStart is set.
func openPool(ctx context.Context, cfg config.Config, log *slog.Logger) (*pgxpool.Pool, error) {
	// New() does not open connections immediately; Ping does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}
	if cfg.MigrateOnStart {
		if err := migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}

// migrate runs the embedded goose migrations over the pool's connections.
func migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	// Idle conns must stay in the pool, not in database/sql.
	db := stdlib.OpenDBFromPool(pool)
	db.SetMaxIdleConns(0)
	defer db.Close()

	n, err := migrations.Up(ctx, db)
	if err != nil {
		return fmt.Errorf("app.migrate: %w", err)
	}
	log.InfoContext(ctx, "migrations applied", "count", n)
	return nil
}

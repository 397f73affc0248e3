// Package migrations applies the embedded SQL schema to PostgreSQL with
// golang-migrate.
//
// Files under sql/ follow the NNNN_name.up.sql / NNNN_name.down.sql layout. The
// applied version is tracked by golang-migrate in schema_migrations, so a second
// run is a no-op.
package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed sql/*.sql
var files embed.FS

func newSource() (source.Driver, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	return src, nil
}

// Versions returns the embedded migration versions in the order they are applied.
func Versions() ([]uint, error) {
	src, err := newSource()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var versions []uint
	version, err := src.First()
	for err == nil {
		versions = append(versions, version)
		version, err = src.Next(version)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	return versions, nil
}

// Apply migrates the database up to the latest embedded version and returns how
// many migrations it ran. Cancelling ctx stops after the running migration.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) (int, error) {
	logger = logger.With("component", "migrations")

	src, err := newSource()
	if err != nil {
		return 0, err
	}
	driver, err := pgxmigrate.WithInstance(stdlib.OpenDBFromPool(pool), &pgxmigrate.Config{})
	if err != nil {
		return 0, fmt.Errorf("open migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return 0, fmt.Errorf("initialize migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.WarnContext(ctx, "close migrator", "source_error", srcErr, "database_error", dbErr)
		}
	}()
	m.Log = migrateLogger{logger: logger}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			m.GracefulStop <- true
		case <-done:
		}
	}()

	before, err := version(m)
	if err != nil {
		return 0, err
	}
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}
	after, err := version(m)
	if err != nil {
		return 0, err
	}

	applied, err := countBetween(before, after)
	if err != nil {
		return 0, err
	}
	logger.InfoContext(ctx, "schema is up to date", "version", after, "applied", applied)
	return applied, nil
}

func version(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return 0, fmt.Errorf("schema version %d is dirty", v)
	}
	return v, nil
}

// countBetween counts the embedded versions in (from, to].
func countBetween(from, to uint) (int, error) {
	versions, err := Versions()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range versions {
		if v > from && v <= to {
			n++
		}
	}
	return n, nil
}

type migrateLogger struct {
	logger *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (migrateLogger) Verbose() bool {
	return false
}

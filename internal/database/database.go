// Package database provides PostgreSQL connection management and schema
// migration on startup.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/slidekit/proofplay/internal/config"
	"github.com/slidekit/proofplay/internal/lifecycle"
	"github.com/slidekit/proofplay/migrations"
)

// System manages the database connection lifecycle.
type System interface {
	Start(lc *lifecycle.Coordinator) error
	Connection() *sql.DB
}

type system struct {
	db          *sql.DB
	connTimeout func() (context.Context, context.CancelFunc)
	logger      *slog.Logger
}

// New opens a connection pool with the configured limits. The connection is
// not verified until Start.
func New(cfg *config.DatabaseConfig, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	timeout := cfg.ConnTimeoutDuration()

	return &system{
		db: db,
		connTimeout: func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), timeout)
		},
		logger: logger.With("system", "database"),
	}, nil
}

// Start verifies connectivity, applies pending migrations, and registers
// connection teardown with the lifecycle coordinator.
func (s *system) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := s.connTimeout()
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := s.migrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.db.Close(); err != nil {
			s.logger.Error("database close error", "error", err)
		}
	})

	s.logger.Info("database ready")
	return nil
}

// Connection returns the underlying connection pool.
func (s *system) Connection() *sql.DB {
	return s.db
}

func (s *system) migrate() error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	driver, err := pgxmigrate.WithInstance(s.db, &pgxmigrate.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	s.logger.Info("migrations applied")
	return nil
}

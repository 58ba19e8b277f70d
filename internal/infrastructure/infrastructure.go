// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, events) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/slidekit/proofplay/internal/config"
	"github.com/slidekit/proofplay/internal/database"
	"github.com/slidekit/proofplay/internal/events"
	"github.com/slidekit/proofplay/internal/lifecycle"
	"github.com/slidekit/proofplay/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, and event emission.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Events    events.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Events:    events.NewSystem(&cfg.Events, logger),
	}, nil
}

// Start initializes all infrastructure systems and registers them with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Events.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("events start failed: %w", err)
	}
	return nil
}

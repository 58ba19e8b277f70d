package events

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/slidekit/proofplay/internal/config"
	"github.com/slidekit/proofplay/internal/lifecycle"
)

// System manages the event broker connection lifecycle.
type System interface {
	Start(lc *lifecycle.Coordinator) error
	Emitter() Emitter
}

type system struct {
	client  *redis.Client
	emitter Emitter
	logger  *slog.Logger
}

// NewSystem creates a Redis-backed event system. The connection is not
// verified until Start.
func NewSystem(cfg *config.EventsConfig, logger *slog.Logger) System {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeoutDuration(),
	})

	return &system{
		client:  client,
		emitter: NewRedis(client, cfg.MaxStreamLen, logger),
		logger:  logger.With("system", "events"),
	}
}

// Start verifies broker connectivity and registers connection teardown with
// the lifecycle coordinator.
func (s *system) Start(lc *lifecycle.Coordinator) error {
	if err := s.client.Ping(lc.Context()).Err(); err != nil {
		return fmt.Errorf("ping event broker: %w", err)
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.client.Close(); err != nil {
			s.logger.Error("event broker close error", "error", err)
		}
	})

	s.logger.Info("event broker ready")
	return nil
}

// Emitter returns the publishing interface backed by the broker connection.
func (s *system) Emitter() Emitter {
	return s.emitter
}

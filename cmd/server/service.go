package main

import (
	"fmt"
	"time"

	"github.com/slidekit/proofplay/internal/config"
	"github.com/slidekit/proofplay/internal/infrastructure"
	"github.com/slidekit/proofplay/internal/routes"
	"github.com/slidekit/proofplay/internal/server"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	infra  *infrastructure.Infrastructure
	domain *Domain
	server server.System
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config) (*Service, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	domain := NewDomain(infra, cfg)

	routeSys := routes.New(infra.Logger, cfg.Server.BasePath)
	registerRoutes(routeSys, infra, domain)

	middlewareSys := buildMiddleware(infra, cfg)
	handler := middlewareSys.Apply(routeSys.Build())

	serverSys := server.New(&cfg.Server, cfg.ShutdownTimeoutDuration(), handler, infra.Logger)

	infra.Logger.Info("service initialized", "addr", cfg.Server.Addr())

	return &Service{
		infra:  infra,
		domain: domain,
		server: serverSys,
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.server.Start(s.infra.Lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within the provided timeout.
func (s *Service) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}

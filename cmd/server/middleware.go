package main

import (
	"github.com/slidekit/proofplay/internal/config"
	"github.com/slidekit/proofplay/internal/infrastructure"
	"github.com/slidekit/proofplay/internal/middleware"
)

// buildMiddleware creates and configures the middleware stack.
func buildMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config) middleware.System {
	sys := middleware.New()
	sys.Use(middleware.Recover(infra.Logger))
	sys.Use(middleware.RequestID())
	sys.Use(middleware.Logger(infra.Logger))
	sys.Use(middleware.TrimSlash())
	sys.Use(middleware.CORS(cfg.CORS))
	sys.Use(middleware.MaxBody(cfg.Server.MaxBodySizeBytes()))
	return sys
}

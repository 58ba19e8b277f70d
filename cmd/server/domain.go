package main

import (
	"github.com/slidekit/proofplay/internal/config"
	"github.com/slidekit/proofplay/internal/images"
	"github.com/slidekit/proofplay/internal/infrastructure"
	"github.com/slidekit/proofplay/internal/slideshows"
	"github.com/slidekit/proofplay/pkg/pagination"
)

// Domain holds the domain systems and their HTTP handlers.
type Domain struct {
	Slideshows slideshows.System
	Images     images.System

	pagination pagination.Config
}

// NewDomain wires the domain systems against the shared infrastructure.
func NewDomain(infra *infrastructure.Infrastructure, cfg *config.Config) *Domain {
	slideshowStore := slideshows.NewStore(infra.Database.Connection(), infra.Logger)
	imageStore := images.NewStore(infra.Database.Connection(), infra.Logger)

	return &Domain{
		Slideshows: slideshows.New(
			slideshowStore,
			infra.Events.Emitter(),
			cfg.Events.Channel,
			infra.Logger,
		),
		Images: images.New(
			imageStore,
			cfg.Images.AllowedExtensions,
			infra.Logger,
		),
		pagination: cfg.Pagination,
	}
}

package images

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slidekit/proofplay/pkg/pagination"
)

type service struct {
	store   Store
	allowed []string
	logger  *slog.Logger
}

// New creates an image system backed by the given store. The allowed slice
// holds the lowercase file extensions accepted for image URLs.
func New(store Store, allowed []string, logger *slog.Logger) System {
	return &service{
		store:   store,
		allowed: allowed,
		logger:  logger.With("system", "images"),
	}
}

func (s *service) Create(ctx context.Context, draft Draft) (*Image, error) {
	if err := ValidateURL(draft.URL, s.allowed); err != nil {
		return nil, err
	}

	created, err := s.store.Save(ctx, draft.ToImage())
	if err != nil {
		return nil, fmt.Errorf("create image: %w", err)
	}

	s.logger.Info("image created", "id", created.ID, "url", created.URL)
	return created, nil
}

func (s *service) Find(ctx context.Context, id int64) (*Image, error) {
	return s.store.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Image], error) {
	return s.store.FindAll(ctx, page, filters)
}

func (s *service) Search(ctx context.Context, keyword string, page pagination.PageRequest) (*pagination.PageResult[Image], error) {
	return s.store.FindAll(ctx, page, Filters{URL: &keyword})
}

func (s *service) Update(ctx context.Context, id int64, patch Draft) (*Image, error) {
	if err := ValidateURL(patch.URL, s.allowed); err != nil {
		return nil, err
	}

	img, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	img.Name = patch.Name
	img.URL = patch.URL
	img.Description = patch.Description
	img.Duration = patch.Duration

	updated, err := s.store.Save(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("update image %d: %w", id, err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete image %d: %w", id, err)
	}

	s.logger.Info("image deleted", "id", id)
	return nil
}

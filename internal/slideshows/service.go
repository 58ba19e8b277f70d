package slideshows

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/slidekit/proofplay/internal/events"
	"github.com/slidekit/proofplay/pkg/pagination"
)

type service struct {
	store   Store
	emitter events.Emitter
	channel string
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a slideshow system backed by the given store, publishing
// proof-of-play events to the named channel.
func New(store Store, emitter events.Emitter, channel string, logger *slog.Logger) System {
	return &service{
		store:   store,
		emitter: emitter,
		channel: channel,
		logger:  logger.With("system", "slideshows"),
		now:     time.Now,
	}
}

func (s *service) Create(ctx context.Context, draft Draft) (*Slideshow, error) {
	show := draft.ToSlideshow()

	created, err := s.store.Save(ctx, show)
	if err != nil {
		return nil, fmt.Errorf("create slideshow: %w", err)
	}

	s.logger.Info("slideshow created", "id", created.ID, "images", len(created.ImageIDs))
	return created, nil
}

func (s *service) Find(ctx context.Context, id int64) (*Slideshow, error) {
	return s.store.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Slideshow], error) {
	return s.store.FindAll(ctx, page, filters)
}

func (s *service) Update(ctx context.Context, id int64, patch Draft) (*Slideshow, error) {
	show, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	show.Name = patch.Name
	show.ImageIDs = patch.ImageIDs
	if show.ImageIDs == nil {
		show.ImageIDs = []int64{}
	}

	updated, err := s.store.Save(ctx, show)
	if err != nil {
		return nil, fmt.Errorf("update slideshow %d: %w", id, err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete slideshow %d: %w", id, err)
	}

	s.logger.Info("slideshow deleted", "id", id)
	return nil
}

func (s *service) RecordProofOfPlay(ctx context.Context, slideshowID, imageID int64) error {
	show, err := s.store.FindByID(ctx, slideshowID)
	if err != nil {
		return err
	}

	if !show.HasImage(imageID) {
		return &MembershipError{SlideshowID: slideshowID, ImageID: imageID}
	}

	playedAt := s.now().UTC()

	if err := s.store.AppendProofOfPlay(ctx, slideshowID, imageID, playedAt); err != nil {
		return fmt.Errorf("append proof of play: %w", err)
	}

	payload, err := json.Marshal(events.NewProofOfPlay(slideshowID, imageID, playedAt))
	if err != nil {
		return fmt.Errorf("encode proof of play event: %w", err)
	}

	key := strconv.FormatInt(slideshowID, 10)
	if err := s.emitter.Publish(ctx, s.channel, key, payload); err != nil {
		return fmt.Errorf("publish proof of play event: %w", err)
	}

	s.logger.Info("proof of play recorded",
		"slideshow_id", slideshowID,
		"image_id", imageID,
		"played_at", playedAt,
	)
	return nil
}

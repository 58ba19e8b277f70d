package slideshows

import (
	"context"
	"time"

	"github.com/slidekit/proofplay/pkg/pagination"
)

// System defines the interface for slideshow management operations.
type System interface {
	// Create persists a new slideshow and returns it with its assigned id.
	// The image ids are not validated against the image store.
	Create(ctx context.Context, draft Draft) (*Slideshow, error)

	// Find retrieves a slideshow with its proof-of-play history.
	Find(ctx context.Context, id int64) (*Slideshow, error)

	// List returns a paginated page of slideshows matching the filters.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Slideshow], error)

	// Update replaces the slideshow's name and image ids wholesale,
	// preserving its proof-of-play history.
	Update(ctx context.Context, id int64, patch Draft) (*Slideshow, error)

	// Delete removes a slideshow and its history. Deleting an absent id
	// completes without error.
	Delete(ctx context.Context, id int64) error

	// RecordProofOfPlay validates that the image belongs to the slideshow,
	// appends the proof, and emits a playback audit event.
	RecordProofOfPlay(ctx context.Context, slideshowID, imageID int64) error
}

// Store provides keyed persistence for slideshow records. Implementations
// must be safe for concurrent use; the service layer holds no state of its
// own and never serializes access.
type Store interface {
	// Save inserts the slideshow when its id is zero, otherwise updates the
	// existing record's name and image ids. The stored record is returned.
	Save(ctx context.Context, slideshow *Slideshow) (*Slideshow, error)

	// FindByID loads a slideshow and its history.
	FindByID(ctx context.Context, id int64) (*Slideshow, error)

	// FindAll returns a page of slideshows in store-defined order.
	FindAll(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Slideshow], error)

	// DeleteByID removes a slideshow and, through ownership, its history.
	// Absent ids are not an error.
	DeleteByID(ctx context.Context, id int64) error

	// AppendProofOfPlay appends one proof record to the slideshow's history.
	AppendProofOfPlay(ctx context.Context, slideshowID, imageID int64, playedAt time.Time) error
}

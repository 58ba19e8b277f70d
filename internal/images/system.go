package images

import (
	"context"

	"github.com/slidekit/proofplay/pkg/pagination"
)

// System defines the interface for image registry operations.
type System interface {
	// Create validates the draft's URL and persists a new image.
	Create(ctx context.Context, draft Draft) (*Image, error)

	// Find retrieves an image by id.
	Find(ctx context.Context, id int64) (*Image, error)

	// List returns a paginated page of images matching the filters.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Image], error)

	// Search returns images whose URL contains the keyword, matched
	// case-insensitively.
	Search(ctx context.Context, keyword string, page pagination.PageRequest) (*pagination.PageResult[Image], error)

	// Update validates the draft's URL and replaces the image's fields.
	Update(ctx context.Context, id int64, patch Draft) (*Image, error)

	// Delete removes an image. Slideshows referencing the id are left
	// untouched. Deleting an absent id completes without error.
	Delete(ctx context.Context, id int64) error
}

// Store provides keyed persistence for image records.
type Store interface {
	// Save inserts the image when its id is zero, otherwise updates the
	// existing record. The stored record is returned.
	Save(ctx context.Context, img *Image) (*Image, error)

	// FindByID loads an image.
	FindByID(ctx context.Context, id int64) (*Image, error)

	// FindAll returns a page of images in store-defined order.
	FindAll(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Image], error)

	// DeleteByID removes an image. Absent ids are not an error.
	DeleteByID(ctx context.Context, id int64) error
}

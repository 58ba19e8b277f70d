// Package images manages the image registry: URL validation against the
// configured extension allow-list, CRUD persistence, and keyword search over
// stored URLs.
package images

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors for image operations.
var (
	ErrNotFound   = errors.New("image not found")
	ErrDuplicate  = errors.New("image already exists")
	ErrInvalidURL = errors.New("invalid image url")
)

// NotFoundError reports a missing image by id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Image not found with id: %d", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidURLError reports an image URL that failed validation, either
// because it is not an absolute http(s) URL or because its extension is not
// on the allow-list.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("Invalid image URL: %s", e.URL)
}

func (e *InvalidURLError) Unwrap() error { return ErrInvalidURL }

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidURL):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

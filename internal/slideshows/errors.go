// Package slideshows manages the slideshow lifecycle and the proof-of-play
// recording pipeline: membership validation, state mutation under
// not-found checks, and emission of playback audit events.
package slideshows

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors for slideshow operations.
var (
	ErrNotFound       = errors.New("slideshow not found")
	ErrDuplicate      = errors.New("slideshow already exists")
	ErrNotInSlideshow = errors.New("image not part of slideshow")
)

// NotFoundError reports a missing slideshow by id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Slideshow not found with id: %d", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// MembershipError reports a proof-of-play attempt for an image that is not
// part of the slideshow's playback list.
type MembershipError struct {
	SlideshowID int64
	ImageID     int64
}

func (e *MembershipError) Error() string {
	return fmt.Sprintf("Image with id %d is not part of slideshow with id %d", e.ImageID, e.SlideshowID)
}

func (e *MembershipError) Unwrap() error { return ErrNotInSlideshow }

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotInSlideshow):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

package slideshows

import (
	"errors"
	"slices"
	"time"
)

// ProofOfPlay is an auditable record asserting that a specific image was
// displayed by the owning slideshow at a specific time. Records are immutable
// once created and only disappear when the slideshow itself is deleted.
type ProofOfPlay struct {
	ImageID  int64     `json:"imageId"`
	PlayedAt time.Time `json:"timestamp"`
}

// Slideshow is an ordered playlist of image ids together with its
// proof-of-play history. ImageIDs is the playback order; duplicates are
// permitted and preserved. The list is not validated against the image
// store — a deleted image id remains playable until the slideshow is
// explicitly updated.
type Slideshow struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	ImageIDs     []int64       `json:"imageIds"`
	ProofOfPlays []ProofOfPlay `json:"proofOfPlays"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// HasImage reports whether the image id is a member of the playback list.
// Membership here is the sole check used when attributing a play.
func (s *Slideshow) HasImage(imageID int64) bool {
	return slices.Contains(s.ImageIDs, imageID)
}

// Draft carries the caller-supplied fields for creating or updating a
// slideshow. Updates replace Name and ImageIDs wholesale; proof-of-play
// history is never part of a draft.
type Draft struct {
	Name     string  `json:"name"`
	ImageIDs []int64 `json:"imageIds"`
}

// Validate checks that the draft carries the required fields.
func (d Draft) Validate() error {
	if d.Name == "" {
		return errors.New("slideshow name is required")
	}
	return nil
}

// ToSlideshow creates a new Slideshow from the draft with an empty history.
func (d Draft) ToSlideshow() *Slideshow {
	imageIDs := d.ImageIDs
	if imageIDs == nil {
		imageIDs = []int64{}
	}
	return &Slideshow{
		Name:         d.Name,
		ImageIDs:     imageIDs,
		ProofOfPlays: []ProofOfPlay{},
	}
}

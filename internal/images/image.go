package images

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// Image is a registered display asset. Duration is the playback dwell time
// in seconds. The URL is validated on write but never fetched; the service
// stores references, not bytes.
type Image struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Duration    int       `json:"duration"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Draft carries the caller-supplied fields for creating or updating an image.
type Draft struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
}

// ValidateURL checks that the raw URL is an absolute http or https URL whose
// path ends in one of the allowed extensions. Extension matching is
// case-insensitive.
func ValidateURL(raw string, allowed []string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &InvalidURLError{URL: raw}
	}

	ext := strings.ToLower(path.Ext(u.Path))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return &InvalidURLError{URL: raw}
}

// ToImage creates a new Image from the draft.
func (d Draft) ToImage() *Image {
	return &Image{
		Name:        d.Name,
		URL:         d.URL,
		Description: d.Description,
		Duration:    d.Duration,
	}
}

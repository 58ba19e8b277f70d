package images

import (
	"net/url"

	"github.com/slidekit/proofplay/pkg/query"
	"github.com/slidekit/proofplay/pkg/repository"
)

// projection maps database columns to Image struct fields for query building.
var projection = query.NewProjectionMap("public", "images", "i").
	Project("id", "ID").
	Project("name", "Name").
	Project("url", "URL").
	Project("description", "Description").
	Project("duration", "Duration").
	Project("created_at", "CreatedAt")

// defaultSort orders images by id, which matches insertion order.
const defaultSort = "ID"

// scanImage reads an Image from a database row.
func scanImage(s repository.Scanner) (Image, error) {
	var img Image
	if err := s.Scan(&img.ID, &img.Name, &img.URL, &img.Description, &img.Duration, &img.CreatedAt); err != nil {
		return img, err
	}
	return img, nil
}

// Filters defines optional criteria for querying images.
type Filters struct {
	Name *string
	URL  *string
}

// FiltersFromQuery extracts image filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if name := values.Get("name"); name != "" {
		f.Name = &name
	}
	if u := values.Get("url"); u != "" {
		f.URL = &u
	}
	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Name != nil {
		b.WhereContains("Name", f.Name)
	}
	if f.URL != nil {
		b.WhereContains("URL", f.URL)
	}
	return b
}

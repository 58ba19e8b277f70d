package slideshows

import (
	"encoding/json"
	"net/url"

	"github.com/slidekit/proofplay/pkg/query"
	"github.com/slidekit/proofplay/pkg/repository"
)

// projection maps database columns to Slideshow struct fields for query building.
var projection = query.NewProjectionMap("public", "slideshows", "s").
	Project("id", "ID").
	Project("name", "Name").
	Project("image_ids", "ImageIDs").
	Project("created_at", "CreatedAt")

// defaultSort orders slideshows by id, which matches insertion order.
const defaultSort = "ID"

// scanSlideshow reads a Slideshow from a database row. The image id list is
// stored as a JSONB array and decoded from its raw bytes.
func scanSlideshow(s repository.Scanner) (Slideshow, error) {
	var (
		show Slideshow
		raw  []byte
	)
	if err := s.Scan(&show.ID, &show.Name, &raw, &show.CreatedAt); err != nil {
		return show, err
	}
	if err := json.Unmarshal(raw, &show.ImageIDs); err != nil {
		return show, err
	}
	show.ProofOfPlays = []ProofOfPlay{}
	return show, nil
}

// scanProofOfPlay reads a ProofOfPlay from a database row.
func scanProofOfPlay(s repository.Scanner) (ProofOfPlay, error) {
	var proof ProofOfPlay
	err := s.Scan(&proof.ImageID, &proof.PlayedAt)
	return proof, err
}

// Filters defines optional criteria for querying slideshows.
type Filters struct {
	Name *string
}

// FiltersFromQuery extracts slideshow filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if name := values.Get("name"); name != "" {
		f.Name = &name
	}
	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Name != nil {
		b.WhereContains("Name", f.Name)
	}
	return b
}

package slideshows

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/slidekit/proofplay/pkg/pagination"
	"github.com/slidekit/proofplay/pkg/query"
	"github.com/slidekit/proofplay/pkg/repository"
)

type store struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewStore creates a PostgreSQL-backed slideshow store.
func NewStore(db *sql.DB, logger *slog.Logger) Store {
	return &store{
		db:     db,
		logger: logger.With("store", "slideshows"),
	}
}

func (s *store) Save(ctx context.Context, show *Slideshow) (*Slideshow, error) {
	imageIDs, err := json.Marshal(show.ImageIDs)
	if err != nil {
		return nil, fmt.Errorf("encode image ids: %w", err)
	}

	if show.ID == 0 {
		return s.insert(ctx, show, imageIDs)
	}
	return s.update(ctx, show, imageIDs)
}

func (s *store) insert(ctx context.Context, show *Slideshow, imageIDs []byte) (*Slideshow, error) {
	row := s.db.QueryRowContext(
		ctx,
		`INSERT INTO slideshows (name, image_ids) VALUES ($1, $2) RETURNING id, created_at`,
		show.Name, imageIDs,
	)
	if err := row.Scan(&show.ID, &show.CreatedAt); err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return show, nil
}

func (s *store) update(ctx context.Context, show *Slideshow, imageIDs []byte) (*Slideshow, error) {
	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			`UPDATE slideshows SET name = $1, image_ids = $2 WHERE id = $3`,
			show.Name, imageIDs, show.ID,
		)
	})
	if err != nil {
		return nil, repository.MapError(err, &NotFoundError{ID: show.ID}, ErrDuplicate)
	}
	return s.FindByID(ctx, show.ID)
}

func (s *store) FindByID(ctx context.Context, id int64) (*Slideshow, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)
	show, err := repository.QueryOne(ctx, s.db, q, args, scanSlideshow)
	if err != nil {
		return nil, repository.MapError(err, &NotFoundError{ID: id}, ErrDuplicate)
	}

	proofs, err := s.loadProofs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load proof of plays: %w", err)
	}
	show.ProofOfPlays = proofs

	return &show, nil
}

func (s *store) FindAll(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Slideshow], error) {
	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)

	if filters.Name == nil {
		qb.WhereContains("Name", page.Search)
	}

	if field, desc := page.SortField(); field != "" {
		qb.OrderBy(field, desc)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := s.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count slideshows: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	shows, err := repository.QueryMany(ctx, s.db, pageSQL, pageArgs, scanSlideshow)
	if err != nil {
		return nil, fmt.Errorf("query slideshows: %w", err)
	}

	if err := s.attachProofs(ctx, shows); err != nil {
		return nil, fmt.Errorf("load proof of plays: %w", err)
	}

	result := pagination.NewPageResult(shows, total, page.Page, page.PageSize)
	return &result, nil
}

func (s *store) DeleteByID(ctx context.Context, id int64) error {
	// No affected-row check: deleting an absent slideshow is a no-op.
	// Proof-of-play rows go with the cascade.
	_, err := s.db.ExecContext(ctx, `DELETE FROM slideshows WHERE id = $1`, id)
	return err
}

func (s *store) AppendProofOfPlay(ctx context.Context, slideshowID, imageID int64, playedAt time.Time) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO proof_of_plays (slideshow_id, image_id, played_at) VALUES ($1, $2, $3)`,
		slideshowID, imageID, playedAt,
	)
	return err
}

func (s *store) loadProofs(ctx context.Context, slideshowID int64) ([]ProofOfPlay, error) {
	proofs, err := repository.QueryMany(
		ctx, s.db,
		`SELECT image_id, played_at FROM proof_of_plays WHERE slideshow_id = $1 ORDER BY id`,
		[]any{slideshowID},
		scanProofOfPlay,
	)
	if err != nil {
		return nil, err
	}
	if proofs == nil {
		proofs = []ProofOfPlay{}
	}
	return proofs, nil
}

func (s *store) attachProofs(ctx context.Context, shows []Slideshow) error {
	if len(shows) == 0 {
		return nil
	}

	ids := make([]int64, len(shows))
	index := make(map[int64]*Slideshow, len(shows))
	for i := range shows {
		ids[i] = shows[i].ID
		index[shows[i].ID] = &shows[i]
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT slideshow_id, image_id, played_at FROM proof_of_plays WHERE slideshow_id = ANY($1) ORDER BY id`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			slideshowID int64
			proof       ProofOfPlay
		)
		if err := rows.Scan(&slideshowID, &proof.ImageID, &proof.PlayedAt); err != nil {
			return err
		}
		if show, ok := index[slideshowID]; ok {
			show.ProofOfPlays = append(show.ProofOfPlays, proof)
		}
	}
	return rows.Err()
}

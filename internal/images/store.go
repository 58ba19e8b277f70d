package images

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/slidekit/proofplay/pkg/pagination"
	"github.com/slidekit/proofplay/pkg/query"
	"github.com/slidekit/proofplay/pkg/repository"
)

type store struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewStore creates a PostgreSQL-backed image store.
func NewStore(db *sql.DB, logger *slog.Logger) Store {
	return &store{
		db:     db,
		logger: logger.With("store", "images"),
	}
}

func (s *store) Save(ctx context.Context, img *Image) (*Image, error) {
	if img.ID == 0 {
		return s.insert(ctx, img)
	}
	return s.update(ctx, img)
}

func (s *store) insert(ctx context.Context, img *Image) (*Image, error) {
	row := s.db.QueryRowContext(
		ctx,
		`INSERT INTO images (name, url, description, duration) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		img.Name, img.URL, img.Description, img.Duration,
	)
	if err := row.Scan(&img.ID, &img.CreatedAt); err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return img, nil
}

func (s *store) update(ctx context.Context, img *Image) (*Image, error) {
	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			`UPDATE images SET name = $1, url = $2, description = $3, duration = $4 WHERE id = $5`,
			img.Name, img.URL, img.Description, img.Duration, img.ID,
		)
	})
	if err != nil {
		return nil, repository.MapError(err, &NotFoundError{ID: img.ID}, ErrDuplicate)
	}
	return s.FindByID(ctx, img.ID)
}

func (s *store) FindByID(ctx context.Context, id int64) (*Image, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)
	img, err := repository.QueryOne(ctx, s.db, q, args, scanImage)
	if err != nil {
		return nil, repository.MapError(err, &NotFoundError{ID: id}, ErrDuplicate)
	}
	return &img, nil
}

func (s *store) FindAll(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Image], error) {
	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)

	if filters.URL == nil && filters.Name == nil {
		qb.WhereContains("Name", page.Search)
	}

	if field, desc := page.SortField(); field != "" {
		qb.OrderBy(field, desc)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := s.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count images: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	imgs, err := repository.QueryMany(ctx, s.db, pageSQL, pageArgs, scanImage)
	if err != nil {
		return nil, fmt.Errorf("query images: %w", err)
	}

	result := pagination.NewPageResult(imgs, total, page.Page, page.PageSize)
	return &result, nil
}

func (s *store) DeleteByID(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, id)
	return err
}

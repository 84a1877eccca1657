package repository

import (
	"context"
	"fmt"

	"art_studio/internal/domain/models"
	"art_studio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

const artworksTable = "artworks"

var artworkColumns = []string{
	"id", "title", "category", "images", "description", "medium", "context",
	"date", "featured", "active", "sort_order", "price", "currency",
	"created_at", "updated_at",
}

type ArtworkRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewArtworkRepository(db *pgxpool.Pool) *ArtworkRepo {
	return &ArtworkRepo{
		db: db,
		sb: newBuilder(),
	}
}

func scanArtwork(row pgx.Row) (models.Artwork, error) {
	var a models.Artwork
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Category,
		&a.Images,
		&a.Description,
		&a.Medium,
		&a.Context,
		&a.Date,
		&a.Featured,
		&a.Active,
		&a.Order,
		&a.Price,
		&a.Currency,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// CreateArtwork inserts the artwork and returns the stored row.
func (r *ArtworkRepo) CreateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error) {
	const op = "repository.ArtworkRepo.CreateArtwork"

	query, args, err := r.sb.Insert(artworksTable).
		Columns(
			"title",
			"category",
			"images",
			"description",
			"medium",
			"context",
			"date",
			"featured",
			"active",
			"sort_order",
			"price",
			"currency",
		).
		Values(
			artwork.Title,
			artwork.Category,
			artwork.Images,
			artwork.Description,
			artwork.Medium,
			artwork.Context,
			artwork.Date,
			artwork.Featured,
			artwork.Active,
			artwork.Order,
			artwork.Price,
			artwork.Currency,
		).
		Suffix("RETURNING " + columnList(artworkColumns)).
		ToSql()
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := scanArtwork(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// UpdateArtwork overwrites every editable field of the artwork.
func (r *ArtworkRepo) UpdateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error) {
	const op = "repository.ArtworkRepo.UpdateArtwork"

	query, args, err := r.sb.Update(artworksTable).
		Set("title", artwork.Title).
		Set("category", artwork.Category).
		Set("images", artwork.Images).
		Set("description", artwork.Description).
		Set("medium", artwork.Medium).
		Set("context", artwork.Context).
		Set("date", artwork.Date).
		Set("featured", artwork.Featured).
		Set("active", artwork.Active).
		Set("sort_order", artwork.Order).
		Set("price", artwork.Price).
		Set("currency", artwork.Currency).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": artwork.ID}).
		Suffix("RETURNING " + columnList(artworkColumns)).
		ToSql()
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := scanArtwork(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Artwork{}, notFound(op, err)
	}

	return updated, nil
}

func (r *ArtworkRepo) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	const op = "repository.ArtworkRepo.DeleteArtwork"

	query, args, err := r.sb.Delete(artworksTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *ArtworkRepo) GetArtworkByID(ctx context.Context, id uuid.UUID) (models.Artwork, error) {
	const op = "repository.ArtworkRepo.GetArtworkByID"

	query, args, err := r.sb.Select(artworkColumns...).
		From(artworksTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	artwork, err := scanArtwork(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Artwork{}, notFound(op, err)
	}

	return artwork, nil
}

// ListArtworks returns artworks sorted by manual order, newest first within
// the same order.
func (r *ArtworkRepo) ListArtworks(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error) {
	const op = "repository.ArtworkRepo.ListArtworks"

	qb := r.sb.Select(artworkColumns...).From(artworksTable)

	qb = qb.Where(activeOnly(filter.IncludeInactive))
	if filter.Category != "" {
		qb = qb.Where(sq.Expr("LOWER(category) = LOWER(?)", filter.Category))
	}
	if filter.Featured != nil {
		qb = qb.Where(sq.Eq{"featured": *filter.Featured})
	}
	if filter.Search != "" {
		qb = qb.Where(searchClause(filter.Search, "title", "description", "category", "medium"))
	}

	query, args, err := qb.
		OrderBy("sort_order ASC", "created_at DESC").
		Limit(clampLimit(filter.Limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	artworks := make([]models.Artwork, 0)
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		artworks = append(artworks, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artworks, nil
}

// ReorderArtworks applies all order updates atomically. An unknown id rolls
// the whole batch back with storage.ErrNotFound.
func (r *ArtworkRepo) ReorderArtworks(ctx context.Context, updates []models.OrderUpdate) error {
	const op = "repository.ArtworkRepo.ReorderArtworks"

	if err := reorder(ctx, r.db, artworksTable, updates); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// reorder sets sort_order for every (id, order) pair in one statement inside
// a transaction.
func reorder(ctx context.Context, db *pgxpool.Pool, table string, updates []models.OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	ids := make([]string, 0, len(updates))
	orders := make([]int64, 0, len(updates))
	for _, u := range updates {
		ids = append(ids, u.ID)
		orders = append(orders, int64(u.Order))
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE `+table+` AS t
		SET sort_order = v.ord, updated_at = NOW()
		FROM unnest($1::uuid[], $2::int[]) AS v(id, ord)
		WHERE t.id = v.id`,
		pq.Array(ids), pq.Array(orders),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != int64(len(updates)) {
		return storage.ErrNotFound
	}

	return tx.Commit(ctx)
}

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
)

const testimonialsTable = "testimonials"

var testimonialColumns = []string{
	"id", "client_name", "role", "content", "image", "date", "created_at", "updated_at",
}

type TestimonialRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewTestimonialRepository(db *pgxpool.Pool) *TestimonialRepo {
	return &TestimonialRepo{
		db: db,
		sb: newBuilder(),
	}
}

func scanTestimonial(row pgx.Row) (models.Testimonial, error) {
	var t models.Testimonial
	err := row.Scan(&t.ID, &t.ClientName, &t.Role, &t.Content, &t.Image, &t.Date, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *TestimonialRepo) CreateTestimonial(ctx context.Context, t models.Testimonial) (models.Testimonial, error) {
	const op = "repository.TestimonialRepo.CreateTestimonial"

	query, args, err := r.sb.Insert(testimonialsTable).
		Columns("client_name", "role", "content", "image", "date").
		Values(t.ClientName, t.Role, t.Content, t.Image, t.Date).
		Suffix("RETURNING " + columnList(testimonialColumns)).
		ToSql()
	if err != nil {
		return models.Testimonial{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := scanTestimonial(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Testimonial{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *TestimonialRepo) UpdateTestimonial(ctx context.Context, t models.Testimonial) (models.Testimonial, error) {
	const op = "repository.TestimonialRepo.UpdateTestimonial"

	query, args, err := r.sb.Update(testimonialsTable).
		Set("client_name", t.ClientName).
		Set("role", t.Role).
		Set("content", t.Content).
		Set("image", t.Image).
		Set("date", t.Date).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": t.ID}).
		Suffix("RETURNING " + columnList(testimonialColumns)).
		ToSql()
	if err != nil {
		return models.Testimonial{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := scanTestimonial(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Testimonial{}, notFound(op, err)
	}

	return updated, nil
}

func (r *TestimonialRepo) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	const op = "repository.TestimonialRepo.DeleteTestimonial"

	query, args, err := r.sb.Delete(testimonialsTable).Where(sq.Eq{"id": id}).ToSql()
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

func (r *TestimonialRepo) GetTestimonialByID(ctx context.Context, id uuid.UUID) (models.Testimonial, error) {
	const op = "repository.TestimonialRepo.GetTestimonialByID"

	query, args, err := r.sb.Select(testimonialColumns...).
		From(testimonialsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Testimonial{}, fmt.Errorf("%s: %w", op, err)
	}

	t, err := scanTestimonial(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Testimonial{}, notFound(op, err)
	}

	return t, nil
}

func (r *TestimonialRepo) ListTestimonials(ctx context.Context, filter models.TestimonialFilter) ([]models.Testimonial, error) {
	const op = "repository.TestimonialRepo.ListTestimonials"

	qb := r.sb.Select(testimonialColumns...).From(testimonialsTable)
	if filter.Search != "" {
		qb = qb.Where(searchClause(filter.Search, "client_name", "role", "content"))
	}

	query, args, err := qb.
		OrderBy("created_at DESC").
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

	list := make([]models.Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

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

const awardsTable = "awards"

var awardColumns = []string{
	"id", "title", "organization", "year", "description", "category", "image", "created_at", "updated_at",
}

type AwardRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewAwardRepository(db *pgxpool.Pool) *AwardRepo {
	return &AwardRepo{
		db: db,
		sb: newBuilder(),
	}
}

func scanAward(row pgx.Row) (models.Award, error) {
	var a models.Award
	err := row.Scan(&a.ID, &a.Title, &a.Organization, &a.Year, &a.Description, &a.Category, &a.Image, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *AwardRepo) CreateAward(ctx context.Context, award models.Award) (models.Award, error) {
	const op = "repository.AwardRepo.CreateAward"

	query, args, err := r.sb.Insert(awardsTable).
		Columns("title", "organization", "year", "description", "category", "image").
		Values(award.Title, award.Organization, award.Year, award.Description, award.Category, award.Image).
		Suffix("RETURNING " + columnList(awardColumns)).
		ToSql()
	if err != nil {
		return models.Award{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := scanAward(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Award{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *AwardRepo) UpdateAward(ctx context.Context, award models.Award) (models.Award, error) {
	const op = "repository.AwardRepo.UpdateAward"

	query, args, err := r.sb.Update(awardsTable).
		Set("title", award.Title).
		Set("organization", award.Organization).
		Set("year", award.Year).
		Set("description", award.Description).
		Set("category", award.Category).
		Set("image", award.Image).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": award.ID}).
		Suffix("RETURNING " + columnList(awardColumns)).
		ToSql()
	if err != nil {
		return models.Award{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := scanAward(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Award{}, notFound(op, err)
	}

	return updated, nil
}

func (r *AwardRepo) DeleteAward(ctx context.Context, id uuid.UUID) error {
	const op = "repository.AwardRepo.DeleteAward"

	query, args, err := r.sb.Delete(awardsTable).Where(sq.Eq{"id": id}).ToSql()
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

func (r *AwardRepo) GetAwardByID(ctx context.Context, id uuid.UUID) (models.Award, error) {
	const op = "repository.AwardRepo.GetAwardByID"

	query, args, err := r.sb.Select(awardColumns...).
		From(awardsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Award{}, fmt.Errorf("%s: %w", op, err)
	}

	award, err := scanAward(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Award{}, notFound(op, err)
	}

	return award, nil
}

// ListAwards returns awards newest year first.
func (r *AwardRepo) ListAwards(ctx context.Context, filter models.AwardFilter) ([]models.Award, error) {
	const op = "repository.AwardRepo.ListAwards"

	qb := r.sb.Select(awardColumns...).From(awardsTable)
	if filter.Year != 0 {
		qb = qb.Where(sq.Eq{"year": filter.Year})
	}
	if filter.Search != "" {
		qb = qb.Where(searchClause(filter.Search, "title", "organization", "description", "category"))
	}

	query, args, err := qb.
		OrderBy("year DESC", "created_at DESC").
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

	awards := make([]models.Award, 0)
	for rows.Next() {
		a, err := scanAward(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		awards = append(awards, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return awards, nil
}

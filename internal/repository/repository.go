package repository

import (
	"errors"
	"fmt"
	"strings"

	"art_studio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

type Repository struct {
	Admin       *AdminRepo
	Artwork     *ArtworkRepo
	Service     *ServiceRepo
	Testimonial *TestimonialRepo
	Award       *AwardRepo
	Profile     *ProfileRepo
	Contact     *ContactRepo
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Admin:       NewAdminRepository(db),
		Artwork:     NewArtworkRepository(db),
		Service:     NewServiceRepository(db),
		Testimonial: NewTestimonialRepository(db),
		Award:       NewAwardRepository(db),
		Profile:     NewProfileRepository(db),
		Contact:     NewContactRepository(db),
	}
}

func newBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// clampLimit keeps list limits within 1..maxLimit.
func clampLimit(limit int) uint64 {
	if limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return uint64(limit)
}

// searchClause matches term case-insensitively against any of columns.
func searchClause(term string, columns ...string) sq.Sqlizer {
	pattern := "%" + escapeLike(strings.TrimSpace(term)) + "%"
	or := sq.Or{}
	for _, col := range columns {
		or = append(or, sq.ILike{col: pattern})
	}
	return or
}

// activeOnly hides inactive rows unless the caller is allowed to see them.
func activeOnly(includeInactive bool) sq.Sqlizer {
	if includeInactive {
		return sq.And{}
	}
	return sq.Eq{"active": true}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func columnList(cols []string) string {
	return strings.Join(cols, ", ")
}

func notFound(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

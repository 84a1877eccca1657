package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"art_studio/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const profilesTable = "profiles"

var profileColumns = []string{
	"id", "name", "title", "bio", "email", "phone", "location", "social_links",
	"home_image", "about_image", "is_active", "created_at", "updated_at",
}

type ProfileRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{
		db: db,
		sb: newBuilder(),
	}
}

func scanProfile(row pgx.Row) (models.Profile, error) {
	var (
		p     models.Profile
		links []byte
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Bio,
		&p.Email,
		&p.Phone,
		&p.Location,
		&links,
		&p.HomeImage,
		&p.AboutImage,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return models.Profile{}, err
	}
	if len(links) > 0 {
		if err := json.Unmarshal(links, &p.SocialLinks); err != nil {
			return models.Profile{}, fmt.Errorf("decode social links: %w", err)
		}
	}
	return p, nil
}

// SaveProfile inserts the profile when its ID is zero and updates it
// otherwise. An active profile deactivates all others in the same
// transaction so at most one stays active.
func (r *ProfileRepo) SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	const op = "repository.ProfileRepo.SaveProfile"

	links, err := json.Marshal(profile.SocialLinks)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if profile.IsActive {
		qb := r.sb.Update(profilesTable).
			Set("is_active", false).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"is_active": true})
		if profile.ID != uuid.Nil {
			qb = qb.Where(sq.NotEq{"id": profile.ID})
		}
		query, args, err := qb.ToSql()
		if err != nil {
			return models.Profile{}, fmt.Errorf("%s: %w", op, err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return models.Profile{}, fmt.Errorf("%s: deactivate: %w", op, err)
		}
	}

	var (
		query string
		args  []interface{}
	)
	if profile.ID == uuid.Nil {
		query, args, err = r.sb.Insert(profilesTable).
			Columns("name", "title", "bio", "email", "phone", "location", "social_links",
				"home_image", "about_image", "is_active").
			Values(profile.Name, profile.Title, profile.Bio, profile.Email, profile.Phone,
				profile.Location, links, profile.HomeImage, profile.AboutImage, profile.IsActive).
			Suffix("RETURNING " + columnList(profileColumns)).
			ToSql()
	} else {
		query, args, err = r.sb.Update(profilesTable).
			Set("name", profile.Name).
			Set("title", profile.Title).
			Set("bio", profile.Bio).
			Set("email", profile.Email).
			Set("phone", profile.Phone).
			Set("location", profile.Location).
			Set("social_links", links).
			Set("home_image", profile.HomeImage).
			Set("about_image", profile.AboutImage).
			Set("is_active", profile.IsActive).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": profile.ID}).
			Suffix("RETURNING " + columnList(profileColumns)).
			ToSql()
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := scanProfile(tx.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Profile{}, notFound(op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// ActiveProfile returns the single active profile or storage.ErrNotFound.
func (r *ProfileRepo) ActiveProfile(ctx context.Context) (models.Profile, error) {
	const op = "repository.ProfileRepo.ActiveProfile"

	query, args, err := r.sb.Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"is_active": true}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	profile, err := scanProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Profile{}, notFound(op, err)
	}

	return profile, nil
}

func (r *ProfileRepo) ListActiveProfiles(ctx context.Context) ([]models.Profile, error) {
	const op = "repository.ProfileRepo.ListActiveProfiles"

	query, args, err := r.sb.Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"is_active": true}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0, 1)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profiles, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"art_studio/internal/domain/models"
	"art_studio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const adminsTable = "admins"

const uniqueViolation = "23505"

type AdminRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{
		db: db,
		sb: newBuilder(),
	}
}

func (r *AdminRepo) SaveAdmin(ctx context.Context, admin models.Admin) (uuid.UUID, error) {
	const op = "repository.AdminRepo.SaveAdmin"

	role := admin.Role
	if role == "" {
		role = models.RoleAdmin
	}

	query, args, err := r.sb.Insert(adminsTable).
		Columns("email", "name", "password", "role").
		Values(strings.ToLower(admin.Email), admin.Name, admin.PasswordHash, role).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrAdminExists)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *AdminRepo) AdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	const op = "repository.AdminRepo.AdminByEmail"

	return r.admin(ctx, op, sq.Eq{"email": strings.ToLower(email)})
}

func (r *AdminRepo) AdminByID(ctx context.Context, id uuid.UUID) (models.Admin, error) {
	const op = "repository.AdminRepo.AdminByID"

	return r.admin(ctx, op, sq.Eq{"id": id})
}

func (r *AdminRepo) admin(ctx context.Context, op string, where sq.Eq) (models.Admin, error) {
	query, args, err := r.sb.Select("id", "email", "name", "password", "role", "created_at", "last_login").
		From(adminsTable).
		Where(where).
		ToSql()
	if err != nil {
		return models.Admin{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var admin models.Admin
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
		&admin.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, fmt.Errorf("%s: %w", op, storage.ErrAdminNotFound)
		}
		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

func (r *AdminRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	const op = "repository.AdminRepo.TouchLastLogin"

	query, args, err := r.sb.Update(adminsTable).
		Set("last_login", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *AdminRepo) CountAdmins(ctx context.Context) (int, error) {
	const op = "repository.AdminRepo.CountAdmins"

	query, args, err := r.sb.Select("COUNT(*)").From(adminsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

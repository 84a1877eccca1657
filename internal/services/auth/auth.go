package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"art_studio/internal/domain/models"
	"art_studio/internal/lib/logger/sl"
	"art_studio/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrAdminExist = errors.New("admin already exist")

type Auth struct {
	log         *slog.Logger
	admSaver    AdminSaver
	admProvider AdminProvider
	tokens      TokenIssuer
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.3 --all
type AdminSaver interface {
	SaveAdmin(ctx context.Context, admin models.Admin) (uuid.UUID, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

type AdminProvider interface {
	AdminByEmail(ctx context.Context, email string) (models.Admin, error)
}

type TokenIssuer interface {
	IssueToken(admin models.Admin) (string, time.Time, error)
}

func New(log *slog.Logger, admSaver AdminSaver, admProvider AdminProvider, tokens TokenIssuer) *Auth {
	return &Auth{
		log:         log,
		admSaver:    admSaver,
		admProvider: admProvider,
		tokens:      tokens,
	}
}

// Login checks the admin's credentials and issues a bearer token.
func (a *Auth) Login(ctx context.Context, email, password string) (models.AdminSession, error) {
	const op = "auth.Login"

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to login admin")

	admin, err := a.admProvider.AdminByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			log.Warn("admin not found", sl.Err(err))

			return models.AdminSession{}, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}
		log.Error("failed to get admin", sl.Err(err))

		return models.AdminSession{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return models.AdminSession{}, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	token, exp, err := a.tokens.IssueToken(admin)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))

		return models.AdminSession{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := a.admSaver.TouchLastLogin(ctx, admin.ID); err != nil {
		log.Warn("failed to record last login", sl.Err(err))
	}

	log.Info("admin logged in successfully")

	return models.AdminSession{
		Token:     token,
		ExpiresAt: exp,
		User: models.AdminUser{
			ID:    admin.ID.String(),
			Email: admin.Email,
			Name:  admin.Name,
			Role:  admin.Role,
		},
	}, nil
}

// RegisterAdmin stores a new admin with a bcrypt password hash.
func (a *Auth) RegisterAdmin(ctx context.Context, name, email, password string) (uuid.UUID, error) {
	const op = "auth.RegisterAdmin"

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("register admin")

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := a.admSaver.SaveAdmin(ctx, models.Admin{
		Email:        strings.TrimSpace(email),
		Name:         name,
		PasswordHash: passHash,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAdminExists) {
			log.Warn("admin already exist", sl.Err(err))

			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrAdminExist)
		}

		log.Error("failed to save admin", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin registered")

	return id, nil
}

// EnsureAdmin creates the bootstrap admin unless it already exists.
func (a *Auth) EnsureAdmin(ctx context.Context, name, email, password string) error {
	const op = "auth.EnsureAdmin"

	if email == "" || password == "" {
		a.log.Warn("no bootstrap admin configured", slog.String("op", op))
		return nil
	}

	_, err := a.admProvider.AdminByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrAdminNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := a.RegisterAdmin(ctx, name, email, password); err != nil && !errors.Is(err, ErrAdminExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"art_studio/internal/domain/models"
	jwtlib "art_studio/internal/lib/jwt"
	"art_studio/internal/lib/logger/sl"
	"art_studio/internal/repository"
)

// TokenService issues admin bearer tokens and tracks revoked ones.
type TokenService struct {
	log    *slog.Logger
	repo   repository.TokenRepository
	secret string
	ttl    time.Duration
}

func NewTokenService(log *slog.Logger, repo repository.TokenRepository, secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		log:    log,
		repo:   repo,
		secret: secret,
		ttl:    ttl,
	}
}

func (s *TokenService) IssueToken(admin models.Admin) (string, time.Time, error) {
	const op = "service.TokenService.IssueToken"

	token, exp, err := jwtlib.NewToken(admin, s.secret, s.ttl)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return token, exp, nil
}

// CheckRevoked returns models.ErrTokenRevoked for tokens revoked by logout.
func (s *TokenService) CheckRevoked(ctx context.Context, claims *jwtlib.Claims) error {
	if claims.ID == "" {
		return nil
	}

	revoked, err := s.repo.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.log.Error("revocation lookup failed", sl.Err(err))
		return err
	}
	if revoked {
		return models.ErrTokenRevoked
	}

	return nil
}

// RevokeToken denies the token until it would have expired.
func (s *TokenService) RevokeToken(ctx context.Context, claims *jwtlib.Claims) error {
	const op = "service.TokenService.RevokeToken"

	if claims == nil || claims.ID == "" {
		return fmt.Errorf("%s: %w", op, jwtlib.ErrTokenInvalid)
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}

	if err := s.repo.RevokeToken(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("token revoked", slog.String("op", op), slog.String("subject", claims.Subject))
	return nil
}

package studioapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"art_studio/internal/client/session"
	"art_studio/internal/domain/models"
	"art_studio/internal/lib/logger/sl"
	"art_studio/internal/transport/http/dto/request"
)

// Login exchanges admin credentials for a token. Invalid credentials leave
// the session anonymous and come back as a KindAuth error for inline display.
func (c *Client) Login(ctx context.Context, email, password string) (models.AdminSession, error) {
	const op = "studioapi.Login"

	if err := c.session.BeginLogin(); err != nil {
		return models.AdminSession{}, fmt.Errorf("%s: %w", op, err)
	}

	var out models.AdminSession
	err := c.do(ctx, http.MethodPost, pathLogin, nil, request.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		c.session.FailLogin()
		return models.AdminSession{}, err
	}

	err = c.session.CompleteLogin(session.Credentials{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		User:      out.User,
	})
	if err != nil {
		return models.AdminSession{}, fmt.Errorf("%s: %w", op, err)
	}

	// admin reads include inactive records, so nothing cached as anonymous survives
	c.cache.Reset()

	return out, nil
}

// Logout revokes the token on the server and discards it locally. The local
// discard happens even when the server cannot be reached.
func (c *Client) Logout(ctx context.Context) {
	const op = "studioapi.Logout"

	log := c.log.With(
		slog.String("op", op),
	)

	if _, ok := c.session.Token(); ok {
		if err := c.do(ctx, http.MethodPost, pathLogout, nil, nil, nil); err != nil {
			log.Warn("server logout failed", sl.Err(err))
		}
	}

	c.session.Logout()
}

// Verify returns the claims of the current token as the server sees them.
func (c *Client) Verify(ctx context.Context) (models.TokenClaims, error) {
	var claims models.TokenClaims
	if err := c.do(ctx, http.MethodGet, pathVerify, nil, nil, &claims); err != nil {
		return models.TokenClaims{}, err
	}
	return claims, nil
}

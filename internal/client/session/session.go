// Package session keeps the admin credential of an API client and enforces a
// single logged-out state after any authorization failure.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"art_studio/internal/domain/models"
	"art_studio/internal/lib/logger/sl"
)

type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
	Expired
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Expired:
		return "expired"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Navigation reasons passed to Navigator.ToLogin.
const (
	ReasonLoginRequired = "login_required"
	ReasonRejected      = "rejected"
	ReasonExpired       = "expired"
	ReasonLogout        = "logout"
)

var (
	ErrNoCredentials   = errors.New("session: no credentials")
	ErrLoginInProgress = errors.New("session: login already in progress")
	ErrNotLoggingIn    = errors.New("session: no login in progress")
)

// Credentials is what gets persisted after a successful login.
type Credentials struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      models.AdminUser `json:"user"`
}

// Navigator moves the user interface to the login screen.
type Navigator interface {
	ToLogin(reason string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(reason string)

func (f NavigatorFunc) ToLogin(reason string) { f(reason) }

type Session struct {
	log   *slog.Logger
	store Store
	nav   Navigator
	now   func() time.Time

	mu       sync.Mutex
	state    State
	creds    Credentials
	teardown []func()
}

type Option func(*Session)

// WithClock overrides time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New restores a persisted credential from store when it has not expired yet.
func New(log *slog.Logger, store Store, nav Navigator, opts ...Option) (*Session, error) {
	const op = "session.New"

	s := &Session{
		log:   log,
		store: store,
		nav:   nav,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	creds, ok, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case !ok:
	case creds.Token == "" || !s.now().Before(creds.ExpiresAt):
		if err := store.Clear(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	default:
		s.state = Authenticated
		s.creds = creds
	}

	return s, nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the logged-in admin.
func (s *Session) User() (models.AdminUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Authenticated {
		return models.AdminUser{}, false
	}
	return s.creds.User, true
}

// OnTeardown registers fn to run whenever the session is torn down by a
// rejection, a local expiry or a logout.
func (s *Session) OnTeardown(fn func()) {
	s.mu.Lock()
	s.teardown = append(s.teardown, fn)
	s.mu.Unlock()
}

// BeginLogin enters Authenticating. Logging in over a live session drops
// the old credential first and runs the teardown hooks, so a failed
// re-login never leaves it stored.
func (s *Session) BeginLogin() error {
	s.mu.Lock()
	if s.state == Authenticating {
		s.mu.Unlock()
		return ErrLoginInProgress
	}

	var hooks []func()
	if s.state == Authenticated {
		hooks = s.clearLocked()
	}
	s.state = Authenticating
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	return nil
}

// CompleteLogin persists creds and enters Authenticated. When the store
// cannot be written the session falls back to Anonymous.
func (s *Session) CompleteLogin(creds Credentials) error {
	const op = "session.CompleteLogin"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Authenticating {
		return ErrNotLoggingIn
	}

	if err := s.store.Save(creds); err != nil {
		s.state = Anonymous
		s.creds = Credentials{}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.state = Authenticated
	s.creds = creds
	s.log.Info("admin logged in", slog.String("email", creds.User.Email))

	return nil
}

// FailLogin returns to Anonymous without persisting anything.
func (s *Session) FailLogin() {
	s.mu.Lock()
	if s.state == Authenticating {
		s.state = Anonymous
	}
	s.mu.Unlock()
}

// Token returns the bearer token to attach to a request. A credential that
// has expired locally is torn down and reported as absent.
func (s *Session) Token() (string, bool) {
	s.mu.Lock()
	if s.state != Authenticated {
		s.mu.Unlock()
		return "", false
	}
	token, expiresAt := s.creds.Token, s.creds.ExpiresAt
	s.mu.Unlock()

	if !s.now().Before(expiresAt) {
		s.reject(token, ReasonExpired)
		return "", false
	}
	return token, true
}

// Reject tears the session down after the server refused token. Rejections
// of a token that is no longer current are ignored, so a burst of 401s
// tears down once. It reports whether a teardown happened.
func (s *Session) Reject(token string) bool {
	return s.reject(token, ReasonRejected)
}

func (s *Session) reject(token, reason string) bool {
	s.mu.Lock()
	if s.state != Authenticated || s.creds.Token != token {
		s.mu.Unlock()
		return false
	}
	s.state = Expired
	hooks := s.clearLocked()
	s.mu.Unlock()

	s.log.Warn("session torn down", slog.String("reason", reason))
	s.finish(hooks, reason)

	return true
}

// Logout discards the credential locally.
func (s *Session) Logout() {
	s.mu.Lock()
	if s.state != Authenticated {
		s.mu.Unlock()
		return
	}
	s.state = Expired
	hooks := s.clearLocked()
	s.mu.Unlock()

	s.log.Info("admin logged out")
	s.finish(hooks, ReasonLogout)
}

// RequireLogin sends the user to the login screen without calling the server.
func (s *Session) RequireLogin() {
	s.nav.ToLogin(ReasonLoginRequired)
}

// clearLocked forgets the credential and returns the hooks to run. Must be
// called with s.mu held.
func (s *Session) clearLocked() []func() {
	if err := s.store.Clear(); err != nil {
		s.log.Error("failed to clear session store", sl.Err(err))
	}
	s.creds = Credentials{}
	return append([]func(){}, s.teardown...)
}

func (s *Session) finish(hooks []func(), reason string) {
	for _, fn := range hooks {
		fn()
	}
	s.nav.ToLogin(reason)

	s.mu.Lock()
	if s.state == Expired {
		s.state = Anonymous
	}
	s.mu.Unlock()
}

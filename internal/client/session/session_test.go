package session_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"art_studio/internal/client/session"
	"art_studio/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type navigator struct {
	mu      sync.Mutex
	reasons []string
}

func (n *navigator) ToLogin(reason string) {
	n.mu.Lock()
	n.reasons = append(n.reasons, reason)
	n.mu.Unlock()
}

func (n *navigator) got() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.reasons...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func creds(token string, ttl time.Duration) session.Credentials {
	return session.Credentials{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
		User: models.AdminUser{
			ID:    "1",
			Email: "admin@studio.test",
			Name:  "Admin",
			Role:  models.RoleAdmin,
		},
	}
}

func loggedIn(t *testing.T, store session.Store, nav session.Navigator, token string) *session.Session {
	t.Helper()

	s, err := session.New(testLogger(), store, nav)
	require.NoError(t, err)
	require.NoError(t, s.BeginLogin())
	require.NoError(t, s.CompleteLogin(creds(token, time.Hour)))
	return s
}

func TestLogin_Lifecycle(t *testing.T) {
	store := session.NewMemoryStore()
	s, err := session.New(testLogger(), store, &navigator{})
	require.NoError(t, err)
	assert.Equal(t, session.Anonymous, s.State())

	require.NoError(t, s.BeginLogin())
	assert.Equal(t, session.Authenticating, s.State())
	assert.ErrorIs(t, s.BeginLogin(), session.ErrLoginInProgress)

	require.NoError(t, s.CompleteLogin(creds("tok", time.Hour)))
	assert.Equal(t, session.Authenticated, s.State())

	token, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", token)

	saved, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok", saved.Token)
	assert.Equal(t, "admin@studio.test", saved.User.Email)
}

func TestLogin_FailurePersistsNothing(t *testing.T) {
	store := session.NewMemoryStore()
	s, err := session.New(testLogger(), store, &navigator{})
	require.NoError(t, err)

	require.NoError(t, s.BeginLogin())
	s.FailLogin()

	assert.Equal(t, session.Anonymous, s.State())
	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, s.CompleteLogin(creds("tok", time.Hour)), session.ErrNotLoggingIn)
}

func TestLogin_FailedReloginDropsOldCredential(t *testing.T) {
	nav := &navigator{}
	store := session.NewMemoryStore()
	s := loggedIn(t, store, nav, "old")

	var hooks atomic.Int32
	s.OnTeardown(func() { hooks.Add(1) })

	require.NoError(t, s.BeginLogin())
	_, ok := s.Token()
	assert.False(t, ok)
	s.FailLogin()

	assert.Equal(t, session.Anonymous, s.State())
	assert.EqualValues(t, 1, hooks.Load())
	assert.Empty(t, nav.got())
	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	restarted, err := session.New(testLogger(), store, nav)
	require.NoError(t, err)
	assert.Equal(t, session.Anonymous, restarted.State())
}

func TestLogin_ReloginReplacesCredential(t *testing.T) {
	store := session.NewMemoryStore()
	s := loggedIn(t, store, &navigator{}, "old")

	require.NoError(t, s.BeginLogin())
	require.NoError(t, s.CompleteLogin(creds("new", time.Hour)))

	token, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, "new", token)
	stored, ok, err := store.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", stored.Token)
}

func TestNew_RestoresLiveCredential(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(creds("tok", time.Hour)))

	s, err := session.New(testLogger(), store, &navigator{})
	require.NoError(t, err)

	assert.Equal(t, session.Authenticated, s.State())
	user, ok := s.User()
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestNew_DropsExpiredCredential(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(creds("tok", -time.Minute)))

	s, err := session.New(testLogger(), store, &navigator{})
	require.NoError(t, err)

	assert.Equal(t, session.Anonymous, s.State())
	_, ok, _ := store.Load()
	assert.False(t, ok)
}

func TestToken_LocalExpiryTearsDown(t *testing.T) {
	now := time.Now()
	nav := &navigator{}
	store := session.NewMemoryStore()

	s, err := session.New(testLogger(), store, nav, session.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	require.NoError(t, s.BeginLogin())
	require.NoError(t, s.CompleteLogin(session.Credentials{Token: "tok", ExpiresAt: now.Add(time.Minute)}))

	now = now.Add(2 * time.Minute)
	_, ok := s.Token()

	assert.False(t, ok)
	assert.Equal(t, session.Anonymous, s.State())
	assert.Equal(t, []string{session.ReasonExpired}, nav.got())
}

func TestReject_ClearsEverythingOnce(t *testing.T) {
	nav := &navigator{}
	store := session.NewMemoryStore()
	s := loggedIn(t, store, nav, "tok")

	var hooks atomic.Int32
	s.OnTeardown(func() { hooks.Add(1) })

	assert.True(t, s.Reject("tok"))
	assert.False(t, s.Reject("tok"))

	assert.Equal(t, session.Anonymous, s.State())
	assert.EqualValues(t, 1, hooks.Load())
	assert.Equal(t, []string{session.ReasonRejected}, nav.got())
	_, ok, _ := store.Load()
	assert.False(t, ok)
}

func TestReject_IgnoresStaleToken(t *testing.T) {
	nav := &navigator{}
	s := loggedIn(t, session.NewMemoryStore(), nav, "new")

	assert.False(t, s.Reject("old"))
	assert.Equal(t, session.Authenticated, s.State())
	assert.Empty(t, nav.got())
}

func TestLogout(t *testing.T) {
	nav := &navigator{}
	store := session.NewMemoryStore()
	s := loggedIn(t, store, nav, "tok")

	var reset atomic.Bool
	s.OnTeardown(func() { reset.Store(true) })

	s.Logout()

	assert.True(t, reset.Load())
	assert.Equal(t, session.Anonymous, s.State())
	assert.Equal(t, []string{session.ReasonLogout}, nav.got())
	_, ok := s.Token()
	assert.False(t, ok)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := session.NewFileStore(path)

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	want := creds("tok", time.Hour)
	require.NoError(t, store.Save(want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.Token, got.Token)
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))
	assert.Equal(t, want.User, got.User)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	_, ok, err = store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CorruptFileIsNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, ok, err := session.NewFileStore(path).Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func protectWrites(req *http.Request) bool {
	return req.Method != http.MethodGet
}

func TestTransport_AttachesBearer(t *testing.T) {
	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	s := loggedIn(t, session.NewMemoryStore(), &navigator{}, "tok")
	client := &http.Client{Transport: &session.Transport{Session: s, Protected: protectWrites}}
	defer client.CloseIdleConnections()

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer tok", got.Load())
}

func TestTransport_ShortCircuitsProtectedRequestWithoutToken(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	nav := &navigator{}
	s, err := session.New(testLogger(), session.NewMemoryStore(), nav)
	require.NoError(t, err)
	client := &http.Client{Transport: &session.Transport{Session: s, Protected: protectWrites}}
	defer client.CloseIdleConnections()

	_, err = client.Post(srv.URL, "application/json", nil)
	assert.ErrorIs(t, err, session.ErrNoCredentials)
	assert.Zero(t, calls.Load())
	assert.Equal(t, []string{session.ReasonLoginRequired}, nav.got())

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.EqualValues(t, 1, calls.Load())
}

func TestTransport_ConcurrentUnauthorizedTearsDownOnce(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	nav := &navigator{}
	store := session.NewMemoryStore()
	s := loggedIn(t, store, nav, "tok")

	var teardowns atomic.Int32
	s.OnTeardown(func() { teardowns.Add(1) })

	client := &http.Client{Transport: &session.Transport{Session: s, Protected: protectWrites}}
	defer client.CloseIdleConnections()

	const requests = 6
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.Get(srv.URL)
			if assert.NoError(t, err) {
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				resp.Body.Close()
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, teardowns.Load())
	assert.Equal(t, []string{session.ReasonRejected}, nav.got())
	assert.Equal(t, session.Anonymous, s.State())
	_, ok, _ := store.Load()
	assert.False(t, ok)
}

func TestTransport_UnauthorizedWithoutTokenKeepsState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	nav := &navigator{}
	s, err := session.New(testLogger(), session.NewMemoryStore(), nav)
	require.NoError(t, err)
	client := &http.Client{Transport: &session.Transport{Session: s}}
	defer client.CloseIdleConnections()

	resp, err := client.Post(srv.URL, "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, session.Anonymous, s.State())
	assert.Empty(t, nav.got())
}

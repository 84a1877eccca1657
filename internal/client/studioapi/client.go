// Package studioapi is the typed client of the art studio API. Reads go
// through a tag-invalidated query cache and every request passes the session
// guard.
package studioapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"art_studio/internal/client/querycache"
	"art_studio/internal/client/session"
)

// Cache tags, one per resource type.
const (
	TagArtwork     = "Artwork"
	TagService     = "Service"
	TagTestimonial = "Testimonial"
	TagAward       = "Award"
	TagProfile     = "Profile"
	TagContact     = "Contact"
)

const (
	pathLogin        = "/api/auth/admin/login"
	pathLogout       = "/api/auth/admin/logout"
	pathVerify       = "/api/auth/verify"
	pathArtworks     = "/api/artworks"
	pathServices     = "/api/services"
	pathTestimonials = "/api/testimonials"
	pathAwards       = "/api/awards"
	pathContacts     = "/api/contacts"
	pathProfile      = "/api/profile"
)

type Client struct {
	log     *slog.Logger
	base    *url.URL
	http    *http.Client
	cache   *querycache.Cache
	session *session.Session
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithTransport replaces the network transport under the session guard.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.Transport.(*session.Transport).Base = rt }
}

// New builds a client for the API at baseURL. A session teardown resets the
// query cache.
func New(log *slog.Logger, baseURL string, sess *session.Session, opts ...Option) (*Client, error) {
	const op = "studioapi.New"

	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%s: base url %q must be absolute", op, baseURL)
	}

	c := &Client{
		log:     log,
		base:    base,
		cache:   querycache.New(),
		session: sess,
	}
	c.http = &http.Client{
		Timeout: 15 * time.Second,
		Transport: &session.Transport{
			Session:   sess,
			Protected: c.requiresAuth,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	sess.OnTeardown(c.cache.Reset)

	return c, nil
}

func (c *Client) Session() *session.Session {
	return c.session
}

func (c *Client) Cache() *querycache.Cache {
	return c.cache
}

// Close waits for background fetches and drops idle connections.
func (c *Client) Close() {
	c.cache.Wait()
	c.http.CloseIdleConnections()
}

// requiresAuth mirrors the server route table: every write except the
// contact form and login, plus contact reads and token verification.
func (c *Client) requiresAuth(req *http.Request) bool {
	p := strings.TrimPrefix(req.URL.Path, c.base.Path)

	switch req.Method {
	case http.MethodGet, http.MethodHead:
		return p == pathVerify || p == pathContacts
	case http.MethodPost:
		return p != pathLogin && p != pathContacts
	}
	return true
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// do sends one request and decodes the envelope's data into out.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, out any) error {
	req, err := c.newRequest(ctx, method, path, params, body)
	if err != nil {
		return &Error{Kind: KindServer, Message: "cannot build request", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, session.ErrNoCredentials) {
			return &Error{Kind: KindAuth, Code: "token_missing", Message: "login required", Err: err}
		}
		return &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Status: resp.StatusCode, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest || (decodeErr == nil && !env.Success) {
		apiErr := &Error{
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Code:    env.Error,
			Message: env.Message,
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if decodeErr != nil {
		return &Error{Kind: KindServer, Status: resp.StatusCode, Message: "malformed response", Err: decodeErr}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Kind: KindServer, Status: resp.StatusCode, Message: "malformed response data", Err: err}
		}
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values, body any) (*http.Request, error) {
	u := *c.base
	u.Path = c.base.Path + path
	u.RawQuery = params.Encode()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// read returns the cached value of GET path?params or fetches it.
func read[T any](ctx context.Context, c *Client, tag, path string, params url.Values) (T, error) {
	return querycache.Get[T](ctx, c.cache, c.query(tag, path, params, decodeInto[T]))
}

func decodeInto[T any](c *Client, path string, params url.Values) querycache.Fetcher {
	return func(ctx context.Context) (any, error) {
		var out T
		if err := c.do(ctx, http.MethodGet, path, params, nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

func (c *Client) query(tag, path string, params url.Values, fetch func(*Client, string, url.Values) querycache.Fetcher) querycache.Query {
	return querycache.Query{
		Key:   querycache.Key(path, params),
		Tags:  []string{tag},
		Fetch: fetch(c, path, params),
	}
}

// write performs a mutation and invalidates tags on success.
func write[T any](ctx context.Context, c *Client, tags []string, method, path string, params url.Values, body any) (T, error) {
	var out T
	err := c.cache.Mutate(ctx, tags, func(ctx context.Context) error {
		return c.do(ctx, method, path, params, body, &out)
	})
	return out, err
}

// watch subscribes fn to GET path?params with values decoded as T.
func watch[T any](c *Client, tag, path string, params url.Values, fn func(T, error, bool)) *querycache.Subscription {
	return c.cache.Subscribe(c.query(tag, path, params, decodeInto[T]), func(res querycache.Result) {
		v, _ := res.Data.(T)
		fn(v, res.Err, res.IsLoading)
	})
}

func idParam(id string) url.Values {
	return url.Values{"id": {id}}
}

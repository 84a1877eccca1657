package session

import (
	"net/http"
)

// Transport is the one place every API response passes through. It attaches
// the bearer token, refuses protected requests when there is no token and
// tears the session down on any 401.
type Transport struct {
	Base    http.RoundTripper
	Session *Session
	// Protected reports whether req needs a credential. Nil means none does.
	Protected func(req *http.Request) bool
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, ok := t.Session.Token()
	if !ok && t.Protected != nil && t.Protected(req) {
		if req.Body != nil {
			req.Body.Close()
		}
		t.Session.RequireLogin()
		return nil, ErrNoCredentials
	}

	if ok {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && ok {
		t.Session.Reject(token)
	}

	return resp, nil
}

func (t *Transport) CloseIdleConnections() {
	type closeIdler interface {
		CloseIdleConnections()
	}
	if c, ok := t.base().(closeIdler); ok {
		c.CloseIdleConnections()
	}
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

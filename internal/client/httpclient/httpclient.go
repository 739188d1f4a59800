// Package httpclient wraps the HTTP transport used by the API client: it
// injects the stored access token on every outgoing request and reacts to
// authorization failures by purging the session.
package httpclient

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Kenyi45/task-manager/internal/client/tokenstore"
)

// Options configures the wrapped client.
type Options struct {
	// Timeout is the fixed overall request timeout; no per-call deadlines
	// beyond it.
	Timeout time.Duration

	// OnUnauthorized runs after the stored tokens have been cleared on a 401
	// (the redirect-to-login analog). May be nil.
	OnUnauthorized func()
}

// New builds an *http.Client whose transport injects the Authorization
// header and handles 401 responses.
func New(store *tokenstore.Store, opts Options) *http.Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &authTransport{
			store:          store,
			next:           http.DefaultTransport,
			onUnauthorized: opts.OnUnauthorized,
		},
	}
}

// authTransport is the RoundTripper doing the actual work. Tokens are read
// from the store before each request and cleared after any 401.
type authTransport struct {
	store          *tokenstore.Store
	next           http.RoundTripper
	onUnauthorized func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if access := t.store.Access(); access != "" {
		// Clone before mutating: RoundTrippers must not modify the request.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", access))
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !isTokenEndpoint(req.URL.Path) {
		// Session expired: purge the pair and hand control back to login.
		_ = t.store.Clear()
		if t.onUnauthorized != nil {
			t.onUnauthorized()
		}
	}

	return resp, nil
}

// isTokenEndpoint reports whether the request is a credential exchange; a
// rejected login is not a session expiry.
func isTokenEndpoint(path string) bool {
	return strings.HasPrefix(path, "/api/token")
}

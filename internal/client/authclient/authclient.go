// Package authclient drives the login/refresh/logout flow against the token
// endpoints and keeps the persisted pair in sync.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Kenyi45/task-manager/internal/client/apierr"
	"github.com/Kenyi45/task-manager/internal/client/tokenstore"
	pkgLog "github.com/Kenyi45/task-manager/pkg/log"
)

// Client talks to the token endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      *tokenstore.Store
	l          pkgLog.Logger
}

// New creates a new auth client.
func New(baseURL string, httpClient *http.Client, store *tokenstore.Store, l pkgLog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		store:      store,
		l:          l,
	}
}

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login exchanges credentials for a token pair and persists it, replacing
// any previous session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}

	var pair tokenPair
	if err := c.post(ctx, "/api/token/", body, &pair); err != nil {
		return err
	}

	if err := c.store.Save(pair.Access, pair.Refresh); err != nil {
		return apierr.Transport(fmt.Errorf("failed to persist tokens: %w", err))
	}
	c.l.Infof(ctx, "auth client: logged in as %q", username)
	return nil
}

// Refresh exchanges the stored refresh token for a new access token. The
// client flow never calls this automatically; expiry is handled reactively.
func (c *Client) Refresh(ctx context.Context) error {
	refresh := c.store.Refresh()
	if refresh == "" {
		return apierr.New(http.StatusUnauthorized, "no refresh token stored")
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := c.post(ctx, "/api/token/refresh/", map[string]string{"refresh": refresh}, &out); err != nil {
		return err
	}

	if err := c.store.SaveAccess(out.Access); err != nil {
		return apierr.Transport(fmt.Errorf("failed to persist access token: %w", err))
	}
	return nil
}

// Logout destroys the stored pair.
func (c *Client) Logout() error {
	return c.store.Clear()
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return apierr.Transport(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(raw))
	if err != nil {
		return apierr.Transport(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierr.Transport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return normalizeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierr.Transport(fmt.Errorf("failed to decode token response: %w", err))
	}
	return nil
}

func normalizeError(resp *http.Response) *apierr.Error {
	raw, _ := io.ReadAll(resp.Body)

	out := apierr.New(resp.StatusCode, http.StatusText(resp.StatusCode))

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		out.Message = body.Detail
	}
	return out
}

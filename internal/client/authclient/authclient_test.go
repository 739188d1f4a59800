package authclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Kenyi45/task-manager/internal/client/apierr"
	"github.com/Kenyi45/task-manager/internal/client/authclient"
	"github.com/Kenyi45/task-manager/internal/client/tokenstore"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newStore(t *testing.T) *tokenstore.Store {
	t.Helper()
	return tokenstore.New(filepath.Join(t.TempDir(), "credentials.json"), "access_token", "refresh_token")
}

func TestLogin(t *testing.T) {
	t.Run("Persists Pair", func(t *testing.T) {
		var gotBody map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/token/" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"access":"acc-1","refresh":"ref-1"}`))
		}))
		defer srv.Close()

		store := newStore(t)
		c := authclient.New(srv.URL, srv.Client(), store, &mockLogger{})

		if err := c.Login(context.Background(), "alice", "secret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotBody["username"] != "alice" || gotBody["password"] != "secret" {
			t.Errorf("unexpected request body: %+v", gotBody)
		}
		if store.Access() != "acc-1" || store.Refresh() != "ref-1" {
			t.Errorf("pair not persisted: %q/%q", store.Access(), store.Refresh())
		}
	})

	t.Run("Login Replaces Previous Session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access":"acc-2","refresh":"ref-2"}`))
		}))
		defer srv.Close()

		store := newStore(t)
		_ = store.Save("acc-1", "ref-1")
		c := authclient.New(srv.URL, srv.Client(), store, &mockLogger{})

		if err := c.Login(context.Background(), "alice", "secret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Access() != "acc-2" || store.Refresh() != "ref-2" {
			t.Errorf("second login should replace the pair")
		}
	})

	t.Run("Rejection Surfaces Detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"no active account found with the given credentials"}`))
		}))
		defer srv.Close()

		store := newStore(t)
		c := authclient.New(srv.URL, srv.Client(), store, &mockLogger{})

		err := c.Login(context.Background(), "alice", "wrong")
		apiErr := apierr.From(err)
		if !apiErr.IsAuthorization() {
			t.Errorf("expected 401, got %+v", apiErr)
		}
		if apiErr.Message != "no active account found with the given credentials" {
			t.Errorf("unexpected message: %q", apiErr.Message)
		}
		if store.Access() != "" {
			t.Errorf("rejected login must not store tokens")
		}
	})
}

func TestRefresh(t *testing.T) {
	t.Run("Replaces Access Only", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/token/refresh/" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			w.Write([]byte(`{"access":"acc-new"}`))
		}))
		defer srv.Close()

		store := newStore(t)
		_ = store.Save("acc-old", "ref-1")
		c := authclient.New(srv.URL, srv.Client(), store, &mockLogger{})

		if err := c.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Access() != "acc-new" {
			t.Errorf("expected new access token, got %q", store.Access())
		}
		if store.Refresh() != "ref-1" {
			t.Errorf("refresh token must survive, got %q", store.Refresh())
		}
	})

	t.Run("No Stored Refresh Token", func(t *testing.T) {
		c := authclient.New("http://unused", http.DefaultClient, newStore(t), &mockLogger{})
		err := c.Refresh(context.Background())
		apiErr := apierr.From(err)
		if apiErr == nil || !apiErr.IsAuthorization() {
			t.Errorf("expected authorization error, got %+v", apiErr)
		}
	})
}

func TestLogout(t *testing.T) {
	store := newStore(t)
	_ = store.Save("acc-1", "ref-1")

	c := authclient.New("http://unused", http.DefaultClient, store, &mockLogger{})
	if err := c.Logout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Access() != "" || store.Refresh() != "" {
		t.Errorf("logout must clear the stored pair")
	}
}

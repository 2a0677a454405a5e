package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/moodfeed/feed-system/internal/core/domain"
)

func TestResolveMany_PartialResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.URL.Query()["id"]
		if len(got) != 2 {
			t.Errorf("expected 2 ids in query, got %v", got)
		}
		w.Header().Set("Content-Type", "application/json")
		// Only u1 resolves; "ghost" is unknown to the provider.
		_, _ = w.Write([]byte(`{"profiles":[{"id":"u1","username":"alice","avatar_url":"https://img.example/a.png"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())

	profiles, err := c.ResolveMany(context.Background(), []string{"u1", "ghost"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	p, ok := profiles["u1"]
	if !ok || p.Username != "alice" || p.AvatarURL != "https://img.example/a.png" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if _, ok := profiles["ghost"]; ok {
		t.Error("unknown id must be absent, not present with zero value")
	}
}

func TestResolveMany_EmptyInput(t *testing.T) {
	c := NewClient("http://identity.invalid", time.Second, zerolog.Nop())

	profiles, err := c.ResolveMany(context.Background(), nil)
	if err != nil {
		t.Fatalf("empty input must not hit the network: %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("expected empty map, got %v", profiles)
	}
}

func TestResolveMany_UpstreamErrorWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())

	_, err := c.ResolveMany(context.Background(), []string{"u1"})
	var ie *domain.IdentityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IdentityError, got %v", err)
	}
}

func TestResolveMany_UnreachableProviderWrapped(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 100*time.Millisecond, zerolog.Nop())

	_, err := c.ResolveMany(context.Background(), []string{"u1"})
	var ie *domain.IdentityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IdentityError, got %v", err)
	}
}

func TestResolveMany_MalformedResponseWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not-json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())

	_, err := c.ResolveMany(context.Background(), []string{"u1"})
	var ie *domain.IdentityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IdentityError, got %v", err)
	}
}

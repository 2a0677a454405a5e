package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/moodfeed/feed-system/internal/core/domain"
	"github.com/moodfeed/feed-system/internal/core/ports"
)

type stubPostService struct {
	createFn func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error)
	listFn   func(ctx context.Context) ([]domain.EnrichedPost, error)
}

func (s *stubPostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, input)
}

func (s *stubPostService) ListFeed(ctx context.Context) ([]domain.EnrichedPost, error) {
	return s.listFn(ctx)
}

func newPostContext(body string, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/posts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestPostHandler_Create_Success(t *testing.T) {
	now := time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)
	stub := &stubPostService{
		createFn: func(_ context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			if input.AuthorID != "user_1" || input.Content != "🙂" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Post{ID: "abc123", Content: input.Content, AuthorID: input.AuthorID, CreatedAt: now}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newPostContext(`{"content":"🙂"}`, "user_1")
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "abc123" || resp["content"] != "🙂" || resp["author_id"] != "user_1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPostHandler_Create_InvalidPayload(t *testing.T) {
	stub := &stubPostService{
		createFn: func(context.Context, ports.CreatePostInput) (*domain.Post, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewPostHandler(stub)

	c, _ := newPostContext("not-json", "user_1")
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPostHandler_Create_MissingIdentity(t *testing.T) {
	stub := &stubPostService{
		createFn: func(context.Context, ports.CreatePostInput) (*domain.Post, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewPostHandler(stub)

	c, _ := newPostContext(`{"content":"🙂"}`, "")
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestPostHandler_Create_ServiceErrorsPassThrough(t *testing.T) {
	// Domain errors flow to the central HTTP error handler untouched.
	stub := &stubPostService{
		createFn: func(context.Context, ports.CreatePostInput) (*domain.Post, error) {
			return nil, domain.ErrRateLimited
		},
	}
	h := NewPostHandler(stub)

	c, _ := newPostContext(`{"content":"🙂"}`, "user_1")
	if err := h.Create(c); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited passthrough, got %v", err)
	}
}

func TestPostHandler_Feed_MixedAuthors(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubPostService{
		listFn: func(context.Context) ([]domain.EnrichedPost, error) {
			return []domain.EnrichedPost{
				{
					Post:   domain.Post{ID: "p2", Content: "😀", AuthorID: "u1", CreatedAt: now},
					Author: &domain.AuthorProfile{ID: "u1", Username: "alice"},
				},
				{
					Post: domain.Post{ID: "p1", Content: "🙂", AuthorID: "ghost", CreatedAt: now.Add(-time.Minute)},
				},
			}, nil
		},
	}
	h := NewPostHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/feed", nil)
	rec := httptest.NewRecorder()
	if err := h.Feed(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Posts []struct {
			ID     string          `json:"id"`
			Author *authorResponse `json:"author"`
		} `json:"posts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(resp.Posts))
	}
	if resp.Posts[0].Author == nil || resp.Posts[0].Author.Username != "alice" {
		t.Errorf("expected resolved author on first post: %+v", resp.Posts[0].Author)
	}
	if resp.Posts[1].Author != nil {
		t.Error("ghost author must serialize as null")
	}
}

func TestPostHandler_Feed_EmptyIsArrayNotNull(t *testing.T) {
	stub := &stubPostService{
		listFn: func(context.Context) ([]domain.EnrichedPost, error) {
			return nil, nil
		},
	}
	h := NewPostHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/feed", nil)
	rec := httptest.NewRecorder()
	if err := h.Feed(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !strings.Contains(rec.Body.String(), `"posts":[]`) {
		t.Errorf("empty feed must serialize as an empty array: %s", rec.Body.String())
	}
}

func TestPostHandler_Feed_StorageErrorPassesThrough(t *testing.T) {
	stub := &stubPostService{
		listFn: func(context.Context) ([]domain.EnrichedPost, error) {
			return nil, &domain.StorageError{Op: "list posts", Err: errors.New("down")}
		},
	}
	h := NewPostHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/feed", nil)
	rec := httptest.NewRecorder()
	err := h.Feed(e.NewContext(req, rec))

	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError passthrough, got %v", err)
	}
}

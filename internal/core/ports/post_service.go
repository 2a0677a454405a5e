package ports

import (
	"context"

	"github.com/moodfeed/feed-system/internal/core/domain"
)

// CreatePostInput carries all data needed to create a new post. AuthorID is
// the authenticated caller's identity, established by the auth middleware
// before the service is invoked.
type CreatePostInput struct {
	AuthorID string
	Content  string
}

// PostService defines the use-case operations of the feed.
type PostService interface {
	// CreatePost validates content, charges the author's rate-limit quota,
	// and persists the post. Validation runs before the quota check so quota
	// is never spent on input that could not have succeeded.
	CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	// ListFeed returns all posts newest-first, each enriched with its
	// author's profile when the identity provider can resolve it.
	ListFeed(ctx context.Context) ([]domain.EnrichedPost, error)
}

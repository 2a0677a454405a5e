package ports

import (
	"context"

	"github.com/moodfeed/feed-system/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	// Create durably persists a new post. The store assigns ID and CreatedAt
	// on the passed struct; the write is atomic (the post either exists with
	// all fields or not at all).
	Create(ctx context.Context, p *domain.Post) error
	// ListAll returns every post ordered by created_at descending, ties
	// broken by reverse insertion order.
	ListAll(ctx context.Context) ([]*domain.Post, error)
}

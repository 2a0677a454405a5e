package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/moodfeed/feed-system/internal/api/metrics"
	"github.com/moodfeed/feed-system/internal/core/domain"
	"github.com/moodfeed/feed-system/internal/core/ports"
)

// rateLimitKeyPrefix namespaces the per-author write quota in the shared
// counter store.
const rateLimitKeyPrefix = "posts:"

type PostService struct {
	repo     ports.PostRepository
	limiter  ports.RateLimiter
	identity ports.IdentityResolver
	logger   zerolog.Logger
}

func NewPostService(repo ports.PostRepository, limiter ports.RateLimiter, identity ports.IdentityResolver, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, limiter: limiter, identity: identity, logger: logger}
}

// CreatePost validates content, charges the author's quota, and persists the
// post. Validation runs first so quota is never spent on input that could not
// have succeeded; the quota check itself is not reversible once it passes.
func (s *PostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if err := domain.ValidateContent(input.Content); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.PostsRejectedTotal.WithLabelValues(ve.Reason).Inc()
		}
		return nil, err
	}

	permitted, err := s.limiter.Allow(ctx, rateLimitKeyPrefix+input.AuthorID)
	if err != nil {
		// Counter store unreachable: fail closed rather than admit an
		// unverifiable write.
		s.logger.Error().Err(err).Str("author_id", input.AuthorID).Msg("rate limit check failed")
		return nil, &domain.StorageError{Op: "rate limit check", Err: err}
	}
	if !permitted {
		metrics.PostsRejectedTotal.WithLabelValues("rate_limited").Inc()
		s.logger.Info().Str("author_id", input.AuthorID).Msg("post rejected by rate limit")
		return nil, domain.ErrRateLimited
	}

	post := &domain.Post{
		Content:  input.Content,
		AuthorID: input.AuthorID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("author_id", input.AuthorID).Msg("failed to persist post")
		return nil, &domain.StorageError{Op: "create post", Err: err}
	}

	metrics.PostsCreatedTotal.Inc()
	s.logger.Info().Str("post_id", post.ID).Str("author_id", input.AuthorID).Msg("post created")
	return post, nil
}

// ListFeed returns every post newest-first, enriched with author profiles
// from the identity provider. Identity failures never fail the feed: posts
// whose author cannot be resolved are served with a nil Author instead.
func (s *PostService) ListFeed(ctx context.Context) ([]domain.EnrichedPost, error) {
	posts, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch posts")
		return nil, &domain.StorageError{Op: "list posts", Err: err}
	}

	profiles := s.resolveAuthors(ctx, posts)

	feed := make([]domain.EnrichedPost, 0, len(posts))
	degraded := false
	for _, p := range posts {
		enriched := domain.EnrichedPost{Post: *p}
		if profile, ok := profiles[p.AuthorID]; ok {
			enriched.Author = &profile
		} else {
			degraded = true
		}
		feed = append(feed, enriched)
	}

	enrichment := "full"
	if degraded {
		enrichment = "degraded"
	}
	metrics.FeedRequestsTotal.WithLabelValues(enrichment).Inc()

	return feed, nil
}

// resolveAuthors batch-resolves the distinct author ids of posts with a
// single identity provider call. On failure it returns an empty map so the
// caller degrades to an anonymous feed.
func (s *PostService) resolveAuthors(ctx context.Context, posts []*domain.Post) map[string]domain.AuthorProfile {
	seen := make(map[string]struct{}, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.AuthorID]; ok {
			continue
		}
		seen[p.AuthorID] = struct{}{}
		ids = append(ids, p.AuthorID)
	}
	if len(ids) == 0 {
		return nil
	}

	profiles, err := s.identity.ResolveMany(ctx, ids)
	if err != nil {
		metrics.IdentityResolutionFailuresTotal.Inc()
		s.logger.Warn().Err(err).Int("authors", len(ids)).Msg("identity resolution failed, serving anonymous feed")
		return nil
	}
	return profiles
}

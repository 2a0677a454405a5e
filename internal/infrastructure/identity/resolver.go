// Package identity implements the client for the external identity provider.
// The provider owns authentication and public profiles; this service only
// performs batch read-only lookups against it.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/moodfeed/feed-system/internal/api/metrics"
	"github.com/moodfeed/feed-system/internal/core/domain"
)

const (
	defaultTimeout = 5 * time.Second
	// maxBatchSize matches the provider's page limit for the batch profile
	// endpoint; larger id sets are chunked.
	maxBatchSize = 100
)

// Client resolves author identifiers to public profiles over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a Client for the provider at baseURL. A default request
// timeout is applied when none is provided.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type profileResponse struct {
	Profiles []struct {
		ID        string `json:"id"`
		Username  string `json:"username"`
		AvatarURL string `json:"avatar_url"`
	} `json:"profiles"`
}

// ResolveMany returns a profile for every id the provider knows. Unknown ids
// are absent from the result, which is not an error. Transport and protocol
// failures are wrapped as domain.IdentityError.
func (c *Client) ResolveMany(ctx context.Context, ids []string) (map[string]domain.AuthorProfile, error) {
	out := make(map[string]domain.AuthorProfile, len(ids))
	for start := 0; start < len(ids); start += maxBatchSize {
		end := min(start+maxBatchSize, len(ids))
		if err := c.resolveBatch(ctx, ids[start:end], out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *Client) resolveBatch(ctx context.Context, ids []string, out map[string]domain.AuthorProfile) error {
	started := time.Now()

	q := url.Values{}
	for _, id := range ids {
		q.Add("id", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/profiles?"+q.Encode(), nil)
	if err != nil {
		return &domain.IdentityError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.IdentityError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.IdentityError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var body profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &domain.IdentityError{Err: fmt.Errorf("decode response: %w", err)}
	}

	for _, p := range body.Profiles {
		out[p.ID] = domain.AuthorProfile{
			ID:        p.ID,
			Username:  p.Username,
			AvatarURL: p.AvatarURL,
		}
	}

	metrics.IdentityResolutionDuration.Observe(time.Since(started).Seconds())
	c.logger.Debug().
		Int("requested", len(ids)).
		Int("resolved", len(body.Profiles)).
		Dur("elapsed", time.Since(started)).
		Msg("profile batch resolved")

	return nil
}

package ports

import (
	"context"

	"github.com/moodfeed/feed-system/internal/core/domain"
)

// IdentityResolver batch-resolves author identifiers to public profiles via
// the external identity provider. It is an idempotent, side-effect-free
// remote read.
type IdentityResolver interface {
	// ResolveMany returns a profile for every id that resolved. Unresolved
	// ids are simply absent from the map, not an error. The returned error
	// is non-nil only when the provider itself could not be queried.
	ResolveMany(ctx context.Context, ids []string) (map[string]domain.AuthorProfile, error)
}

package domain

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Validation failure reasons for post content.
const (
	ReasonEmpty    = "empty"
	ReasonTooLong  = "too_long"
	ReasonNotEmoji = "not_emoji"
)

// MaxContentLength is the maximum post length, counted in runes.
const MaxContentLength = 255

var ErrRateLimited = errors.New("rate limit exceeded")

// ValidationError reports user-correctable content problems. The Reason is
// stable and machine-readable (empty, too_long, not_emoji).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid content: " + e.Reason
}

// StorageError wraps infrastructure faults from the durable store or the
// rate-limit counter store. It is retryable from the caller's perspective.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IdentityError wraps failures talking to the external identity provider.
// The feed read path absorbs it and degrades to anonymous authorship.
type IdentityError struct {
	Err error
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("identity provider: %v", e.Err)
}

func (e *IdentityError) Unwrap() error { return e.Err }

// Post is the core aggregate. Posts are immutable once created; the store
// assigns ID and CreatedAt.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Content   string    `json:"content" bson:"content"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// AuthorProfile is the public identity of a post author, owned by the
// external identity provider. Never persisted locally.
type AuthorProfile struct {
	ID        string `json:"id"`
	Username  string `json:"username,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// EnrichedPost pairs a post with its author's profile. A nil Author means the
// identity could not be resolved and the post is rendered as anonymous.
type EnrichedPost struct {
	Post
	Author *AuthorProfile `json:"author"`
}

// ValidateContent applies the content rules in order: non-empty, at most
// MaxContentLength runes, emoji-only.
func ValidateContent(content string) error {
	if content == "" {
		return &ValidationError{Reason: ReasonEmpty}
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return &ValidationError{Reason: ReasonTooLong}
	}
	if !IsEmojiOnly(content) {
		return &ValidationError{Reason: ReasonNotEmoji}
	}
	return nil
}

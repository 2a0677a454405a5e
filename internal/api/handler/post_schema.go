package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Reason is present on validation failures (empty, too_long,
// not_emoji).
type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// --- Request / Response types ---

type createPostRequest struct {
	Content string `json:"content"`
}

type createPostResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// authorResponse is the transport shape of a resolved author profile.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.
type authorResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// feedPostResponse is one feed entry. Author is null when the identity
// provider could not resolve the post's author; consumers render it as
// anonymous.
type feedPostResponse struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	AuthorID  string          `json:"author_id"`
	CreatedAt time.Time       `json:"created_at"`
	Author    *authorResponse `json:"author"`
}

type feedResponse struct {
	Posts []feedPostResponse `json:"posts"`
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodfeed/feed-system/internal/core/ports"
)

// PostHandler handles HTTP requests for post submission and the public feed.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /v1/posts.
//
// @Summary      Submit a new post
// @Description  Creates an emoji-only post bound to the authenticated identity.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content (1-255 emoji characters)"
// @Success      201   {object}  createPostResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	authorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), ports.CreatePostInput{
		AuthorID: authorID,
		Content:  req.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createPostResponse{
		ID:        post.ID,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
	})
}

// Feed handles GET /v1/feed. No authentication required.
//
// @Summary      Read the feed
// @Description  Returns all posts newest-first, enriched with author profiles where the identity provider resolves them.
// @Tags         posts
// @Produce      json
// @Success      200  {object}  feedResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/feed [get]
func (h *PostHandler) Feed(c echo.Context) error {
	feed, err := h.service.ListFeed(c.Request().Context())
	if err != nil {
		return err
	}

	posts := make([]feedPostResponse, 0, len(feed))
	for _, p := range feed {
		item := feedPostResponse{
			ID:        p.ID,
			Content:   p.Content,
			AuthorID:  p.AuthorID,
			CreatedAt: p.CreatedAt,
		}
		if p.Author != nil {
			item.Author = &authorResponse{
				ID:        p.Author.ID,
				Username:  p.Author.Username,
				AvatarURL: p.Author.AvatarURL,
			}
		}
		posts = append(posts, item)
	}

	return c.JSON(http.StatusOK, feedResponse{Posts: posts})
}

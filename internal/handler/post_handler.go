package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/service"
)

// PostHandler handles post endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRequest represents a create or update payload.
type PostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CreatePostResponse echoes the stored post.
type CreatePostResponse struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID uint   `json:"user_id"`
}

// ListPosts godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Security BasicAuth
// @Success 200 {array} PostResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postService.ListPosts(c.Request().Context())
	if err != nil {
		return respondError(err)
	}

	resp := make([]PostResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostResponse(&posts[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreatePost godoc
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body PostRequest true "Post payload"
// @Success 201 {object} CreatePostResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}

	post, err := h.postService.CreatePost(c.Request().Context(), p, service.PostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, CreatePostResponse{
		ID:     post.ID,
		Title:  post.Title,
		Body:   post.Body,
		UserID: post.AuthorID,
	})
}

// GetPost godoc
// @Summary Get post by id
// @Tags posts
// @Produce json
// @Security BasicAuth
// @Param id path int true "Post ID"
// @Success 200 {object} PostResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postService.GetPost(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// UpdatePost godoc
// @Summary Update post
// @Tags posts
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Post ID"
// @Param request body PostRequest true "Post payload"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}

	if _, err := h.postService.UpdatePost(c.Request().Context(), p, id, service.PostInput{
		Title: req.Title,
		Body:  req.Body,
	}); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Post id %d updated successfully.", id),
	})
}

// DeletePost godoc
// @Summary Delete post
// @Tags posts
// @Produce json
// @Security BasicAuth
// @Param id path int true "Post ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.postService.DeletePost(c.Request().Context(), p, id); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Post id %d deleted successfully.", id),
	})
}

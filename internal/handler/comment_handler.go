package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/service"
)

// CommentHandler handles comment endpoints nested under a post.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest represents a create or update payload.
type CommentRequest struct {
	Body string `json:"body"`
}

// CreateCommentResponse echoes the stored comment.
type CreateCommentResponse struct {
	ID       uint   `json:"id"`
	Body     string `json:"body"`
	PostID   uint   `json:"post_id"`
	AuthorID uint   `json:"author_id"`
}

// ListComments godoc
// @Summary List comments of a post
// @Tags comments
// @Produce json
// @Security BasicAuth
// @Param id path int true "Post ID"
// @Success 200 {array} CommentResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c echo.Context) error {
	postID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListComments(c.Request().Context(), postID)
	if err != nil {
		return respondError(err)
	}

	resp := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, toCommentResponse(&comments[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Post ID"
// @Param request body CommentRequest true "Comment payload"
// @Success 201 {object} CreateCommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	postID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}

	comment, err := h.commentService.CreateComment(c.Request().Context(), p, postID, service.CommentInput{Body: req.Body})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, CreateCommentResponse{
		ID:       comment.ID,
		Body:     comment.Body,
		PostID:   comment.PostID,
		AuthorID: comment.AuthorID,
	})
}

// GetComment godoc
// @Summary Get comment by id
// @Tags comments
// @Produce json
// @Security BasicAuth
// @Param id path int true "Post ID"
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} CommentResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments/{comment_id} [get]
func (h *CommentHandler) GetComment(c echo.Context) error {
	postID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	id, err := idParam(c, "comment_id")
	if err != nil {
		return err
	}

	comment, err := h.commentService.GetComment(c.Request().Context(), postID, id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// UpdateComment godoc
// @Summary Update comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Post ID"
// @Param comment_id path int true "Comment ID"
// @Param request body CommentRequest true "Comment payload"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments/{comment_id} [put]
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	postID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	id, err := idParam(c, "comment_id")
	if err != nil {
		return err
	}
	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}

	if _, err := h.commentService.UpdateComment(c.Request().Context(), p, postID, id, service.CommentInput{Body: req.Body}); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Comment id %d updated successfully.", id),
	})
}

// DeleteComment godoc
// @Summary Delete comment
// @Tags comments
// @Produce json
// @Security BasicAuth
// @Param id path int true "Post ID"
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments/{comment_id} [delete]
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	postID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	id, err := idParam(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.commentService.DeleteComment(c.Request().Context(), p, postID, id); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Comment id %d deleted successfully.", id),
	})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"blogapi/internal/auth"
	"blogapi/internal/errors"
	"blogapi/internal/model"
)

// CreatedLayout renders timestamps as DD-Mon-YYYY (HH:MM:SS).
const CreatedLayout = "02-Jan-2006 (15:04:05)"

// PostResponse is the JSON form of a post.
type PostResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Created  string `json:"created"`
	AuthorID uint   `json:"author_id"`
	Username string `json:"username"`
}

// CommentResponse is the JSON form of a comment.
type CommentResponse struct {
	ID       uint   `json:"id"`
	Body     string `json:"body"`
	Created  string `json:"created"`
	AuthorID uint   `json:"author_id"`
	PostID   uint   `json:"post_id"`
	Username string `json:"username"`
}

// MessageResponse confirms an update or delete.
type MessageResponse struct {
	Message string `json:"message"`
}

func toPostResponse(p *model.Post) PostResponse {
	return PostResponse{
		ID:       p.ID,
		Title:    p.Title,
		Body:     p.Body,
		Created:  p.Created.Format(CreatedLayout),
		AuthorID: p.AuthorID,
		Username: p.Author.Username,
	}
}

func toCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:       c.ID,
		Body:     c.Body,
		Created:  c.Created.Format(CreatedLayout),
		AuthorID: c.AuthorID,
		PostID:   c.PostID,
		Username: c.Author.Username,
	}
}

// respondError converts a service error into an echo HTTP error.
func respondError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func principal(c echo.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		return auth.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHORIZED",
		})
	}
	return p, nil
}

func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, badRequest("invalid id", "INVALID_ID")
	}
	return uint(id), nil
}

package router

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/errors"
	"blogapi/internal/handler"
)

type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authenticator auth.Authenticator,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
) {
	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/register", authHandler.Register)

	// Every other route requires HTTP Basic credentials. The middleware is
	// attached per route so unknown paths still answer 404.
	basicAuth := auth.BasicAuth(authenticator, cfg.AuthRealm)

	routes := []route{
		{http.MethodGet, "/auth/logout", authHandler.Logout},

		{http.MethodGet, "/posts", postHandler.ListPosts},
		{http.MethodPost, "/posts", postHandler.CreatePost},
		{http.MethodGet, "/posts/:id", postHandler.GetPost},
		{http.MethodPut, "/posts/:id", postHandler.UpdatePost},
		{http.MethodDelete, "/posts/:id", postHandler.DeletePost},

		{http.MethodGet, "/posts/:id/comments", commentHandler.ListComments},
		{http.MethodPost, "/posts/:id/comments", commentHandler.CreateComment},
		{http.MethodGet, "/posts/:id/comments/:comment_id", commentHandler.GetComment},
		{http.MethodPut, "/posts/:id/comments/:comment_id", commentHandler.UpdateComment},
		{http.MethodDelete, "/posts/:id/comments/:comment_id", commentHandler.DeleteComment},
	}
	for _, r := range routes {
		e.Add(r.method, r.path, r.handler, basicAuth)
	}
}

// ErrorHandler renders every error as an errors.ErrorResponse body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := errors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}

	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		status = he.Code
		switch msg := he.Message.(type) {
		case errors.ErrorResponse:
			body = msg
		case string:
			body = errors.ErrorResponse{Error: msg}
		default:
			body = errors.ErrorResponse{Error: http.StatusText(status)}
		}
		if body.Code == "" {
			body.Code = errors.CodeForStatus(status)
		}
		if status >= http.StatusInternalServerError && he.Internal != nil {
			c.Logger().Error(he.Internal)
		}
	} else {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

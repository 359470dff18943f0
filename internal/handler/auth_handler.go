package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse identifies the new user.
type RegisterResponse struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// LogoutResponse acknowledges a logout.
type LogoutResponse struct {
	Response string `json:"response"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} RegisterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Logout godoc
// @Summary Logout user
// @Description Basic auth keeps no session; the 401 makes browsers drop cached credentials.
// @Tags auth
// @Produce json
// @Security BasicAuth
// @Success 401 {object} LogoutResponse
// @Router /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusUnauthorized, LogoutResponse{
		Response: h.authService.Logout(c.Request().Context(), p),
	})
}

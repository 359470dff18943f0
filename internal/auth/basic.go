package auth

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperr "blogapi/internal/errors"
	"blogapi/internal/model"
)

const principalKey = "principal"

// Principal is the authenticated user of the current request.
type Principal struct {
	ID       uint
	Username string
}

// Owns reports whether the principal authored a resource.
func (p Principal) Owns(authorID uint) bool {
	return p.ID != 0 && p.ID == authorID
}

// Authenticator resolves basic-auth credentials to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

// BasicAuth returns middleware that verifies HTTP Basic credentials on every
// request and stores the resulting Principal on the echo context.
func BasicAuth(authenticator Authenticator, realm string) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: realm,
		Validator: func(username, password string, c echo.Context) (bool, error) {
			user, err := authenticator.Authenticate(c.Request().Context(), username, password)
			if apperr.IsKind(err, apperr.KindUnauthorized) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			c.Set(principalKey, Principal{ID: user.ID, Username: user.Username})
			return true, nil
		},
	})
}

// PrincipalFrom returns the Principal stored by BasicAuth.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}

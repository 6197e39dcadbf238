package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/epms/payroll-system/internal/core/auth"
	"github.com/epms/payroll-system/internal/core/domain"
)

// IdentityKey is the echo context key under which Auth stores the verified
// identity of the caller.
const IdentityKey = "identity"

// Auth verifies the bearer token and injects the resolved identity into the
// request context. Authentication always runs before any role check.
func Auth(codec *auth.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingToken.Error())
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingToken.Error())
			}

			identity, err := codec.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

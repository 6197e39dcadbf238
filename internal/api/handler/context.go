package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/epms/payroll-system/internal/api/middleware"
	"github.com/epms/payroll-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call when it is absent. Presence proves the
// middleware ran; a handler reached without it is a routing mistake, not a
// client error, but it is still rejected as unauthenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || identity.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

// NewExportAuthMiddleware gates the export endpoint behind a static bearer
// token shared with the backup tooling.
func NewExportAuthMiddleware(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			presented, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return c.JSON(http.StatusUnauthorized, apierror.NewSimple(http.StatusUnauthorized, "Missing bearer token"))
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				return c.JSON(http.StatusForbidden, apierror.NewSimple(http.StatusForbidden, "Invalid export token"))
			}
			return next(c)
		}
	}
}

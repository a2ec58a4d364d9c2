package handler

import (
	"net/http"
	"strconv"

	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

// HealthCheck backs the Docker Compose healthcheck.
func HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// pathID parses the named path parameter as an entity id.
func pathID(c echo.Context, name string) (int64, apierror.ErrorResponse) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError(name, "int")
	}
	return id, nil
}

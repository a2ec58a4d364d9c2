package handler

import (
	"net/http"
	"strconv"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/sqlite/repository"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type LogService interface {
	GetLogs(filter repository.LogFilter) ([]*contract.ActivityLogResponse, apierror.ErrorResponse)
	GetLogsCSV(filter repository.LogFilter) ([]byte, apierror.ErrorResponse)
}

type ExportService interface {
	Export() (*repository.ExportSnapshot, apierror.ErrorResponse)
}

type DefaultLogRoute struct {
	LogService    LogService
	ExportService ExportService
}

func NewLogDefault(logService LogService, exportService ExportService) *DefaultLogRoute {
	return &DefaultLogRoute{LogService: logService, ExportService: exportService}
}

func (h *DefaultLogRoute) GetLogs(c echo.Context) error {
	filter, perr := logFilterFromQuery(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	logs, apierr := h.LogService.GetLogs(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *DefaultLogRoute) GetLogsCSV(c echo.Context) error {
	filter, perr := logFilterFromQuery(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	body, apierr := h.LogService.GetLogsCSV(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="activity_logs.csv"`)
	return c.Blob(http.StatusOK, "text/csv", body)
}

func (h *DefaultLogRoute) Export(c echo.Context) error {
	snap, apierr := h.ExportService.Export()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, snap)
}

func logFilterFromQuery(c echo.Context) (repository.LogFilter, apierror.ErrorResponse) {
	filter := repository.LogFilter{
		EventType: c.QueryParam("event_type"),
		Level:     c.QueryParam("level"),
		Entity:    c.QueryParam("entity"),
	}

	for name, dest := range map[string]*int{
		"limit":  &filter.Limit,
		"offset": &filter.Offset,
	} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return filter, apierror.NewInvalidParamTypeError(name, "int")
		}
		*dest = parsed
	}
	return filter, nil
}

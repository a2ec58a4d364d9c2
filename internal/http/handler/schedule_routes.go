package handler

import (
	"net/http"
	"strconv"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ScheduleService interface {
	GetSchedules(activeOnly bool, shipID int64) ([]*contract.ScheduleResponse, apierror.ErrorResponse)
	GetScheduleByID(id int64) (*contract.ScheduleResponse, apierror.ErrorResponse)
	CreateSchedule(req *contract.ScheduleRequest) (*contract.ScheduleResponse, apierror.ErrorResponse)
	UpdateSchedule(id int64, req *contract.ScheduleRequest) (*contract.ScheduleResponse, apierror.ErrorResponse)
	DeleteSchedule(id int64) apierror.ErrorResponse
}

type DefaultScheduleRoute struct {
	ScheduleService ScheduleService
}

func NewScheduleDefault(scheduleService ScheduleService) *DefaultScheduleRoute {
	return &DefaultScheduleRoute{ScheduleService: scheduleService}
}

func (h *DefaultScheduleRoute) GetSchedules(c echo.Context) error {
	var shipID int64
	if raw := c.QueryParam("ship_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("ship_id", "int"))
		}
		shipID = parsed
	}

	schedules, err := h.ScheduleService.GetSchedules(c.QueryParam("active") == "true", shipID)
	if err != nil {
		return c.JSON(err.Code(), err)
	}
	return c.JSON(http.StatusOK, schedules)
}

func (h *DefaultScheduleRoute) GetSchedule(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	sch, apierr := h.ScheduleService.GetScheduleByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, sch)
}

func (h *DefaultScheduleRoute) CreateSchedule(c echo.Context) error {
	var req contract.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	sch, apierr := h.ScheduleService.CreateSchedule(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, sch)
}

func (h *DefaultScheduleRoute) UpdateSchedule(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	sch, apierr := h.ScheduleService.UpdateSchedule(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, sch)
}

func (h *DefaultScheduleRoute) DeleteSchedule(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := h.ScheduleService.DeleteSchedule(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

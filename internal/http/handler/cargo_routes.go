package handler

import (
	"net/http"
	"strconv"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CargoService interface {
	GetCargo(status string, shipID int64) ([]*contract.CargoResponse, apierror.ErrorResponse)
	GetCargoByID(id int64) (*contract.CargoResponse, apierror.ErrorResponse)
	CreateCargo(req *contract.CargoRequest) (*contract.CargoResponse, apierror.ErrorResponse)
	UpdateCargo(id int64, req *contract.CargoRequest) (*contract.CargoResponse, apierror.ErrorResponse)
	DeleteCargo(id int64) apierror.ErrorResponse
}

type DefaultCargoRoute struct {
	CargoService CargoService
}

func NewCargoDefault(cargoService CargoService) *DefaultCargoRoute {
	return &DefaultCargoRoute{CargoService: cargoService}
}

func (h *DefaultCargoRoute) GetCargo(c echo.Context) error {
	var shipID int64
	if raw := c.QueryParam("ship_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("ship_id", "int"))
		}
		shipID = parsed
	}

	cargo, apierr := h.CargoService.GetCargo(c.QueryParam("status"), shipID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, cargo)
}

func (h *DefaultCargoRoute) GetCargoItem(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	item, apierr := h.CargoService.GetCargoByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *DefaultCargoRoute) CreateCargo(c echo.Context) error {
	var req contract.CargoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	item, apierr := h.CargoService.CreateCargo(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *DefaultCargoRoute) UpdateCargo(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.CargoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	item, apierr := h.CargoService.UpdateCargo(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *DefaultCargoRoute) DeleteCargo(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := h.CargoService.DeleteCargo(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

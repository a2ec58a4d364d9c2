package handler

import (
	"net/http"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ShipTypeService interface {
	GetAllShipTypes() ([]*contract.ShipTypeResponse, apierror.ErrorResponse)
	GetShipTypeByID(id int64) (*contract.ShipTypeResponse, apierror.ErrorResponse)
	CreateShipType(req *contract.ShipTypeRequest) (*contract.ShipTypeResponse, apierror.ErrorResponse)
	UpdateShipType(id int64, req *contract.ShipTypeRequest) (*contract.ShipTypeResponse, apierror.ErrorResponse)
	DeleteShipType(id int64) apierror.ErrorResponse
}

type DefaultShipTypeRoute struct {
	TypeService ShipTypeService
}

func NewShipTypeDefault(typeService ShipTypeService) *DefaultShipTypeRoute {
	return &DefaultShipTypeRoute{TypeService: typeService}
}

func (t *DefaultShipTypeRoute) GetShipTypes(c echo.Context) error {
	types, err := t.TypeService.GetAllShipTypes()
	if err != nil {
		return c.JSON(err.Code(), err)
	}
	return c.JSON(http.StatusOK, types)
}

func (t *DefaultShipTypeRoute) GetShipType(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	st, apierr := t.TypeService.GetShipTypeByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, st)
}

func (t *DefaultShipTypeRoute) CreateShipType(c echo.Context) error {
	var req contract.ShipTypeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	st, apierr := t.TypeService.CreateShipType(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, st)
}

func (t *DefaultShipTypeRoute) UpdateShipType(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.ShipTypeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	st, apierr := t.TypeService.UpdateShipType(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, st)
}

func (t *DefaultShipTypeRoute) DeleteShipType(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := t.TypeService.DeleteShipType(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

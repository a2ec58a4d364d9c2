package handler

import (
	"net/http"
	"time"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ShipService interface {
	GetAllShips() ([]*contract.ShipResponse, apierror.ErrorResponse)
	GetShipByID(id int64) (*contract.ShipResponse, apierror.ErrorResponse)
	CreateShip(req *contract.ShipRequest) (*contract.ShipResponse, apierror.ErrorResponse)
	UpdateShip(id int64, req *contract.ShipRequest) (*contract.ShipResponse, apierror.ErrorResponse)
	DeleteShip(id int64) apierror.ErrorResponse
}

type VoyageService interface {
	Depart(shipID int64, req *contract.DepartRequest) (*contract.DepartResponse, apierror.ErrorResponse)
	ProcessArrivals(now time.Time) (*contract.ProcessArrivalsResponse, apierror.ErrorResponse)
}

type DefaultShipRoute struct {
	ShipService   ShipService
	VoyageService VoyageService
}

func NewShipDefault(shipService ShipService, voyageService VoyageService) *DefaultShipRoute {
	return &DefaultShipRoute{ShipService: shipService, VoyageService: voyageService}
}

func (h *DefaultShipRoute) GetShips(c echo.Context) error {
	ships, err := h.ShipService.GetAllShips()
	if err != nil {
		return c.JSON(err.Code(), err)
	}
	return c.JSON(http.StatusOK, ships)
}

func (h *DefaultShipRoute) GetShip(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	ship, apierr := h.ShipService.GetShipByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, ship)
}

func (h *DefaultShipRoute) CreateShip(c echo.Context) error {
	var req contract.ShipRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	ship, apierr := h.ShipService.CreateShip(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, ship)
}

func (h *DefaultShipRoute) UpdateShip(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.ShipRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	ship, apierr := h.ShipService.UpdateShip(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, ship)
}

func (h *DefaultShipRoute) DeleteShip(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := h.ShipService.DeleteShip(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultShipRoute) DepartShip(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.DepartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	departed, apierr := h.VoyageService.Depart(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, departed)
}

func (h *DefaultShipRoute) ProcessArrivals(c echo.Context) error {
	resp, apierr := h.VoyageService.ProcessArrivals(time.Now().UTC())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

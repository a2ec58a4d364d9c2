package handler

import (
	"net/http"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PortService interface {
	GetAllPorts() ([]*contract.PortResponse, apierror.ErrorResponse)
	GetPortByID(id int64) (*contract.PortResponse, apierror.ErrorResponse)
	CreatePort(req *contract.PortRequest) (*contract.PortResponse, apierror.ErrorResponse)
	UpdatePort(id int64, req *contract.PortRequest) (*contract.PortResponse, apierror.ErrorResponse)
	DeletePort(id int64) apierror.ErrorResponse
}

type DefaultPortRoute struct {
	PortService PortService
}

func NewPortDefault(portService PortService) *DefaultPortRoute {
	return &DefaultPortRoute{PortService: portService}
}

func (p *DefaultPortRoute) GetPorts(c echo.Context) error {
	ports, err := p.PortService.GetAllPorts()
	if err != nil {
		return c.JSON(err.Code(), err)
	}
	return c.JSON(http.StatusOK, ports)
}

func (p *DefaultPortRoute) GetPort(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	port, apierr := p.PortService.GetPortByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, port)
}

func (p *DefaultPortRoute) CreatePort(c echo.Context) error {
	var req contract.PortRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	port, apierr := p.PortService.CreatePort(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, port)
}

func (p *DefaultPortRoute) UpdatePort(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.PortRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	port, apierr := p.PortService.UpdatePort(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, port)
}

func (p *DefaultPortRoute) DeletePort(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := p.PortService.DeletePort(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

package handler

import (
	"net/http"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CompanyService interface {
	GetAllCompanies() ([]*contract.CompanyResponse, apierror.ErrorResponse)
	GetCompanyByID(id int64) (*contract.CompanyResponse, apierror.ErrorResponse)
	CreateCompany(req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
	UpdateCompany(id int64, req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
	DeleteCompany(id int64) apierror.ErrorResponse
	GetCompanyPorts(companyID int64) ([]*contract.CompanyPortResponse, apierror.ErrorResponse)
	AddCompanyPort(companyID int64, req *contract.CompanyPortRequest) apierror.ErrorResponse
	RemoveCompanyPort(companyID, portID int64) apierror.ErrorResponse
	GetCompanyShips(companyID int64) ([]*contract.ShipResponse, apierror.ErrorResponse)
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
}

func NewCompanyDefault(companyService CompanyService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{CompanyService: companyService}
}

func (h *DefaultCompanyRoute) GetCompanies(c echo.Context) error {
	companies, err := h.CompanyService.GetAllCompanies()
	if err != nil {
		return c.JSON(err.Code(), err)
	}
	return c.JSON(http.StatusOK, companies)
}

func (h *DefaultCompanyRoute) GetCompany(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	company, apierr := h.CompanyService.GetCompanyByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (h *DefaultCompanyRoute) CreateCompany(c echo.Context) error {
	var req contract.CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	company, apierr := h.CompanyService.CreateCompany(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, company)
}

func (h *DefaultCompanyRoute) UpdateCompany(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	company, apierr := h.CompanyService.UpdateCompany(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (h *DefaultCompanyRoute) DeleteCompany(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := h.CompanyService.DeleteCompany(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultCompanyRoute) GetCompanyPorts(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	ports, apierr := h.CompanyService.GetCompanyPorts(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, ports)
}

func (h *DefaultCompanyRoute) AddCompanyPort(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.CompanyPortRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := h.CompanyService.AddCompanyPort(id, &req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *DefaultCompanyRoute) RemoveCompanyPort(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}
	portID, perr := pathID(c, "portId")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := h.CompanyService.RemoveCompanyPort(id, portID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultCompanyRoute) GetCompanyShips(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	ships, apierr := h.CompanyService.GetCompanyShips(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, ships)
}

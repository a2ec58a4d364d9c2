package handler

import (
	"net/http"
	"strconv"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type VoyageRecordService interface {
	GetVoyages(shipID int64) ([]*contract.VoyageRecordResponse, apierror.ErrorResponse)
	GetVoyageByID(id int64) (*contract.VoyageRecordResponse, apierror.ErrorResponse)
	CreateVoyage(req *contract.VoyageRecordRequest) (*contract.VoyageRecordResponse, apierror.ErrorResponse)
	UpdateVoyage(id int64, req *contract.VoyageRecordRequest) (*contract.VoyageRecordResponse, apierror.ErrorResponse)
	DeleteVoyage(id int64) apierror.ErrorResponse
}

type DefaultVoyageRoute struct {
	RecordService VoyageRecordService
}

func NewVoyageDefault(recordService VoyageRecordService) *DefaultVoyageRoute {
	return &DefaultVoyageRoute{RecordService: recordService}
}

func (h *DefaultVoyageRoute) GetVoyages(c echo.Context) error {
	var shipID int64
	if raw := c.QueryParam("ship_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("ship_id", "int"))
		}
		shipID = parsed
	}

	voyages, apierr := h.RecordService.GetVoyages(shipID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, voyages)
}

func (h *DefaultVoyageRoute) GetVoyage(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	voyage, apierr := h.RecordService.GetVoyageByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, voyage)
}

func (h *DefaultVoyageRoute) CreateVoyage(c echo.Context) error {
	var req contract.VoyageRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	voyage, apierr := h.RecordService.CreateVoyage(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, voyage)
}

func (h *DefaultVoyageRoute) UpdateVoyage(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.VoyageRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	voyage, apierr := h.RecordService.UpdateVoyage(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, voyage)
}

func (h *DefaultVoyageRoute) DeleteVoyage(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := h.RecordService.DeleteVoyage(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

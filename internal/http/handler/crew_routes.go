package handler

import (
	"net/http"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CrewService interface {
	Assign(req *contract.AssignRequest) (*contract.AssignmentResponse, apierror.ErrorResponse)
	EndAssignment(req *contract.EndAssignmentRequest) apierror.ErrorResponse
	CrewForShip(shipID int64) ([]*contract.CrewMemberResponse, apierror.ErrorResponse)
	AssignmentForPerson(personID int64) (*contract.AssignmentResponse, apierror.ErrorResponse)
}

type DefaultCrewRoute struct {
	CrewService CrewService
}

func NewCrewDefault(crewService CrewService) *DefaultCrewRoute {
	return &DefaultCrewRoute{CrewService: crewService}
}

func (h *DefaultCrewRoute) Assign(c echo.Context) error {
	var req contract.AssignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	assignment, apierr := h.CrewService.Assign(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, assignment)
}

func (h *DefaultCrewRoute) EndAssignment(c echo.Context) error {
	var req contract.EndAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := h.CrewService.EndAssignment(&req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultCrewRoute) GetShipCrew(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	crew, apierr := h.CrewService.CrewForShip(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, crew)
}

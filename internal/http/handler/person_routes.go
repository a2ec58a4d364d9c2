package handler

import (
	"net/http"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PersonService interface {
	GetAllPeople() ([]*contract.PersonResponse, apierror.ErrorResponse)
	GetPersonByID(id int64) (*contract.PersonResponse, apierror.ErrorResponse)
	CreatePerson(req *contract.PersonRequest) (*contract.PersonResponse, apierror.ErrorResponse)
	UpdatePerson(id int64, req *contract.PersonRequest) (*contract.PersonResponse, apierror.ErrorResponse)
	DeletePerson(id int64) apierror.ErrorResponse
}

type DefaultPersonRoute struct {
	PersonService PersonService
	CrewService   CrewService
}

func NewPersonDefault(personService PersonService, crewService CrewService) *DefaultPersonRoute {
	return &DefaultPersonRoute{PersonService: personService, CrewService: crewService}
}

func (h *DefaultPersonRoute) GetPeople(c echo.Context) error {
	people, err := h.PersonService.GetAllPeople()
	if err != nil {
		return c.JSON(err.Code(), err)
	}
	return c.JSON(http.StatusOK, people)
}

func (h *DefaultPersonRoute) GetPerson(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	person, apierr := h.PersonService.GetPersonByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, person)
}

func (h *DefaultPersonRoute) CreatePerson(c echo.Context) error {
	var req contract.PersonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	person, apierr := h.PersonService.CreatePerson(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, person)
}

func (h *DefaultPersonRoute) UpdatePerson(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.PersonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	person, apierr := h.PersonService.UpdatePerson(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, person)
}

func (h *DefaultPersonRoute) DeletePerson(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	if apierr := h.PersonService.DeletePerson(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

// GetAssignment serves the person's open assignment, or 204 when off duty.
func (h *DefaultPersonRoute) GetAssignment(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	assignment, apierr := h.CrewService.AssignmentForPerson(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	if assignment == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, assignment)
}

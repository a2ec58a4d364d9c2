package service

import (
	"errors"
	"net/http"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/domain/sqlite/repository"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CrewRepository interface {
	Assign(a *entity.CrewAssignment) error
	EndActiveByPerson(personID int64, endUTC string) (bool, error)
	FindActiveByPerson(personID int64) (*entity.CrewAssignment, error)
	FindActiveByShip(shipID int64) ([]*entity.CrewAssignment, error)
	FindActiveMembersByShip(shipID int64) ([]*repository.CrewMember, error)
	CountByShip(shipID int64) (int64, error)
	CountByPerson(personID int64) (int64, error)
}

// specialistByBase maps a ship type family onto the rank that must be aboard
// before the ship may depart. Passenger ships only need a captain.
var specialistByBase = map[string]string{
	"cargo":    entity.RankEngineer,
	"military": entity.RankMilitary,
	"research": entity.RankResearcher,
}

type DefaultCrewService struct {
	CrewRepo   CrewRepository
	PersonRepo PersonRepository
	ShipRepo   ShipRepository
	Validate   *validator.Validate
	Activity   *ActivityRecorder
}

func NewCrewService(
	crewRepo CrewRepository,
	personRepo PersonRepository,
	shipRepo ShipRepository,
	validate *validator.Validate,
	activity *ActivityRecorder,
) *DefaultCrewService {
	return &DefaultCrewService{
		CrewRepo:   crewRepo,
		PersonRepo: personRepo,
		ShipRepo:   shipRepo,
		Validate:   validate,
		Activity:   activity,
	}
}

// Assign opens a crew assignment. The partial unique index on open rows makes
// the insert atomic; a concurrent second assignment for the same person comes
// back as a 409, never as two open rows.
func (s *DefaultCrewService) Assign(req *contract.AssignRequest) (*contract.AssignmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	person, err := s.PersonRepo.FindByID(req.PersonID)
	if err != nil {
		log.Errorf("failed to fetch person: %v", err)
		return nil, apierror.InternalServerError
	}
	if person == nil {
		return nil, apierror.NewNotFound("person", req.PersonID)
	}
	if !person.Active {
		return nil, apierror.NewConflict("person %q is inactive", person.FullName)
	}

	ship, err := s.ShipRepo.FindByID(req.ShipID)
	if err != nil {
		log.Errorf("failed to fetch ship: %v", err)
		return nil, apierror.InternalServerError
	}
	if ship == nil {
		return nil, apierror.NewNotFound("ship", req.ShipID)
	}

	start := req.StartUTC
	if start == "" {
		start = utils.FormatTime(utils.NowUTC())
	}

	assignment := &entity.CrewAssignment{
		PersonID: req.PersonID,
		ShipID:   req.ShipID,
		StartUTC: start,
	}
	if err := s.CrewRepo.Assign(assignment); err != nil {
		if errors.Is(err, repository.ErrActiveAssignmentExists) {
			return nil, apierror.NewConflict("person %q already has an active assignment", person.FullName)
		}
		log.Errorf("failed to create assignment: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("crew.assigned", "crew_assignment", assignment.ID,
		"%s %q assigned to ship %q", person.Rank, person.FullName, ship.Name)
	return toAssignmentResponse(assignment), nil
}

// EndAssignment closes the person's open assignment.
func (s *DefaultCrewService) EndAssignment(req *contract.EndAssignmentRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	person, err := s.PersonRepo.FindByID(req.PersonID)
	if err != nil {
		log.Errorf("failed to fetch person: %v", err)
		return apierror.InternalServerError
	}
	if person == nil {
		return apierror.NewNotFound("person", req.PersonID)
	}

	closed, err := s.CrewRepo.EndActiveByPerson(req.PersonID, req.EndUTC)
	if err != nil {
		log.Errorf("failed to end assignment: %v", err)
		return apierror.InternalServerError
	}
	if !closed {
		return apierror.NewSimple(http.StatusNotFound, "person %q has no active assignment", person.FullName)
	}

	s.Activity.Info("crew.ended", "person", req.PersonID,
		"assignment of %q ended at %s", person.FullName, req.EndUTC)
	return nil
}

// CrewForShip lists the ship's active crew joined with person details.
func (s *DefaultCrewService) CrewForShip(shipID int64) ([]*contract.CrewMemberResponse, apierror.ErrorResponse) {
	ship, err := s.ShipRepo.FindByID(shipID)
	if err != nil {
		log.Errorf("failed to fetch ship: %v", err)
		return nil, apierror.InternalServerError
	}
	if ship == nil {
		return nil, apierror.NewNotFound("ship", shipID)
	}

	members, err := s.CrewRepo.FindActiveMembersByShip(shipID)
	if err != nil {
		log.Errorf("failed to fetch crew for ship: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CrewMemberResponse, len(members))
	for i, m := range members {
		resp[i] = &contract.CrewMemberResponse{
			ID:       m.Assignment.ID,
			PersonID: m.Assignment.PersonID,
			ShipID:   m.Assignment.ShipID,
			StartUTC: m.Assignment.StartUTC,
			EndUTC:   m.Assignment.EndUTC,
			FullName: m.Person.FullName,
			Rank:     m.Person.Rank,
		}
	}
	return resp, nil
}

// AssignmentForPerson returns the person's open assignment, nil when none.
func (s *DefaultCrewService) AssignmentForPerson(personID int64) (*contract.AssignmentResponse, apierror.ErrorResponse) {
	person, err := s.PersonRepo.FindByID(personID)
	if err != nil {
		log.Errorf("failed to fetch person: %v", err)
		return nil, apierror.InternalServerError
	}
	if person == nil {
		return nil, apierror.NewNotFound("person", personID)
	}

	assignment, err := s.CrewRepo.FindActiveByPerson(personID)
	if err != nil {
		log.Errorf("failed to fetch assignment: %v", err)
		return nil, apierror.InternalServerError
	}
	if assignment == nil {
		return nil, nil
	}
	return toAssignmentResponse(assignment), nil
}

// CanDepart checks the crewing preconditions for departure, in order:
// the ship must have crew at all, a captain among them, and the specialist
// rank its type family demands.
func (s *DefaultCrewService) CanDepart(ship *entity.Ship) apierror.ErrorResponse {
	members, err := s.CrewRepo.FindActiveMembersByShip(ship.ID)
	if err != nil {
		log.Errorf("failed to fetch crew for ship: %v", err)
		return apierror.InternalServerError
	}

	if len(members) == 0 {
		return apierror.NewConflict("ship %q has no crew aboard", ship.Name)
	}

	ranks := make(map[string]bool, len(members))
	for _, m := range members {
		ranks[m.Person.Rank] = true
	}

	if !ranks[entity.RankCaptain] {
		return apierror.NewConflict("ship %q has no captain aboard", ship.Name)
	}

	specialist := specialistByBase[entity.TypeBaseOf(ship.Type)]
	if specialist != "" && !ranks[specialist] {
		return apierror.NewConflict("ship %q requires a %s aboard", ship.Name, specialist)
	}
	return nil
}

func toAssignmentResponse(a *entity.CrewAssignment) *contract.AssignmentResponse {
	return &contract.AssignmentResponse{
		ID:       a.ID,
		PersonID: a.PersonID,
		ShipID:   a.ShipID,
		StartUTC: a.StartUTC,
		EndUTC:   a.EndUTC,
	}
}

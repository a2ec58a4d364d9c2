package service

import (
	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PersonRepository interface {
	FindAll() ([]*entity.Person, error)
	FindByID(id int64) (*entity.Person, error)
	Save(person *entity.Person) error
	Delete(person *entity.Person) error
}

type DefaultPersonService struct {
	PersonRepo PersonRepository
	CrewRepo   CrewRepository
	Validate   *validator.Validate
	Activity   *ActivityRecorder
}

func NewPersonService(
	personRepo PersonRepository,
	crewRepo CrewRepository,
	validate *validator.Validate,
	activity *ActivityRecorder,
) *DefaultPersonService {
	return &DefaultPersonService{
		PersonRepo: personRepo,
		CrewRepo:   crewRepo,
		Validate:   validate,
		Activity:   activity,
	}
}

func (s *DefaultPersonService) GetAllPeople() ([]*contract.PersonResponse, apierror.ErrorResponse) {
	people, err := s.PersonRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch people: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.PersonResponse, len(people))
	for i, p := range people {
		resp[i] = toPersonResponse(p)
	}
	return resp, nil
}

func (s *DefaultPersonService) GetPersonByID(id int64) (*contract.PersonResponse, apierror.ErrorResponse) {
	person, err := s.PersonRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch person: %v", err)
		return nil, apierror.InternalServerError
	}
	if person == nil {
		return nil, apierror.NewNotFound("person", id)
	}
	return toPersonResponse(person), nil
}

func (s *DefaultPersonService) CreatePerson(req *contract.PersonRequest) (*contract.PersonResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	rank, _ := entity.NormalizeRank(req.Rank)
	person := &entity.Person{
		FullName: req.FullName,
		Rank:     rank,
		Active:   req.Active == nil || *req.Active,
	}
	if err := s.PersonRepo.Save(person); err != nil {
		log.Errorf("failed to save person: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("person.created", "person", person.ID, "person %q created as %s", person.FullName, person.Rank)
	return toPersonResponse(person), nil
}

func (s *DefaultPersonService) UpdatePerson(id int64, req *contract.PersonRequest) (*contract.PersonResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	person, err := s.PersonRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch person: %v", err)
		return nil, apierror.InternalServerError
	}
	if person == nil {
		return nil, apierror.NewNotFound("person", id)
	}

	rank, _ := entity.NormalizeRank(req.Rank)
	person.FullName = req.FullName
	person.Rank = rank
	if req.Active != nil {
		person.Active = *req.Active
	}

	if err := s.PersonRepo.Save(person); err != nil {
		log.Errorf("failed to update person: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("person.updated", "person", person.ID, "person %q updated", person.FullName)
	return toPersonResponse(person), nil
}

func (s *DefaultPersonService) DeletePerson(id int64) apierror.ErrorResponse {
	person, err := s.PersonRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch person: %v", err)
		return apierror.InternalServerError
	}
	if person == nil {
		return apierror.NewNotFound("person", id)
	}

	// Assignment rows are the audit trail, so any history blocks deletion.
	assignments, err := s.CrewRepo.CountByPerson(id)
	if err != nil {
		log.Errorf("failed to count assignments for person: %v", err)
		return apierror.InternalServerError
	}
	if assignments > 0 {
		return apierror.NewConflict("person %q has %d crew assignment(s) on record", person.FullName, assignments)
	}

	if err := s.PersonRepo.Delete(person); err != nil {
		log.Errorf("failed to delete person: %v", err)
		return apierror.InternalServerError
	}

	s.Activity.Info("person.deleted", "person", id, "person %q deleted", person.FullName)
	return nil
}

func toPersonResponse(p *entity.Person) *contract.PersonResponse {
	return &contract.PersonResponse{
		ID:       p.ID,
		FullName: p.FullName,
		Rank:     p.Rank,
		Active:   p.Active,
	}
}

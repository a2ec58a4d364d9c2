package service

import (
	"strings"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ShipTypeRepository interface {
	FindAll() ([]*entity.ShipType, error)
	FindByID(id int64) (*entity.ShipType, error)
	FindByCode(code string) (*entity.ShipType, error)
	Save(st *entity.ShipType) error
	Delete(st *entity.ShipType) error
}

type DefaultShipTypeService struct {
	TypeRepo ShipTypeRepository
	ShipRepo ShipRepository
	Validate *validator.Validate
	Activity *ActivityRecorder
}

func NewShipTypeService(
	typeRepo ShipTypeRepository,
	shipRepo ShipRepository,
	validate *validator.Validate,
	activity *ActivityRecorder,
) *DefaultShipTypeService {
	return &DefaultShipTypeService{
		TypeRepo: typeRepo,
		ShipRepo: shipRepo,
		Validate: validate,
		Activity: activity,
	}
}

func (s *DefaultShipTypeService) GetAllShipTypes() ([]*contract.ShipTypeResponse, apierror.ErrorResponse) {
	types, err := s.TypeRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch ship types: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ShipTypeResponse, len(types))
	for i, st := range types {
		resp[i] = toShipTypeResponse(st)
	}
	return resp, nil
}

func (s *DefaultShipTypeService) GetShipTypeByID(id int64) (*contract.ShipTypeResponse, apierror.ErrorResponse) {
	st, err := s.TypeRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch ship type: %v", err)
		return nil, apierror.InternalServerError
	}
	if st == nil {
		return nil, apierror.NewNotFound("ship type", id)
	}
	return toShipTypeResponse(st), nil
}

func (s *DefaultShipTypeService) CreateShipType(req *contract.ShipTypeRequest) (*contract.ShipTypeResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	code := strings.ToLower(req.Code)
	existing, err := s.TypeRepo.FindByCode(code)
	if err != nil {
		log.Errorf("failed to look up ship type code: %v", err)
		return nil, apierror.InternalServerError
	}
	if existing != nil {
		return nil, apierror.NewConflict("ship type code %q already exists", code)
	}

	st := &entity.ShipType{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.TypeRepo.Save(st); err != nil {
		log.Errorf("failed to save ship type: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("ship_type.created", "ship_type", st.ID, "ship type %q created", st.Code)
	return toShipTypeResponse(st), nil
}

func (s *DefaultShipTypeService) UpdateShipType(id int64, req *contract.ShipTypeRequest) (*contract.ShipTypeResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	st, err := s.TypeRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch ship type: %v", err)
		return nil, apierror.InternalServerError
	}
	if st == nil {
		return nil, apierror.NewNotFound("ship type", id)
	}

	// Changing the code would orphan the `type` value stored on ships.
	if !strings.EqualFold(req.Code, st.Code) {
		return nil, apierror.NewValidation("ship type code is immutable")
	}

	st.Name = req.Name
	st.Description = req.Description

	if err := s.TypeRepo.Save(st); err != nil {
		log.Errorf("failed to update ship type: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("ship_type.updated", "ship_type", st.ID, "ship type %q updated", st.Code)
	return toShipTypeResponse(st), nil
}

func (s *DefaultShipTypeService) DeleteShipType(id int64) apierror.ErrorResponse {
	st, err := s.TypeRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch ship type: %v", err)
		return apierror.InternalServerError
	}
	if st == nil {
		return apierror.NewNotFound("ship type", id)
	}

	ships, err := s.ShipRepo.CountByTypeCode(st.Code)
	if err != nil {
		log.Errorf("failed to count ships for type: %v", err)
		return apierror.InternalServerError
	}
	if ships > 0 {
		return apierror.NewConflict("ship type %q is referenced by %d ship(s)", st.Code, ships)
	}

	if err := s.TypeRepo.Delete(st); err != nil {
		log.Errorf("failed to delete ship type: %v", err)
		return apierror.InternalServerError
	}

	s.Activity.Info("ship_type.deleted", "ship_type", id, "ship type %q deleted", st.Code)
	return nil
}

func toShipTypeResponse(st *entity.ShipType) *contract.ShipTypeResponse {
	return &contract.ShipTypeResponse{
		ID:          st.ID,
		Code:        st.Code,
		Name:        st.Name,
		Description: st.Description,
	}
}

package service

import (
	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PortRepository interface {
	FindAll() ([]*entity.Port, error)
	FindByID(id int64) (*entity.Port, error)
	Save(port *entity.Port) error
	Delete(port *entity.Port) error
}

type DefaultPortService struct {
	PortRepo    PortRepository
	ShipRepo    ShipRepository
	CompanyRepo CompanyRepository
	Validate    *validator.Validate
	Activity    *ActivityRecorder
}

func NewPortService(
	portRepo PortRepository,
	shipRepo ShipRepository,
	companyRepo CompanyRepository,
	validate *validator.Validate,
	activity *ActivityRecorder,
) *DefaultPortService {
	return &DefaultPortService{
		PortRepo:    portRepo,
		ShipRepo:    shipRepo,
		CompanyRepo: companyRepo,
		Validate:    validate,
		Activity:    activity,
	}
}

func (s *DefaultPortService) GetAllPorts() ([]*contract.PortResponse, apierror.ErrorResponse) {
	ports, err := s.PortRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch ports: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.PortResponse, len(ports))
	for i, p := range ports {
		resp[i] = toPortResponse(p)
	}
	return resp, nil
}

func (s *DefaultPortService) GetPortByID(id int64) (*contract.PortResponse, apierror.ErrorResponse) {
	port, err := s.PortRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch port: %v", err)
		return nil, apierror.InternalServerError
	}
	if port == nil {
		return nil, apierror.NewNotFound("port", id)
	}
	return toPortResponse(port), nil
}

func (s *DefaultPortService) CreatePort(req *contract.PortRequest) (*contract.PortResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	port := &entity.Port{
		Name:   req.Name,
		Region: req.Region,
		Lat:    req.Lat,
		Lon:    req.Lon,
	}
	if err := s.PortRepo.Save(port); err != nil {
		log.Errorf("failed to save port: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("port.created", "port", port.ID, "port %q created", port.Name)
	return toPortResponse(port), nil
}

func (s *DefaultPortService) UpdatePort(id int64, req *contract.PortRequest) (*contract.PortResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	port, err := s.PortRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch port: %v", err)
		return nil, apierror.InternalServerError
	}
	if port == nil {
		return nil, apierror.NewNotFound("port", id)
	}

	port.Name = req.Name
	port.Region = req.Region
	port.Lat = req.Lat
	port.Lon = req.Lon

	if err := s.PortRepo.Save(port); err != nil {
		log.Errorf("failed to update port: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("port.updated", "port", port.ID, "port %q updated", port.Name)
	return toPortResponse(port), nil
}

func (s *DefaultPortService) DeletePort(id int64) apierror.ErrorResponse {
	port, err := s.PortRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch port: %v", err)
		return apierror.InternalServerError
	}
	if port == nil {
		return apierror.NewNotFound("port", id)
	}

	ships, err := s.ShipRepo.CountByPort(id)
	if err != nil {
		log.Errorf("failed to count ships for port: %v", err)
		return apierror.InternalServerError
	}
	if ships > 0 {
		return apierror.NewConflict("port %q is referenced by %d ship(s)", port.Name, ships)
	}

	companies, err := s.CompanyRepo.CountAssociationsByPort(id)
	if err != nil {
		log.Errorf("failed to count company links for port: %v", err)
		return apierror.InternalServerError
	}
	if companies > 0 {
		return apierror.NewConflict("port %q is referenced by %d company association(s)", port.Name, companies)
	}

	if err := s.PortRepo.Delete(port); err != nil {
		log.Errorf("failed to delete port: %v", err)
		return apierror.InternalServerError
	}

	s.Activity.Info("port.deleted", "port", id, "port %q deleted", port.Name)
	return nil
}

func toPortResponse(p *entity.Port) *contract.PortResponse {
	return &contract.PortResponse{
		ID:     p.ID,
		Name:   p.Name,
		Region: p.Region,
		Lat:    p.Lat,
		Lon:    p.Lon,
	}
}

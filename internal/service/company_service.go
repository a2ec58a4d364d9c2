package service

import (
	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CompanyRepository interface {
	FindAll() ([]*entity.Company, error)
	FindByID(id int64) (*entity.Company, error)
	Save(company *entity.Company) error
	Delete(company *entity.Company) error
	FindAssociations(companyID int64) ([]*entity.CompanyPort, error)
	FindAssociation(companyID, portID int64) (*entity.CompanyPort, error)
	SaveAssociation(assoc *entity.CompanyPort) error
	DeleteAssociation(assoc *entity.CompanyPort) error
	CountAssociationsByPort(portID int64) (int64, error)
}

type DefaultCompanyService struct {
	CompanyRepo CompanyRepository
	PortRepo    PortRepository
	ShipRepo    ShipRepository
	Validate    *validator.Validate
	Activity    *ActivityRecorder
}

func NewCompanyService(
	companyRepo CompanyRepository,
	portRepo PortRepository,
	shipRepo ShipRepository,
	validate *validator.Validate,
	activity *ActivityRecorder,
) *DefaultCompanyService {
	return &DefaultCompanyService{
		CompanyRepo: companyRepo,
		PortRepo:    portRepo,
		ShipRepo:    shipRepo,
		Validate:    validate,
		Activity:    activity,
	}
}

func (s *DefaultCompanyService) GetAllCompanies() ([]*contract.CompanyResponse, apierror.ErrorResponse) {
	companies, err := s.CompanyRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch companies: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = &contract.CompanyResponse{ID: c.ID, Name: c.Name}
	}
	return resp, nil
}

func (s *DefaultCompanyService) GetCompanyByID(id int64) (*contract.CompanyResponse, apierror.ErrorResponse) {
	company, err := s.CompanyRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}
	if company == nil {
		return nil, apierror.NewNotFound("company", id)
	}
	return &contract.CompanyResponse{ID: company.ID, Name: company.Name}, nil
}

func (s *DefaultCompanyService) CreateCompany(req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company := &entity.Company{Name: req.Name}
	if err := s.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to save company: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("company.created", "company", company.ID, "company %q created", company.Name)
	return &contract.CompanyResponse{ID: company.ID, Name: company.Name}, nil
}

func (s *DefaultCompanyService) UpdateCompany(id int64, req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, err := s.CompanyRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}
	if company == nil {
		return nil, apierror.NewNotFound("company", id)
	}

	company.Name = req.Name
	if err := s.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to update company: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("company.updated", "company", company.ID, "company %q updated", company.Name)
	return &contract.CompanyResponse{ID: company.ID, Name: company.Name}, nil
}

func (s *DefaultCompanyService) DeleteCompany(id int64) apierror.ErrorResponse {
	company, err := s.CompanyRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return apierror.InternalServerError
	}
	if company == nil {
		return apierror.NewNotFound("company", id)
	}

	ships, err := s.ShipRepo.CountByCompany(id)
	if err != nil {
		log.Errorf("failed to count ships for company: %v", err)
		return apierror.InternalServerError
	}
	if ships > 0 {
		return apierror.NewConflict("company %q is referenced by %d ship(s)", company.Name, ships)
	}

	if err := s.CompanyRepo.Delete(company); err != nil {
		log.Errorf("failed to delete company: %v", err)
		return apierror.InternalServerError
	}

	s.Activity.Info("company.deleted", "company", id, "company %q deleted", company.Name)
	return nil
}

// GetCompanyPorts returns the company's ports joined with the HQ flag.
func (s *DefaultCompanyService) GetCompanyPorts(companyID int64) ([]*contract.CompanyPortResponse, apierror.ErrorResponse) {
	company, err := s.CompanyRepo.FindByID(companyID)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}
	if company == nil {
		return nil, apierror.NewNotFound("company", companyID)
	}

	assocs, err := s.CompanyRepo.FindAssociations(companyID)
	if err != nil {
		log.Errorf("failed to fetch company ports: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CompanyPortResponse, 0, len(assocs))
	for _, a := range assocs {
		port, err := s.PortRepo.FindByID(a.PortID)
		if err != nil {
			log.Errorf("failed to fetch port %d: %v", a.PortID, err)
			return nil, apierror.InternalServerError
		}
		if port == nil {
			continue
		}
		resp = append(resp, &contract.CompanyPortResponse{
			PortID: port.ID,
			Name:   port.Name,
			Region: port.Region,
			Lat:    port.Lat,
			Lon:    port.Lon,
			IsHQ:   a.IsHQ,
		})
	}
	return resp, nil
}

// AddCompanyPort links a port to the company. Linking with is_hq=true
// demotes the previous HQ.
func (s *DefaultCompanyService) AddCompanyPort(companyID int64, req *contract.CompanyPortRequest) apierror.ErrorResponse {
	if valerr := s.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	company, err := s.CompanyRepo.FindByID(companyID)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return apierror.InternalServerError
	}
	if company == nil {
		return apierror.NewNotFound("company", companyID)
	}

	port, err := s.PortRepo.FindByID(req.PortID)
	if err != nil {
		log.Errorf("failed to fetch port: %v", err)
		return apierror.InternalServerError
	}
	if port == nil {
		return apierror.NewNotFound("port", req.PortID)
	}

	existing, err := s.CompanyRepo.FindAssociation(companyID, req.PortID)
	if err != nil {
		log.Errorf("failed to look up company port: %v", err)
		return apierror.InternalServerError
	}

	assoc := existing
	if assoc == nil {
		assoc = &entity.CompanyPort{CompanyID: companyID, PortID: req.PortID}
	}
	assoc.IsHQ = req.IsHQ

	if err := s.CompanyRepo.SaveAssociation(assoc); err != nil {
		log.Errorf("failed to save company port: %v", err)
		return apierror.InternalServerError
	}

	s.Activity.Info("company.port_added", "company", companyID,
		"port %q linked to company %q (hq=%t)", port.Name, company.Name, req.IsHQ)
	return nil
}

func (s *DefaultCompanyService) RemoveCompanyPort(companyID, portID int64) apierror.ErrorResponse {
	assoc, err := s.CompanyRepo.FindAssociation(companyID, portID)
	if err != nil {
		log.Errorf("failed to look up company port: %v", err)
		return apierror.InternalServerError
	}
	if assoc == nil {
		return apierror.NotFoundError
	}

	if err := s.CompanyRepo.DeleteAssociation(assoc); err != nil {
		log.Errorf("failed to delete company port: %v", err)
		return apierror.InternalServerError
	}

	s.Activity.Info("company.port_removed", "company", companyID,
		"port %d unlinked from company %d", portID, companyID)
	return nil
}

// GetCompanyShips lists the ships a company operates.
func (s *DefaultCompanyService) GetCompanyShips(companyID int64) ([]*contract.ShipResponse, apierror.ErrorResponse) {
	company, err := s.CompanyRepo.FindByID(companyID)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}
	if company == nil {
		return nil, apierror.NewNotFound("company", companyID)
	}

	ships, err := s.ShipRepo.FindByCompany(companyID)
	if err != nil {
		log.Errorf("failed to fetch company ships: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ShipResponse, len(ships))
	for i, ship := range ships {
		resp[i] = toShipResponse(ship)
	}
	return resp, nil
}

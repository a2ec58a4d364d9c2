package service

import (
	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ShipRepository interface {
	FindAll() ([]*entity.Ship, error)
	FindByID(id int64) (*entity.Ship, error)
	FindByCompany(companyID int64) ([]*entity.Ship, error)
	FindDeparted() ([]*entity.Ship, error)
	Save(ship *entity.Ship) error
	Delete(ship *entity.Ship) error
	CountByPort(portID int64) (int64, error)
	CountByCompany(companyID int64) (int64, error)
	CountByTypeCode(code string) (int64, error)
}

// Departer runs the server-computed departure. The ship service delegates to
// it when a legacy PUT flips status to departed, so both paths share the same
// preconditions and effects. It takes the ship struct so pending field edits
// commit together with the voyage transition.
type Departer interface {
	DepartShip(ship *entity.Ship, req *contract.DepartRequest) (*contract.DepartResponse, apierror.ErrorResponse)
}

type DefaultShipService struct {
	ShipRepo  ShipRepository
	CrewRepo  CrewRepository
	CargoRepo CargoRepository
	Departer  Departer
	Validate  *validator.Validate
	Activity  *ActivityRecorder
}

func NewShipService(
	shipRepo ShipRepository,
	crewRepo CrewRepository,
	cargoRepo CargoRepository,
	departer Departer,
	validate *validator.Validate,
	activity *ActivityRecorder,
) *DefaultShipService {
	return &DefaultShipService{
		ShipRepo:  shipRepo,
		CrewRepo:  crewRepo,
		CargoRepo: cargoRepo,
		Departer:  departer,
		Validate:  validate,
		Activity:  activity,
	}
}

func (s *DefaultShipService) GetAllShips() ([]*contract.ShipResponse, apierror.ErrorResponse) {
	ships, err := s.ShipRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch ships: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ShipResponse, len(ships))
	for i, ship := range ships {
		resp[i] = toShipResponse(ship)
	}
	return resp, nil
}

func (s *DefaultShipService) GetShipByID(id int64) (*contract.ShipResponse, apierror.ErrorResponse) {
	ship, err := s.ShipRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch ship: %v", err)
		return nil, apierror.InternalServerError
	}
	if ship == nil {
		return nil, apierror.NewNotFound("ship", id)
	}
	return toShipResponse(ship), nil
}

func (s *DefaultShipService) CreateShip(req *contract.ShipRequest) (*contract.ShipResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	status := req.Status
	if status == "" {
		status = entity.ShipStatusDocked
	}
	status, _ = entity.NormalizeShipStatus(status)
	if status == entity.ShipStatusDeparted {
		return nil, apierror.NewValidation("a new ship cannot start departed; use the depart operation")
	}

	ship := &entity.Ship{
		Name:       req.Name,
		Type:       defaultString(req.Type, "cargo"),
		Country:    defaultString(req.Country, "Unknown"),
		PortID:     req.PortID,
		Status:     status,
		CompanyID:  req.CompanyID,
		SpeedKnots: defaultFloat(req.SpeedKnots, 20),
	}
	if err := s.ShipRepo.Save(ship); err != nil {
		log.Errorf("failed to save ship: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("ship.created", "ship", ship.ID, "ship %q created", ship.Name)
	return toShipResponse(ship), nil
}

// UpdateShip is the full-replace PUT. Flipping status to departed goes
// through the departure preconditions; the voyage numbers are recomputed
// server-side so the stored eta/distance always agree with the port
// coordinates and speed, whatever the client sent.
func (s *DefaultShipService) UpdateShip(id int64, req *contract.ShipRequest) (*contract.ShipResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	ship, err := s.ShipRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch ship: %v", err)
		return nil, apierror.InternalServerError
	}
	if ship == nil {
		return nil, apierror.NewNotFound("ship", id)
	}

	newStatus := ship.Status
	if req.Status != "" {
		newStatus, _ = entity.NormalizeShipStatus(req.Status)
	}

	departing := newStatus == entity.ShipStatusDeparted && !ship.OnVoyage()
	docking := newStatus != entity.ShipStatusDeparted && ship.OnVoyage()

	ship.Name = req.Name
	ship.Type = defaultString(req.Type, ship.Type)
	ship.Country = defaultString(req.Country, ship.Country)
	ship.CompanyID = req.CompanyID
	if req.SpeedKnots > 0 {
		ship.SpeedKnots = req.SpeedKnots
	}

	if departing {
		dest := req.DestinationPortID
		if dest == 0 {
			dest = req.PortID
		}
		departed, apierr := s.Departer.DepartShip(ship, &contract.DepartRequest{
			DestinationPortID: dest,
			DepartedAt:        req.DepartedAt,
			SpeedKnots:        req.SpeedKnots,
		})
		if apierr != nil {
			return nil, apierr
		}
		return departed.Ship, nil
	}

	if !ship.OnVoyage() || docking {
		ship.PortID = req.PortID
	}
	ship.Status = newStatus

	if docking {
		// Manual override: docking by hand abandons the tracked voyage.
		ship.DepartedAt = ""
		ship.ETA = ""
		ship.DestinationPortID = 0
		ship.VoyageDistanceKm = 0
		s.Activity.Warn("ship.voyage_aborted", "ship", ship.ID,
			"ship %q manually set to %s mid-voyage", ship.Name, newStatus)
	}

	if err := s.ShipRepo.Save(ship); err != nil {
		log.Errorf("failed to update ship: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("ship.updated", "ship", ship.ID, "ship %q updated", ship.Name)
	return toShipResponse(ship), nil
}

func (s *DefaultShipService) DeleteShip(id int64) apierror.ErrorResponse {
	ship, err := s.ShipRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch ship: %v", err)
		return apierror.InternalServerError
	}
	if ship == nil {
		return apierror.NewNotFound("ship", id)
	}

	crew, err := s.CrewRepo.CountByShip(id)
	if err != nil {
		log.Errorf("failed to count crew for ship: %v", err)
		return apierror.InternalServerError
	}
	if crew > 0 {
		return apierror.NewConflict("ship %q has %d crew assignment(s) on record", ship.Name, crew)
	}

	aboard, err := s.CargoRepo.CountAboard(id)
	if err != nil {
		log.Errorf("failed to count cargo for ship: %v", err)
		return apierror.InternalServerError
	}
	if aboard > 0 {
		return apierror.NewConflict("ship %q still carries %d cargo item(s)", ship.Name, aboard)
	}

	if err := s.ShipRepo.Delete(ship); err != nil {
		log.Errorf("failed to delete ship: %v", err)
		return apierror.InternalServerError
	}

	s.Activity.Info("ship.deleted", "ship", id, "ship %q deleted", ship.Name)
	return nil
}

func toShipResponse(ship *entity.Ship) *contract.ShipResponse {
	return &contract.ShipResponse{
		ID:                ship.ID,
		Name:              ship.Name,
		Type:              ship.Type,
		Country:           ship.Country,
		PortID:            ship.PortID,
		Status:            ship.Status,
		CompanyID:         ship.CompanyID,
		SpeedKnots:        ship.SpeedKnots,
		DestinationPortID: ship.DestinationPortID,
		DepartedAt:        ship.DepartedAt,
		ETA:               ship.ETA,
		VoyageDistanceKm:  ship.VoyageDistanceKm,
	}
}

func defaultString(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}

func defaultFloat(val, fallback float64) float64 {
	if val == 0 {
		return fallback
	}
	return val
}

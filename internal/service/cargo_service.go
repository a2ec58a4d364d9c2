package service

import (
	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CargoRepository interface {
	FindAll() ([]*entity.Cargo, error)
	FindByID(id int64) (*entity.Cargo, error)
	FindByShip(shipID int64) ([]*entity.Cargo, error)
	FindByStatus(status string) ([]*entity.Cargo, error)
	Save(c *entity.Cargo) error
	Delete(c *entity.Cargo) error
	CountAboard(shipID int64) (int64, error)
}

type DefaultCargoService struct {
	CargoRepo CargoRepository
	ShipRepo  ShipRepository
	PortRepo  PortRepository
	Validate  *validator.Validate
	Activity  *ActivityRecorder
}

func NewCargoService(
	cargoRepo CargoRepository,
	shipRepo ShipRepository,
	portRepo PortRepository,
	validate *validator.Validate,
	activity *ActivityRecorder,
) *DefaultCargoService {
	return &DefaultCargoService{
		CargoRepo: cargoRepo,
		ShipRepo:  shipRepo,
		PortRepo:  portRepo,
		Validate:  validate,
		Activity:  activity,
	}
}

// GetCargo lists cargo, optionally filtered by status or ship.
func (s *DefaultCargoService) GetCargo(status string, shipID int64) ([]*contract.CargoResponse, apierror.ErrorResponse) {
	var (
		cargo []*entity.Cargo
		err   error
	)
	switch {
	case shipID > 0:
		cargo, err = s.CargoRepo.FindByShip(shipID)
	case status != "":
		cargo, err = s.CargoRepo.FindByStatus(status)
	default:
		cargo, err = s.CargoRepo.FindAll()
	}
	if err != nil {
		log.Errorf("failed to fetch cargo: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CargoResponse, len(cargo))
	for i, c := range cargo {
		resp[i] = toCargoResponse(c)
	}
	return resp, nil
}

func (s *DefaultCargoService) GetCargoByID(id int64) (*contract.CargoResponse, apierror.ErrorResponse) {
	c, err := s.CargoRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch cargo: %v", err)
		return nil, apierror.InternalServerError
	}
	if c == nil {
		return nil, apierror.NewNotFound("cargo", id)
	}
	return toCargoResponse(c), nil
}

func (s *DefaultCargoService) CreateCargo(req *contract.CargoRequest) (*contract.CargoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	if apierr := s.checkReferences(req); apierr != nil {
		return nil, apierr
	}

	c := &entity.Cargo{
		Name:              req.Name,
		Type:              req.Type,
		WeightTonnes:      req.WeightTonnes,
		VolumeM3:          req.VolumeM3,
		ValueUSD:          req.ValueUSD,
		OriginPortID:      req.OriginPortID,
		DestinationPortID: req.DestinationPortID,
		Status:            defaultString(req.Status, entity.CargoStatusPending),
		ShipID:            req.ShipID,
		LoadedAt:          req.LoadedAt,
		DeliveredAt:       req.DeliveredAt,
		Notes:             req.Notes,
	}
	if c.Status == entity.CargoStatusLoaded && c.LoadedAt == "" {
		c.LoadedAt = utils.FormatTime(utils.NowUTC())
	}

	if err := s.CargoRepo.Save(c); err != nil {
		log.Errorf("failed to save cargo: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("cargo.created", "cargo", c.ID, "cargo %q created (%s)", c.Name, c.Status)
	return toCargoResponse(c), nil
}

func (s *DefaultCargoService) UpdateCargo(id int64, req *contract.CargoRequest) (*contract.CargoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	c, err := s.CargoRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch cargo: %v", err)
		return nil, apierror.InternalServerError
	}
	if c == nil {
		return nil, apierror.NewNotFound("cargo", id)
	}
	if apierr := s.checkReferences(req); apierr != nil {
		return nil, apierr
	}

	newStatus := defaultString(req.Status, c.Status)
	if c.Status != entity.CargoStatusLoaded && newStatus == entity.CargoStatusLoaded && req.LoadedAt == "" {
		c.LoadedAt = utils.FormatTime(utils.NowUTC())
	} else if req.LoadedAt != "" {
		c.LoadedAt = req.LoadedAt
	}
	if newStatus == entity.CargoStatusDelivered && req.DeliveredAt == "" && c.DeliveredAt == "" {
		c.DeliveredAt = utils.FormatTime(utils.NowUTC())
	} else if req.DeliveredAt != "" {
		c.DeliveredAt = req.DeliveredAt
	}

	c.Name = req.Name
	c.Type = req.Type
	c.WeightTonnes = req.WeightTonnes
	c.VolumeM3 = req.VolumeM3
	c.ValueUSD = req.ValueUSD
	c.OriginPortID = req.OriginPortID
	c.DestinationPortID = req.DestinationPortID
	c.Status = newStatus
	c.ShipID = req.ShipID
	c.Notes = req.Notes

	if err := s.CargoRepo.Save(c); err != nil {
		log.Errorf("failed to update cargo: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("cargo.updated", "cargo", c.ID, "cargo %q updated (%s)", c.Name, c.Status)
	return toCargoResponse(c), nil
}

func (s *DefaultCargoService) DeleteCargo(id int64) apierror.ErrorResponse {
	c, err := s.CargoRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch cargo: %v", err)
		return apierror.InternalServerError
	}
	if c == nil {
		return apierror.NewNotFound("cargo", id)
	}
	if c.Status == entity.CargoStatusInTransit {
		return apierror.NewConflict("cargo %q is in transit", c.Name)
	}

	if err := s.CargoRepo.Delete(c); err != nil {
		log.Errorf("failed to delete cargo: %v", err)
		return apierror.InternalServerError
	}

	s.Activity.Info("cargo.deleted", "cargo", id, "cargo %q deleted", c.Name)
	return nil
}

func (s *DefaultCargoService) checkReferences(req *contract.CargoRequest) apierror.ErrorResponse {
	if req.ShipID > 0 {
		ship, err := s.ShipRepo.FindByID(req.ShipID)
		if err != nil {
			log.Errorf("failed to fetch ship: %v", err)
			return apierror.InternalServerError
		}
		if ship == nil {
			return apierror.NewNotFound("ship", req.ShipID)
		}
	}
	for _, portID := range []int64{req.OriginPortID, req.DestinationPortID} {
		if portID == 0 {
			continue
		}
		port, err := s.PortRepo.FindByID(portID)
		if err != nil {
			log.Errorf("failed to fetch port: %v", err)
			return apierror.InternalServerError
		}
		if port == nil {
			return apierror.NewNotFound("port", portID)
		}
	}
	return nil
}

func toCargoResponse(c *entity.Cargo) *contract.CargoResponse {
	return &contract.CargoResponse{
		ID:                c.ID,
		Name:              c.Name,
		Type:              c.Type,
		WeightTonnes:      c.WeightTonnes,
		VolumeM3:          c.VolumeM3,
		ValueUSD:          c.ValueUSD,
		OriginPortID:      c.OriginPortID,
		DestinationPortID: c.DestinationPortID,
		Status:            c.Status,
		ShipID:            c.ShipID,
		LoadedAt:          c.LoadedAt,
		DeliveredAt:       c.DeliveredAt,
		Notes:             c.Notes,
	}
}

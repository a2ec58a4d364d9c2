package service

import (
	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"
	"fleetcommander/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type VoyageRecordRepository interface {
	FindAll() ([]*entity.VoyageRecord, error)
	FindByID(id int64) (*entity.VoyageRecord, error)
	FindByShip(shipID int64) ([]*entity.VoyageRecord, error)
	FindOpenByShip(shipID int64) (*entity.VoyageRecord, error)
	Save(rec *entity.VoyageRecord) error
	Delete(rec *entity.VoyageRecord) error
}

type DefaultVoyageRecordService struct {
	RecordRepo VoyageRecordRepository
	ShipRepo   ShipRepository
	Validate   *validator.Validate
	Activity   *ActivityRecorder
}

func NewVoyageRecordService(
	recordRepo VoyageRecordRepository,
	shipRepo ShipRepository,
	validate *validator.Validate,
	activity *ActivityRecorder,
) *DefaultVoyageRecordService {
	return &DefaultVoyageRecordService{
		RecordRepo: recordRepo,
		ShipRepo:   shipRepo,
		Validate:   validate,
		Activity:   activity,
	}
}

// GetVoyages lists voyage history, optionally for one ship.
func (s *DefaultVoyageRecordService) GetVoyages(shipID int64) ([]*contract.VoyageRecordResponse, apierror.ErrorResponse) {
	var (
		records []*entity.VoyageRecord
		err     error
	)
	if shipID > 0 {
		records, err = s.RecordRepo.FindByShip(shipID)
	} else {
		records, err = s.RecordRepo.FindAll()
	}
	if err != nil {
		log.Errorf("failed to fetch voyage records: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.VoyageRecordResponse, len(records))
	for i, rec := range records {
		resp[i] = toVoyageRecordResponse(rec)
	}
	return resp, nil
}

func (s *DefaultVoyageRecordService) GetVoyageByID(id int64) (*contract.VoyageRecordResponse, apierror.ErrorResponse) {
	rec, err := s.RecordRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch voyage record: %v", err)
		return nil, apierror.InternalServerError
	}
	if rec == nil {
		return nil, apierror.NewNotFound("voyage", id)
	}
	return toVoyageRecordResponse(rec), nil
}

// CreateVoyage stores a manually-entered history row. Departures mint their
// own rows; this path is for backfilling past voyages.
func (s *DefaultVoyageRecordService) CreateVoyage(req *contract.VoyageRecordRequest) (*contract.VoyageRecordResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	ship, err := s.ShipRepo.FindByID(req.ShipID)
	if err != nil {
		log.Errorf("failed to fetch ship: %v", err)
		return nil, apierror.InternalServerError
	}
	if ship == nil {
		return nil, apierror.NewNotFound("ship", req.ShipID)
	}

	rec := &entity.VoyageRecord{
		ID:                   uid.Generate(),
		Reference:            uuid.NewString(),
		ShipID:               req.ShipID,
		FromPortID:           req.FromPortID,
		ToPortID:             req.ToPortID,
		DepartedAt:           req.DepartedAt,
		ArrivedAt:            req.ArrivedAt,
		ActualDurationHours:  req.ActualDurationHours,
		PlannedDurationHours: req.PlannedDurationHours,
		DistanceKm:           req.DistanceKm,
		FuelConsumedTonnes:   req.FuelConsumedTonnes,
		TotalCostUSD:         req.TotalCostUSD,
		TotalRevenueUSD:      req.TotalRevenueUSD,
		CargoList:            req.CargoList,
		CrewList:             req.CrewList,
		Notes:                req.Notes,
		WeatherConditions:    req.WeatherConditions,
	}
	if err := s.RecordRepo.Save(rec); err != nil {
		log.Errorf("failed to save voyage record: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("voyage.recorded", "voyage", rec.ID,
		"voyage %s backfilled for ship %q", rec.Reference, ship.Name)
	return toVoyageRecordResponse(rec), nil
}

// UpdateVoyage amends the bookkeeping fields of a history row. The identity
// and planning fields are immutable once minted.
func (s *DefaultVoyageRecordService) UpdateVoyage(id int64, req *contract.VoyageRecordRequest) (*contract.VoyageRecordResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	rec, err := s.RecordRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch voyage record: %v", err)
		return nil, apierror.InternalServerError
	}
	if rec == nil {
		return nil, apierror.NewNotFound("voyage", id)
	}

	rec.ArrivedAt = req.ArrivedAt
	rec.ActualDurationHours = req.ActualDurationHours
	rec.FuelConsumedTonnes = req.FuelConsumedTonnes
	rec.TotalCostUSD = req.TotalCostUSD
	rec.TotalRevenueUSD = req.TotalRevenueUSD
	rec.Notes = req.Notes
	rec.WeatherConditions = req.WeatherConditions

	if err := s.RecordRepo.Save(rec); err != nil {
		log.Errorf("failed to update voyage record: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("voyage.updated", "voyage", rec.ID, "voyage %s updated", rec.Reference)
	return toVoyageRecordResponse(rec), nil
}

func (s *DefaultVoyageRecordService) DeleteVoyage(id int64) apierror.ErrorResponse {
	rec, err := s.RecordRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch voyage record: %v", err)
		return apierror.InternalServerError
	}
	if rec == nil {
		return apierror.NewNotFound("voyage", id)
	}
	if !rec.Completed() {
		return apierror.NewConflict("voyage %s is still in progress", rec.Reference)
	}

	if err := s.RecordRepo.Delete(rec); err != nil {
		log.Errorf("failed to delete voyage record: %v", err)
		return apierror.InternalServerError
	}

	s.Activity.Info("voyage.deleted", "voyage", id, "voyage %s deleted", rec.Reference)
	return nil
}

func toVoyageRecordResponse(rec *entity.VoyageRecord) *contract.VoyageRecordResponse {
	return &contract.VoyageRecordResponse{
		ID:                   rec.ID,
		Reference:            rec.Reference,
		ShipID:               rec.ShipID,
		FromPortID:           rec.FromPortID,
		ToPortID:             rec.ToPortID,
		DepartedAt:           rec.DepartedAt,
		ArrivedAt:            rec.ArrivedAt,
		ActualDurationHours:  rec.ActualDurationHours,
		PlannedDurationHours: rec.PlannedDurationHours,
		DistanceKm:           rec.DistanceKm,
		FuelConsumedTonnes:   rec.FuelConsumedTonnes,
		TotalCostUSD:         rec.TotalCostUSD,
		TotalRevenueUSD:      rec.TotalRevenueUSD,
		CargoList:            rec.CargoList,
		CrewList:             rec.CrewList,
		Notes:                rec.Notes,
		WeatherConditions:    rec.WeatherConditions,
	}
}

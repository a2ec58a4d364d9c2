package service

import (
	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ScheduleRepository interface {
	FindAll() ([]*entity.Schedule, error)
	FindActive() ([]*entity.Schedule, error)
	FindByShip(shipID int64) ([]*entity.Schedule, error)
	FindByID(id int64) (*entity.Schedule, error)
	Save(sch *entity.Schedule) error
	Delete(sch *entity.Schedule) error
}

type DefaultScheduleService struct {
	ScheduleRepo ScheduleRepository
	ShipRepo     ShipRepository
	PortRepo     PortRepository
	Validate     *validator.Validate
	Activity     *ActivityRecorder
}

func NewScheduleService(
	scheduleRepo ScheduleRepository,
	shipRepo ShipRepository,
	portRepo PortRepository,
	validate *validator.Validate,
	activity *ActivityRecorder,
) *DefaultScheduleService {
	return &DefaultScheduleService{
		ScheduleRepo: scheduleRepo,
		ShipRepo:     shipRepo,
		PortRepo:     portRepo,
		Validate:     validate,
		Activity:     activity,
	}
}

func (s *DefaultScheduleService) GetSchedules(activeOnly bool, shipID int64) ([]*contract.ScheduleResponse, apierror.ErrorResponse) {
	var (
		schedules []*entity.Schedule
		err       error
	)
	switch {
	case shipID > 0:
		schedules, err = s.ScheduleRepo.FindByShip(shipID)
	case activeOnly:
		schedules, err = s.ScheduleRepo.FindActive()
	default:
		schedules, err = s.ScheduleRepo.FindAll()
	}
	if err != nil {
		log.Errorf("failed to fetch schedules: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ScheduleResponse, len(schedules))
	for i, sch := range schedules {
		resp[i] = toScheduleResponse(sch)
	}
	return resp, nil
}

func (s *DefaultScheduleService) GetScheduleByID(id int64) (*contract.ScheduleResponse, apierror.ErrorResponse) {
	sch, err := s.ScheduleRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch schedule: %v", err)
		return nil, apierror.InternalServerError
	}
	if sch == nil {
		return nil, apierror.NewNotFound("schedule", id)
	}
	return toScheduleResponse(sch), nil
}

func (s *DefaultScheduleService) CreateSchedule(req *contract.ScheduleRequest) (*contract.ScheduleResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	if apierr := s.checkReferences(req); apierr != nil {
		return nil, apierr
	}

	sch := &entity.Schedule{
		ShipID:             req.ShipID,
		RouteName:          req.RouteName,
		FromPortID:         req.FromPortID,
		ToPortID:           req.ToPortID,
		DepartureDayOfWeek: req.DepartureDayOfWeek,
		DepartureTime:      req.DepartureTime,
		IsActive:           req.IsActive == nil || *req.IsActive,
		Recurring:          defaultString(req.Recurring, "weekly"),
		Notes:              req.Notes,
	}
	if sch.DepartureDayOfWeek == 0 {
		sch.DepartureDayOfWeek = 1
	}

	if err := s.ScheduleRepo.Save(sch); err != nil {
		log.Errorf("failed to save schedule: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("schedule.created", "schedule", sch.ID, "schedule %q created", sch.RouteName)
	return toScheduleResponse(sch), nil
}

func (s *DefaultScheduleService) UpdateSchedule(id int64, req *contract.ScheduleRequest) (*contract.ScheduleResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	sch, err := s.ScheduleRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch schedule: %v", err)
		return nil, apierror.InternalServerError
	}
	if sch == nil {
		return nil, apierror.NewNotFound("schedule", id)
	}
	if apierr := s.checkReferences(req); apierr != nil {
		return nil, apierr
	}

	sch.ShipID = req.ShipID
	sch.RouteName = req.RouteName
	sch.FromPortID = req.FromPortID
	sch.ToPortID = req.ToPortID
	if req.DepartureDayOfWeek > 0 {
		sch.DepartureDayOfWeek = req.DepartureDayOfWeek
	}
	sch.DepartureTime = req.DepartureTime
	if req.IsActive != nil {
		sch.IsActive = *req.IsActive
	}
	sch.Recurring = defaultString(req.Recurring, sch.Recurring)
	sch.Notes = req.Notes

	if err := s.ScheduleRepo.Save(sch); err != nil {
		log.Errorf("failed to update schedule: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("schedule.updated", "schedule", sch.ID, "schedule %q updated", sch.RouteName)
	return toScheduleResponse(sch), nil
}

func (s *DefaultScheduleService) DeleteSchedule(id int64) apierror.ErrorResponse {
	sch, err := s.ScheduleRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch schedule: %v", err)
		return apierror.InternalServerError
	}
	if sch == nil {
		return apierror.NewNotFound("schedule", id)
	}

	if err := s.ScheduleRepo.Delete(sch); err != nil {
		log.Errorf("failed to delete schedule: %v", err)
		return apierror.InternalServerError
	}

	s.Activity.Info("schedule.deleted", "schedule", id, "schedule %q deleted", sch.RouteName)
	return nil
}

func (s *DefaultScheduleService) checkReferences(req *contract.ScheduleRequest) apierror.ErrorResponse {
	ship, err := s.ShipRepo.FindByID(req.ShipID)
	if err != nil {
		log.Errorf("failed to fetch ship: %v", err)
		return apierror.InternalServerError
	}
	if ship == nil {
		return apierror.NewNotFound("ship", req.ShipID)
	}

	for _, portID := range []int64{req.FromPortID, req.ToPortID} {
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

func toScheduleResponse(sch *entity.Schedule) *contract.ScheduleResponse {
	return &contract.ScheduleResponse{
		ID:                 sch.ID,
		ShipID:             sch.ShipID,
		RouteName:          sch.RouteName,
		FromPortID:         sch.FromPortID,
		ToPortID:           sch.ToPortID,
		DepartureDayOfWeek: sch.DepartureDayOfWeek,
		DepartureTime:      sch.DepartureTime,
		IsActive:           sch.IsActive,
		Recurring:          sch.Recurring,
		Notes:              sch.Notes,
	}
}

package service

import (
	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"
	"fleetcommander/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type WeatherRepository interface {
	FindAll() ([]*entity.WeatherReport, error)
	FindByID(id int64) (*entity.WeatherReport, error)
	FindByPort(portID int64) ([]*entity.WeatherReport, error)
	FindLatestByPort(portID int64) (*entity.WeatherReport, error)
	FindLatestAll() ([]*entity.WeatherReport, error)
	Save(report *entity.WeatherReport) error
}

type DefaultWeatherService struct {
	WeatherRepo WeatherRepository
	PortRepo    PortRepository
	Validate    *validator.Validate
	Activity    *ActivityRecorder
}

func NewWeatherService(
	weatherRepo WeatherRepository,
	portRepo PortRepository,
	validate *validator.Validate,
	activity *ActivityRecorder,
) *DefaultWeatherService {
	return &DefaultWeatherService{
		WeatherRepo: weatherRepo,
		PortRepo:    portRepo,
		Validate:    validate,
		Activity:    activity,
	}
}

// GetLatest serves the newest report per port, the dashboard's weather map.
func (s *DefaultWeatherService) GetLatest() ([]*contract.WeatherResponse, apierror.ErrorResponse) {
	reports, err := s.WeatherRepo.FindLatestAll()
	if err != nil {
		log.Errorf("failed to fetch weather reports: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.WeatherResponse, len(reports))
	for i, r := range reports {
		resp[i] = toWeatherResponse(r)
	}
	return resp, nil
}

// GetForPort serves a port's report history, newest first.
func (s *DefaultWeatherService) GetForPort(portID int64) ([]*contract.WeatherResponse, apierror.ErrorResponse) {
	port, err := s.PortRepo.FindByID(portID)
	if err != nil {
		log.Errorf("failed to fetch port: %v", err)
		return nil, apierror.InternalServerError
	}
	if port == nil {
		return nil, apierror.NewNotFound("port", portID)
	}

	reports, err := s.WeatherRepo.FindByPort(portID)
	if err != nil {
		log.Errorf("failed to fetch weather reports: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.WeatherResponse, len(reports))
	for i, r := range reports {
		resp[i] = toWeatherResponse(r)
	}
	return resp, nil
}

// Record appends a manual observation for a port.
func (s *DefaultWeatherService) Record(req *contract.WeatherRequest) (*contract.WeatherResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	port, err := s.PortRepo.FindByID(req.PortID)
	if err != nil {
		log.Errorf("failed to fetch port: %v", err)
		return nil, apierror.InternalServerError
	}
	if port == nil {
		return nil, apierror.NewNotFound("port", req.PortID)
	}

	recordedAt := req.RecordedAt
	if recordedAt == "" {
		recordedAt = utils.FormatTime(utils.NowUTC())
	}

	report := &entity.WeatherReport{
		PortID:           req.PortID,
		RecordedAt:       recordedAt,
		TemperatureC:     req.TemperatureC,
		WindSpeedKmh:     req.WindSpeedKmh,
		WindDirectionDeg: req.WindDirectionDeg,
		Conditions:       defaultString(req.Conditions, "clear"),
		VisibilityKm:     req.VisibilityKm,
		WaveHeightM:      req.WaveHeightM,
		Warnings:         defaultString(req.Warnings, "[]"),
	}
	if err := s.WeatherRepo.Save(report); err != nil {
		log.Errorf("failed to save weather report: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("weather.recorded", "port", port.ID,
		"weather at %q: %s, %.1f°C", port.Name, report.Conditions, report.TemperatureC)
	return toWeatherResponse(report), nil
}

func toWeatherResponse(r *entity.WeatherReport) *contract.WeatherResponse {
	return &contract.WeatherResponse{
		ID:               r.ID,
		PortID:           r.PortID,
		RecordedAt:       r.RecordedAt,
		TemperatureC:     r.TemperatureC,
		WindSpeedKmh:     r.WindSpeedKmh,
		WindDirectionDeg: r.WindDirectionDeg,
		Conditions:       r.Conditions,
		VisibilityKm:     r.VisibilityKm,
		WaveHeightM:      r.WaveHeightM,
		Warnings:         r.Warnings,
	}
}

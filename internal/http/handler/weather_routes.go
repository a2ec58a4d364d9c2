package handler

import (
	"net/http"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type WeatherService interface {
	GetLatest() ([]*contract.WeatherResponse, apierror.ErrorResponse)
	GetForPort(portID int64) ([]*contract.WeatherResponse, apierror.ErrorResponse)
	Record(req *contract.WeatherRequest) (*contract.WeatherResponse, apierror.ErrorResponse)
}

type DefaultWeatherRoute struct {
	WeatherService WeatherService
}

func NewWeatherDefault(weatherService WeatherService) *DefaultWeatherRoute {
	return &DefaultWeatherRoute{WeatherService: weatherService}
}

func (h *DefaultWeatherRoute) GetWeather(c echo.Context) error {
	reports, err := h.WeatherService.GetLatest()
	if err != nil {
		return c.JSON(err.Code(), err)
	}
	return c.JSON(http.StatusOK, reports)
}

func (h *DefaultWeatherRoute) GetPortWeather(c echo.Context) error {
	id, perr := pathID(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	reports, apierr := h.WeatherService.GetForPort(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, reports)
}

func (h *DefaultWeatherRoute) RecordWeather(c echo.Context) error {
	var req contract.WeatherRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	report, apierr := h.WeatherService.Record(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, report)
}

package jobs

import (
	"context"
	"errors"
	"time"

	"fleetcommander/internal/infrastructure/openweather"
	"fleetcommander/internal/service"

	"github.com/labstack/gommon/log"
)

// WeatherSweeper refreshes every port's weather from OpenWeather. Without an
// API key it stays idle, leaving manual reports as the only source.
type WeatherSweeper struct {
	client   *openweather.Client
	ports    service.PortRepository
	weather  service.WeatherRepository
	interval time.Duration
}

func NewWeatherSweeper(
	client *openweather.Client,
	ports service.PortRepository,
	weather service.WeatherRepository,
	interval time.Duration,
) *WeatherSweeper {
	return &WeatherSweeper{client: client, ports: ports, weather: weather, interval: interval}
}

func (w *WeatherSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Info("Weather sweeper cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping weather sweeper...")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *WeatherSweeper) sweep(ctx context.Context) {
	ports, err := w.ports.FindAll()
	if err != nil {
		log.Errorf("Weather: failed to fetch ports: %v", err)
		return
	}

	for _, port := range ports {
		// A fresh timeout per port, detached from the ticker's timing.
		reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		report, err := w.client.CurrentAt(reqCtx, port.ID, port.Lat, port.Lon)
		cancel()

		if errors.Is(err, openweather.ErrNoAPIKey) {
			return
		}
		if err != nil {
			log.Errorf("Weather: failed to fetch conditions for port %d: %v", port.ID, err)
			continue
		}

		if err := w.weather.Save(report); err != nil {
			log.Errorf("Weather: failed to save report for port %d: %v", port.ID, err)
		}
	}
}

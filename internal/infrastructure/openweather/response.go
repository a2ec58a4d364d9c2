package openweather

import (
	"fleetcommander/internal/domain/entity"
)

type weatherResponse struct {
	Weather []conditionResponse `json:"weather"`
	Main    struct {
		TempC float64 `json:"temp"`
	} `json:"main"`
	Wind struct {
		SpeedMs float64 `json:"speed"`
		Deg     float64 `json:"deg"`
	} `json:"wind"`
	VisibilityM float64 `json:"visibility"`
}

type conditionResponse struct {
	Main string `json:"main"`
}

func (w *weatherResponse) ToDomain(portID int64, recordedAt string) *entity.WeatherReport {
	condition := ""
	if len(w.Weather) > 0 {
		condition = w.Weather[0].Main
	}

	return &entity.WeatherReport{
		PortID:           portID,
		RecordedAt:       recordedAt,
		TemperatureC:     w.Main.TempC,
		WindSpeedKmh:     w.Wind.SpeedMs * 3.6,
		WindDirectionDeg: w.Wind.Deg,
		Conditions:       translateCondition(condition),
		VisibilityKm:     w.VisibilityM / 1000,
		Warnings:         "[]",
	}
}

// translateCondition collapses OpenWeather's condition groups onto the four
// values the dashboard renders.
func translateCondition(main string) string {
	switch main {
	case "Clear":
		return "clear"
	case "Clouds", "Mist", "Fog", "Haze":
		return "cloudy"
	case "Rain", "Drizzle", "Snow":
		return "rainy"
	case "Thunderstorm", "Squall", "Tornado":
		return "stormy"
	default:
		return "cloudy"
	}
}

package contract

type WeatherRequest struct {
	PortID int64 `json:"port_id" validate:"required,gt=0"`
	// RecordedAt defaults to now when omitted.
	RecordedAt       string  `json:"recorded_at" validate:"omitempty,timestamp"`
	TemperatureC     float64 `json:"temperature_c" validate:"gte=-90,lte=60"`
	WindSpeedKmh     float64 `json:"wind_speed_kmh" validate:"gte=0"`
	WindDirectionDeg float64 `json:"wind_direction_deg" validate:"gte=0,lte=360"`
	Conditions       string  `json:"conditions" validate:"omitempty,oneof=clear cloudy rainy stormy"`
	VisibilityKm     float64 `json:"visibility_km" validate:"gte=0"`
	WaveHeightM      float64 `json:"wave_height_m" validate:"gte=0"`
	Warnings         string  `json:"warnings"`
}

type WeatherResponse struct {
	ID               int64   `json:"id"`
	PortID           int64   `json:"port_id"`
	RecordedAt       string  `json:"recorded_at"`
	TemperatureC     float64 `json:"temperature_c"`
	WindSpeedKmh     float64 `json:"wind_speed_kmh"`
	WindDirectionDeg float64 `json:"wind_direction_deg"`
	Conditions       string  `json:"conditions"`
	VisibilityKm     float64 `json:"visibility_km"`
	WaveHeightM      float64 `json:"wave_height_m"`
	Warnings         string  `json:"warnings"`
}

package entity

var WeatherConditions = []string{"clear", "cloudy", "rainy", "stormy"}

type WeatherReport struct {
	ID               int64   `gorm:"primaryKey"`
	PortID           int64   `gorm:"not null;index"` // References: ports(id)
	RecordedAt       string  `gorm:"not null"`       // ISO-8601 UTC
	TemperatureC     float64 `gorm:"not null;default:0"`
	WindSpeedKmh     float64 `gorm:"not null;default:0"`
	WindDirectionDeg float64 `gorm:"not null;default:0"`
	Conditions       string  `gorm:"not null;default:clear"`
	VisibilityKm     float64 `gorm:"not null;default:10"`
	WaveHeightM      float64 `gorm:"not null;default:0"`
	Warnings         string  `gorm:"not null;default:'[]'"` // JSON array
}

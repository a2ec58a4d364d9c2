package entity

// VoyageRecord is the per-voyage history row. Rows minted by Depart carry a
// snowflake ID and a UUID reference; ArrivedAt stays empty until the voyage
// completes.
type VoyageRecord struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement:false"`
	Reference            string `gorm:"not null;uniqueIndex"`
	ShipID               int64  `gorm:"not null"`
	FromPortID           int64  `gorm:"not null"`
	ToPortID             int64  `gorm:"not null"`
	DepartedAt           string `gorm:"not null"` // ISO-8601 UTC
	ArrivedAt            string `gorm:"not null;default:''"`
	ActualDurationHours  float64
	PlannedDurationHours float64
	DistanceKm           float64
	FuelConsumedTonnes   float64
	TotalCostUSD         float64
	TotalRevenueUSD      float64
	CargoList            string // JSON array
	CrewList             string // JSON array
	Notes                string
	WeatherConditions    string
}

func (v *VoyageRecord) Completed() bool {
	return v.ArrivedAt != ""
}

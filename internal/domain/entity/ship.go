package entity

const (
	ShipStatusDocked    = "docked"
	ShipStatusLoading   = "loading"
	ShipStatusUnloading = "unloading"
	ShipStatusDeparted  = "departed"
)

var ShipStatuses = []string{
	ShipStatusDocked,
	ShipStatusLoading,
	ShipStatusUnloading,
	ShipStatusDeparted,
}

// NormalizeShipStatus maps the legacy "at_sea" value onto "departed" and
// reports whether the result is a known status.
func NormalizeShipStatus(s string) (string, bool) {
	if s == "at_sea" {
		return ShipStatusDeparted, true
	}
	for _, v := range ShipStatuses {
		if v == s {
			return v, true
		}
	}
	return s, false
}

type Ship struct {
	ID         int64   `gorm:"primaryKey"`
	Name       string  `gorm:"not null"`
	Type       string  `gorm:"not null;default:cargo"` // References: ship_types(code)
	Country    string  `gorm:"not null;default:Unknown"`
	PortID     int64   `gorm:"not null;default:0"` // 0 = not moored
	Status     string  `gorm:"not null;default:docked"`
	CompanyID  int64   `gorm:"not null;default:0"` // 0 = no company
	SpeedKnots float64 `gorm:"not null;default:20"`

	// Voyage tracking. All four are set while Status is "departed" and
	// cleared when the arrival is processed.
	DepartedAt        string  `gorm:"not null;default:''"` // ISO-8601 UTC
	DestinationPortID int64   `gorm:"not null;default:0"`
	ETA               string  `gorm:"not null;default:''"` // ISO-8601 UTC
	VoyageDistanceKm  float64 `gorm:"not null;default:0"`
}

func (s *Ship) OnVoyage() bool {
	return s.Status == ShipStatusDeparted
}

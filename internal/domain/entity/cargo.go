package entity

const (
	CargoStatusPending   = "pending"
	CargoStatusLoaded    = "loaded"
	CargoStatusInTransit = "in_transit"
	CargoStatusDelivered = "delivered"
)

var CargoStatuses = []string{
	CargoStatusPending,
	CargoStatusLoaded,
	CargoStatusInTransit,
	CargoStatusDelivered,
}

var CargoTypes = []string{"container", "bulk", "liquid", "passengers"}

type Cargo struct {
	ID                int64   `gorm:"primaryKey"`
	Name              string  `gorm:"not null"`
	Type              string  `gorm:"not null"`
	WeightTonnes      float64 `gorm:"not null;default:0"`
	VolumeM3          float64 `gorm:"not null;default:0"`
	ValueUSD          float64 `gorm:"not null;default:0"`
	OriginPortID      int64   `gorm:"not null;default:0"`
	DestinationPortID int64   `gorm:"not null;default:0"`
	Status            string  `gorm:"not null;default:pending"`
	ShipID            int64   `gorm:"not null;default:0"` // 0 = unassigned
	LoadedAt          string  `gorm:"not null;default:''"`
	DeliveredAt       string  `gorm:"not null;default:''"`
	Notes             string
}

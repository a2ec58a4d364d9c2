package entity

type Port struct {
	ID     int64   `gorm:"primaryKey"`
	Name   string  `gorm:"not null;uniqueIndex"`
	Region string  `gorm:"not null"`
	Lat    float64 `gorm:"not null"` // [-90, 90]
	Lon    float64 `gorm:"not null"` // [-180, 180]
}

package entity

var ScheduleRecurrences = []string{"weekly", "biweekly", "monthly"}

type Schedule struct {
	ID                 int64  `gorm:"primaryKey"`
	ShipID             int64  `gorm:"not null"` // References: ships(id)
	RouteName          string `gorm:"not null"`
	FromPortID         int64  `gorm:"not null"`
	ToPortID           int64  `gorm:"not null"`
	DepartureDayOfWeek int    `gorm:"not null;default:1"` // 1=Monday .. 7=Sunday
	DepartureTime      string `gorm:"not null"`           // HH:MM
	IsActive           bool   `gorm:"not null;default:true"`
	Recurring          string `gorm:"not null;default:weekly"`
	Notes              string
}

package entity

const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// ActivityLog records every mutating domain operation for the dashboard's
// audit views. Append-only.
type ActivityLog struct {
	ID        int64  `gorm:"primaryKey"`
	Timestamp string `gorm:"not null;index"` // ISO-8601 UTC
	Level     string `gorm:"not null;default:info"`
	EventType string `gorm:"not null;index"` // e.g. "ship.departed"
	Entity    string `gorm:"not null;index"` // e.g. "ship"
	EntityID  int64  `gorm:"not null;default:0"`
	Message   string `gorm:"not null"`
}

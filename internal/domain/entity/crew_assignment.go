package entity

// CrewAssignment is an audit-trail row: it is closed by setting EndUTC, never
// deleted. The partial unique index ux_crew_person_active (created in
// sqlite.Init) guarantees at most one open row per person.
type CrewAssignment struct {
	ID       int64   `gorm:"primaryKey"`
	PersonID int64   `gorm:"not null"` // References: people(id)
	ShipID   int64   `gorm:"not null"` // References: ships(id)
	StartUTC string  `gorm:"not null"` // ISO-8601 UTC
	EndUTC   *string // nil while the assignment is active
}

func (a *CrewAssignment) Active() bool {
	return a.EndUTC == nil
}

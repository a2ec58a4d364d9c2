package repository

import (
	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

// ExportSnapshot is a full dump of every table, keyed the way the backup
// tooling expects.
type ExportSnapshot struct {
	Ports           []*entity.Port           `json:"ports"`
	ShipTypes       []*entity.ShipType       `json:"ship_types"`
	Companies       []*entity.Company        `json:"companies"`
	CompanyPorts    []*entity.CompanyPort    `json:"company_ports"`
	Ships           []*entity.Ship           `json:"ships"`
	People          []*entity.Person         `json:"people"`
	CrewAssignments []*entity.CrewAssignment `json:"crew_assignments"`
	Cargo           []*entity.Cargo          `json:"cargo"`
	Schedules       []*entity.Schedule       `json:"schedules"`
	Voyages         []*entity.VoyageRecord   `json:"voyages"`
	WeatherReports  []*entity.WeatherReport  `json:"weather_reports"`
	ActivityLogs    []*entity.ActivityLog    `json:"activity_logs"`
}

type DefaultExportRepository struct {
	db *gorm.DB
}

func NewExportRepository(db *gorm.DB) *DefaultExportRepository {
	return &DefaultExportRepository{db: db}
}

// Snapshot reads every table inside one transaction so the dump is a
// consistent point-in-time view.
func (d *DefaultExportRepository) Snapshot() (*ExportSnapshot, error) {
	snap := &ExportSnapshot{}

	err := d.db.Transaction(func(tx *gorm.DB) error {
		for _, dest := range []any{
			&snap.Ports,
			&snap.ShipTypes,
			&snap.Companies,
			&snap.CompanyPorts,
			&snap.Ships,
			&snap.People,
			&snap.CrewAssignments,
			&snap.Cargo,
			&snap.Schedules,
			&snap.Voyages,
			&snap.WeatherReports,
			&snap.ActivityLogs,
		} {
			if err := tx.Order("id").Find(dest).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

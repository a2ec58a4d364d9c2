package sqlite

import (
	"time"

	"fleetcommander/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Init(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Port{},
		&entity.ShipType{},
		&entity.Company{},
		&entity.CompanyPort{},
		&entity.Ship{},
		&entity.Person{},
		&entity.CrewAssignment{},
		&entity.Cargo{},
		&entity.Schedule{},
		&entity.VoyageRecord{},
		&entity.WeatherReport{},
		&entity.ActivityLog{},
	)
	if err != nil {
		return nil, err
	}

	// Partial unique index: the insert in CrewRepository.Assign is itself the
	// "at most one active ship per person" check. AutoMigrate cannot express
	// a WHERE clause, so it is created by hand.
	err = db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS ux_crew_person_active " +
			"ON crew_assignments(person_id) WHERE end_utc IS NULL",
	).Error
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

package repository

import (
	"errors"

	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

// ErrAlreadyDeparted signals a concurrent or repeated departure: the
// conditional UPDATE matched no row because the ship's status was already
// "departed".
var ErrAlreadyDeparted = errors.New("ship is already on a voyage")

// DefaultVoyageRepository owns the multi-table voyage transitions. Each
// transition is a single transaction so a departure or arrival is either
// fully persisted or not at all.
type DefaultVoyageRepository struct {
	db *gorm.DB
}

func NewVoyageRepository(db *gorm.DB) *DefaultVoyageRepository {
	return &DefaultVoyageRepository{db: db}
}

// Depart persists the departure atomically: flips the ship to "departed"
// (guarded against double-departure), writes the voyage fields along with any
// pending edits on the struct, opens the voyage record, and moves loaded
// cargo aboard to in_transit.
func (d *DefaultVoyageRepository) Depart(ship *entity.Ship, rec *entity.VoyageRecord) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Ship{}).
			Where("id = ? AND status <> ?", ship.ID, entity.ShipStatusDeparted).
			Updates(map[string]any{
				"name":                ship.Name,
				"type":                ship.Type,
				"country":             ship.Country,
				"company_id":          ship.CompanyID,
				"status":              entity.ShipStatusDeparted,
				"port_id":             ship.PortID,
				"destination_port_id": ship.DestinationPortID,
				"departed_at":         ship.DepartedAt,
				"eta":                 ship.ETA,
				"voyage_distance_km":  ship.VoyageDistanceKm,
				"speed_knots":         ship.SpeedKnots,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyDeparted
		}

		if err := tx.Create(rec).Error; err != nil {
			return err
		}

		return tx.Model(&entity.Cargo{}).
			Where("ship_id = ? AND status = ?", ship.ID, entity.CargoStatusLoaded).
			Update("status", entity.CargoStatusInTransit).Error
	})
}

// CompleteArrival docks the ship, clears its voyage fields, closes the open
// voyage record and delivers in-transit cargo aboard. Arrival time is the
// ship's ETA. Idempotent at the caller level: only departed ships are fed in,
// and docking removes them from the next sweep.
func (d *DefaultVoyageRepository) CompleteArrival(ship *entity.Ship) error {
	arrivedAt := ship.ETA

	return d.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Ship{}).
			Where("id = ? AND status = ?", ship.ID, entity.ShipStatusDeparted).
			Updates(map[string]any{
				"status":              entity.ShipStatusDocked,
				"departed_at":         "",
				"eta":                 "",
				"destination_port_id": 0,
				"voyage_distance_km":  0,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race with another sweep; nothing left to do.
			return nil
		}

		var rec entity.VoyageRecord
		err := tx.Where("ship_id = ? AND arrived_at = ''", ship.ID).First(&rec).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			updates := map[string]any{"arrived_at": arrivedAt}
			if rec.PlannedDurationHours > 0 {
				updates["actual_duration_hours"] = rec.PlannedDurationHours
			}
			if err := tx.Model(&rec).Updates(updates).Error; err != nil {
				return err
			}
		}

		return tx.Model(&entity.Cargo{}).
			Where("ship_id = ? AND status = ?", ship.ID, entity.CargoStatusInTransit).
			Updates(map[string]any{
				"status":       entity.CargoStatusDelivered,
				"delivered_at": arrivedAt,
			}).Error
	})
}

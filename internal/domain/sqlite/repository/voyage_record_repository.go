package repository

import (
	"errors"

	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultVoyageRecordRepository struct {
	db *gorm.DB
}

func NewVoyageRecordRepository(db *gorm.DB) *DefaultVoyageRecordRepository {
	return &DefaultVoyageRecordRepository{db: db}
}

func (d *DefaultVoyageRecordRepository) FindAll() ([]*entity.VoyageRecord, error) {
	var records []*entity.VoyageRecord
	err := d.db.Order("departed_at").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (d *DefaultVoyageRecordRepository) FindByID(id int64) (*entity.VoyageRecord, error) {
	var rec entity.VoyageRecord
	err := d.db.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (d *DefaultVoyageRecordRepository) FindByShip(shipID int64) ([]*entity.VoyageRecord, error) {
	var records []*entity.VoyageRecord
	err := d.db.Where("ship_id = ?", shipID).Order("departed_at").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FindOpenByShip returns the ship's in-progress voyage, if any.
func (d *DefaultVoyageRecordRepository) FindOpenByShip(shipID int64) (*entity.VoyageRecord, error) {
	var rec entity.VoyageRecord
	err := d.db.Where("ship_id = ? AND arrived_at = ''", shipID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (d *DefaultVoyageRecordRepository) Save(rec *entity.VoyageRecord) error {
	return d.db.Save(rec).Error
}

func (d *DefaultVoyageRecordRepository) Delete(rec *entity.VoyageRecord) error {
	return d.db.Delete(rec).Error
}

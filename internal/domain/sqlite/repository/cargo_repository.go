package repository

import (
	"errors"

	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCargoRepository struct {
	db *gorm.DB
}

func NewCargoRepository(db *gorm.DB) *DefaultCargoRepository {
	return &DefaultCargoRepository{db: db}
}

func (d *DefaultCargoRepository) FindAll() ([]*entity.Cargo, error) {
	var cargo []*entity.Cargo
	err := d.db.Order("id").Find(&cargo).Error
	if err != nil {
		return nil, err
	}
	return cargo, nil
}

func (d *DefaultCargoRepository) FindByID(id int64) (*entity.Cargo, error) {
	var c entity.Cargo
	err := d.db.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (d *DefaultCargoRepository) FindByShip(shipID int64) ([]*entity.Cargo, error) {
	var cargo []*entity.Cargo
	err := d.db.Where("ship_id = ?", shipID).Order("id").Find(&cargo).Error
	if err != nil {
		return nil, err
	}
	return cargo, nil
}

func (d *DefaultCargoRepository) FindByStatus(status string) ([]*entity.Cargo, error) {
	var cargo []*entity.Cargo
	err := d.db.Where("status = ?", status).Order("id").Find(&cargo).Error
	if err != nil {
		return nil, err
	}
	return cargo, nil
}

func (d *DefaultCargoRepository) Save(c *entity.Cargo) error {
	return d.db.Save(c).Error
}

func (d *DefaultCargoRepository) Delete(c *entity.Cargo) error {
	return d.db.Delete(c).Error
}

// CountAboard counts loaded or in-transit cargo on the ship. Used as the
// ship delete guard.
func (d *DefaultCargoRepository) CountAboard(shipID int64) (int64, error) {
	var count int64
	err := d.db.Model(&entity.Cargo{}).
		Where("ship_id = ? AND status IN ?", shipID,
			[]string{entity.CargoStatusLoaded, entity.CargoStatusInTransit}).
		Count(&count).Error
	return count, err
}

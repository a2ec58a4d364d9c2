package repository

import (
	"errors"

	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultShipTypeRepository struct {
	db *gorm.DB
}

func NewShipTypeRepository(db *gorm.DB) *DefaultShipTypeRepository {
	return &DefaultShipTypeRepository{db: db}
}

func (d *DefaultShipTypeRepository) FindAll() ([]*entity.ShipType, error) {
	var types []*entity.ShipType
	err := d.db.Order("id").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (d *DefaultShipTypeRepository) FindByID(id int64) (*entity.ShipType, error) {
	var st entity.ShipType
	err := d.db.First(&st, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (d *DefaultShipTypeRepository) FindByCode(code string) (*entity.ShipType, error) {
	var st entity.ShipType
	err := d.db.Where("code = ?", code).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (d *DefaultShipTypeRepository) Save(st *entity.ShipType) error {
	return d.db.Save(st).Error
}

func (d *DefaultShipTypeRepository) Delete(st *entity.ShipType) error {
	return d.db.Delete(st).Error
}

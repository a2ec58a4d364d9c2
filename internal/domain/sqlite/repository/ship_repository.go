package repository

import (
	"errors"

	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultShipRepository struct {
	db *gorm.DB
}

func NewShipRepository(db *gorm.DB) *DefaultShipRepository {
	return &DefaultShipRepository{db: db}
}

func (d *DefaultShipRepository) FindAll() ([]*entity.Ship, error) {
	var ships []*entity.Ship
	err := d.db.Order("id").Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

func (d *DefaultShipRepository) FindByID(id int64) (*entity.Ship, error) {
	var ship entity.Ship
	err := d.db.First(&ship, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ship, nil
}

func (d *DefaultShipRepository) FindByCompany(companyID int64) ([]*entity.Ship, error) {
	var ships []*entity.Ship
	err := d.db.Where("company_id = ?", companyID).Order("id").Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

func (d *DefaultShipRepository) FindDeparted() ([]*entity.Ship, error) {
	var ships []*entity.Ship
	err := d.db.Where("status = ?", entity.ShipStatusDeparted).Order("id").Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

func (d *DefaultShipRepository) Save(ship *entity.Ship) error {
	return d.db.Save(ship).Error
}

func (d *DefaultShipRepository) Delete(ship *entity.Ship) error {
	return d.db.Delete(ship).Error
}

// CountByPort counts ships moored at or bound for the port.
func (d *DefaultShipRepository) CountByPort(portID int64) (int64, error) {
	var count int64
	err := d.db.Model(&entity.Ship{}).
		Where("port_id = ? OR destination_port_id = ?", portID, portID).
		Count(&count).Error
	return count, err
}

func (d *DefaultShipRepository) CountByCompany(companyID int64) (int64, error) {
	var count int64
	err := d.db.Model(&entity.Ship{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (d *DefaultShipRepository) CountByTypeCode(code string) (int64, error) {
	var count int64
	err := d.db.Model(&entity.Ship{}).Where("type = ?", code).Count(&count).Error
	return count, err
}

package repository

import (
	"errors"

	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPortRepository struct {
	db *gorm.DB
}

func NewPortRepository(db *gorm.DB) *DefaultPortRepository {
	return &DefaultPortRepository{db: db}
}

func (d *DefaultPortRepository) FindAll() ([]*entity.Port, error) {
	var ports []*entity.Port
	err := d.db.Order("id").Find(&ports).Error
	if err != nil {
		return nil, err
	}
	return ports, nil
}

func (d *DefaultPortRepository) FindByID(id int64) (*entity.Port, error) {
	var port entity.Port
	err := d.db.First(&port, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &port, nil
}

func (d *DefaultPortRepository) Save(port *entity.Port) error {
	return d.db.Save(port).Error
}

func (d *DefaultPortRepository) Delete(port *entity.Port) error {
	return d.db.Delete(port).Error
}

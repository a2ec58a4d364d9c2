package repository

import (
	"errors"

	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *DefaultScheduleRepository {
	return &DefaultScheduleRepository{db: db}
}

func (d *DefaultScheduleRepository) FindAll() ([]*entity.Schedule, error) {
	var schedules []*entity.Schedule
	err := d.db.Order("id").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (d *DefaultScheduleRepository) FindByID(id int64) (*entity.Schedule, error) {
	var s entity.Schedule
	err := d.db.First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (d *DefaultScheduleRepository) FindByShip(shipID int64) ([]*entity.Schedule, error) {
	var schedules []*entity.Schedule
	err := d.db.Where("ship_id = ?", shipID).Order("id").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (d *DefaultScheduleRepository) FindActive() ([]*entity.Schedule, error) {
	var schedules []*entity.Schedule
	err := d.db.Where("is_active = ?", true).Order("id").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (d *DefaultScheduleRepository) Save(s *entity.Schedule) error {
	return d.db.Save(s).Error
}

func (d *DefaultScheduleRepository) Delete(s *entity.Schedule) error {
	return d.db.Delete(s).Error
}

package repository

import (
	"errors"

	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultWeatherRepository struct {
	db *gorm.DB
}

func NewWeatherRepository(db *gorm.DB) *DefaultWeatherRepository {
	return &DefaultWeatherRepository{db: db}
}

func (d *DefaultWeatherRepository) FindAll() ([]*entity.WeatherReport, error) {
	var reports []*entity.WeatherReport
	err := d.db.Order("recorded_at desc").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (d *DefaultWeatherRepository) FindByID(id int64) (*entity.WeatherReport, error) {
	var report entity.WeatherReport
	err := d.db.First(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (d *DefaultWeatherRepository) FindByPort(portID int64) ([]*entity.WeatherReport, error) {
	var reports []*entity.WeatherReport
	err := d.db.Where("port_id = ?", portID).Order("recorded_at desc").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (d *DefaultWeatherRepository) FindLatestByPort(portID int64) (*entity.WeatherReport, error) {
	var report entity.WeatherReport
	err := d.db.Where("port_id = ?", portID).
		Order("recorded_at desc").
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// FindLatestAll returns the newest report per port.
func (d *DefaultWeatherRepository) FindLatestAll() ([]*entity.WeatherReport, error) {
	var reports []*entity.WeatherReport
	// Reports are append-only, so the max id per port is the newest row.
	err := d.db.
		Where("id IN (?)", d.db.Model(&entity.WeatherReport{}).
			Select("MAX(id)").
			Group("port_id")).
		Order("port_id").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (d *DefaultWeatherRepository) Save(report *entity.WeatherReport) error {
	return d.db.Save(report).Error
}

func (d *DefaultWeatherRepository) Delete(report *entity.WeatherReport) error {
	return d.db.Delete(report).Error
}

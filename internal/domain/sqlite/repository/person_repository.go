package repository

import (
	"errors"

	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *DefaultPersonRepository {
	return &DefaultPersonRepository{db: db}
}

func (d *DefaultPersonRepository) FindAll() ([]*entity.Person, error) {
	var people []*entity.Person
	err := d.db.Order("id").Find(&people).Error
	if err != nil {
		return nil, err
	}
	return people, nil
}

func (d *DefaultPersonRepository) FindByID(id int64) (*entity.Person, error) {
	var person entity.Person
	err := d.db.First(&person, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (d *DefaultPersonRepository) Save(person *entity.Person) error {
	return d.db.Save(person).Error
}

func (d *DefaultPersonRepository) Delete(person *entity.Person) error {
	return d.db.Delete(person).Error
}

package repository

import (
	"errors"
	"strings"

	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

// ErrActiveAssignmentExists signals the person already crews a ship. It is
// raised by the partial unique index ux_crew_person_active, which makes the
// insert itself the check-then-insert step.
var ErrActiveAssignmentExists = errors.New("person already has an active assignment")

// CrewMember is an active assignment joined with its person.
type CrewMember struct {
	Assignment entity.CrewAssignment
	Person     entity.Person
}

type DefaultCrewRepository struct {
	db *gorm.DB
}

func NewCrewRepository(db *gorm.DB) *DefaultCrewRepository {
	return &DefaultCrewRepository{db: db}
}

// Assign inserts a new open assignment. Returns ErrActiveAssignmentExists
// when the person already has one.
func (d *DefaultCrewRepository) Assign(a *entity.CrewAssignment) error {
	err := d.db.Create(a).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") {
		return ErrActiveAssignmentExists
	}
	return err
}

// EndActiveByPerson closes the person's open assignment. Returns false when
// none exists.
func (d *DefaultCrewRepository) EndActiveByPerson(personID int64, endUTC string) (bool, error) {
	res := d.db.Model(&entity.CrewAssignment{}).
		Where("person_id = ? AND end_utc IS NULL", personID).
		Update("end_utc", endUTC)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *DefaultCrewRepository) FindActiveByPerson(personID int64) (*entity.CrewAssignment, error) {
	var a entity.CrewAssignment
	err := d.db.Where("person_id = ? AND end_utc IS NULL", personID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (d *DefaultCrewRepository) FindActiveByShip(shipID int64) ([]*entity.CrewAssignment, error) {
	var assignments []*entity.CrewAssignment
	err := d.db.Where("ship_id = ? AND end_utc IS NULL", shipID).Order("id").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindActiveMembersByShip joins open assignments with their people so callers
// can inspect ranks.
func (d *DefaultCrewRepository) FindActiveMembersByShip(shipID int64) ([]*CrewMember, error) {
	assignments, err := d.FindActiveByShip(shipID)
	if err != nil {
		return nil, err
	}

	members := make([]*CrewMember, 0, len(assignments))
	for _, a := range assignments {
		var person entity.Person
		err := d.db.First(&person, a.PersonID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		members = append(members, &CrewMember{Assignment: *a, Person: person})
	}
	return members, nil
}

// CountByShip counts all assignment rows for the ship, open or closed. Used
// as the delete guard: history blocks ship removal.
func (d *DefaultCrewRepository) CountByShip(shipID int64) (int64, error) {
	var count int64
	err := d.db.Model(&entity.CrewAssignment{}).Where("ship_id = ?", shipID).Count(&count).Error
	return count, err
}

func (d *DefaultCrewRepository) CountByPerson(personID int64) (int64, error) {
	var count int64
	err := d.db.Model(&entity.CrewAssignment{}).Where("person_id = ?", personID).Count(&count).Error
	return count, err
}

package repository

import (
	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

// LogFilter narrows an activity log query. Zero values mean "no filter".
type LogFilter struct {
	EventType string
	Level     string
	Entity    string
	Limit     int
	Offset    int
}

type DefaultActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *DefaultActivityLogRepository {
	return &DefaultActivityLogRepository{db: db}
}

func (d *DefaultActivityLogRepository) Append(row *entity.ActivityLog) error {
	return d.db.Create(row).Error
}

func (d *DefaultActivityLogRepository) Find(filter LogFilter) ([]*entity.ActivityLog, error) {
	q := d.db.Model(&entity.ActivityLog{}).Order("id desc")

	if filter.EventType != "" {
		q = q.Where("event_type = ?", filter.EventType)
	}
	if filter.Level != "" {
		q = q.Where("level = ?", filter.Level)
	}
	if filter.Entity != "" {
		q = q.Where("entity = ?", filter.Entity)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var rows []*entity.ActivityLog
	err := q.Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

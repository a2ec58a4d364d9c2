package service

import (
	"fmt"

	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/domain/sqlite/repository"
	"fleetcommander/internal/utils"

	"github.com/labstack/gommon/log"
)

type ActivityRepository interface {
	Append(row *entity.ActivityLog) error
	Find(filter repository.LogFilter) ([]*entity.ActivityLog, error)
}

// ActivityRecorder appends audit rows for mutating operations. A nil recorder
// is a no-op so tests can skip wiring it; append failures are logged, never
// surfaced, since audit writes must not fail the operation they describe.
type ActivityRecorder struct {
	Repo ActivityRepository
}

func NewActivityRecorder(repo ActivityRepository) *ActivityRecorder {
	return &ActivityRecorder{Repo: repo}
}

func (r *ActivityRecorder) Record(level, eventType, entityName string, entityID int64, format string, args ...any) {
	if r == nil || r.Repo == nil {
		return
	}

	row := &entity.ActivityLog{
		Timestamp: utils.FormatTime(utils.NowUTC()),
		Level:     level,
		EventType: eventType,
		Entity:    entityName,
		EntityID:  entityID,
		Message:   fmt.Sprintf(format, args...),
	}
	if err := r.Repo.Append(row); err != nil {
		log.Errorf("failed to append activity log %s: %v", eventType, err)
	}
}

func (r *ActivityRecorder) Info(eventType, entityName string, entityID int64, format string, args ...any) {
	r.Record(entity.LogLevelInfo, eventType, entityName, entityID, format, args...)
}

func (r *ActivityRecorder) Warn(eventType, entityName string, entityID int64, format string, args ...any) {
	r.Record(entity.LogLevelWarning, eventType, entityName, entityID, format, args...)
}

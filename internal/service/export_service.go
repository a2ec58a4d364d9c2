package service

import (
	"fleetcommander/internal/domain/sqlite/repository"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type ExportRepository interface {
	Snapshot() (*repository.ExportSnapshot, error)
}

type DefaultExportService struct {
	ExportRepo ExportRepository
	Activity   *ActivityRecorder
}

func NewExportService(exportRepo ExportRepository, activity *ActivityRecorder) *DefaultExportService {
	return &DefaultExportService{ExportRepo: exportRepo, Activity: activity}
}

// Export dumps the whole database as one consistent snapshot.
func (s *DefaultExportService) Export() (*repository.ExportSnapshot, apierror.ErrorResponse) {
	snap, err := s.ExportRepo.Snapshot()
	if err != nil {
		log.Errorf("failed to build export snapshot: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Activity.Info("export.requested", "export", 0, "full database export served")
	return snap, nil
}

package service

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/sqlite/repository"
	"fleetcommander/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type DefaultLogService struct {
	LogRepo ActivityRepository
}

func NewLogService(logRepo ActivityRepository) *DefaultLogService {
	return &DefaultLogService{LogRepo: logRepo}
}

// GetLogs serves audit rows, newest first.
func (s *DefaultLogService) GetLogs(filter repository.LogFilter) ([]*contract.ActivityLogResponse, apierror.ErrorResponse) {
	rows, err := s.LogRepo.Find(filter)
	if err != nil {
		log.Errorf("failed to fetch activity logs: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ActivityLogResponse, len(rows))
	for i, row := range rows {
		resp[i] = &contract.ActivityLogResponse{
			ID:        row.ID,
			Timestamp: row.Timestamp,
			Level:     row.Level,
			EventType: row.EventType,
			Entity:    row.Entity,
			EntityID:  row.EntityID,
			Message:   row.Message,
		}
	}
	return resp, nil
}

// GetLogsCSV renders the same rows as a CSV document for download.
func (s *DefaultLogService) GetLogsCSV(filter repository.LogFilter) ([]byte, apierror.ErrorResponse) {
	rows, err := s.LogRepo.Find(filter)
	if err != nil {
		log.Errorf("failed to fetch activity logs: %v", err)
		return nil, apierror.InternalServerError
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "ts", "level", "event_type", "entity", "entity_id", "message"}); err != nil {
		log.Errorf("failed to write csv header: %v", err)
		return nil, apierror.InternalServerError
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Timestamp,
			row.Level,
			row.EventType,
			row.Entity,
			strconv.FormatInt(row.EntityID, 10),
			row.Message,
		}
		if err := w.Write(record); err != nil {
			log.Errorf("failed to write csv row: %v", err)
			return nil, apierror.InternalServerError
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Errorf("failed to flush csv: %v", err)
		return nil, apierror.InternalServerError
	}
	return buf.Bytes(), nil
}

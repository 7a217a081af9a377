package system

import (
	"context"

	"github.com/shopops/backend/internal/domain/system"
)

// LogService answers audit trail queries
type LogService struct {
	logRepo system.OperationLogRepository
}

// NewLogService creates a new LogService
func NewLogService(logRepo system.OperationLogRepository) *LogService {
	return &LogService{logRepo: logRepo}
}

// Search lists audit records, newest first
func (s *LogService) Search(ctx context.Context, filter OperationLogListFilter) ([]OperationLogResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	logs, total, err := s.logRepo.Search(ctx, system.OperationLogQuery{
		UserID:     filter.UserID,
		ActionType: filter.ActionType,
		TableName:  filter.TableName,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OperationLogResponse, len(logs))
	for i := range logs {
		responses[i] = ToOperationLogResponse(&logs[i])
	}
	return responses, total, nil
}

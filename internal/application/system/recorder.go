package system

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/system"
	"go.uber.org/zap"
)

// Recorder writes operation log entries for mutating actions. A write
// failure never fails the action itself; it is logged and dropped.
type Recorder struct {
	logRepo system.OperationLogRepository
	logger  *zap.Logger
}

// NewRecorder creates an operation log recorder
func NewRecorder(logRepo system.OperationLogRepository, logger *zap.Logger) *Recorder {
	return &Recorder{logRepo: logRepo, logger: logger}
}

// Record appends an operation log entry. oldValue and newValue are
// serialized to JSON; nil snapshots are stored empty.
func (r *Recorder) Record(ctx context.Context, userID *uuid.UUID, actionType, tableName, recordID string, oldValue, newValue interface{}) {
	if r == nil || r.logRepo == nil {
		return
	}

	entry, err := system.NewOperationLog(userID, actionType, tableName, recordID)
	if err != nil {
		r.logger.Warn("Failed to build operation log entry", zap.Error(err))
		return
	}
	entry.WithChange(encodeSnapshot(oldValue), encodeSnapshot(newValue))

	if err := r.logRepo.Save(ctx, entry); err != nil {
		r.logger.Warn("Failed to save operation log entry",
			zap.String("action_type", actionType),
			zap.String("table_name", tableName),
			zap.Error(err))
	}
}

func encodeSnapshot(value interface{}) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}

package system

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// OperationLog records a mutating action for auditing
type OperationLog struct {
	shared.BaseEntity
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	ActionType string     `gorm:"type:varchar(50);not null;index"`
	TableName_ string     `gorm:"column:table_name;type:varchar(100);index"`
	RecordID   string     `gorm:"type:varchar(100)"`
	OldValue   string     `gorm:"type:text"`
	NewValue   string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OperationLog) TableName() string {
	return "operation_logs"
}

// NewOperationLog records an action
func NewOperationLog(userID *uuid.UUID, actionType, tableName, recordID string) (*OperationLog, error) {
	if strings.TrimSpace(actionType) == "" {
		return nil, shared.NewDomainError("INVALID_ACTION", "Action type cannot be empty")
	}
	return &OperationLog{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ActionType: actionType,
		TableName_: tableName,
		RecordID:   recordID,
	}, nil
}

// WithChange attaches before/after snapshots
func (l *OperationLog) WithChange(oldValue, newValue string) *OperationLog {
	l.OldValue = oldValue
	l.NewValue = newValue
	return l
}

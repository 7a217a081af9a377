package bulk

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// ImportTarget names what a spreadsheet is imported into
type ImportTarget string

const (
	ImportTargetWarehouseProducts ImportTarget = "warehouse_products"
	ImportTargetShopProducts      ImportTarget = "shop_products"
	ImportTargetInventory         ImportTarget = "inventory"
	ImportTargetSales             ImportTarget = "sales"
	ImportTargetDataTable         ImportTarget = "data_table"
)

// IsValid checks if the import target is known
func (t ImportTarget) IsValid() bool {
	switch t {
	case ImportTargetWarehouseProducts, ImportTargetShopProducts,
		ImportTargetInventory, ImportTargetSales, ImportTargetDataTable:
		return true
	}
	return false
}

// ImportMode controls what happens to rows already in the target
type ImportMode string

const (
	// ImportModeAppend adds imported rows after the existing ones
	ImportModeAppend ImportMode = "append"
	// ImportModeOverwrite deletes every existing row first. Destructive,
	// so callers must pass an explicit confirmation.
	ImportModeOverwrite ImportMode = "overwrite"
)

// ParseImportMode parses an import mode tag
func ParseImportMode(s string) (ImportMode, error) {
	switch ImportMode(strings.ToLower(strings.TrimSpace(s))) {
	case ImportModeAppend, ImportMode(""):
		return ImportModeAppend, nil
	case ImportModeOverwrite:
		return ImportModeOverwrite, nil
	default:
		return "", shared.NewDomainError("INVALID_IMPORT_MODE", fmt.Sprintf("Unknown import mode %q", s))
	}
}

// ErrorStrategy controls how row failures are handled
type ErrorStrategy string

const (
	// ErrorStrategySkip records the failure and keeps going
	ErrorStrategySkip ErrorStrategy = "skip"
	// ErrorStrategyAbort stops at the first failure; rows committed
	// before it remain
	ErrorStrategyAbort ErrorStrategy = "abort"
)

// ParseErrorStrategy parses an error strategy tag
func ParseErrorStrategy(s string) (ErrorStrategy, error) {
	switch ErrorStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case ErrorStrategySkip, ErrorStrategy(""):
		return ErrorStrategySkip, nil
	case ErrorStrategyAbort:
		return ErrorStrategyAbort, nil
	default:
		return "", shared.NewDomainError("INVALID_ERROR_STRATEGY", fmt.Sprintf("Unknown error strategy %q", s))
	}
}

// ImportStatus is the lifecycle state of an import run
type ImportStatus string

const (
	ImportStatusPending        ImportStatus = "pending"
	ImportStatusProcessing     ImportStatus = "processing"
	ImportStatusSuccess        ImportStatus = "success"
	ImportStatusPartialSuccess ImportStatus = "partial_success"
	ImportStatusFailed         ImportStatus = "failed"
)

// IsTerminal returns true for end states
func (s ImportStatus) IsTerminal() bool {
	return s == ImportStatusSuccess || s == ImportStatusPartialSuccess || s == ImportStatusFailed
}

// ClassifyOutcome maps row counts to the terminal status.
// Aborted runs are always failed, regardless of committed rows.
func ClassifyOutcome(imported, total int, aborted bool) ImportStatus {
	switch {
	case aborted:
		return ImportStatusFailed
	case total > 0 && imported == total:
		return ImportStatusSuccess
	case imported > 0:
		return ImportStatusPartialSuccess
	default:
		return ImportStatusFailed
	}
}

// RowError is one failed row of an import. The collection returned to the
// caller is never truncated; partial and failed outcomes carry every error.
type RowError struct {
	Line    int    `json:"line"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d, field %q: %s", e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Line, e.Message)
}

// ImportHistory tracks one spreadsheet import run
type ImportHistory struct {
	shared.BaseEntity
	UserID       *uuid.UUID    `gorm:"type:uuid;index"`
	FileName     string        `gorm:"type:varchar(255);not null"`
	FileSize     int64         `gorm:"not null;default:0"`
	Target       ImportTarget  `gorm:"type:varchar(50);not null;index"`
	Mode         ImportMode    `gorm:"type:varchar(20);not null;default:'append'"`
	Strategy     ErrorStrategy `gorm:"type:varchar(20);not null;default:'skip'"`
	Status       ImportStatus  `gorm:"type:varchar(30);not null;default:'pending'"`
	TotalRows    int           `gorm:"not null;default:0"`
	SuccessRows  int           `gorm:"not null;default:0"`
	ErrorMessage string        `gorm:"type:text"`
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// TableName returns the table name for GORM
func (ImportHistory) TableName() string {
	return "import_histories"
}

// NewImportHistory creates a pending import record
func NewImportHistory(userID uuid.UUID, fileName string, fileSize int64, target ImportTarget, mode ImportMode, strategy ErrorStrategy) (*ImportHistory, error) {
	if fileName == "" {
		return nil, shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if fileSize < 0 {
		return nil, shared.NewDomainError("INVALID_FILE_SIZE", "File size cannot be negative")
	}
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_TARGET", fmt.Sprintf("Unknown import target %q", string(target)))
	}
	if _, err := ParseImportMode(string(mode)); err != nil {
		return nil, err
	}
	if _, err := ParseErrorStrategy(string(strategy)); err != nil {
		return nil, err
	}

	return &ImportHistory{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     &userID,
		FileName:   fileName,
		FileSize:   fileSize,
		Target:     target,
		Mode:       mode,
		Strategy:   strategy,
		Status:     ImportStatusPending,
	}, nil
}

// StartProcessing marks the run as started
func (h *ImportHistory) StartProcessing(totalRows int) error {
	if h.Status != ImportStatusPending {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot start processing from state %q", h.Status))
	}
	if totalRows < 0 {
		return shared.NewDomainError("INVALID_TOTAL_ROWS", "Total rows cannot be negative")
	}
	h.Status = ImportStatusProcessing
	h.TotalRows = totalRows
	now := time.Now()
	h.StartedAt = &now
	h.UpdatedAt = now
	return nil
}

// Finish records the outcome of the run
func (h *ImportHistory) Finish(imported int, rowErrors []RowError, aborted bool) error {
	if h.Status != ImportStatusProcessing {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot finish from state %q", h.Status))
	}
	h.Status = ClassifyOutcome(imported, h.TotalRows, aborted)
	h.SuccessRows = imported
	h.ErrorMessage = encodeRowErrors(rowErrors)
	now := time.Now()
	h.CompletedAt = &now
	h.UpdatedAt = now
	return nil
}

// FailEarly marks a run that never started processing rows
func (h *ImportHistory) FailEarly(message string) error {
	if h.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot fail from terminal state %q", h.Status))
	}
	h.Status = ImportStatusFailed
	h.ErrorMessage = message
	now := time.Now()
	h.CompletedAt = &now
	h.UpdatedAt = now
	return nil
}

// RowErrors decodes the stored error list
func (h *ImportHistory) RowErrors() ([]RowError, error) {
	if h.ErrorMessage == "" || h.ErrorMessage == "[]" {
		return nil, nil
	}
	var errs []RowError
	if err := json.Unmarshal([]byte(h.ErrorMessage), &errs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal row errors: %w", err)
	}
	return errs, nil
}

// SuccessRate returns the success rate as a percentage (0-100)
func (h *ImportHistory) SuccessRate() float64 {
	if h.TotalRows == 0 {
		return 0
	}
	return float64(h.SuccessRows) / float64(h.TotalRows) * 100
}

// Duration returns how long the run took so far
func (h *ImportHistory) Duration() time.Duration {
	if h.StartedAt == nil {
		return 0
	}
	end := time.Now()
	if h.CompletedAt != nil {
		end = *h.CompletedAt
	}
	return end.Sub(*h.StartedAt)
}

func encodeRowErrors(errs []RowError) string {
	if len(errs) == 0 {
		return ""
	}
	data, err := json.Marshal(errs)
	if err != nil {
		return fmt.Sprintf("%d row errors", len(errs))
	}
	return string(data)
}

package importing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/bulk"
	"github.com/shopops/backend/internal/domain/shared"
)

// HistoryService exposes read access to import run records
type HistoryService struct {
	historyRepo bulk.ImportHistoryRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(historyRepo bulk.ImportHistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// GetByID retrieves one import run with its decoded row errors
func (s *HistoryService) GetByID(ctx context.Context, historyID uuid.UUID) (*HistoryResponse, error) {
	history, err := s.historyRepo.FindByID(ctx, historyID)
	if err != nil {
		return nil, err
	}
	response := ToHistoryResponse(history)
	return &response, nil
}

// List retrieves import runs newest first with filtering and pagination
func (s *HistoryService) List(ctx context.Context, filter HistoryListFilter) ([]HistoryResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.UserID != nil {
		domainFilter.Filters["user_id"] = *filter.UserID
	}
	if filter.Target != "" {
		domainFilter.Filters["target"] = filter.Target
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	histories, err := s.historyRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.historyRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]HistoryResponse, len(histories))
	for i := range histories {
		responses[i] = ToHistoryResponse(&histories[i])
	}
	return responses, total, nil
}

// ListRecent returns the latest import runs across all users
func (s *HistoryService) ListRecent(ctx context.Context, limit int) ([]HistoryResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	histories, err := s.historyRepo.FindRecent(ctx, 0, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]HistoryResponse, len(histories))
	for i := range histories {
		responses[i] = ToHistoryResponse(&histories[i])
	}
	return responses, nil
}

// ListByUser returns a user's import runs newest first
func (s *HistoryService) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]HistoryResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	histories, err := s.historyRepo.FindByUser(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	responses := make([]HistoryResponse, len(histories))
	for i := range histories {
		responses[i] = ToHistoryResponse(&histories[i])
	}
	return responses, nil
}

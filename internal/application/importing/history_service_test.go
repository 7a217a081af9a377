package importing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopops/backend/internal/domain/bulk"
	"github.com/shopops/backend/internal/domain/shared"
)

func finishedHistory(t *testing.T, userID uuid.UUID, imported, total int, rowErrors []bulk.RowError) *bulk.ImportHistory {
	t.Helper()
	history, err := bulk.NewImportHistory(userID, "upload.csv", 1024, bulk.ImportTargetDataTable, bulk.ImportModeAppend, bulk.ErrorStrategySkip)
	require.NoError(t, err)
	require.NoError(t, history.StartProcessing(total))
	require.NoError(t, history.Finish(imported, rowErrors, false))
	return history
}

func TestHistoryServiceGetByID(t *testing.T) {
	ctx := context.Background()

	historyRepo := new(MockImportHistoryRepository)
	service := NewHistoryService(historyRepo)

	history := finishedHistory(t, uuid.New(), 8, 10, []bulk.RowError{
		{Line: 4, Field: "price", Message: "\"cheap\" is not a valid price"},
		{Line: 7, Message: "missing required field"},
	})
	historyRepo.On("FindByID", ctx, history.ID).Return(history, nil)

	resp, err := service.GetByID(ctx, history.ID)

	require.NoError(t, err)
	assert.Equal(t, "partial_success", resp.Status)
	assert.Equal(t, 10, resp.TotalRows)
	assert.Equal(t, 8, resp.SuccessRows)
	assert.Equal(t, float64(80), resp.SuccessRate)
	// The stored error list round-trips through its JSON encoding
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, 4, resp.Errors[0].Line)
	assert.Equal(t, "price", resp.Errors[0].Field)
}

func TestHistoryServiceList(t *testing.T) {
	ctx := context.Background()

	historyRepo := new(MockImportHistoryRepository)
	service := NewHistoryService(historyRepo)

	userID := uuid.New()
	history := finishedHistory(t, userID, 5, 5, nil)

	matchFilter := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 1 && f.PageSize == 20 &&
			f.OrderBy == "created_at" && f.OrderDir == "desc" &&
			f.Filters["target"] == "data_table"
	})
	historyRepo.On("FindAll", ctx, matchFilter).Return([]bulk.ImportHistory{*history}, nil)
	historyRepo.On("Count", ctx, matchFilter).Return(int64(1), nil)

	histories, total, err := service.List(ctx, HistoryListFilter{Target: "data_table"})

	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "success", histories[0].Status)
}

func TestHistoryServiceListRecent(t *testing.T) {
	ctx := context.Background()

	historyRepo := new(MockImportHistoryRepository)
	service := NewHistoryService(historyRepo)

	history := finishedHistory(t, uuid.New(), 5, 5, nil)
	historyRepo.On("FindRecent", ctx, 0, 10).Return([]bulk.ImportHistory{*history}, nil)

	histories, err := service.ListRecent(ctx, 0)

	require.NoError(t, err)
	require.Len(t, histories, 1)
}

func TestHistoryServiceListByUser(t *testing.T) {
	ctx := context.Background()

	historyRepo := new(MockImportHistoryRepository)
	service := NewHistoryService(historyRepo)

	userID := uuid.New()
	history := finishedHistory(t, userID, 5, 5, nil)
	historyRepo.On("FindByUser", ctx, userID, 20, 20).Return([]bulk.ImportHistory{*history}, nil)

	histories, err := service.ListByUser(ctx, userID, 2, 20)

	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, &userID, histories[0].UserID)
}

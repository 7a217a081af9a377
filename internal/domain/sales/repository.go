package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopops/backend/internal/domain/shared"
)

// Range filters sales aggregations
type Range struct {
	Start      time.Time
	End        time.Time
	ShopID     *uuid.UUID
	PlatformID *uuid.UUID
}

// Summary aggregates sales over a range
type Summary struct {
	TotalAmount    decimal.Decimal
	TotalOrders    int64
	TotalQuantity  int64
	AvgOrderAmount decimal.Decimal
	ActiveShops    int64
}

// TrendPoint is one day of the sales trend
type TrendPoint struct {
	Date     time.Time
	Amount   decimal.Decimal
	Quantity int64
}

// RankingEntry is one row of a top-N ranking
type RankingEntry struct {
	ID     uuid.UUID
	Label  string
	Amount decimal.Decimal
	Count  int64
}

// SaleRepository defines persistence operations for sales
type SaleRepository interface {
	shared.Repository[Sale]

	// Summarize aggregates totals over a range
	Summarize(ctx context.Context, r Range) (*Summary, error)

	// Trend returns the per-day series over a range, ordered by date
	Trend(ctx context.Context, r Range) ([]TrendPoint, error)

	// TopProducts ranks shop products by amount over a range
	TopProducts(ctx context.Context, r Range, limit int) ([]RankingEntry, error)

	// TopShops ranks shops by amount over a range
	TopShops(ctx context.Context, r Range, limit int) ([]RankingEntry, error)
}

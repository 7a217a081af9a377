package report

import (
	"time"

	"github.com/google/uuid"
)

// DateRangeFilter scopes dashboard queries. Dates are inclusive; an empty
// range defaults to the trailing 30 days.
type DateRangeFilter struct {
	StartDate  string     `form:"start_date"` // 2006-01-02
	EndDate    string     `form:"end_date"`
	ShopID     *uuid.UUID `form:"shop_id"`
	PlatformID *uuid.UUID `form:"platform_id"`
}

// SummaryResponse aggregates sales over a range
type SummaryResponse struct {
	TotalSales     float64   `json:"total_sales"`
	TotalOrders    int64     `json:"total_orders"`
	TotalQuantity  int64     `json:"total_quantity"`
	AvgOrderAmount float64   `json:"avg_order_amount"`
	ActiveShops    int64     `json:"active_shops"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
}

// TrendPointResponse is one day of the sales trend
type TrendPointResponse struct {
	Date     string  `json:"date"` // 2006-01-02
	Amount   float64 `json:"amount"`
	Quantity int64   `json:"quantity"`
}

// RankingEntryResponse is one row of a top-N ranking
type RankingEntryResponse struct {
	ID     uuid.UUID `json:"id"`
	Label  string    `json:"label"`
	Amount float64   `json:"amount"`
	Count  int64     `json:"count"`
}

// RankingFilter scopes a ranking query
type RankingFilter struct {
	DateRangeFilter
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// MetricRequest is the flexible dashboard metric query
type MetricRequest struct {
	Metric string `json:"metric" binding:"required,oneof=sales_total sales_by_date"`
	DateRangeFilter
}

// MetricResponse carries the result of a flexible metric query
type MetricResponse struct {
	Metric string      `json:"metric"`
	Value  interface{} `json:"value"`
}

package report

import (
	"context"
	"time"

	"github.com/shopops/backend/internal/domain/dataset"
	"github.com/shopops/backend/internal/domain/sales"
	"github.com/shopops/backend/internal/domain/shared"
)

// DefaultRangeDays is the trailing window used when no range is given
const DefaultRangeDays = 30

// Service answers dashboard queries over sales
type Service struct {
	saleRepo sales.SaleRepository
}

// NewService creates a new report Service
func NewService(saleRepo sales.SaleRepository) *Service {
	return &Service{saleRepo: saleRepo}
}

// Summary aggregates sales over a range
func (s *Service) Summary(ctx context.Context, filter DateRangeFilter) (*SummaryResponse, error) {
	r, err := toRange(filter)
	if err != nil {
		return nil, err
	}

	summary, err := s.saleRepo.Summarize(ctx, r)
	if err != nil {
		return nil, err
	}

	return &SummaryResponse{
		TotalSales:     summary.TotalAmount.InexactFloat64(),
		TotalOrders:    summary.TotalOrders,
		TotalQuantity:  summary.TotalQuantity,
		AvgOrderAmount: summary.AvgOrderAmount.InexactFloat64(),
		ActiveShops:    summary.ActiveShops,
		StartDate:      r.Start,
		EndDate:        r.End,
	}, nil
}

// Trend returns the per-day amount and quantity series over a range
func (s *Service) Trend(ctx context.Context, filter DateRangeFilter) ([]TrendPointResponse, error) {
	r, err := toRange(filter)
	if err != nil {
		return nil, err
	}

	points, err := s.saleRepo.Trend(ctx, r)
	if err != nil {
		return nil, err
	}

	responses := make([]TrendPointResponse, len(points))
	for i, p := range points {
		responses[i] = TrendPointResponse{
			Date:     p.Date.Format("2006-01-02"),
			Amount:   p.Amount.InexactFloat64(),
			Quantity: p.Quantity,
		}
	}
	return responses, nil
}

// TopProducts ranks shop products by sales amount over a range
func (s *Service) TopProducts(ctx context.Context, filter RankingFilter) ([]RankingEntryResponse, error) {
	r, err := toRange(filter.DateRangeFilter)
	if err != nil {
		return nil, err
	}
	entries, err := s.saleRepo.TopProducts(ctx, r, filter.Limit)
	if err != nil {
		return nil, err
	}
	return toRankingResponses(entries), nil
}

// TopShops ranks shops by sales amount over a range
func (s *Service) TopShops(ctx context.Context, filter RankingFilter) ([]RankingEntryResponse, error) {
	r, err := toRange(filter.DateRangeFilter)
	if err != nil {
		return nil, err
	}
	entries, err := s.saleRepo.TopShops(ctx, r, filter.Limit)
	if err != nil {
		return nil, err
	}
	return toRankingResponses(entries), nil
}

// Metric answers the flexible metric query
func (s *Service) Metric(ctx context.Context, req MetricRequest) (*MetricResponse, error) {
	switch req.Metric {
	case "sales_total":
		summary, err := s.Summary(ctx, req.DateRangeFilter)
		if err != nil {
			return nil, err
		}
		return &MetricResponse{Metric: req.Metric, Value: summary.TotalSales}, nil
	case "sales_by_date":
		trend, err := s.Trend(ctx, req.DateRangeFilter)
		if err != nil {
			return nil, err
		}
		return &MetricResponse{Metric: req.Metric, Value: trend}, nil
	default:
		return nil, shared.NewDomainError("INVALID_METRIC", "Unknown metric")
	}
}

func toRange(filter DateRangeFilter) (sales.Range, error) {
	end := time.Now().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -DefaultRangeDays)

	if filter.StartDate != "" {
		parsed, ok := dataset.ParseDate(filter.StartDate)
		if !ok {
			return sales.Range{}, shared.NewDomainError("INVALID_DATE", "start_date is not a recognized date")
		}
		start = parsed
	}
	if filter.EndDate != "" {
		parsed, ok := dataset.ParseDate(filter.EndDate)
		if !ok {
			return sales.Range{}, shared.NewDomainError("INVALID_DATE", "end_date is not a recognized date")
		}
		end = parsed
	}
	if end.Before(start) {
		return sales.Range{}, shared.NewDomainError("INVALID_RANGE", "end_date is before start_date")
	}

	return sales.Range{
		Start:      start,
		End:        end,
		ShopID:     filter.ShopID,
		PlatformID: filter.PlatformID,
	}, nil
}

func toRankingResponses(entries []sales.RankingEntry) []RankingEntryResponse {
	responses := make([]RankingEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = RankingEntryResponse{
			ID:     e.ID,
			Label:  e.Label,
			Amount: e.Amount.InexactFloat64(),
			Count:  e.Count,
		}
	}
	return responses
}

package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopops/backend/internal/domain/sales"
	"github.com/shopops/backend/internal/domain/shared"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll finds all sales matching the filter
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Sale, error) {
	var records []sales.Sale
	query := r.applyFilter(r.db.WithContext(ctx).Model(&sales.Sale{}), filter)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save creates or updates a sale
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

// Delete deletes a sale
func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&sales.Sale{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts sales matching the filter
func (r *GormSaleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyRangeFilters(r.db.WithContext(ctx).Model(&sales.Sale{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyRange narrows a sales query to the date range and optional shop or
// platform. The platform constraint joins through shops.
func (r *GormSaleRepository) applyRange(query *gorm.DB, rng sales.Range) *gorm.DB {
	if !rng.Start.IsZero() {
		query = query.Where("sales.sale_date >= ?", rng.Start)
	}
	if !rng.End.IsZero() {
		query = query.Where("sales.sale_date <= ?", rng.End)
	}
	if rng.ShopID != nil {
		query = query.Where("sales.shop_id = ?", *rng.ShopID)
	}
	if rng.PlatformID != nil {
		query = query.
			Joins("JOIN shops ON shops.id = sales.shop_id").
			Where("shops.platform_id = ?", *rng.PlatformID)
	}
	return query
}

// Summarize aggregates totals over a range
func (r *GormSaleRepository) Summarize(ctx context.Context, rng sales.Range) (*sales.Summary, error) {
	var row struct {
		TotalAmount   decimal.Decimal
		TotalOrders   int64
		TotalQuantity int64
		ActiveShops   int64
	}

	query := r.applyRange(r.db.WithContext(ctx).Model(&sales.Sale{}), rng)
	if err := query.
		Select("COALESCE(SUM(sales.amount), 0) AS total_amount, " +
			"COUNT(*) AS total_orders, " +
			"COALESCE(SUM(sales.quantity), 0) AS total_quantity, " +
			"COUNT(DISTINCT sales.shop_id) AS active_shops").
		Scan(&row).Error; err != nil {
		return nil, err
	}

	summary := &sales.Summary{
		TotalAmount:   row.TotalAmount,
		TotalOrders:   row.TotalOrders,
		TotalQuantity: row.TotalQuantity,
		ActiveShops:   row.ActiveShops,
	}
	if row.TotalOrders > 0 {
		summary.AvgOrderAmount = row.TotalAmount.Div(decimal.NewFromInt(row.TotalOrders)).Round(2)
	}
	return summary, nil
}

// Trend returns the per-day series over a range, ordered by date
func (r *GormSaleRepository) Trend(ctx context.Context, rng sales.Range) ([]sales.TrendPoint, error) {
	var rows []struct {
		Date     time.Time
		Amount   decimal.Decimal
		Quantity int64
	}

	query := r.applyRange(r.db.WithContext(ctx).Model(&sales.Sale{}), rng)
	if err := query.
		Select("sales.sale_date AS date, " +
			"COALESCE(SUM(sales.amount), 0) AS amount, " +
			"COALESCE(SUM(sales.quantity), 0) AS quantity").
		Group("sales.sale_date").
		Order("sales.sale_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	points := make([]sales.TrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, sales.TrendPoint{
			Date:     row.Date,
			Amount:   row.Amount,
			Quantity: row.Quantity,
		})
	}
	return points, nil
}

// rankingRow is the scan target of ranking aggregations
type rankingRow struct {
	ID     uuid.UUID
	Label  string
	Amount decimal.Decimal
	Count  int64
}

// TopProducts ranks shop products by amount over a range
func (r *GormSaleRepository) TopProducts(ctx context.Context, rng sales.Range, limit int) ([]sales.RankingEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []rankingRow
	query := r.applyRange(r.db.WithContext(ctx).Model(&sales.Sale{}), rng)
	if err := query.
		Joins("JOIN shop_products ON shop_products.id = sales.shop_product_id").
		Select("sales.shop_product_id AS id, " +
			"shop_products.title AS label, " +
			"COALESCE(SUM(sales.amount), 0) AS amount, " +
			"COALESCE(SUM(sales.quantity), 0) AS count").
		Group("sales.shop_product_id, shop_products.title").
		Order("amount DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toRankingEntries(rows), nil
}

// TopShops ranks shops by amount over a range
func (r *GormSaleRepository) TopShops(ctx context.Context, rng sales.Range, limit int) ([]sales.RankingEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []rankingRow
	query := r.applyRange(r.db.WithContext(ctx).Model(&sales.Sale{}), rng)
	if err := query.
		Joins("JOIN shops AS ranked_shops ON ranked_shops.id = sales.shop_id").
		Select("sales.shop_id AS id, " +
			"ranked_shops.name AS label, " +
			"COALESCE(SUM(sales.amount), 0) AS amount, " +
			"COUNT(*) AS count").
		Group("sales.shop_id, ranked_shops.name").
		Order("amount DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toRankingEntries(rows), nil
}

func toRankingEntries(rows []rankingRow) []sales.RankingEntry {
	entries := make([]sales.RankingEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, sales.RankingEntry{
			ID:     row.ID,
			Label:  row.Label,
			Amount: row.Amount,
			Count:  row.Count,
		})
	}
	return entries
}

// applyFilter applies filter options to the query
func (r *GormSaleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyRangeFilters(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, SaleSortFields, "sale_date")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("sale_date DESC, created_at DESC")
	}

	return query
}

// applyRangeFilters applies map-based filters without pagination
func (r *GormSaleRepository) applyRangeFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("order_id ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "shop_id":
			query = query.Where("shop_id = ?", value)
		case "shop_product_id":
			query = query.Where("shop_product_id = ?", value)
		case "start_date":
			query = query.Where("sale_date >= ?", value)
		case "end_date":
			query = query.Where("sale_date <= ?", value)
		}
	}

	return query
}

// Ensure GormSaleRepository implements SaleRepository
var _ sales.SaleRepository = (*GormSaleRepository)(nil)

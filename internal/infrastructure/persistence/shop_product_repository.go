package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopops/backend/internal/domain/catalog"
	"github.com/shopops/backend/internal/domain/shared"
)

// GormShopProductRepository implements ShopProductRepository using GORM
type GormShopProductRepository struct {
	db *gorm.DB
}

// NewGormShopProductRepository creates a new GormShopProductRepository
func NewGormShopProductRepository(db *gorm.DB) *GormShopProductRepository {
	return &GormShopProductRepository{db: db}
}

// FindByID finds a shop product by its ID
func (r *GormShopProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ShopProduct, error) {
	var product catalog.ShopProduct
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds all shop products matching the filter
func (r *GormShopProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ShopProduct, error) {
	var products []catalog.ShopProduct
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.ShopProduct{}), filter)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// shopProductJoinRow is the scan target of the listing join
type shopProductJoinRow struct {
	catalog.ShopProduct
	ShopName             string
	PlatformName         string
	SKU                  string
	WarehouseProductName string
	CostPrice            decimal.Decimal
}

// Search lists shop products with joined shop, platform, and warehouse
// product display fields. The total is counted store-side.
func (r *GormShopProductRepository) Search(ctx context.Context, q catalog.ShopProductQuery) ([]catalog.ShopProductListItem, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&catalog.ShopProduct{}).
		Joins("JOIN shops ON shops.id = shop_products.shop_id").
		Joins("JOIN platforms ON platforms.id = shops.platform_id").
		Joins("JOIN warehouse_products ON warehouse_products.id = shop_products.warehouse_product_id")

	if q.ShopID != nil {
		base = base.Where("shop_products.shop_id = ?", *q.ShopID)
	}
	if q.Status != nil {
		base = base.Where("shop_products.status = ?", *q.Status)
	}
	if q.Keyword != "" {
		pattern := "%" + q.Keyword + "%"
		base = base.Where("shop_products.title ILIKE ? OR warehouse_products.sku ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Session(&gorm.Session{}).
		Select("shop_products.*, " +
			"shops.name AS shop_name, " +
			"platforms.name AS platform_name, " +
			"warehouse_products.sku AS sku, " +
			"warehouse_products.name AS warehouse_product_name, " +
			"warehouse_products.cost_price AS cost_price").
		Order("shop_products.created_at DESC")

	if q.Page > 0 && q.PageSize > 0 {
		query = query.Offset((q.Page - 1) * q.PageSize).Limit(q.PageSize)
	}

	var rows []shopProductJoinRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]catalog.ShopProductListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, catalog.ShopProductListItem{
			Product:              row.ShopProduct,
			ShopName:             row.ShopName,
			PlatformName:         row.PlatformName,
			SKU:                  row.SKU,
			WarehouseProductName: row.WarehouseProductName,
			CostPrice:            row.CostPrice,
		})
	}
	return items, total, nil
}

// FindByShopAndSKU resolves the listing of a warehouse SKU within a shop.
// The match is exact on the SKU, not a keyword search, so a listing whose
// title happens to contain the SKU cannot shadow the real one.
func (r *GormShopProductRepository) FindByShopAndSKU(ctx context.Context, shopID uuid.UUID, sku string) (*catalog.ShopProduct, error) {
	var product catalog.ShopProduct
	err := r.db.WithContext(ctx).
		Model(&catalog.ShopProduct{}).
		Select("shop_products.*").
		Joins("JOIN warehouse_products ON warehouse_products.id = shop_products.warehouse_product_id").
		Where("shop_products.shop_id = ? AND LOWER(warehouse_products.sku) = LOWER(?)", shopID, sku).
		Order("shop_products.created_at DESC").
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// UpdateStatusBatch sets the shelf status of every listed ID
func (r *GormShopProductRepository) UpdateStatusBatch(ctx context.Context, ids []uuid.UUID, status catalog.ListingStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Model(&catalog.ShopProduct{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"status": status, "updated_at": gorm.Expr("CURRENT_TIMESTAMP")})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdatePriceBatch sets the price of every listed ID
func (r *GormShopProductRepository) UpdatePriceBatch(ctx context.Context, ids []uuid.UUID, price decimal.Decimal) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Model(&catalog.ShopProduct{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"price": price, "updated_at": gorm.Expr("CURRENT_TIMESTAMP")})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Save creates or updates a shop product
func (r *GormShopProductRepository) Save(ctx context.Context, product *catalog.ShopProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete deletes a shop product
func (r *GormShopProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ShopProduct{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts shop products matching the filter
func (r *GormShopProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.ShopProduct{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormShopProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, ShopProductSortFields, "created_at")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormShopProductRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "shop_id":
			query = query.Where("shop_id = ?", value)
		case "warehouse_product_id":
			query = query.Where("warehouse_product_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

// Ensure GormShopProductRepository implements ShopProductRepository
var _ catalog.ShopProductRepository = (*GormShopProductRepository)(nil)

package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// PlatformSortFields contains allowed sort fields for platforms
var PlatformSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"code":       true,
	"sort_order": true,
	"is_active":  true,
}

// ShopSortFields contains allowed sort fields for shops
var ShopSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"name":        true,
	"platform_id": true,
	"account":     true,
	"status":      true,
}

// DataTableSortFields contains allowed sort fields for data tables
var DataTableSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"table_type": true,
	"shop_id":    true,
	"sort_order": true,
	"is_active":  true,
}

// WarehouseProductSortFields contains allowed sort fields for warehouse products
var WarehouseProductSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"sku":        true,
	"cost_price": true,
}

// ShopProductSortFields contains allowed sort fields for shop products
var ShopProductSortFields = map[string]bool{
	"id":                   true,
	"created_at":           true,
	"updated_at":           true,
	"title":                true,
	"shop_id":              true,
	"warehouse_product_id": true,
	"price":                true,
	"status":               true,
}

// SaleSortFields contains allowed sort fields for sales records
var SaleSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"shop_id":    true,
	"order_id":   true,
	"quantity":   true,
	"amount":     true,
	"profit":     true,
	"sale_date":  true,
}

// WorksheetSortFields contains allowed sort fields for worksheets
var WorksheetSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"username":   true,
	"name":       true,
	"role":       true,
}

// OperationLogSortFields contains allowed sort fields for operation logs
var OperationLogSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"user_id":    true,
	"action":     true,
	"table_name": true,
}

// ImportHistorySortFields contains allowed sort fields for import history
var ImportHistorySortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"file_name":    true,
	"target":       true,
	"status":       true,
	"total_rows":   true,
	"success_rows": true,
}

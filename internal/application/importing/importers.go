package importing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopops/backend/internal/domain/bulk"
	"github.com/shopops/backend/internal/domain/catalog"
	"github.com/shopops/backend/internal/domain/channel"
	"github.com/shopops/backend/internal/domain/dataset"
	"github.com/shopops/backend/internal/domain/sales"
	"github.com/shopops/backend/internal/domain/shared"
	"github.com/shopops/backend/internal/infrastructure/spreadsheet"
)

// dataTableImporter writes rows into a data table. Validated rows are
// collected and committed by one batched flush at the end of the run, so
// rows validated before an abort still get committed.
type dataTableImporter struct {
	table   *dataset.DataTable
	rowRepo dataset.TableRowRepository
	pending []*dataset.TableRow
}

func (i *dataTableImporter) requiredHeaders() []string {
	return i.table.Fields.Names()
}

func (i *dataTableImporter) prepareOverwrite(ctx context.Context) error {
	_, err := i.rowRepo.DeleteByTable(ctx, i.table.ID)
	return err
}

func (i *dataTableImporter) importRow(ctx context.Context, row *spreadsheet.Row) error {
	payload := make(map[string]interface{}, len(row.Data))
	for key, value := range row.Data {
		payload[key] = value
	}

	coerced, err := i.table.ValidateRow(payload)
	if err != nil {
		return rowError(row, err)
	}

	tableRow, err := dataset.NewTableRow(i.table.ID, coerced)
	if err != nil {
		return rowError(row, err)
	}
	i.pending = append(i.pending, tableRow)
	return nil
}

func (i *dataTableImporter) flush(ctx context.Context) (int, error) {
	if len(i.pending) == 0 {
		return 0, nil
	}
	count := len(i.pending)
	if err := i.rowRepo.SaveBatch(ctx, i.pending); err != nil {
		return count, err
	}
	i.pending = nil
	return 0, nil
}

// warehouseProductImporter upserts warehouse products by SKU
type warehouseProductImporter struct {
	repo catalog.WarehouseProductRepository
}

func (i *warehouseProductImporter) requiredHeaders() []string {
	return []string{"sku", "name"}
}

func (i *warehouseProductImporter) prepareOverwrite(ctx context.Context) error {
	return shared.NewDomainError("INVALID_IMPORT_MODE", "Overwrite mode is only supported for data table imports")
}

func (i *warehouseProductImporter) importRow(ctx context.Context, row *spreadsheet.Row) error {
	sku := strings.TrimSpace(row.Get("sku"))
	name := strings.TrimSpace(row.Get("name"))

	costPrice := decimal.Zero
	if raw := strings.TrimSpace(row.Get("cost_price")); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return fieldError(row, "cost_price", fmt.Sprintf("%q is not a valid price", raw))
		}
		costPrice = parsed
	}

	existing, err := i.repo.FindBySKU(ctx, sku)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	if existing != nil {
		if err := existing.Update(name, row.Get("category"), row.Get("spec"), costPrice); err != nil {
			return rowError(row, err)
		}
		return i.repo.Save(ctx, existing)
	}

	product, err := catalog.NewWarehouseProduct(sku, name)
	if err != nil {
		return rowError(row, err)
	}
	if err := product.Update(name, row.Get("category"), row.Get("spec"), costPrice); err != nil {
		return rowError(row, err)
	}
	return i.repo.Save(ctx, product)
}

func (i *warehouseProductImporter) flush(ctx context.Context) (int, error) { return 0, nil }

// shopProductImporter creates shop listings, resolving the warehouse
// product of each row by SKU
type shopProductImporter struct {
	shop      *channel.Shop
	products  catalog.ShopProductRepository
	warehouse catalog.WarehouseProductRepository
}

func (i *shopProductImporter) requiredHeaders() []string {
	return []string{"sku", "title", "price"}
}

func (i *shopProductImporter) prepareOverwrite(ctx context.Context) error {
	return shared.NewDomainError("INVALID_IMPORT_MODE", "Overwrite mode is only supported for data table imports")
}

func (i *shopProductImporter) importRow(ctx context.Context, row *spreadsheet.Row) error {
	sku := strings.TrimSpace(row.Get("sku"))
	warehouseProduct, err := i.warehouse.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fieldError(row, "sku", fmt.Sprintf("No warehouse product with SKU %q", sku))
		}
		return err
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row.Get("price")))
	if err != nil {
		return fieldError(row, "price", fmt.Sprintf("%q is not a valid price", row.Get("price")))
	}

	product, err := catalog.NewShopProduct(i.shop.ID, warehouseProduct.ID, row.Get("title"), price)
	if err != nil {
		return rowError(row, err)
	}

	stock := 0
	if raw := strings.TrimSpace(row.Get("stock")); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil {
			return fieldError(row, "stock", fmt.Sprintf("%q is not a valid stock count", raw))
		}
	}
	if err := product.Update(row.Get("title"), row.Get("product_url"), price, stock); err != nil {
		return rowError(row, err)
	}

	if raw := strings.TrimSpace(row.Get("status")); raw != "" {
		status, err := catalog.ParseListingStatus(raw)
		if err != nil {
			return fieldError(row, "status", err.Error())
		}
		if err := product.SetStatus(status); err != nil {
			return rowError(row, err)
		}
	}

	return i.products.Save(ctx, product)
}

func (i *shopProductImporter) flush(ctx context.Context) (int, error) { return 0, nil }

// inventoryImporter upserts stock levels by warehouse product SKU
type inventoryImporter struct {
	inventory catalog.InventoryRepository
	warehouse catalog.WarehouseProductRepository
}

func (i *inventoryImporter) requiredHeaders() []string {
	return []string{"sku", "quantity"}
}

func (i *inventoryImporter) prepareOverwrite(ctx context.Context) error {
	return shared.NewDomainError("INVALID_IMPORT_MODE", "Overwrite mode is only supported for data table imports")
}

func (i *inventoryImporter) importRow(ctx context.Context, row *spreadsheet.Row) error {
	sku := strings.TrimSpace(row.Get("sku"))
	warehouseProduct, err := i.warehouse.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fieldError(row, "sku", fmt.Sprintf("No warehouse product with SKU %q", sku))
		}
		return err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(row.Get("quantity")))
	if err != nil {
		return fieldError(row, "quantity", fmt.Sprintf("%q is not a valid quantity", row.Get("quantity")))
	}
	location := strings.TrimSpace(row.Get("warehouse_location"))

	existing, err := i.inventory.FindByWarehouseProduct(ctx, warehouseProduct.ID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	if existing != nil {
		if err := existing.Adjust(quantity, location); err != nil {
			return rowError(row, err)
		}
		return i.inventory.Save(ctx, existing)
	}

	record, err := catalog.NewInventory(warehouseProduct.ID, quantity, location)
	if err != nil {
		return rowError(row, err)
	}
	return i.inventory.Save(ctx, record)
}

func (i *inventoryImporter) flush(ctx context.Context) (int, error) { return 0, nil }

// saleImporter records sales for a shop, resolving the listing of each
// row by SKU within the shop
type saleImporter struct {
	shop     *channel.Shop
	sales    sales.SaleRepository
	products catalog.ShopProductRepository
}

func (i *saleImporter) requiredHeaders() []string {
	return []string{"sku", "quantity", "amount", "sale_date"}
}

func (i *saleImporter) prepareOverwrite(ctx context.Context) error {
	return shared.NewDomainError("INVALID_IMPORT_MODE", "Overwrite mode is only supported for data table imports")
}

func (i *saleImporter) importRow(ctx context.Context, row *spreadsheet.Row) error {
	sku := strings.TrimSpace(row.Get("sku"))
	listing, err := i.products.FindByShopAndSKU(ctx, i.shop.ID, sku)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fieldError(row, "sku", fmt.Sprintf("Shop has no listing for SKU %q", sku))
		}
		return err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(row.Get("quantity")))
	if err != nil {
		return fieldError(row, "quantity", fmt.Sprintf("%q is not a valid quantity", row.Get("quantity")))
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(row.Get("amount")))
	if err != nil {
		return fieldError(row, "amount", fmt.Sprintf("%q is not a valid amount", row.Get("amount")))
	}
	saleDate, ok := dataset.ParseDate(row.Get("sale_date"))
	if !ok {
		return fieldError(row, "sale_date", fmt.Sprintf("%q is not a recognized date", row.Get("sale_date")))
	}

	sale, err := sales.NewSale(i.shop.ID, listing.ID, quantity, amount, saleDate)
	if err != nil {
		return rowError(row, err)
	}
	if orderID := strings.TrimSpace(row.Get("order_id")); orderID != "" {
		sale.SetOrderID(orderID)
	}
	if raw := strings.TrimSpace(row.Get("profit")); raw != "" {
		profit, err := decimal.NewFromString(raw)
		if err != nil {
			return fieldError(row, "profit", fmt.Sprintf("%q is not a valid profit", raw))
		}
		sale.SetProfit(profit)
	}

	return i.sales.Save(ctx, sale)
}

func (i *saleImporter) flush(ctx context.Context) (int, error) { return 0, nil }

func rowError(row *spreadsheet.Row, err error) bulk.RowError {
	return bulk.RowError{Line: row.LineNumber, Message: err.Error()}
}

func fieldError(row *spreadsheet.Row, field, message string) bulk.RowError {
	return bulk.RowError{Line: row.LineNumber, Field: field, Message: message}
}

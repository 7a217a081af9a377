package importing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopops/backend/internal/domain/bulk"
	"github.com/shopops/backend/internal/domain/catalog"
	"github.com/shopops/backend/internal/domain/channel"
	"github.com/shopops/backend/internal/domain/dataset"
	"github.com/shopops/backend/internal/domain/sales"
	"github.com/shopops/backend/internal/domain/shared"
	"github.com/shopops/backend/internal/infrastructure/config"
	"github.com/shopops/backend/internal/infrastructure/spreadsheet"
)

// ImportService orchestrates spreadsheet imports into data tables and the
// entity stores. File-level gates (size, extension, header coverage) fail
// the whole run before any row is written; row-level failures are handled
// per the chosen error strategy.
type ImportService struct {
	tableRepo    dataset.DataTableRepository
	rowRepo      dataset.TableRowRepository
	warehouse    catalog.WarehouseProductRepository
	shopProducts catalog.ShopProductRepository
	inventory    catalog.InventoryRepository
	saleRepo     sales.SaleRepository
	shopRepo     channel.ShopRepository
	historyRepo  bulk.ImportHistoryRepository
	cfg          config.ImportConfig
	logger       *zap.Logger
}

// NewImportService creates a new ImportService
func NewImportService(
	tableRepo dataset.DataTableRepository,
	rowRepo dataset.TableRowRepository,
	warehouse catalog.WarehouseProductRepository,
	shopProducts catalog.ShopProductRepository,
	inventory catalog.InventoryRepository,
	saleRepo sales.SaleRepository,
	shopRepo channel.ShopRepository,
	historyRepo bulk.ImportHistoryRepository,
	cfg config.ImportConfig,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		tableRepo:    tableRepo,
		rowRepo:      rowRepo,
		warehouse:    warehouse,
		shopProducts: shopProducts,
		inventory:    inventory,
		saleRepo:     saleRepo,
		shopRepo:     shopRepo,
		historyRepo:  historyRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

// Import runs one spreadsheet import for a user. Every run leaves an
// ImportHistory record, including runs rejected at a file-level gate.
func (s *ImportService) Import(ctx context.Context, userID uuid.UUID, input UploadInput) (*ImportResult, error) {
	mode, err := bulk.ParseImportMode(input.Mode)
	if err != nil {
		return nil, err
	}
	strategy, err := bulk.ParseErrorStrategy(input.Strategy)
	if err != nil {
		return nil, err
	}

	history, err := bulk.NewImportHistory(userID, input.FileName, input.Size, input.Target, mode, strategy)
	if err != nil {
		return nil, err
	}
	if err := s.historyRepo.Save(ctx, history); err != nil {
		return nil, err
	}

	result, runErr := s.run(ctx, history, mode, strategy, input)
	if runErr != nil {
		if !history.Status.IsTerminal() {
			if ferr := history.FailEarly(runErr.Error()); ferr != nil {
				s.logger.Warn("Failed to mark import as failed", zap.Error(ferr))
			}
		}
		if serr := s.historyRepo.Save(ctx, history); serr != nil {
			s.logger.Error("Failed to save import history", zap.Error(serr))
		}
		return nil, runErr
	}

	if err := s.historyRepo.Save(ctx, history); err != nil {
		s.logger.Error("Failed to save import history", zap.Error(err))
	}

	s.logger.Info("Import finished",
		zap.String("file", input.FileName),
		zap.String("target", string(input.Target)),
		zap.String("status", string(history.Status)),
		zap.Int("total", result.TotalRows),
		zap.Int("imported", result.ImportedRows))

	result.HistoryID = history.ID
	result.Status = string(history.Status)
	return result, nil
}

func (s *ImportService) run(ctx context.Context, history *bulk.ImportHistory, mode bulk.ImportMode, strategy bulk.ErrorStrategy, input UploadInput) (*ImportResult, error) {
	if mode == bulk.ImportModeOverwrite {
		if input.Target != bulk.ImportTargetDataTable {
			return nil, shared.NewDomainError("INVALID_IMPORT_MODE", "Overwrite mode is only supported for data table imports")
		}
		if !input.ConfirmOverwrite {
			return nil, shared.NewDomainError("OVERWRITE_NOT_CONFIRMED", "Overwrite mode deletes all existing rows and requires confirmation")
		}
	}

	if s.cfg.MaxFileSize > 0 && input.Size > s.cfg.MaxFileSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "File exceeds the maximum allowed size")
	}

	parser, err := spreadsheet.Open(input.FileName, input.Reader, input.Size)
	if err != nil {
		return nil, mapFileError(err)
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, mapFileError(err)
	}

	importer, err := s.importerFor(ctx, input)
	if err != nil {
		return nil, err
	}

	if missing := missingHeaders(parser, importer.requiredHeaders()); len(missing) > 0 {
		return nil, shared.NewDomainError("MISSING_COLUMNS",
			fmt.Sprintf("File is missing required columns: %v", missing))
	}

	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, mapFileError(err)
	}
	rows = dropEmptyRows(rows)
	if s.cfg.MaxRows > 0 && len(rows) > s.cfg.MaxRows {
		return nil, shared.NewDomainError("TOO_MANY_ROWS",
			fmt.Sprintf("File has %d rows, the maximum is %d", len(rows), s.cfg.MaxRows))
	}

	if err := history.StartProcessing(len(rows)); err != nil {
		return nil, err
	}

	// The destructive part of overwrite happens only after every
	// file-level gate has passed.
	if mode == bulk.ImportModeOverwrite {
		if err := importer.prepareOverwrite(ctx); err != nil {
			return nil, err
		}
	}

	imported := 0
	var rowErrors []bulk.RowError
	aborted := false

	for _, row := range rows {
		select {
		case <-ctx.Done():
			aborted = true
		default:
		}
		if aborted {
			break
		}

		if err := importer.importRow(ctx, row); err != nil {
			rowErrors = append(rowErrors, toRowError(row.LineNumber, err))
			if strategy == bulk.ErrorStrategyAbort {
				aborted = true
				break
			}
			continue
		}
		imported++
	}

	if flushed, err := importer.flush(ctx); err != nil {
		// A failed flush commits nothing from the pending batch
		imported -= flushed
		aborted = true
		rowErrors = append(rowErrors, bulk.RowError{Line: 0, Message: err.Error()})
	}

	if err := history.Finish(imported, rowErrors, aborted); err != nil {
		return nil, err
	}

	return &ImportResult{
		TotalRows:    len(rows),
		ImportedRows: imported,
		Errors:       rowErrors,
	}, nil
}

// rowImporter is the per-target row sink of one import run
type rowImporter interface {
	requiredHeaders() []string
	prepareOverwrite(ctx context.Context) error
	importRow(ctx context.Context, row *spreadsheet.Row) error
	// flush commits any pending batch; it returns how many rows the
	// pending batch held so a failure can be deducted from the total
	flush(ctx context.Context) (int, error)
}

func (s *ImportService) importerFor(ctx context.Context, input UploadInput) (rowImporter, error) {
	switch input.Target {
	case bulk.ImportTargetDataTable:
		if input.TableID == nil {
			return nil, shared.NewDomainError("INVALID_TABLE", "Data table imports require a table ID")
		}
		table, err := s.tableRepo.FindByID(ctx, *input.TableID)
		if err != nil {
			return nil, err
		}
		return &dataTableImporter{table: table, rowRepo: s.rowRepo}, nil

	case bulk.ImportTargetWarehouseProducts:
		return &warehouseProductImporter{repo: s.warehouse}, nil

	case bulk.ImportTargetShopProducts:
		shop, err := s.resolveShop(ctx, input.ShopID)
		if err != nil {
			return nil, err
		}
		return &shopProductImporter{shop: shop, products: s.shopProducts, warehouse: s.warehouse}, nil

	case bulk.ImportTargetInventory:
		return &inventoryImporter{inventory: s.inventory, warehouse: s.warehouse}, nil

	case bulk.ImportTargetSales:
		shop, err := s.resolveShop(ctx, input.ShopID)
		if err != nil {
			return nil, err
		}
		return &saleImporter{shop: shop, sales: s.saleRepo, products: s.shopProducts}, nil

	default:
		return nil, shared.NewDomainError("INVALID_TARGET", fmt.Sprintf("Unknown import target %q", string(input.Target)))
	}
}

func (s *ImportService) resolveShop(ctx context.Context, shopID *uuid.UUID) (*channel.Shop, error) {
	if shopID == nil {
		return nil, shared.NewDomainError("INVALID_SHOP", "This import target requires a shop ID")
	}
	return s.shopRepo.FindByID(ctx, *shopID)
}

func missingHeaders(parser spreadsheet.Parser, required []string) []string {
	var missing []string
	for _, name := range required {
		if !parser.HasHeader(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func dropEmptyRows(rows []*spreadsheet.Row) []*spreadsheet.Row {
	out := rows[:0]
	for _, row := range rows {
		if !row.IsEmpty() {
			out = append(out, row)
		}
	}
	return out
}

func toRowError(line int, err error) bulk.RowError {
	if re, ok := err.(bulk.RowError); ok {
		return re
	}
	return bulk.RowError{Line: line, Message: err.Error()}
}

func mapFileError(err error) error {
	switch err {
	case spreadsheet.ErrFileTooLarge:
		return shared.NewDomainError("FILE_TOO_LARGE", "File exceeds the maximum allowed size")
	case spreadsheet.ErrUnsupportedExtension:
		return shared.NewDomainError("UNSUPPORTED_FILE_TYPE", "Only .csv, .xlsx and .xls files can be imported")
	case spreadsheet.ErrEmptyFile, spreadsheet.ErrMissingHeader:
		return shared.NewDomainError("EMPTY_FILE", "File has no header row")
	case spreadsheet.ErrInvalidEncoding:
		return shared.NewDomainError("INVALID_ENCODING", "File is not valid UTF-8")
	case spreadsheet.ErrNoWorksheet:
		return shared.NewDomainError("EMPTY_FILE", "Workbook contains no worksheet")
	default:
		return err
	}
}

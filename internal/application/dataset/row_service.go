package dataset

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/application/system"
	"github.com/shopops/backend/internal/domain/dataset"
	"github.com/shopops/backend/internal/infrastructure/spreadsheet"
)

// RowService handles table row operations and display derivation
type RowService struct {
	tableRepo dataset.DataTableRepository
	rowRepo   dataset.TableRowRepository
	recorder  *system.Recorder
}

// NewRowService creates a new RowService
func NewRowService(
	tableRepo dataset.DataTableRepository,
	rowRepo dataset.TableRowRepository,
	recorder *system.Recorder,
) *RowService {
	return &RowService{
		tableRepo: tableRepo,
		rowRepo:   rowRepo,
		recorder:  recorder,
	}
}

// Insert validates a row against the table schema and stores it
func (s *RowService) Insert(ctx context.Context, actorID *uuid.UUID, tableID uuid.UUID, req InsertRowRequest) (*RowResponse, error) {
	table, err := s.tableRepo.FindByID(ctx, tableID)
	if err != nil {
		return nil, err
	}

	coerced, err := table.ValidateRow(req.Data)
	if err != nil {
		return nil, err
	}

	row, err := dataset.NewTableRow(tableID, coerced)
	if err != nil {
		return nil, err
	}
	if err := s.rowRepo.Save(ctx, row); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "insert_row", "table_rows", row.ID.String(), nil, row.Data)

	response, err := toRowResponse(table.Fields, row)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Delete removes a row from a table
func (s *RowService) Delete(ctx context.Context, actorID *uuid.UUID, tableID, rowID uuid.UUID) error {
	row, err := s.rowRepo.FindByID(ctx, tableID, rowID)
	if err != nil {
		return err
	}
	if err := s.rowRepo.Delete(ctx, tableID, rowID); err != nil {
		return err
	}

	s.recorder.Record(ctx, actorID, "delete_row", "table_rows", rowID.String(), row.Data, nil)
	return nil
}

// List returns a page of rows with derived display columns. The total
// always comes from the store count.
func (s *RowService) List(ctx context.Context, tableID uuid.UUID, req RowListRequest) (*RowListResponse, error) {
	table, err := s.tableRepo.FindByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	return s.listRows(ctx, table, req)
}

// Query finds rows by table type and optional shop without a table ID.
// The first matching table by sort order receives the query.
func (s *RowService) Query(ctx context.Context, req QueryRowsRequest) (*RowListResponse, error) {
	tableType, err := dataset.ParseTableType(req.TableType)
	if err != nil {
		return nil, err
	}

	table, err := s.tableRepo.FindFirstByType(ctx, tableType, req.ShopID)
	if err != nil {
		return nil, err
	}

	return s.listRows(ctx, table, RowListRequest{
		Filters:  req.Filters,
		SortBy:   req.SortBy,
		SortDesc: req.SortDesc,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
}

// ParseSample infers a field schema from an uploaded sample file. filename
// picks the parser, size enforces the upload bound before parsing.
func (s *RowService) ParseSample(ctx context.Context, filename string, r io.Reader, size int64) (*ParseSampleResponse, error) {
	parser, err := spreadsheet.Open(filename, r, size)
	if err != nil {
		return nil, err
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, err
	}
	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, err
	}

	inference := spreadsheet.InferSchema(parser.Headers(), rows)
	return &ParseSampleResponse{
		Fields:  ToFieldResponses(inference.Fields),
		Preview: inference.Preview,
		Total:   inference.Total,
	}, nil
}

func (s *RowService) listRows(ctx context.Context, table *dataset.DataTable, req RowListRequest) (*RowListResponse, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}

	rows, total, err := s.rowRepo.Query(ctx, table.ID, dataset.RowQuery{
		Filters:  req.Filters,
		SortBy:   req.SortBy,
		SortDesc: req.SortDesc,
		Offset:   (page - 1) * pageSize,
		Limit:    pageSize,
	})
	if err != nil {
		return nil, err
	}

	payloads := make([]map[string]interface{}, len(rows))
	for i := range rows {
		payloads[i] = rows[i].Data
	}
	cols := dataset.DeriveColumns(table.Fields, payloads)

	responses := make([]RowResponse, len(rows))
	for i := range rows {
		display, err := dataset.RenderRow(cols, rows[i].Data)
		if err != nil {
			return nil, err
		}
		responses[i] = RowResponse{
			ID:        rows[i].ID,
			Data:      rows[i].Data,
			Display:   display,
			CreatedAt: rows[i].CreatedAt,
			UpdatedAt: rows[i].UpdatedAt,
		}
	}

	return &RowListResponse{
		Columns:  ToColumnResponses(cols),
		Rows:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toRowResponse(fields dataset.FieldList, row *dataset.TableRow) (*RowResponse, error) {
	cols := dataset.DeriveColumns(fields, []map[string]interface{}{row.Data})
	display, err := dataset.RenderRow(cols, row.Data)
	if err != nil {
		return nil, err
	}
	return &RowResponse{
		ID:        row.ID,
		Data:      row.Data,
		Display:   display,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

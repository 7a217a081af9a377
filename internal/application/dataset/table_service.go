package dataset

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/application/system"
	"github.com/shopops/backend/internal/domain/channel"
	"github.com/shopops/backend/internal/domain/dataset"
	"github.com/shopops/backend/internal/domain/shared"
)

// TableService handles data table and schema editor operations
type TableService struct {
	tableRepo    dataset.DataTableRepository
	rowRepo      dataset.TableRowRepository
	shopRepo     channel.ShopRepository
	platformRepo channel.PlatformRepository
	recorder     *system.Recorder
}

// NewTableService creates a new TableService
func NewTableService(
	tableRepo dataset.DataTableRepository,
	rowRepo dataset.TableRowRepository,
	shopRepo channel.ShopRepository,
	platformRepo channel.PlatformRepository,
	recorder *system.Recorder,
) *TableService {
	return &TableService{
		tableRepo:    tableRepo,
		rowRepo:      rowRepo,
		shopRepo:     shopRepo,
		platformRepo: platformRepo,
		recorder:     recorder,
	}
}

// Create creates a data table with a validated schema
func (s *TableService) Create(ctx context.Context, actorID *uuid.UUID, req CreateTableRequest) (*TableResponse, error) {
	if _, err := s.shopRepo.FindByID(ctx, req.ShopID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_SHOP", "Shop not found")
		}
		return nil, err
	}

	tableType, err := dataset.ParseTableType(req.TableType)
	if err != nil {
		return nil, err
	}
	fields, err := toFieldList(req.Fields)
	if err != nil {
		return nil, err
	}

	table, err := dataset.NewDataTable(req.ShopID, req.Name, tableType, fields)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := table.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		table.SetSortOrder(*req.SortOrder)
	}

	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "create", "data_tables", table.ID.String(), nil, table)

	response := ToTableResponse(table)
	return &response, nil
}

// GetByID retrieves a data table with its row count
func (s *TableService) GetByID(ctx context.Context, tableID uuid.UUID) (*TableResponse, error) {
	table, err := s.tableRepo.FindByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	count, err := s.rowRepo.CountByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	response := ToTableResponse(table)
	response.RowCount = count
	return &response, nil
}

// List retrieves data tables with filtering and pagination
func (s *TableService) List(ctx context.Context, filter TableListFilter) ([]TableResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "sort_order"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.ShopID != nil {
		domainFilter.Filters["shop_id"] = *filter.ShopID
	}
	if filter.TableType != "" {
		domainFilter.Filters["table_type"] = filter.TableType
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	tables, err := s.tableRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.tableRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TableResponse, len(tables))
	for i := range tables {
		responses[i] = ToTableResponse(&tables[i])
	}
	return responses, total, nil
}

// Update updates a data table's attributes
func (s *TableService) Update(ctx context.Context, actorID *uuid.UUID, tableID uuid.UUID, req UpdateTableRequest) (*TableResponse, error) {
	table, err := s.tableRepo.FindByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	before := *table

	name := table.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := table.Description
	if req.Description != nil {
		description = *req.Description
	}
	if err := table.Update(name, description); err != nil {
		return nil, err
	}

	if req.SortOrder != nil {
		table.SetSortOrder(*req.SortOrder)
	}
	if req.IsActive != nil {
		if *req.IsActive {
			table.Activate()
		} else {
			table.Deactivate()
		}
	}

	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "update", "data_tables", table.ID.String(), &before, table)

	response := ToTableResponse(table)
	return &response, nil
}

// Delete removes a data table and all of its rows
func (s *TableService) Delete(ctx context.Context, actorID *uuid.UUID, tableID uuid.UUID) error {
	table, err := s.tableRepo.FindByID(ctx, tableID)
	if err != nil {
		return err
	}

	if _, err := s.rowRepo.DeleteByTable(ctx, tableID); err != nil {
		return err
	}
	if err := s.tableRepo.Delete(ctx, tableID); err != nil {
		return err
	}

	s.recorder.Record(ctx, actorID, "delete", "data_tables", tableID.String(), table, nil)
	return nil
}

// Tree builds the navigation tree: active platforms, their active shops,
// and the shops' active tables, each level ordered by sort order. Built in
// two passes: load everything, then link children to parents.
func (s *TableService) Tree(ctx context.Context) ([]TreeNode, error) {
	platforms, err := s.platformRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make([]TreeNode, 0, len(platforms))
	shopIDs := make([]uuid.UUID, 0)
	shopsByPlatform := make(map[uuid.UUID][]channel.Shop)

	for _, p := range platforms {
		shops, err := s.shopRepo.FindActiveByPlatform(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		shopsByPlatform[p.ID] = shops
		for _, shop := range shops {
			shopIDs = append(shopIDs, shop.ID)
		}
	}

	tables, err := s.tableRepo.FindActiveByShops(ctx, shopIDs)
	if err != nil {
		return nil, err
	}
	tablesByShop := make(map[uuid.UUID][]dataset.DataTable)
	for _, t := range tables {
		tablesByShop[t.ShopID] = append(tablesByShop[t.ShopID], t)
	}

	for _, p := range platforms {
		platformNode := TreeNode{ID: p.ID, Name: p.Name, Type: "platform"}
		for _, shop := range shopsByPlatform[p.ID] {
			shopNode := TreeNode{ID: shop.ID, Name: shop.Name, Type: "shop"}
			for _, t := range tablesByShop[shop.ID] {
				shopNode.Children = append(shopNode.Children, TreeNode{ID: t.ID, Name: t.Name, Type: "table"})
			}
			platformNode.Children = append(platformNode.Children, shopNode)
		}
		nodes = append(nodes, platformNode)
	}

	return nodes, nil
}

// AddField appends a field to the table schema
func (s *TableService) AddField(ctx context.Context, actorID *uuid.UUID, tableID uuid.UUID, req AddFieldRequest) (*TableResponse, error) {
	return s.editSchema(ctx, actorID, tableID, "add_field", func(fields dataset.FieldList) (dataset.FieldList, error) {
		field, err := toFieldConfig(req.Field)
		if err != nil {
			return nil, err
		}
		return fields.Add(field)
	})
}

// UpdateField replaces the field at an index, keeping its position
func (s *TableService) UpdateField(ctx context.Context, actorID *uuid.UUID, tableID uuid.UUID, req UpdateFieldRequest) (*TableResponse, error) {
	return s.editSchema(ctx, actorID, tableID, "update_field", func(fields dataset.FieldList) (dataset.FieldList, error) {
		field, err := toFieldConfig(req.Field)
		if err != nil {
			return nil, err
		}
		return fields.Update(req.Index, field)
	})
}

// RemoveField deletes the field at an index
func (s *TableService) RemoveField(ctx context.Context, actorID *uuid.UUID, tableID uuid.UUID, req RemoveFieldRequest) (*TableResponse, error) {
	return s.editSchema(ctx, actorID, tableID, "remove_field", func(fields dataset.FieldList) (dataset.FieldList, error) {
		return fields.Remove(req.Index)
	})
}

// MoveField moves the field at an index one step in the given direction.
// Moving past either end is a no-op.
func (s *TableService) MoveField(ctx context.Context, actorID *uuid.UUID, tableID uuid.UUID, req MoveFieldRequest) (*TableResponse, error) {
	return s.editSchema(ctx, actorID, tableID, "move_field", func(fields dataset.FieldList) (dataset.FieldList, error) {
		if req.Direction == "up" {
			return fields.MoveUp(req.Index)
		}
		return fields.MoveDown(req.Index)
	})
}

// BatchSetType assigns a type to every selected field
func (s *TableService) BatchSetType(ctx context.Context, actorID *uuid.UUID, tableID uuid.UUID, req BatchSetTypeRequest) (*TableResponse, error) {
	fieldType, err := dataset.ParseFieldType(req.Type)
	if err != nil {
		return nil, err
	}
	return s.editSchema(ctx, actorID, tableID, "batch_set_type", func(fields dataset.FieldList) (dataset.FieldList, error) {
		return fields.BatchSetType(req.Names, fieldType)
	})
}

// BatchSetRequired flips the required flag on every selected field
func (s *TableService) BatchSetRequired(ctx context.Context, actorID *uuid.UUID, tableID uuid.UUID, req BatchSetRequiredRequest) (*TableResponse, error) {
	return s.editSchema(ctx, actorID, tableID, "batch_set_required", func(fields dataset.FieldList) (dataset.FieldList, error) {
		return fields.BatchSetRequired(req.Names, req.Required), nil
	})
}

// BatchDeleteFields removes every selected field from the schema
func (s *TableService) BatchDeleteFields(ctx context.Context, actorID *uuid.UUID, tableID uuid.UUID, req BatchDeleteFieldsRequest) (*TableResponse, error) {
	return s.editSchema(ctx, actorID, tableID, "batch_delete_fields", func(fields dataset.FieldList) (dataset.FieldList, error) {
		return fields.BatchDelete(req.Names), nil
	})
}

func (s *TableService) editSchema(
	ctx context.Context,
	actorID *uuid.UUID,
	tableID uuid.UUID,
	action string,
	edit func(dataset.FieldList) (dataset.FieldList, error),
) (*TableResponse, error) {
	table, err := s.tableRepo.FindByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	before := table.Fields

	edited, err := edit(table.Fields)
	if err != nil {
		return nil, err
	}
	if err := table.ReplaceFields(edited); err != nil {
		return nil, err
	}

	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, action, "data_tables", table.ID.String(), before, table.Fields)

	response := ToTableResponse(table)
	return &response, nil
}

package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	datasetapp "github.com/shopops/backend/internal/application/dataset"
	"github.com/shopops/backend/internal/interfaces/http/middleware"
)

// DataTableHandler handles data table, schema and row endpoints
type DataTableHandler struct {
	BaseHandler
	tableService *datasetapp.TableService
	rowService   *datasetapp.RowService
}

// NewDataTableHandler creates a new DataTableHandler
func NewDataTableHandler(tableService *datasetapp.TableService, rowService *datasetapp.RowService) *DataTableHandler {
	return &DataTableHandler{
		tableService: tableService,
		rowService:   rowService,
	}
}

// RegisterRoutes registers data table routes. Creating and deleting tables
// changes schema for everyone and is limited to admins.
func (h *DataTableHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tables := rg.Group("/tables")
	{
		tables.POST("", middleware.RequireAdmin(), h.Create)
		tables.GET("", h.List)
		tables.GET("/tree", h.Tree)
		tables.GET("/:id", h.GetByID)
		tables.PUT("/:id", h.Update)
		tables.DELETE("/:id", middleware.RequireAdmin(), h.Delete)

		fields := tables.Group("/:id/fields")
		{
			fields.POST("", h.AddField)
			fields.PUT("", h.UpdateField)
			fields.DELETE("", h.RemoveField)
			fields.POST("/move", h.MoveField)
			fields.POST("/batch-type", h.BatchSetType)
			fields.POST("/batch-required", h.BatchSetRequired)
			fields.POST("/batch-delete", h.BatchDeleteFields)
		}

		tables.POST("/:id/rows", h.InsertRow)
		tables.POST("/:id/rows/search", h.ListRows)
		tables.DELETE("/:id/rows/:rowID", h.DeleteRow)
	}

	data := rg.Group("/data")
	{
		data.POST("/query", h.QueryRows)
		data.POST("/parse-sample", h.ParseSample)
	}
}

// Create creates a data table under a shop
func (h *DataTableHandler) Create(c *gin.Context) {
	var req datasetapp.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	table, err := h.tableService.Create(c.Request.Context(), actorID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, table)
}

// List lists data tables with pagination
func (h *DataTableHandler) List(c *gin.Context) {
	var filter datasetapp.TableListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tables, total, err := h.tableService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, tables, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// Tree returns the platform, shop and table navigation tree
func (h *DataTableHandler) Tree(c *gin.Context) {
	tree, err := h.tableService.Tree(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tree)
}

// GetByID retrieves a data table with its field schema
func (h *DataTableHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	table, err := h.tableService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, table)
}

// Update updates a table's metadata
func (h *DataTableHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	var req datasetapp.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	table, err := h.tableService.Update(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, table)
}

// Delete removes a data table and all its rows
func (h *DataTableHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	if err := h.tableService.Delete(c.Request.Context(), actorID(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddField appends a field to the table schema
func (h *DataTableHandler) AddField(c *gin.Context) {
	editField(h, c, h.tableService.AddField)
}

// UpdateField replaces the field at an index
func (h *DataTableHandler) UpdateField(c *gin.Context) {
	editField(h, c, h.tableService.UpdateField)
}

// RemoveField removes the field at an index
func (h *DataTableHandler) RemoveField(c *gin.Context) {
	editField(h, c, h.tableService.RemoveField)
}

// MoveField moves a field up or down
func (h *DataTableHandler) MoveField(c *gin.Context) {
	editField(h, c, h.tableService.MoveField)
}

// BatchSetType changes the type of several fields at once
func (h *DataTableHandler) BatchSetType(c *gin.Context) {
	editField(h, c, h.tableService.BatchSetType)
}

// BatchSetRequired toggles the required flag on several fields at once
func (h *DataTableHandler) BatchSetRequired(c *gin.Context) {
	editField(h, c, h.tableService.BatchSetRequired)
}

// BatchDeleteFields removes several fields at once
func (h *DataTableHandler) BatchDeleteFields(c *gin.Context) {
	editField(h, c, h.tableService.BatchDeleteFields)
}

// InsertRow validates a row against the table schema and stores it
func (h *DataTableHandler) InsertRow(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	var req datasetapp.InsertRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	row, err := h.rowService.Insert(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, row)
}

// ListRows lists rows of a table with payload filters and sorting
func (h *DataTableHandler) ListRows(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	var req datasetapp.RowListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.rowService.List(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteRow removes one row from a table
func (h *DataTableHandler) DeleteRow(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid table ID")
		return
	}
	rowID, ok := parseIDParam(c, "rowID")
	if !ok {
		h.BadRequest(c, "Invalid row ID")
		return
	}

	if err := h.rowService.Delete(c.Request.Context(), actorID(c), id, rowID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// QueryRows queries rows by table type instead of table ID
func (h *DataTableHandler) QueryRows(c *gin.Context) {
	var req datasetapp.QueryRowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.rowService.Query(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ParseSample infers a field schema from an uploaded spreadsheet
func (h *DataTableHandler) ParseSample(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Cannot read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.rowService.ParseSample(c.Request.Context(), fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// editField binds a JSON body of type R and applies a schema edit
func editField[R any](h *DataTableHandler, c *gin.Context, edit func(ctx context.Context, actor *uuid.UUID, id uuid.UUID, req R) (*datasetapp.TableResponse, error)) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	table, err := edit(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, table)
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	importingapp "github.com/shopops/backend/internal/application/importing"
	"github.com/shopops/backend/internal/domain/bulk"
)

// ImportHandler handles spreadsheet import endpoints
type ImportHandler struct {
	BaseHandler
	importService   *importingapp.ImportService
	historyService  *importingapp.HistoryService
	templateService *importingapp.TemplateService
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(
	importService *importingapp.ImportService,
	historyService *importingapp.HistoryService,
	templateService *importingapp.TemplateService,
) *ImportHandler {
	return &ImportHandler{
		importService:   importService,
		historyService:  historyService,
		templateService: templateService,
	}
}

// RegisterRoutes registers import routes
func (h *ImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	imports := rg.Group("/imports")
	{
		imports.POST("", h.Upload)
		imports.GET("/history", h.ListHistory)
		imports.GET("/history/recent", h.ListRecentHistory)
		imports.GET("/history/mine", h.ListMyHistory)
		imports.GET("/history/:id", h.GetHistory)

		templates := imports.Group("/templates")
		{
			templates.POST("", h.CreateTemplate)
			templates.GET("", h.ListTemplates)
			templates.GET("/:target", h.GetTemplate)
			templates.PUT("/:id", h.UpdateTemplate)
			templates.DELETE("/:id", h.DeleteTemplate)
		}
	}
}

// Upload imports a spreadsheet. The file arrives as multipart form data
// next to the import options.
func (h *ImportHandler) Upload(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file")
		return
	}
	target := bulk.ImportTarget(c.PostForm("target"))
	if !target.IsValid() {
		h.BadRequest(c, "Unknown import target")
		return
	}

	input := importingapp.UploadInput{
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
		Target:   target,
		Mode:     c.PostForm("mode"),
		Strategy: c.PostForm("strategy"),
	}
	if v := c.PostForm("confirm_overwrite"); v != "" {
		confirmed, err := strconv.ParseBool(v)
		if err != nil {
			h.BadRequest(c, "confirm_overwrite must be a boolean")
			return
		}
		input.ConfirmOverwrite = confirmed
	}
	if v := c.PostForm("table_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.BadRequest(c, "Invalid table_id")
			return
		}
		input.TableID = &id
	}
	if v := c.PostForm("shop_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.BadRequest(c, "Invalid shop_id")
			return
		}
		input.ShopID = &id
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Cannot read uploaded file")
		return
	}
	defer file.Close()
	input.Reader = file

	result, err := h.importService.Import(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListHistory lists import runs with pagination
func (h *ImportHandler) ListHistory(c *gin.Context) {
	var filter importingapp.HistoryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	histories, total, err := h.historyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, histories, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// ListRecentHistory lists the most recent import runs
func (h *ImportHandler) ListRecentHistory(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			h.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	histories, err := h.historyService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, histories)
}

// ListMyHistory lists the caller's import runs
func (h *ImportHandler) ListMyHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var paging struct {
		Page     int `form:"page"`
		PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&paging); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	histories, err := h.historyService.ListByUser(c.Request.Context(), userID, paging.Page, paging.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, histories)
}

// GetHistory retrieves one import run with its row errors
func (h *ImportHandler) GetHistory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid history ID")
		return
	}

	history, err := h.historyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, history)
}

// CreateTemplate creates the column template for an import target
func (h *ImportHandler) CreateTemplate(c *gin.Context) {
	var req importingapp.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	template, err := h.templateService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, template)
}

// ListTemplates lists all import templates
func (h *ImportHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, templates)
}

// GetTemplate retrieves the template for a target
func (h *ImportHandler) GetTemplate(c *gin.Context) {
	template, err := h.templateService.GetByTarget(c.Request.Context(), c.Param("target"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, template)
}

// UpdateTemplate updates an import template
func (h *ImportHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	var req importingapp.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	template, err := h.templateService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, template)
}

// DeleteTemplate removes an import template
func (h *ImportHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"

	worksheetapp "github.com/shopops/backend/internal/application/worksheet"
)

// WorksheetHandler handles worksheet endpoints. Worksheets are private to
// their owner.
type WorksheetHandler struct {
	BaseHandler
	worksheetService *worksheetapp.Service
}

// NewWorksheetHandler creates a new WorksheetHandler
func NewWorksheetHandler(worksheetService *worksheetapp.Service) *WorksheetHandler {
	return &WorksheetHandler{worksheetService: worksheetService}
}

// RegisterRoutes registers worksheet routes
func (h *WorksheetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	worksheets := rg.Group("/worksheets")
	{
		worksheets.POST("", h.Create)
		worksheets.GET("", h.List)
		worksheets.GET("/:id", h.GetByID)
		worksheets.PUT("/:id", h.Update)
		worksheets.DELETE("/:id", h.Delete)
		worksheets.GET("/:id/data", h.QueryData)
	}
}

// Create creates a worksheet for the caller
func (h *WorksheetHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req worksheetapp.CreateWorksheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ws, err := h.worksheetService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, ws)
}

// List lists the caller's worksheets
func (h *WorksheetHandler) List(c *gin.Context) {
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

	worksheets, err := h.worksheetService.List(c.Request.Context(), userID, paging.Page, paging.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, worksheets)
}

// GetByID retrieves one of the caller's worksheets
func (h *WorksheetHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid worksheet ID")
		return
	}

	ws, err := h.worksheetService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ws)
}

// Update updates one of the caller's worksheets
func (h *WorksheetHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid worksheet ID")
		return
	}

	var req worksheetapp.UpdateWorksheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ws, err := h.worksheetService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ws)
}

// Delete removes one of the caller's worksheets
func (h *WorksheetHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid worksheet ID")
		return
	}

	if err := h.worksheetService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// QueryData returns the page of shop products a worksheet selects
func (h *WorksheetHandler) QueryData(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid worksheet ID")
		return
	}

	var req worksheetapp.QueryDataRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.worksheetService.QueryData(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

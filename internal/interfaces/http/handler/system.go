package handler

import (
	"github.com/gin-gonic/gin"

	systemapp "github.com/shopops/backend/internal/application/system"
	"github.com/shopops/backend/internal/interfaces/http/middleware"
)

// MenuHandler handles navigation menu endpoints
type MenuHandler struct {
	BaseHandler
	menuService *systemapp.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService *systemapp.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// RegisterRoutes registers menu routes. Reading the visible tree is open
// to every authenticated user; everything else is admin-only.
func (h *MenuHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/menus", h.VisibleTree)

	admin := rg.Group("/menus", middleware.RequireAdmin())
	{
		admin.GET("/tree", h.Tree)
		admin.POST("", h.Create)
		admin.GET("/:id", h.GetByID)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// VisibleTree returns the menu tree the caller's role may see
func (h *MenuHandler) VisibleTree(c *gin.Context) {
	tree, err := h.menuService.VisibleTree(c.Request.Context(), middleware.GetJWTRole(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tree)
}

// Tree returns the full menu tree including hidden items
func (h *MenuHandler) Tree(c *gin.Context) {
	tree, err := h.menuService.Tree(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tree)
}

// Create creates a menu item
func (h *MenuHandler) Create(c *gin.Context) {
	var req systemapp.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.menuService.Create(c.Request.Context(), actorID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// GetByID retrieves a menu item
func (h *MenuHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Update updates a menu item
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req systemapp.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.menuService.Update(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete removes a menu item without children
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), actorID(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SettingHandler handles system setting endpoints
type SettingHandler struct {
	BaseHandler
	settingService *systemapp.SettingService
}

// NewSettingHandler creates a new SettingHandler
func NewSettingHandler(settingService *systemapp.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// RegisterRoutes registers setting routes. Public settings are readable by
// every authenticated user; the rest is admin-only.
func (h *SettingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings/public", h.ListPublic)

	admin := rg.Group("/settings", middleware.RequireAdmin())
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.GET("/:key", h.GetByKey)
		admin.PUT("/:key", h.Update)
		admin.DELETE("/:key", h.Delete)
	}
}

// ListPublic lists the settings readable without admin rights
func (h *SettingHandler) ListPublic(c *gin.Context) {
	settings, err := h.settingService.ListPublic(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Create creates a setting
func (h *SettingHandler) Create(c *gin.Context) {
	var req systemapp.CreateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	setting, err := h.settingService.Create(c.Request.Context(), actorID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, setting)
}

// List lists settings, optionally narrowed to a group
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.settingService.List(c.Request.Context(), c.Query("group"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// GetByKey retrieves a setting by key
func (h *SettingHandler) GetByKey(c *gin.Context) {
	setting, err := h.settingService.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, setting)
}

// Update updates a setting
func (h *SettingHandler) Update(c *gin.Context) {
	var req systemapp.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	setting, err := h.settingService.Update(c.Request.Context(), actorID(c), c.Param("key"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, setting)
}

// Delete removes a setting
func (h *SettingHandler) Delete(c *gin.Context) {
	if err := h.settingService.Delete(c.Request.Context(), actorID(c), c.Param("key")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// LogHandler handles audit trail endpoints
type LogHandler struct {
	BaseHandler
	logService *systemapp.LogService
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(logService *systemapp.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// RegisterRoutes registers audit trail routes, admin-only
func (h *LogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/operation-logs", middleware.RequireAdmin(), h.Search)
}

// Search lists audit records, newest first
func (h *LogHandler) Search(c *gin.Context) {
	var filter systemapp.OperationLogListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	logs, total, err := h.logService.Search(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, logs, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

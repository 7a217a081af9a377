package handler

import (
	"github.com/gin-gonic/gin"

	channelapp "github.com/shopops/backend/internal/application/channel"
)

// PlatformHandler handles sales platform endpoints
type PlatformHandler struct {
	BaseHandler
	platformService *channelapp.PlatformService
}

// NewPlatformHandler creates a new PlatformHandler
func NewPlatformHandler(platformService *channelapp.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService}
}

// RegisterRoutes registers platform routes
func (h *PlatformHandler) RegisterRoutes(rg *gin.RouterGroup) {
	platforms := rg.Group("/platforms")
	{
		platforms.POST("", h.Create)
		platforms.GET("", h.List)
		platforms.GET("/active", h.ListActive)
		platforms.GET("/:id", h.GetByID)
		platforms.PUT("/:id", h.Update)
		platforms.POST("/:id/activate", h.Activate)
		platforms.POST("/:id/deactivate", h.Deactivate)
		platforms.DELETE("/:id", h.Delete)
	}
}

// Create creates a platform
func (h *PlatformHandler) Create(c *gin.Context) {
	var req channelapp.CreatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	platform, err := h.platformService.Create(c.Request.Context(), actorID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, platform)
}

// List lists platforms with pagination
func (h *PlatformHandler) List(c *gin.Context) {
	var filter channelapp.PlatformListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	platforms, total, err := h.platformService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, platforms, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// ListActive lists active platforms in sort order
func (h *PlatformHandler) ListActive(c *gin.Context) {
	platforms, err := h.platformService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, platforms)
}

// GetByID retrieves a platform
func (h *PlatformHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid platform ID")
		return
	}

	platform, err := h.platformService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, platform)
}

// Update updates a platform
func (h *PlatformHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid platform ID")
		return
	}

	var req channelapp.UpdatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	platform, err := h.platformService.Update(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, platform)
}

// Activate enables a platform
func (h *PlatformHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate disables a platform
func (h *PlatformHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *PlatformHandler) setActive(c *gin.Context, active bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid platform ID")
		return
	}

	var (
		platform *channelapp.PlatformResponse
		err      error
	)
	if active {
		platform, err = h.platformService.Activate(c.Request.Context(), actorID(c), id)
	} else {
		platform, err = h.platformService.Deactivate(c.Request.Context(), actorID(c), id)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, platform)
}

// Delete removes a platform without shops
func (h *PlatformHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid platform ID")
		return
	}

	if err := h.platformService.Delete(c.Request.Context(), actorID(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"

	channelapp "github.com/shopops/backend/internal/application/channel"
)

// ShopHandler handles shop endpoints
type ShopHandler struct {
	BaseHandler
	shopService *channelapp.ShopService
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(shopService *channelapp.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// RegisterRoutes registers shop routes
func (h *ShopHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shops := rg.Group("/shops")
	{
		shops.POST("", h.Create)
		shops.GET("", h.List)
		shops.GET("/:id", h.GetByID)
		shops.PUT("/:id", h.Update)
		shops.POST("/:id/activate", h.Activate)
		shops.POST("/:id/deactivate", h.Deactivate)
		shops.DELETE("/:id", h.Delete)
	}

	rg.GET("/platforms/:id/shops", h.ListByPlatform)
}

// Create creates a shop under a platform
func (h *ShopHandler) Create(c *gin.Context) {
	var req channelapp.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shop, err := h.shopService.Create(c.Request.Context(), actorID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, shop)
}

// List lists shops with pagination
func (h *ShopHandler) List(c *gin.Context) {
	var filter channelapp.ShopListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shops, total, err := h.shopService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, shops, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// ListByPlatform lists a platform's shops
func (h *ShopHandler) ListByPlatform(c *gin.Context) {
	platformID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid platform ID")
		return
	}

	shops, err := h.shopService.ListByPlatform(c.Request.Context(), platformID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shops)
}

// GetByID retrieves a shop
func (h *ShopHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	shop, err := h.shopService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shop)
}

// Update updates a shop
func (h *ShopHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	var req channelapp.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shop, err := h.shopService.Update(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shop)
}

// Activate enables a shop
func (h *ShopHandler) Activate(c *gin.Context) {
	h.setStatus(c, true)
}

// Deactivate disables a shop
func (h *ShopHandler) Deactivate(c *gin.Context) {
	h.setStatus(c, false)
}

func (h *ShopHandler) setStatus(c *gin.Context, active bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	var (
		shop *channelapp.ShopResponse
		err  error
	)
	if active {
		shop, err = h.shopService.Activate(c.Request.Context(), actorID(c), id)
	} else {
		shop, err = h.shopService.Deactivate(c.Request.Context(), actorID(c), id)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shop)
}

// Delete removes a shop
func (h *ShopHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	if err := h.shopService.Delete(c.Request.Context(), actorID(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/shopops/backend/internal/application/catalog"
)

// WarehouseProductHandler handles warehouse product and inventory endpoints
type WarehouseProductHandler struct {
	BaseHandler
	warehouseService *catalogapp.WarehouseService
}

// NewWarehouseProductHandler creates a new WarehouseProductHandler
func NewWarehouseProductHandler(warehouseService *catalogapp.WarehouseService) *WarehouseProductHandler {
	return &WarehouseProductHandler{warehouseService: warehouseService}
}

// RegisterRoutes registers warehouse product routes
func (h *WarehouseProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/warehouse-products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.GetByID)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
		products.GET("/:id/inventory", h.GetInventory)
	}

	rg.PUT("/inventory", h.UpsertInventory)
}

// Create creates a warehouse product
func (h *WarehouseProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateWarehouseProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.warehouseService.Create(c.Request.Context(), actorID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// List lists warehouse products with pagination
func (h *WarehouseProductHandler) List(c *gin.Context) {
	var filter catalogapp.WarehouseProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, total, err := h.warehouseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// GetByID retrieves a warehouse product
func (h *WarehouseProductHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.warehouseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Update updates a warehouse product
func (h *WarehouseProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.UpdateWarehouseProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.warehouseService.Update(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a warehouse product
func (h *WarehouseProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.warehouseService.Delete(c.Request.Context(), actorID(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetInventory retrieves the stock record of a warehouse product
func (h *WarehouseProductHandler) GetInventory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	inventory, err := h.warehouseService.GetInventory(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inventory)
}

// UpsertInventory creates or adjusts the stock record of a warehouse product
func (h *WarehouseProductHandler) UpsertInventory(c *gin.Context) {
	var req catalogapp.UpsertInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	inventory, err := h.warehouseService.UpsertInventory(c.Request.Context(), actorID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inventory)
}

// ShopProductHandler handles shop listing endpoints
type ShopProductHandler struct {
	BaseHandler
	productService *catalogapp.ShopProductService
}

// NewShopProductHandler creates a new ShopProductHandler
func NewShopProductHandler(productService *catalogapp.ShopProductService) *ShopProductHandler {
	return &ShopProductHandler{productService: productService}
}

// RegisterRoutes registers shop product routes
func (h *ShopProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/shop-products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.GetByID)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
		products.POST("/batch-status", h.BatchUpdateStatus)
		products.POST("/batch-price", h.BatchUpdatePrice)
	}
}

// Create lists a warehouse product on a shop
func (h *ShopProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateShopProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), actorID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// List lists shop products enriched with shop and warehouse data
func (h *ShopProductHandler) List(c *gin.Context) {
	var filter catalogapp.ShopProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, total, pageOf(filter.Page), pageSizeOf(filter.PageSize))
}

// GetByID retrieves a shop product
func (h *ShopProductHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Update updates a shop product
func (h *ShopProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.UpdateShopProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), actorID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a shop product
func (h *ShopProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), actorID(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// BatchUpdateStatus puts several listings on or off the shelf at once
func (h *ShopProductHandler) BatchUpdateStatus(c *gin.Context) {
	var req catalogapp.BatchUpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.productService.BatchUpdateStatus(c.Request.Context(), actorID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// BatchUpdatePrice reprices several listings at once
func (h *ShopProductHandler) BatchUpdatePrice(c *gin.Context) {
	var req catalogapp.BatchUpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.productService.BatchUpdatePrice(c.Request.Context(), actorID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/shopops/backend/internal/application/report"
)

// DashboardHandler handles sales dashboard endpoints
type DashboardHandler struct {
	BaseHandler
	reportService *reportapp.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(reportService *reportapp.Service) *DashboardHandler {
	return &DashboardHandler{reportService: reportService}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.Summary)
		dashboard.GET("/trend", h.Trend)
		dashboard.GET("/top-products", h.TopProducts)
		dashboard.GET("/top-shops", h.TopShops)
		dashboard.POST("/metric", h.Metric)
	}
}

// Summary aggregates sales over a date range
func (h *DashboardHandler) Summary(c *gin.Context) {
	var filter reportapp.DateRangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Trend returns the per-day sales series over a date range
func (h *DashboardHandler) Trend(c *gin.Context) {
	var filter reportapp.DateRangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	trend, err := h.reportService.Trend(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, trend)
}

// TopProducts ranks shop products by sales amount
func (h *DashboardHandler) TopProducts(c *gin.Context) {
	var filter reportapp.RankingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ranking, err := h.reportService.TopProducts(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ranking)
}

// TopShops ranks shops by sales amount
func (h *DashboardHandler) TopShops(c *gin.Context) {
	var filter reportapp.RankingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ranking, err := h.reportService.TopShops(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ranking)
}

// Metric answers a flexible metric query
func (h *DashboardHandler) Metric(c *gin.Context) {
	var req reportapp.MetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	metric, err := h.reportService.Metric(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, metric)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// AdminDashboard returns the headline stats block.
func (h *Handler) AdminDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.admin.DashboardStats())
}

// AdminSalesSeries returns the sales analytics series.
func (h *Handler) AdminSalesSeries(c echo.Context) error {
	return c.JSON(http.StatusOK, h.admin.SalesSeries())
}

// AdminTopProducts returns the best sellers chart data.
func (h *Handler) AdminTopProducts(c echo.Context) error {
	limit := 5
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return c.JSON(http.StatusOK, h.admin.TopProducts(limit))
}

// AdminCategoryBreakdown returns each category's revenue share.
func (h *Handler) AdminCategoryBreakdown(c echo.Context) error {
	return c.JSON(http.StatusOK, h.admin.CategoryBreakdown())
}

// AdminSettings returns the store settings backing checkout pricing.
func (h *Handler) AdminSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.settings)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/NailaFatima/stylehub-go/catalog"
	"github.com/NailaFatima/stylehub-go/models"
	"github.com/labstack/echo/v4"
)

// GetProducts lists the catalog through the filter/sort/paginate
// pipeline. Facets repeat as query params (?category=Jeans&category=...);
// page is 1-based and not clamped, so overshooting yields an empty page.
func (h *Handler) GetProducts(c echo.Context) error {
	filters := catalog.NewFilterOptions()
	params := c.QueryParams()
	if v, ok := params["category"]; ok {
		filters.Category = v
	}
	if v, ok := params["size"]; ok {
		filters.Size = v
	}
	if v, ok := params["color"]; ok {
		filters.Color = v
	}
	if v := c.QueryParam("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.PriceRange[0] = f
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.PriceRange[1] = f
		}
	}

	sortBy := models.SortOption(c.QueryParam("sort"))
	if sortBy == "" {
		sortBy = models.SortPopularity
	}

	page := 1
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	pageSize := catalog.DefaultPageSize
	if v := c.QueryParam("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}

	result := catalog.Query(h.catalog.All(), filters, sortBy, pageSize, page)
	return c.JSON(http.StatusOK, result)
}

// GetProduct returns one catalog entry.
func (h *Handler) GetProduct(c echo.Context) error {
	product, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}
	return c.JSON(http.StatusOK, product)
}

// GetFacets returns the filterable dimensions for filter UIs.
func (h *Handler) GetFacets(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Facets())
}

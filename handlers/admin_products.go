package handlers

import (
	"errors"
	"net/http"

	"github.com/NailaFatima/stylehub-go/admin"
	"github.com/labstack/echo/v4"
)

// AdminProducts lists the admin product dataset, filtered by the search
// query.
func (h *Handler) AdminProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.admin.ProductList(c.QueryParam("search")))
}

// AdminToggleProduct flips a product's active flag.
func (h *Handler) AdminToggleProduct(c echo.Context) error {
	product, err := h.admin.ToggleProductActive(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}
	return c.JSON(http.StatusOK, product)
}

// AdminUpdateStock sets a product's stock level.
func (h *Handler) AdminUpdateStock(c echo.Context) error {
	var req struct {
		Stock int `json:"stock"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Stock < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Stock must not be negative"})
	}

	product, err := h.admin.UpdateProductStock(c.Param("id"), req.Stock)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}
	return c.JSON(http.StatusOK, product)
}

// AdminDeleteProduct removes a product from the dataset.
func (h *Handler) AdminDeleteProduct(c echo.Context) error {
	if err := h.admin.DeleteProduct(c.Param("id")); err != nil {
		if errors.Is(err, admin.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted"})
}

package handlers

import (
	"net/http"

	"github.com/NailaFatima/stylehub-go/metrics"
	"github.com/labstack/echo/v4"
)

// GetCart returns the session's cart snapshot.
func (h *Handler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sessionCart(c).State())
}

// AddToCart adds a product/size/color line, merging quantity into an
// existing line with the same key.
func (h *Handler) AddToCart(c echo.Context) error {
	var req struct {
		ProductID string `json:"productId"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Quantity < 1 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Quantity must be at least 1"})
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	state := h.sessionCart(c).Add(product, req.Size, req.Color, req.Quantity)
	metrics.CartActions.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, state)
}

// UpdateCartItemQuantity sets a line's quantity to an absolute value;
// quantity zero removes the line.
func (h *Handler) UpdateCartItemQuantity(c echo.Context) error {
	var req struct {
		ProductID string `json:"productId"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Quantity < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Quantity must not be negative"})
	}

	state := h.sessionCart(c).UpdateQuantity(req.ProductID, req.Size, req.Color, req.Quantity)
	metrics.CartActions.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, state)
}

// RemoveFromCart drops a line item.
func (h *Handler) RemoveFromCart(c echo.Context) error {
	productID := c.Param("productId")
	size := c.QueryParam("size")
	color := c.QueryParam("color")

	state := h.sessionCart(c).Remove(productID, size, color)
	metrics.CartActions.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, state)
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c echo.Context) error {
	state := h.sessionCart(c).Clear()
	metrics.CartActions.WithLabelValues("clear").Inc()
	return c.JSON(http.StatusOK, state)
}

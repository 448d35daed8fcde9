package handlers

import (
	"net/http"

	"github.com/NailaFatima/stylehub-go/checkout"
	"github.com/NailaFatima/stylehub-go/models"
	"github.com/labstack/echo/v4"
)

// CheckoutResponse is the hand-off payload carried from checkout to
// payment.
type CheckoutResponse struct {
	CustomerInfo models.CustomerInfo `json:"customerInfo"`
	OrderTotal   float64             `json:"orderTotal"`
	Summary      models.OrderSummary `json:"summary"`
}

// Checkout validates the shipping form and prices the order. An empty
// cart redirects back to the storefront; field failures block with a
// per-field error map.
func (h *Handler) Checkout(c echo.Context) error {
	state := h.sessionCart(c).State()
	if len(state.Items) == 0 {
		return redirectError(c, http.StatusConflict, "Cart is empty", "/")
	}

	var info models.CustomerInfo
	if err := c.Bind(&info); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if errs := checkout.ValidateCustomerInfo(info); len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": errs,
		})
	}

	summary := checkout.Price(state.Total, h.settings)
	return c.JSON(http.StatusOK, CheckoutResponse{
		CustomerInfo: info,
		OrderTotal:   summary.OrderTotal,
		Summary:      summary,
	})
}

package handlers

import (
	"net/http"

	"github.com/NailaFatima/stylehub-go/checkout"
	"github.com/NailaFatima/stylehub-go/metrics"
	"github.com/NailaFatima/stylehub-go/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PaymentRequest is the payment form plus the checkout hand-off payload.
type PaymentRequest struct {
	CustomerInfo models.CustomerInfo    `json:"customerInfo"`
	OrderTotal   float64                `json:"orderTotal"`
	Method       checkout.PaymentMethod `json:"method"`
	PaymentInfo  checkout.PaymentInfo   `json:"paymentInfo"`
}

// ProcessPayment validates the selected method branch, settles through
// the simulated processor and hands the order to the cart. Arriving
// without the checkout payload redirects back to checkout. The
// processor wait is bound to the request context, so a client that goes
// away cancels the pending settlement.
func (h *Handler) ProcessPayment(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if req.CustomerInfo == (models.CustomerInfo{}) {
		return redirectError(c, http.StatusConflict, "Missing checkout payload", "/checkout")
	}

	if errs := checkout.ValidatePayment(req.Method, req.PaymentInfo); len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": errs,
		})
	}

	cartC := h.sessionCart(c)
	state := cartC.State()

	order, err := h.processor.Process(c.Request().Context(), checkout.PaymentRequest{
		Items:        state.Items,
		Total:        req.OrderTotal,
		CustomerInfo: req.CustomerInfo,
		Method:       req.Method,
	})
	if err != nil {
		h.log.Warn("payment aborted", zap.Error(err))
		return c.JSON(http.StatusRequestTimeout, map[string]string{"error": "Payment cancelled"})
	}

	cartC.SetOrder(order)
	h.admin.RecordOrder(order, "TXN-"+uuid.NewString())

	metrics.OrdersCreated.Inc()
	metrics.PaymentsProcessed.WithLabelValues(string(req.Method)).Inc()

	return c.JSON(http.StatusCreated, order)
}

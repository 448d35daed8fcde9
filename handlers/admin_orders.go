package handlers

import (
	"net/http"

	"github.com/NailaFatima/stylehub-go/models"
	"github.com/labstack/echo/v4"
)

var validOrderStatus = map[models.OrderStatus]bool{
	models.OrderPending:    true,
	models.OrderProcessing: true,
	models.OrderShipped:    true,
	models.OrderDelivered:  true,
	models.OrderCancelled:  true,
}

// AdminOrders lists the admin order dataset, filtered by search and
// status.
func (h *Handler) AdminOrders(c echo.Context) error {
	status := models.OrderStatus(c.QueryParam("status"))
	if status != "" && !validOrderStatus[status] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown order status"})
	}
	return c.JSON(http.StatusOK, h.admin.OrderList(c.QueryParam("search"), status))
}

// AdminGetOrder returns one admin order.
func (h *Handler) AdminGetOrder(c echo.Context) error {
	order, err := h.admin.GetOrder(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	}
	return c.JSON(http.StatusOK, order)
}

// AdminUpdateOrderStatus moves an order through its status enum.
func (h *Handler) AdminUpdateOrderStatus(c echo.Context) error {
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if !validOrderStatus[req.Status] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown order status"})
	}

	order, err := h.admin.UpdateOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	}
	return c.JSON(http.StatusOK, order)
}

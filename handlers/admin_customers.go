package handlers

import (
	"net/http"

	"github.com/NailaFatima/stylehub-go/models"
	"github.com/labstack/echo/v4"
)

// AdminCustomers lists the customer dataset, filtered by search.
func (h *Handler) AdminCustomers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.admin.CustomerList(c.QueryParam("search")))
}

// AdminToggleCustomer flips a customer's active flag.
func (h *Handler) AdminToggleCustomer(c echo.Context) error {
	customer, err := h.admin.ToggleCustomerActive(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Customer not found"})
	}
	return c.JSON(http.StatusOK, customer)
}

// AdminTransactions lists the payment ledger, optionally filtered by
// status.
func (h *Handler) AdminTransactions(c echo.Context) error {
	status := models.TransactionStatus(c.QueryParam("status"))
	return c.JSON(http.StatusOK, h.admin.TransactionList(status))
}

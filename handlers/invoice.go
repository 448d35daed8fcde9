package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/echo/v4"
)

// GetInvoice returns the current order. Navigating here without a
// completed order redirects home.
func (h *Handler) GetInvoice(c echo.Context) error {
	order, ok := h.sessionCart(c).CurrentOrder()
	if !ok {
		return redirectError(c, http.StatusNotFound, "No completed order", "/")
	}
	return c.JSON(http.StatusOK, order)
}

// CompleteOrder finishes the invoice step: the cart is cleared so a new
// purchase can start. The current order stays readable until the next
// one replaces it.
func (h *Handler) CompleteOrder(c echo.Context) error {
	cartC := h.sessionCart(c)
	if _, ok := cartC.CurrentOrder(); !ok {
		return redirectError(c, http.StatusNotFound, "No completed order", "/")
	}
	return c.JSON(http.StatusOK, cartC.Clear())
}

// InvoicePDF renders the current order as a downloadable PDF document.
func (h *Handler) InvoicePDF(c echo.Context) error {
	order, ok := h.sessionCart(c).CurrentOrder()
	if !ok {
		return redirectError(c, http.StatusNotFound, "No completed order", "/")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, h.settings.StoreName)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Invoice %s", order.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", order.OrderDate.Format("Jan 2, 2006")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Payment method: %s", order.PaymentMethod))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Bill To")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 11)
	info := order.CustomerInfo
	pdf.Cell(0, 6, info.Name)
	pdf.Ln(6)
	pdf.Cell(0, 6, info.Address)
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("%s %s", info.City, info.ZipCode))
	pdf.Ln(6)
	pdf.Cell(0, 6, info.Email)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range order.Items {
		label := fmt.Sprintf("%s (%s / %s)", item.Product.Name, item.Size, item.Color)
		amount := item.Product.Price * float64(item.Quantity)
		pdf.CellFormat(90, 8, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Product.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f %s", order.Total, h.settings.Currency), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to render invoice"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, order.ID))
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

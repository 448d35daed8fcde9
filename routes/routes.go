package routes

import (
	"github.com/NailaFatima/stylehub-go/handlers"
	customMiddleware "github.com/NailaFatima/stylehub-go/middleware"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers the storefront and admin surface. Admin routes
// sit behind the session middleware plus per-page permission tags.
func SetupRoutes(e *echo.Echo, h *handlers.Handler, jwtSecret string) {
	// Storefront (public)
	api := e.Group("/api")
	api.GET("/products", h.GetProducts)
	api.GET("/products/facets", h.GetFacets)
	api.GET("/products/:id", h.GetProduct)

	// Cart routes
	api.GET("/cart", h.GetCart)
	api.POST("/cart", h.AddToCart)
	api.PUT("/cart/quantity", h.UpdateCartItemQuantity)
	api.DELETE("/cart/:productId", h.RemoveFromCart)
	api.POST("/cart/clear", h.ClearCart)

	// Checkout / payment / invoice flow
	api.POST("/checkout", h.Checkout)
	api.POST("/payment", h.ProcessPayment)
	api.GET("/invoice", h.GetInvoice)
	api.GET("/invoice/pdf", h.InvoicePDF)
	api.POST("/invoice/complete", h.CompleteOrder)

	// Admin auth (public)
	e.POST("/admin/login", h.AdminLogin)
	e.POST("/admin/logout", h.AdminLogout)

	// Admin panel, session-gated with per-page permission tags
	adm := e.Group("/admin")
	adm.Use(customMiddleware.AdminAuthMiddleware(jwtSecret))

	adm.GET("/session", h.AdminSession)

	adm.GET("/products", h.AdminProducts, customMiddleware.RequirePermission("products"))
	adm.PUT("/products/:id/toggle", h.AdminToggleProduct, customMiddleware.RequirePermission("products"))
	adm.PUT("/products/:id/stock", h.AdminUpdateStock, customMiddleware.RequirePermission("inventory"))
	adm.DELETE("/products/:id", h.AdminDeleteProduct, customMiddleware.RequirePermission("products"))

	adm.GET("/orders", h.AdminOrders, customMiddleware.RequirePermission("orders"))
	adm.GET("/orders/:id", h.AdminGetOrder, customMiddleware.RequirePermission("orders"))
	adm.PUT("/orders/:id/status", h.AdminUpdateOrderStatus, customMiddleware.RequirePermission("orders"))

	adm.GET("/customers", h.AdminCustomers, customMiddleware.RequirePermission("customers"))
	adm.PUT("/customers/:id/toggle", h.AdminToggleCustomer, customMiddleware.RequirePermission("customers"))

	adm.GET("/transactions", h.AdminTransactions, customMiddleware.RequirePermission("analytics"))
	adm.GET("/dashboard", h.AdminDashboard, customMiddleware.RequirePermission("analytics"))
	adm.GET("/analytics/sales", h.AdminSalesSeries, customMiddleware.RequirePermission("analytics"))
	adm.GET("/analytics/top-products", h.AdminTopProducts, customMiddleware.RequirePermission("analytics"))
	adm.GET("/analytics/categories", h.AdminCategoryBreakdown, customMiddleware.RequirePermission("analytics"))
	adm.GET("/settings", h.AdminSettings, customMiddleware.RequirePermission("analytics"))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}

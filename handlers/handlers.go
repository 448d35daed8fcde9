// Package handlers wires the HTTP surface to the state containers. A
// single Handler carries every store by reference; there are no package
// globals.
package handlers

import (
	"github.com/NailaFatima/stylehub-go/admin"
	"github.com/NailaFatima/stylehub-go/auth"
	"github.com/NailaFatima/stylehub-go/cart"
	"github.com/NailaFatima/stylehub-go/catalog"
	"github.com/NailaFatima/stylehub-go/checkout"
	"github.com/NailaFatima/stylehub-go/models"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionHeader carries the storefront session id; requests without it
// share the default session.
const SessionHeader = "X-Session-ID"

// Dependencies is everything a Handler needs.
type Dependencies struct {
	Catalog   *catalog.Store
	Carts     *cart.Store
	Processor *checkout.Processor
	Gate      *auth.Gate
	Admin     *admin.Store
	Settings  models.AdminSettings
	Log       *zap.Logger
}

// Handler serves the storefront and admin endpoints.
type Handler struct {
	catalog   *catalog.Store
	carts     *cart.Store
	processor *checkout.Processor
	gate      *auth.Gate
	admin     *admin.Store
	settings  models.AdminSettings
	log       *zap.Logger
}

// New builds a Handler from its dependencies.
func New(deps Dependencies) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		catalog:   deps.Catalog,
		carts:     deps.Carts,
		processor: deps.Processor,
		gate:      deps.Gate,
		admin:     deps.Admin,
		settings:  deps.Settings,
		log:       log,
	}
}

func (h *Handler) sessionCart(c echo.Context) *cart.Cart {
	return h.carts.Get(c.Request().Header.Get(SessionHeader))
}

// redirectError is the missing-precondition response: the client is told
// which earlier step is still valid instead of being shown a raw error.
func redirectError(c echo.Context, status int, message, redirect string) error {
	return c.JSON(status, map[string]string{
		"error":    message,
		"redirect": redirect,
	})
}

package main

import (
	"log"
	"path/filepath"

	"github.com/NailaFatima/stylehub-go/admin"
	"github.com/NailaFatima/stylehub-go/auth"
	"github.com/NailaFatima/stylehub-go/cart"
	"github.com/NailaFatima/stylehub-go/catalog"
	"github.com/NailaFatima/stylehub-go/checkout"
	"github.com/NailaFatima/stylehub-go/config"
	"github.com/NailaFatima/stylehub-go/handlers"
	"github.com/NailaFatima/stylehub-go/routes"
	"github.com/NailaFatima/stylehub-go/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Admin session cache (the localStorage analog)
	dataDir := config.GetEnv("DATA_DIR", "data")
	sessionCache, err := store.NewLocalStore(filepath.Join(dataDir, "admin_session.json"))
	if err != nil {
		logger.Fatal("failed to open session cache", zap.Error(err))
	}

	jwtSecret := config.GetEnv("JWT_SECRET", "stylehub-dev-secret")

	gate := auth.NewGate(sessionCache, jwtSecret,
		config.GetEnvDuration("LOGIN_DELAY", auth.DefaultLoginDelay), logger)
	gate.Init()

	settings := checkout.DefaultSettings()
	settings.TaxRate = config.GetEnvFloat("TAX_RATE", settings.TaxRate)
	settings.ShippingRate = config.GetEnvFloat("SHIPPING_RATE", settings.ShippingRate)
	settings.FreeShippingThreshold = config.GetEnvFloat("FREE_SHIPPING_THRESHOLD", settings.FreeShippingThreshold)

	h := handlers.New(handlers.Dependencies{
		Catalog: catalog.NewStore(logger),
		Carts:   cart.NewStore(),
		Processor: checkout.NewProcessor(
			config.GetEnvDuration("PAYMENT_DELAY", checkout.DefaultProcessingDelay), logger),
		Gate:     gate,
		Admin:    admin.NewStore(logger),
		Settings: settings,
		Log:      logger,
	})

	// Setup routes
	routes.SetupRoutes(e, h, jwtSecret)

	// Start the server
	port := config.GetEnv("PORT", "3000")
	logger.Info("server starting", zap.String("port", port))
	e.Logger.Fatal(e.Start(":" + port))
}

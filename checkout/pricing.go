// Package checkout covers the storefront purchase flow: order pricing,
// shipping/payment form validation, and the simulated payment processor.
package checkout

import "github.com/NailaFatima/stylehub-go/models"

// DefaultSettings are the store pricing knobs. Orders over the threshold
// ship free; tax applies to the subtotal only.
func DefaultSettings() models.AdminSettings {
	return models.AdminSettings{
		StoreName:             "StyleHub",
		StoreEmail:            "support@stylehub.com",
		StorePhone:            "+1-555-0100",
		StoreAddress:          "500 Fashion Ave, New York, NY",
		TaxRate:               0.08,
		ShippingRate:          9.99,
		FreeShippingThreshold: 75,
		Currency:              "USD",
	}
}

// Price breaks a cart subtotal down into shipping, tax and final total.
func Price(subtotal float64, settings models.AdminSettings) models.OrderSummary {
	shipping := settings.ShippingRate
	if subtotal > settings.FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * settings.TaxRate
	return models.OrderSummary{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		OrderTotal: subtotal + shipping + tax,
	}
}

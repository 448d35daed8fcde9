package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceFreeShippingOverThreshold(t *testing.T) {
	s := Price(80.00, DefaultSettings())

	assert.InDelta(t, 0, s.Shipping, 1e-9)
	assert.InDelta(t, 6.40, s.Tax, 1e-9)
	assert.InDelta(t, 86.40, s.OrderTotal, 1e-9)
}

func TestPricePaidShippingUnderThreshold(t *testing.T) {
	s := Price(50.00, DefaultSettings())

	assert.InDelta(t, 9.99, s.Shipping, 1e-9)
	assert.InDelta(t, 4.00, s.Tax, 1e-9)
	assert.InDelta(t, 63.99, s.OrderTotal, 1e-9)
}

func TestPriceThresholdIsStrict(t *testing.T) {
	// Exactly at the threshold still pays shipping.
	s := Price(75.00, DefaultSettings())

	assert.InDelta(t, 9.99, s.Shipping, 1e-9)
}

func TestPriceTaxAppliesToSubtotalOnly(t *testing.T) {
	s := Price(50.00, DefaultSettings())

	assert.InDelta(t, 50.00*0.08, s.Tax, 1e-9)
	assert.InDelta(t, s.Subtotal+s.Shipping+s.Tax, s.OrderTotal, 1e-9)
}

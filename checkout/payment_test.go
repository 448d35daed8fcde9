package checkout

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/NailaFatima/stylehub-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessBuildsOrder(t *testing.T) {
	p := NewProcessor(time.Millisecond, nil)
	items := []models.CartItem{
		{Product: models.Product{ID: "1", Price: 29.99}, Size: "M", Color: "White", Quantity: 2},
	}

	order, err := p.Process(context.Background(), PaymentRequest{
		Items:        items,
		Total:        74.77,
		CustomerInfo: models.CustomerInfo{Name: "John Doe", Email: "john@email.com"},
		Method:       MethodCard,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, items, order.Items)
	assert.InDelta(t, 74.77, order.Total, 1e-9)
	assert.Equal(t, "Credit Card", order.PaymentMethod)
	assert.WithinDuration(t, time.Now(), order.OrderDate, time.Minute)
}

func TestProcessCancelledContextProducesNoOrder(t *testing.T) {
	p := NewProcessor(time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Process(ctx, PaymentRequest{Method: MethodUPI})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestOrderIDsDoNotCollide(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewOrderID()
		require.False(t, seen[id])
		seen[id] = true
	}
}

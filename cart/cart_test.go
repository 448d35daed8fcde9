package cart

import (
	"testing"

	"github.com/NailaFatima/stylehub-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tshirt() models.Product {
	return models.Product{ID: "1", Name: "Classic Cotton T-Shirt", Price: 29.99}
}

func jeans() models.Product {
	return models.Product{ID: "2", Name: "Slim Fit Denim Jeans", Price: 79.99}
}

// checkInvariant asserts that total and itemCount are exact functions of
// the item list.
func checkInvariant(t *testing.T, state models.CartState) {
	t.Helper()
	total := 0.0
	count := 0
	for _, item := range state.Items {
		total += item.Product.Price * float64(item.Quantity)
		count += item.Quantity
	}
	assert.InDelta(t, total, state.Total, 1e-9)
	assert.Equal(t, count, state.ItemCount)
}

func TestAddMergesSameCompositeKey(t *testing.T) {
	c := New()

	c.Add(tshirt(), "M", "White", 2)
	state := c.Add(tshirt(), "M", "White", 3)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
	checkInvariant(t, state)
}

func TestAddDistinguishesSizeAndColor(t *testing.T) {
	c := New()

	c.Add(tshirt(), "M", "White", 1)
	c.Add(tshirt(), "L", "White", 1)
	state := c.Add(tshirt(), "M", "Black", 1)

	assert.Len(t, state.Items, 3)
	checkInvariant(t, state)
}

func TestInvariantHoldsAfterEveryAction(t *testing.T) {
	c := New()

	checkInvariant(t, c.Add(tshirt(), "M", "White", 2))
	checkInvariant(t, c.Add(jeans(), "32", "Blue", 1))
	checkInvariant(t, c.UpdateQuantity("1", "M", "White", 5))
	checkInvariant(t, c.Remove("2", "32", "Blue"))
	checkInvariant(t, c.UpdateQuantity("1", "M", "White", 0))
	checkInvariant(t, c.Clear())
}

func TestUpdateQuantityIsAbsolute(t *testing.T) {
	c := New()

	c.Add(tshirt(), "M", "White", 2)
	state := c.UpdateQuantity("1", "M", "White", 7)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 7, state.Items[0].Quantity)
	assert.InDelta(t, 7*29.99, state.Total, 1e-9)
}

func TestUpdateQuantityZeroRemovesItem(t *testing.T) {
	c := New()

	c.Add(tshirt(), "M", "White", 2)
	c.Add(jeans(), "32", "Blue", 1)
	state := c.UpdateQuantity("1", "M", "White", 0)

	require.Len(t, state.Items, 1)
	assert.Equal(t, "2", state.Items[0].Product.ID)
	checkInvariant(t, state)
}

func TestRemove(t *testing.T) {
	c := New()

	c.Add(tshirt(), "M", "White", 2)
	state := c.Remove("1", "M", "White")

	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
	assert.Zero(t, state.ItemCount)
}

func TestClearKeepsCurrentOrder(t *testing.T) {
	c := New()

	c.Add(tshirt(), "M", "White", 2)
	c.SetOrder(models.Order{ID: "ORD-test"})
	state := c.Clear()

	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
	require.NotNil(t, state.CurrentOrder)
	assert.Equal(t, "ORD-test", state.CurrentOrder.ID)
}

func TestSetOrderKeepsItems(t *testing.T) {
	c := New()

	c.Add(tshirt(), "M", "White", 2)
	state := c.SetOrder(models.Order{ID: "ORD-test"})

	assert.Len(t, state.Items, 1)
	order, ok := c.CurrentOrder()
	require.True(t, ok)
	assert.Equal(t, "ORD-test", order.ID)
}

func TestStoreSeparatesSessions(t *testing.T) {
	s := NewStore()

	s.Get("a").Add(tshirt(), "M", "White", 1)

	assert.Equal(t, 1, s.Get("a").State().ItemCount)
	assert.Zero(t, s.Get("b").State().ItemCount)
	assert.Same(t, s.Get(""), s.Get(DefaultSession))
}

// Package cart implements the shopping cart state machine. A Cart is
// reached only through its five action methods; the derived total and
// item count are recomputed from the full item list after every mutation
// so they are always exact functions of the items.
package cart

import (
	"sync"

	"github.com/NailaFatima/stylehub-go/models"
)

// Cart is a single owned cart state container.
type Cart struct {
	mu    sync.Mutex
	state models.CartState
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{state: models.CartState{Items: []models.CartItem{}}}
}

// State returns a snapshot of the cart. The item slice is copied so
// callers cannot mutate the container behind its back.
func (c *Cart) State() models.CartState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Add appends a line item, or increments the quantity of the existing
// line with the same (product, size, color) key. Quantity validation is
// the caller's responsibility.
func (c *Cart) Add(product models.Product, size, color string, quantity int) models.CartState {
	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	for i, item := range c.state.Items {
		if item.Matches(product.ID, size, color) {
			c.state.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		c.state.Items = append(c.state.Items, models.CartItem{
			Product:  product,
			Size:     size,
			Color:    color,
			Quantity: quantity,
		})
	}
	c.recompute()
	return c.snapshot()
}

// UpdateQuantity sets the quantity of the matching line to the given
// absolute value. Quantity zero removes the line.
func (c *Cart) UpdateQuantity(productID, size, color string, quantity int) models.CartState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity == 0 {
		c.removeLocked(productID, size, color)
	} else {
		for i, item := range c.state.Items {
			if item.Matches(productID, size, color) {
				c.state.Items[i].Quantity = quantity
				break
			}
		}
	}
	c.recompute()
	return c.snapshot()
}

// Remove drops the matching line item.
func (c *Cart) Remove(productID, size, color string) models.CartState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(productID, size, color)
	c.recompute()
	return c.snapshot()
}

// Clear empties the cart. The current order, if any, is untouched.
func (c *Cart) Clear() models.CartState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Items = []models.CartItem{}
	c.recompute()
	return c.snapshot()
}

// SetOrder stores the completed order. Items are not cleared here;
// callers clear separately once the invoice is done.
func (c *Cart) SetOrder(order models.Order) models.CartState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.CurrentOrder = &order
	return c.snapshot()
}

// CurrentOrder returns the last completed order, if any.
func (c *Cart) CurrentOrder() (models.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CurrentOrder == nil {
		return models.Order{}, false
	}
	return *c.state.CurrentOrder, true
}

func (c *Cart) removeLocked(productID, size, color string) {
	items := c.state.Items[:0]
	for _, item := range c.state.Items {
		if !item.Matches(productID, size, color) {
			items = append(items, item)
		}
	}
	c.state.Items = items
}

// recompute rederives total and itemCount from the item list. Every
// mutation must end here.
func (c *Cart) recompute() {
	total := 0.0
	count := 0
	for _, item := range c.state.Items {
		total += item.Product.Price * float64(item.Quantity)
		count += item.Quantity
	}
	c.state.Total = total
	c.state.ItemCount = count
}

func (c *Cart) snapshot() models.CartState {
	items := make([]models.CartItem, len(c.state.Items))
	copy(items, c.state.Items)
	snap := c.state
	snap.Items = items
	return snap
}

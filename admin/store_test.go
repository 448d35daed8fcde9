package admin

import (
	"testing"
	"time"

	"github.com/NailaFatima/stylehub-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductListSearch(t *testing.T) {
	s := NewStore(nil)

	assert.Len(t, s.ProductList(""), 3)

	got := s.ProductList("denim")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// Category matches too, case-insensitive.
	got = s.ProductList("t-shirts")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestToggleProductActive(t *testing.T) {
	s := NewStore(nil)

	p, err := s.ToggleProductActive("1")
	require.NoError(t, err)
	assert.False(t, p.IsActive)

	p, err = s.ToggleProductActive("1")
	require.NoError(t, err)
	assert.True(t, p.IsActive)

	_, err = s.ToggleProductActive("missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateProductStock(t *testing.T) {
	s := NewStore(nil)

	p, err := s.UpdateProductStock("2", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, p.Stock)
	assert.False(t, p.LowStock())
}

func TestDeleteProduct(t *testing.T) {
	s := NewStore(nil)

	require.NoError(t, s.DeleteProduct("3"))
	assert.Len(t, s.ProductList(""), 2)
	assert.ErrorIs(t, s.DeleteProduct("3"), ErrProductNotFound)
}

func TestOrderListSearchAndStatus(t *testing.T) {
	s := NewStore(nil)

	assert.Len(t, s.OrderList("", ""), 2)

	got := s.OrderList("jane", "")
	require.Len(t, got, 1)
	assert.Equal(t, "ORD1704153600000", got[0].ID)

	got = s.OrderList("", models.OrderShipped)
	require.Len(t, got, 1)
	assert.Equal(t, models.OrderShipped, got[0].Status)

	assert.Empty(t, s.OrderList("jane", models.OrderProcessing))
}

func TestUpdateOrderStatus(t *testing.T) {
	s := NewStore(nil)

	o, err := s.UpdateOrderStatus("ORD1704067200000", models.OrderDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, o.Status)

	_, err = s.UpdateOrderStatus("missing", models.OrderPending)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCustomerSearchAndToggle(t *testing.T) {
	s := NewStore(nil)

	got := s.CustomerList("+1-555-0789")
	require.Len(t, got, 1)
	assert.Equal(t, "CUST003", got[0].ID)

	c, err := s.ToggleCustomerActive("CUST003")
	require.NoError(t, err)
	assert.False(t, c.IsActive)
}

func TestCustomerSearchPhoneIgnoresCase(t *testing.T) {
	s := NewStore(nil)

	order := models.Order{
		ID:    "ORD-vanity",
		Total: 30,
		CustomerInfo: models.CustomerInfo{
			Name: "Vanity Caller", Email: "vanity@email.com", Phone: "+1-800-STYLE",
		},
		OrderDate: time.Now(),
	}
	s.RecordOrder(order, "TXN-vanity")

	got := s.CustomerList("style")
	require.Len(t, got, 1)
	assert.Equal(t, "+1-800-STYLE", got[0].Phone)
}

func TestTransactionListFilter(t *testing.T) {
	s := NewStore(nil)

	assert.Len(t, s.TransactionList(""), 2)
	assert.Len(t, s.TransactionList(models.TxSuccessful), 2)
	assert.Empty(t, s.TransactionList(models.TxRefunded))
}

func TestRecordOrderAppendsAcrossDatasets(t *testing.T) {
	s := NewStore(nil)

	order := models.Order{
		ID: "ORD-abc12345",
		Items: []models.CartItem{
			{
				Product:  models.Product{ID: "1", Name: "Classic Cotton T-Shirt", Price: 29.99, Images: []string{"img"}},
				Size:     "M",
				Color:    "White",
				Quantity: 2,
			},
		},
		Total: 74.77,
		CustomerInfo: models.CustomerInfo{
			Name: "New Buyer", Email: "new.buyer@email.com", Phone: "+1-555-0999",
			Address: "9 Elm St", City: "Austin", ZipCode: "73301",
		},
		PaymentMethod: "UPI",
		OrderDate:     time.Now(),
	}

	s.RecordOrder(order, "TXN-test")

	orders := s.OrderList("new buyer", "")
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderPending, orders[0].Status)
	assert.Equal(t, models.PaymentCompleted, orders[0].PaymentStatus)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)

	customers := s.CustomerList("new.buyer")
	require.Len(t, customers, 1)
	assert.Equal(t, 1, customers[0].TotalOrders)
	assert.InDelta(t, 74.77, customers[0].TotalSpent, 1e-9)

	txs := s.TransactionList("")
	assert.Len(t, txs, 3)
}

func TestRecordOrderUpsertsKnownCustomer(t *testing.T) {
	s := NewStore(nil)

	order := models.Order{
		ID:           "ORD-def67890",
		Total:        50,
		CustomerInfo: models.CustomerInfo{Name: "John Doe", Email: "john.doe@email.com"},
		OrderDate:    time.Now(),
	}
	s.RecordOrder(order, "TXN-test2")

	customers := s.CustomerList("john.doe")
	require.Len(t, customers, 1)
	assert.Equal(t, 6, customers[0].TotalOrders)
	assert.InDelta(t, 399.95, customers[0].TotalSpent, 1e-9)
}

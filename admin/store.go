// Package admin owns the admin panel datasets. They are separate mock
// arrays with no consistency link to the storefront catalog; every
// mutation is an explicit admin action.
package admin

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/NailaFatima/stylehub-go/models"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound  = errors.New("admin product not found")
	ErrOrderNotFound    = errors.New("admin order not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// Store is the mutable container behind the admin CRUD views.
type Store struct {
	mu           sync.Mutex
	products     []models.AdminProduct
	orders       []models.AdminOrder
	customers    []models.Customer
	transactions []models.Transaction
	salesData    []models.SalesData
	log          *zap.Logger
	nowFunc      func() time.Time
}

// NewStore builds a store seeded with the mock admin datasets.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		products:     seedProducts(),
		orders:       seedOrders(),
		customers:    seedCustomers(),
		transactions: seedTransactions(),
		salesData:    seedSalesData(),
		log:          log,
		nowFunc:      time.Now,
	}
}

// ProductList returns products matching the search term (name or
// category, case-insensitive). An empty term matches everything.
func (s *Store) ProductList(search string) []models.AdminProduct {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(search)
	out := make([]models.AdminProduct, 0, len(s.products))
	for _, p := range s.products {
		if term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p)
		}
	}
	return out
}

// ToggleProductActive flips a product's active flag.
func (s *Store) ToggleProductActive(id string) (models.AdminProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].IsActive = !s.products[i].IsActive
			s.products[i].UpdatedAt = s.nowFunc()
			s.log.Info("admin product toggled",
				zap.String("id", id), zap.Bool("isActive", s.products[i].IsActive))
			return s.products[i], nil
		}
	}
	return models.AdminProduct{}, ErrProductNotFound
}

// UpdateProductStock sets a product's stock level.
func (s *Store) UpdateProductStock(id string, stock int) (models.AdminProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock = stock
			s.products[i].UpdatedAt = s.nowFunc()
			return s.products[i], nil
		}
	}
	return models.AdminProduct{}, ErrProductNotFound
}

// DeleteProduct removes a product from the dataset.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.log.Info("admin product deleted", zap.String("id", id))
			return nil
		}
	}
	return ErrProductNotFound
}

// OrderList returns orders matching the search term (order id, customer
// name or email) and status filter. Empty arguments match everything.
func (s *Store) OrderList(search string, status models.OrderStatus) []models.AdminOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(search)
	out := make([]models.AdminOrder, 0, len(s.orders))
	for _, o := range s.orders {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(o.ID), term) ||
			strings.Contains(strings.ToLower(o.CustomerName), term) ||
			strings.Contains(strings.ToLower(o.CustomerEmail), term)
		matchesStatus := status == "" || o.Status == status
		if matchesSearch && matchesStatus {
			out = append(out, o)
		}
	}
	return out
}

// GetOrder returns one order by id.
func (s *Store) GetOrder(id string) (models.AdminOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.AdminOrder{}, ErrOrderNotFound
}

// UpdateOrderStatus moves an order to the given status.
func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) (models.AdminOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = s.nowFunc()
			s.log.Info("admin order status updated",
				zap.String("id", id), zap.String("status", string(status)))
			return s.orders[i], nil
		}
	}
	return models.AdminOrder{}, ErrOrderNotFound
}

// CustomerList returns customers matching the search term (name, email
// or phone).
func (s *Store) CustomerList(search string) []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(search)
	out := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if term == "" ||
			strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) ||
			strings.Contains(strings.ToLower(c.Phone), term) {
			out = append(out, c)
		}
	}
	return out
}

// ToggleCustomerActive flips a customer's active flag.
func (s *Store) ToggleCustomerActive(id string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].IsActive = !s.customers[i].IsActive
			return s.customers[i], nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

// TransactionList returns the payment ledger, optionally filtered by
// status.
func (s *Store) TransactionList(status models.TransactionStatus) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if status == "" || t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// RecordOrder appends a storefront order to the admin datasets so the
// panel sees completed purchases: an order record, a successful
// transaction, and a customer upsert keyed by email.
func (s *Store) RecordOrder(order models.Order, txID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	items := make([]models.OrderItem, 0, len(order.Items))
	for _, it := range order.Items {
		image := ""
		if len(it.Product.Images) > 0 {
			image = it.Product.Images[0]
		}
		items = append(items, models.OrderItem{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			Price:       it.Product.Price,
			Quantity:    it.Quantity,
			Size:        it.Size,
			Color:       it.Color,
			Image:       image,
		})
	}

	customerID := s.upsertCustomerLocked(order, now)

	s.orders = append(s.orders, models.AdminOrder{
		ID:            order.ID,
		CustomerID:    customerID,
		CustomerName:  order.CustomerInfo.Name,
		CustomerEmail: order.CustomerInfo.Email,
		Items:         items,
		Total:         order.Total,
		Status:        models.OrderPending,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: models.PaymentCompleted,
		ShippingAddress: models.ShippingAddress{
			Name:    order.CustomerInfo.Name,
			Address: order.CustomerInfo.Address,
			City:    order.CustomerInfo.City,
			ZipCode: order.CustomerInfo.ZipCode,
			Phone:   order.CustomerInfo.Phone,
		},
		OrderDate: order.OrderDate,
		UpdatedAt: now,
	})

	s.transactions = append(s.transactions, models.Transaction{
		ID:         txID,
		OrderID:    order.ID,
		CustomerID: customerID,
		Amount:     order.Total,
		Method:     order.PaymentMethod,
		Status:     models.TxSuccessful,
		Date:       order.OrderDate,
	})

	s.log.Info("order recorded", zap.String("orderId", order.ID))
}

func (s *Store) upsertCustomerLocked(order models.Order, now time.Time) string {
	for i := range s.customers {
		if s.customers[i].Email == order.CustomerInfo.Email {
			s.customers[i].TotalOrders++
			s.customers[i].TotalSpent += order.Total
			s.customers[i].LastOrderDate = order.OrderDate
			return s.customers[i].ID
		}
	}
	id := "CUST" + order.ID[len(order.ID)-8:]
	s.customers = append(s.customers, models.Customer{
		ID:               id,
		Name:             order.CustomerInfo.Name,
		Email:            order.CustomerInfo.Email,
		Phone:            order.CustomerInfo.Phone,
		TotalOrders:      1,
		TotalSpent:       order.Total,
		LastOrderDate:    order.OrderDate,
		IsActive:         true,
		RegistrationDate: now,
	})
	return id
}

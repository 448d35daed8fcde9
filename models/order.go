package models

import "time"

// CustomerInfo is the shipping form payload collected at checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// Order is the record built once payment completes. Immutable after
// creation.
type Order struct {
	ID            string       `json:"id"`
	Items         []CartItem   `json:"items"`
	Total         float64      `json:"total"`
	CustomerInfo  CustomerInfo `json:"customerInfo"`
	PaymentMethod string       `json:"paymentMethod"`
	OrderDate     time.Time    `json:"orderDate"`
}

// OrderSummary is the priced breakdown returned by checkout and carried
// forward to payment.
type OrderSummary struct {
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	OrderTotal float64 `json:"orderTotal"`
}

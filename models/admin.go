package models

import "time"

// Role is an admin account role. Permissions are resolved through the
// role table in the auth package.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleManager    Role = "manager"
	RoleStaff      Role = "staff"
)

// User is an admin panel account.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	LastLogin time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminProduct is the admin-side product record. It carries inventory
// lifecycle fields and is a separate dataset from the storefront catalog.
type AdminProduct struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Price             float64   `json:"price"`
	OriginalPrice     float64   `json:"originalPrice,omitempty"`
	Category          string    `json:"category"`
	Sizes             []string  `json:"sizes"`
	Colors            []string  `json:"colors"`
	Images            []string  `json:"images"`
	Description       string    `json:"description"`
	Features          []string  `json:"features"`
	Stock             int       `json:"stock"`
	LowStockThreshold int       `json:"lowStockThreshold"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// LowStock reports whether the product is at or below its threshold.
func (p AdminProduct) LowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// OrderItem is one line of an admin order.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Image       string  `json:"image"`
}

// ShippingAddress is the delivery address attached to an admin order.
type ShippingAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Phone   string `json:"phone"`
}

// AdminOrder is the admin-side order record.
type AdminOrder struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	Items           []OrderItem     `json:"items"`
	Total           float64         `json:"total"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	OrderDate       time.Time       `json:"orderDate"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Customer is the admin-side customer record.
type Customer struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	TotalOrders      int       `json:"totalOrders"`
	TotalSpent       float64   `json:"totalSpent"`
	LastOrderDate    time.Time `json:"lastOrderDate,omitempty"`
	IsActive         bool      `json:"isActive"`
	RegistrationDate time.Time `json:"registrationDate"`
}

type TransactionStatus string

const (
	TxSuccessful TransactionStatus = "successful"
	TxPending    TransactionStatus = "pending"
	TxFailed     TransactionStatus = "failed"
	TxRefunded   TransactionStatus = "refunded"
)

// Transaction is a payment record in the admin ledger.
type Transaction struct {
	ID           string            `json:"id"`
	OrderID      string            `json:"orderId"`
	CustomerID   string            `json:"customerId"`
	Amount       float64           `json:"amount"`
	Method       string            `json:"method"`
	Status       TransactionStatus `json:"status"`
	Date         time.Time         `json:"date"`
	RefundAmount float64           `json:"refundAmount,omitempty"`
}

// DashboardStats is the admin dashboard headline block.
type DashboardStats struct {
	TotalSales       int     `json:"totalSales"`
	TotalOrders      int     `json:"totalOrders"`
	TotalCustomers   int     `json:"totalCustomers"`
	TotalRevenue     float64 `json:"totalRevenue"`
	LowStockProducts int     `json:"lowStockProducts"`
	PendingOrders    int     `json:"pendingOrders"`
}

// SalesData is one point of the sales analytics series.
type SalesData struct {
	Date    string  `json:"date"`
	Sales   int     `json:"sales"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// AdminSettings carries store identity and the pricing knobs used by
// checkout.
type AdminSettings struct {
	StoreName             string  `json:"storeName"`
	StoreEmail            string  `json:"storeEmail"`
	StorePhone            string  `json:"storePhone"`
	StoreAddress          string  `json:"storeAddress"`
	TaxRate               float64 `json:"taxRate"`
	ShippingRate          float64 `json:"shippingRate"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	Currency              string  `json:"currency"`
}

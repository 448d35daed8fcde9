package admin

import (
	"time"

	"github.com/NailaFatima/stylehub-go/models"
)

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func seedProducts() []models.AdminProduct {
	return []models.AdminProduct{
		{
			ID:            "1",
			Name:          "Classic Cotton T-Shirt",
			Price:         29.99,
			OriginalPrice: 39.99,
			Category:      "T-Shirts",
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"White", "Black", "Navy", "Gray"},
			Images: []string{
				"https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg",
				"https://images.pexels.com/photos/7679720/pexels-photo-7679720.jpeg",
			},
			Description:       "Premium quality cotton t-shirt with a comfortable fit.",
			Features:          []string{"100% Cotton", "Machine Washable", "Comfortable Fit"},
			Stock:             45,
			LowStockThreshold: 10,
			IsActive:          true,
			CreatedAt:         day("2024-01-15"),
			UpdatedAt:         day("2024-01-20"),
		},
		{
			ID:       "2",
			Name:     "Slim Fit Denim Jeans",
			Price:    79.99,
			Category: "Jeans",
			Sizes:    []string{"28", "30", "32", "34", "36"},
			Colors:   []string{"Blue", "Black", "Light Blue"},
			Images: []string{
				"https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg",
			},
			Description:       "Modern slim-fit jeans with premium denim fabric.",
			Features:          []string{"Slim Fit", "Premium Denim", "Five Pocket Design"},
			Stock:             8,
			LowStockThreshold: 10,
			IsActive:          true,
			CreatedAt:         day("2024-01-10"),
			UpdatedAt:         day("2024-01-18"),
		},
		{
			ID:       "3",
			Name:     "Casual Button Shirt",
			Price:    49.99,
			Category: "Shirts",
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors:   []string{"White", "Blue", "Light Blue"},
			Images: []string{
				"https://images.pexels.com/photos/298863/pexels-photo-298863.jpeg",
			},
			Description:       "Versatile button-up shirt for casual and semi-formal occasions.",
			Features:          []string{"Cotton Blend", "Classic Fit", "Button Closure"},
			Stock:             23,
			LowStockThreshold: 15,
			IsActive:          true,
			CreatedAt:         day("2024-01-12"),
			UpdatedAt:         day("2024-01-19"),
		},
	}
}

func seedOrders() []models.AdminOrder {
	return []models.AdminOrder{
		{
			ID:            "ORD1704067200000",
			CustomerID:    "CUST001",
			CustomerName:  "John Doe",
			CustomerEmail: "john.doe@email.com",
			Items: []models.OrderItem{
				{
					ProductID:   "1",
					ProductName: "Classic Cotton T-Shirt",
					Price:       29.99,
					Quantity:    2,
					Size:        "M",
					Color:       "White",
					Image:       "https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg",
				},
			},
			Total:         69.97,
			Status:        models.OrderProcessing,
			PaymentMethod: "Credit Card",
			PaymentStatus: models.PaymentCompleted,
			ShippingAddress: models.ShippingAddress{
				Name:    "John Doe",
				Address: "123 Main St",
				City:    "New York",
				ZipCode: "10001",
				Phone:   "+1-555-0123",
			},
			OrderDate: day("2024-01-01"),
			UpdatedAt: day("2024-01-02"),
		},
		{
			ID:            "ORD1704153600000",
			CustomerID:    "CUST002",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane.smith@email.com",
			Items: []models.OrderItem{
				{
					ProductID:   "2",
					ProductName: "Slim Fit Denim Jeans",
					Price:       79.99,
					Quantity:    1,
					Size:        "32",
					Color:       "Blue",
					Image:       "https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg",
				},
			},
			Total:         89.98,
			Status:        models.OrderShipped,
			PaymentMethod: "UPI",
			PaymentStatus: models.PaymentCompleted,
			ShippingAddress: models.ShippingAddress{
				Name:    "Jane Smith",
				Address: "456 Oak Ave",
				City:    "Los Angeles",
				ZipCode: "90210",
				Phone:   "+1-555-0456",
			},
			OrderDate: day("2024-01-02"),
			UpdatedAt: day("2024-01-03"),
		},
	}
}

func seedCustomers() []models.Customer {
	return []models.Customer{
		{
			ID:               "CUST001",
			Name:             "John Doe",
			Email:            "john.doe@email.com",
			Phone:            "+1-555-0123",
			TotalOrders:      5,
			TotalSpent:       349.95,
			LastOrderDate:    day("2024-01-01"),
			IsActive:         true,
			RegistrationDate: day("2023-12-01"),
		},
		{
			ID:               "CUST002",
			Name:             "Jane Smith",
			Email:            "jane.smith@email.com",
			Phone:            "+1-555-0456",
			TotalOrders:      3,
			TotalSpent:       269.97,
			LastOrderDate:    day("2024-01-02"),
			IsActive:         true,
			RegistrationDate: day("2023-11-15"),
		},
		{
			ID:               "CUST003",
			Name:             "Mike Johnson",
			Email:            "mike.johnson@email.com",
			Phone:            "+1-555-0789",
			TotalOrders:      1,
			TotalSpent:       79.99,
			LastOrderDate:    day("2023-12-28"),
			IsActive:         true,
			RegistrationDate: day("2023-12-20"),
		},
	}
}

func seedTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:         "TXN001",
			OrderID:    "ORD1704067200000",
			CustomerID: "CUST001",
			Amount:     69.97,
			Method:     "Credit Card",
			Status:     models.TxSuccessful,
			Date:       day("2024-01-01"),
		},
		{
			ID:         "TXN002",
			OrderID:    "ORD1704153600000",
			CustomerID: "CUST002",
			Amount:     89.98,
			Method:     "UPI",
			Status:     models.TxSuccessful,
			Date:       day("2024-01-02"),
		},
	}
}

func seedSalesData() []models.SalesData {
	return []models.SalesData{
		{Date: "2024-01-01", Sales: 12, Orders: 8, Revenue: 450.50},
		{Date: "2024-01-02", Sales: 18, Orders: 12, Revenue: 720.25},
		{Date: "2024-01-03", Sales: 15, Orders: 10, Revenue: 580.75},
		{Date: "2024-01-04", Sales: 22, Orders: 15, Revenue: 890.00},
		{Date: "2024-01-05", Sales: 28, Orders: 18, Revenue: 1120.30},
		{Date: "2024-01-06", Sales: 25, Orders: 16, Revenue: 980.45},
		{Date: "2024-01-07", Sales: 30, Orders: 20, Revenue: 1250.80},
	}
}

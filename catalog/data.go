package catalog

import "github.com/NailaFatima/stylehub-go/models"

// Canonical facet lists shown by filter UIs.
var (
	Categories = []string{"T-Shirts", "Jeans", "Shirts", "Hoodies", "Dresses", "Shorts"}
	Sizes      = []string{"XS", "S", "M", "L", "XL", "XXL", "28", "30", "32", "34", "36", "38"}
	Colors     = []string{"White", "Black", "Navy", "Gray", "Blue", "Light Blue", "Red", "Maroon", "Floral"}
)

// DefaultPriceRange is the full price window used when a query carries no
// price constraint.
var DefaultPriceRange = [2]float64{0, 200}

func seedProducts() []models.Product {
	return []models.Product{
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
			Description: "Premium quality cotton t-shirt with a comfortable fit. Perfect for everyday wear.",
			Features:    []string{"100% Cotton", "Machine Washable", "Comfortable Fit", "Durable Fabric"},
			Rating:      4.5,
			Reviews:     128,
			IsSale:      true,
		},
		{
			ID:       "2",
			Name:     "Slim Fit Denim Jeans",
			Price:    79.99,
			Category: "Jeans",
			Sizes:    []string{"28", "30", "32", "34", "36", "38"},
			Colors:   []string{"Blue", "Black", "Light Blue"},
			Images: []string{
				"https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg",
				"https://images.pexels.com/photos/7679447/pexels-photo-7679447.jpeg",
			},
			Description: "Modern slim-fit jeans with premium denim fabric. Comfortable and stylish.",
			Features:    []string{"Slim Fit", "Premium Denim", "Five Pocket Design", "Belt Loops"},
			Rating:      4.8,
			Reviews:     89,
			IsNew:       true,
		},
		{
			ID:       "3",
			Name:     "Casual Button Shirt",
			Price:    49.99,
			Category: "Shirts",
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors:   []string{"White", "Blue", "Light Blue", "Gray"},
			Images: []string{
				"https://images.pexels.com/photos/298863/pexels-photo-298863.jpeg",
				"https://images.pexels.com/photos/7679480/pexels-photo-7679480.jpeg",
			},
			Description: "Versatile button-up shirt suitable for both casual and semi-formal occasions.",
			Features:    []string{"Cotton Blend", "Classic Fit", "Button Closure", "Collar Design"},
			Rating:      4.3,
			Reviews:     64,
		},
		{
			ID:       "4",
			Name:     "Comfortable Hoodie",
			Price:    59.99,
			Category: "Hoodies",
			Sizes:    []string{"XS", "S", "M", "L", "XL", "XXL"},
			Colors:   []string{"Black", "Gray", "Navy", "Maroon"},
			Images: []string{
				"https://images.pexels.com/photos/7679448/pexels-photo-7679448.jpeg",
				"https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg",
			},
			Description: "Cozy hoodie with a soft fleece lining. Perfect for cool weather.",
			Features:    []string{"Fleece Lined", "Kangaroo Pocket", "Drawstring Hood", "Ribbed Cuffs"},
			Rating:      4.6,
			Reviews:     156,
		},
		{
			ID:            "5",
			Name:          "Summer Dress",
			Price:         69.99,
			OriginalPrice: 89.99,
			Category:      "Dresses",
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"Floral", "Solid Blue", "Black", "White"},
			Images: []string{
				"https://images.pexels.com/photos/7679720/pexels-photo-7679720.jpeg",
				"https://images.pexels.com/photos/298863/pexels-photo-298863.jpeg",
			},
			Description: "Elegant summer dress with a flattering silhouette. Perfect for special occasions.",
			Features:    []string{"Flowing Fabric", "Flattering Cut", "Zipper Closure", "Lined"},
			Rating:      4.7,
			Reviews:     92,
			IsSale:      true,
		},
		{
			ID:       "6",
			Name:     "Athletic Shorts",
			Price:    34.99,
			Category: "Shorts",
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors:   []string{"Black", "Navy", "Gray", "Red"},
			Images: []string{
				"https://images.pexels.com/photos/7679447/pexels-photo-7679447.jpeg",
				"https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg",
			},
			Description: "Lightweight athletic shorts with moisture-wicking fabric. Great for workouts.",
			Features:    []string{"Moisture Wicking", "Elastic Waistband", "Side Pockets", "Quick Dry"},
			Rating:      4.4,
			Reviews:     203,
			IsNew:       true,
		},
	}
}

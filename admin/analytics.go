package admin

import (
	"sort"

	"github.com/NailaFatima/stylehub-go/models"
)

// ProductSales is one row of the top-products chart.
type ProductSales struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// CategoryShare is one slice of the category breakdown chart.
type CategoryShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DashboardStats derives the headline block from the datasets. Sales and
// customer totals come from the sales series and customer list; low
// stock and pending orders are counted live.
func (s *Store) DashboardStats() models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.DashboardStats{
		TotalOrders:    len(s.orders),
		TotalCustomers: len(s.customers),
	}
	for _, p := range s.products {
		if p.LowStock() {
			stats.LowStockProducts++
		}
	}
	for _, o := range s.orders {
		if o.Status == models.OrderPending {
			stats.PendingOrders++
		}
	}
	for _, d := range s.salesData {
		stats.TotalSales += d.Sales
		stats.TotalRevenue += d.Revenue
	}
	return stats
}

// SalesSeries returns the sales analytics series.
func (s *Store) SalesSeries() []models.SalesData {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.SalesData, len(s.salesData))
	copy(out, s.salesData)
	return out
}

// TopProducts aggregates units and revenue per product from the order
// history, best sellers first, capped at limit.
func (s *Store) TopProducts(limit int) []ProductSales {
	s.mu.Lock()
	defer s.mu.Unlock()

	byName := map[string]*ProductSales{}
	order := []string{}
	for _, o := range s.orders {
		for _, item := range o.Items {
			ps, ok := byName[item.ProductName]
			if !ok {
				ps = &ProductSales{Name: item.ProductName}
				byName[item.ProductName] = ps
				order = append(order, item.ProductName)
			}
			ps.Sales += item.Quantity
			ps.Revenue += item.Price * float64(item.Quantity)
		}
	}

	out := make([]ProductSales, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sales > out[j].Sales })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CategoryBreakdown returns each category's share of order revenue, in
// percent.
func (s *Store) CategoryBreakdown() []CategoryShare {
	s.mu.Lock()
	defer s.mu.Unlock()

	categoryOf := map[string]string{}
	for _, p := range s.products {
		categoryOf[p.ID] = p.Category
	}

	revenue := map[string]float64{}
	order := []string{}
	total := 0.0
	for _, o := range s.orders {
		for _, item := range o.Items {
			cat, ok := categoryOf[item.ProductID]
			if !ok {
				cat = "Others"
			}
			if _, seen := revenue[cat]; !seen {
				order = append(order, cat)
			}
			amount := item.Price * float64(item.Quantity)
			revenue[cat] += amount
			total += amount
		}
	}

	out := make([]CategoryShare, 0, len(order))
	for _, cat := range order {
		share := 0.0
		if total > 0 {
			share = revenue[cat] / total * 100
		}
		out = append(out, CategoryShare{Name: cat, Value: share})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

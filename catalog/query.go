package catalog

import (
	"sort"

	"github.com/NailaFatima/stylehub-go/models"
)

// DefaultPageSize matches the storefront listing grid.
const DefaultPageSize = 9

// QueryResult is one page of a filtered, sorted catalog view.
type QueryResult struct {
	Products      []models.Product `json:"products"`
	TotalFiltered int              `json:"totalFiltered"`
	TotalPages    int              `json:"totalPages"`
	Page          int              `json:"page"`
	PageSize      int              `json:"pageSize"`
}

// NewFilterOptions returns the unconstrained filter set.
func NewFilterOptions() models.FilterOptions {
	return models.FilterOptions{PriceRange: DefaultPriceRange}
}

// Query filters, sorts and paginates products. It is a pure function of
// its inputs: the source slice is never modified.
//
// Facet constraints are ANDed across dimensions and ORed within one; an
// empty facet applies no constraint. The price bound is inclusive on both
// ends. Sorting is stable so that ties keep the catalog's relative order.
// Pages are 1-based and are not clamped: an out-of-range page yields an
// empty slice, which callers rely on.
func Query(products []models.Product, filters models.FilterOptions, sortBy models.SortOption, pageSize, page int) QueryResult {
	filtered := filter(products, filters)
	sortProducts(filtered, sortBy)

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := (len(filtered) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	var pageSlice []models.Product
	if start >= 0 && start < len(filtered) {
		if end > len(filtered) {
			end = len(filtered)
		}
		pageSlice = filtered[start:end]
	} else {
		pageSlice = []models.Product{}
	}

	return QueryResult{
		Products:      pageSlice,
		TotalFiltered: len(filtered),
		TotalPages:    totalPages,
		Page:          page,
		PageSize:      pageSize,
	}
}

// filter returns the products passing every facet constraint, in source
// order.
func filter(products []models.Product, f models.FilterOptions) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Product, f models.FilterOptions) bool {
	if len(f.Category) > 0 && !contains(f.Category, p.Category) {
		return false
	}
	if len(f.Size) > 0 && !anySize(p, f.Size) {
		return false
	}
	if len(f.Color) > 0 && !anyColor(p, f.Color) {
		return false
	}
	if p.Price < f.PriceRange[0] || p.Price > f.PriceRange[1] {
		return false
	}
	return true
}

func sortProducts(products []models.Product, sortBy models.SortOption) {
	switch sortBy {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortNewest:
		// New-flagged items first, relative order otherwise untouched.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case models.SortPopularity:
		fallthrough
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Reviews > products[j].Reviews
		})
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func anySize(p models.Product, sizes []string) bool {
	for _, s := range sizes {
		if p.HasSize(s) {
			return true
		}
	}
	return false
}

func anyColor(p models.Product, colors []string) bool {
	for _, c := range colors {
		if p.HasColor(c) {
			return true
		}
	}
	return false
}

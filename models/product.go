package models

// Product is a storefront catalog entry. The catalog is seeded once at
// startup and never mutated.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Category      string   `json:"category"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	IsNew         bool     `json:"isNew,omitempty"`
	IsSale        bool     `json:"isSale,omitempty"`
}

// HasSize reports whether the product is offered in the given size.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether the product is offered in the given color.
func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// SortOption selects the ordering applied after filtering.
type SortOption string

const (
	SortPriceLow   SortOption = "price-low"
	SortPriceHigh  SortOption = "price-high"
	SortNewest     SortOption = "newest"
	SortPopularity SortOption = "popularity"
)

// FilterOptions holds the selected facets for a catalog query. An empty
// facet slice means no constraint on that dimension. Facets are ANDed
// across dimensions and ORed within one.
type FilterOptions struct {
	Category   []string   `json:"category"`
	Size       []string   `json:"size"`
	Color      []string   `json:"color"`
	PriceRange [2]float64 `json:"priceRange"`
}

// FacetMetadata describes the filterable dimensions of the catalog for
// filter UIs.
type FacetMetadata struct {
	Categories []string   `json:"categories"`
	Sizes      []string   `json:"sizes"`
	Colors     []string   `json:"colors"`
	PriceRange [2]float64 `json:"priceRange"`
}

package catalog

import (
	"errors"

	"github.com/NailaFatima/stylehub-go/models"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a product id has no catalog entry.
var ErrNotFound = errors.New("product not found")

// Store is the storefront catalog: a product list loaded once at
// construction and read-only afterwards.
type Store struct {
	products []models.Product
	byID     map[string]models.Product
	log      *zap.Logger
}

// NewStore builds a catalog seeded with the stock product data.
func NewStore(log *zap.Logger) *Store {
	return NewStoreWith(seedProducts(), log)
}

// NewStoreWith builds a catalog over the given products.
func NewStoreWith(products []models.Product, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	log.Info("catalog loaded", zap.Int("products", len(products)))
	return &Store{products: products, byID: byID, log: log}
}

// All returns the full catalog in seed order.
func (s *Store) All() []models.Product {
	return s.products
}

// Get returns the product with the given id.
func (s *Store) Get(id string) (models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// Facets returns the filterable dimensions of the catalog together with
// its actual price range.
func (s *Store) Facets() models.FacetMetadata {
	meta := models.FacetMetadata{
		Categories: Categories,
		Sizes:      Sizes,
		Colors:     Colors,
		PriceRange: DefaultPriceRange,
	}
	if len(s.products) == 0 {
		return meta
	}
	min, max := s.products[0].Price, s.products[0].Price
	for _, p := range s.products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	meta.PriceRange = [2]float64{min, max}
	return meta
}

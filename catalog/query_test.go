package catalog

import (
	"testing"

	"github.com/NailaFatima/stylehub-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterEmptyFacetsReturnsAllInOrder(t *testing.T) {
	all := seedProducts()

	got := filter(all, NewFilterOptions())

	assert.Equal(t, ids(all), ids(got))
}

func TestFilterCategoryORWithinFacet(t *testing.T) {
	f := NewFilterOptions()
	f.Category = []string{"Jeans", "Shorts"}

	got := filter(seedProducts(), f)

	assert.Equal(t, []string{"2", "6"}, ids(got))
}

func TestFilterFacetsAreANDedAcrossDimensions(t *testing.T) {
	f := NewFilterOptions()
	f.Category = []string{"T-Shirts", "Hoodies"}
	f.Color = []string{"Maroon"}

	got := filter(seedProducts(), f)

	// Only the hoodie carries Maroon.
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestFilterSizeMatchesAnySelected(t *testing.T) {
	f := NewFilterOptions()
	f.Size = []string{"28", "XXL"}

	got := filter(seedProducts(), f)

	assert.Equal(t, []string{"2", "4"}, ids(got))
}

func TestFilterPriceBoundsInclusive(t *testing.T) {
	f := NewFilterOptions()
	f.PriceRange = [2]float64{29.99, 49.99}

	got := filter(seedProducts(), f)

	assert.Equal(t, []string{"1", "3", "6"}, ids(got))
}

func TestQuerySortPriceLowAscending(t *testing.T) {
	// Seed prices: 29.99, 79.99, 49.99, 59.99, 69.99, 34.99.
	res := Query(seedProducts(), NewFilterOptions(), models.SortPriceLow, DefaultPageSize, 1)

	require.Len(t, res.Products, 6)
	assert.InDelta(t, 29.99, res.Products[0].Price, 1e-9)
	for i := 1; i < len(res.Products); i++ {
		assert.LessOrEqual(t, res.Products[i-1].Price, res.Products[i].Price)
	}
}

func TestQuerySortPriceHighDescending(t *testing.T) {
	res := Query(seedProducts(), NewFilterOptions(), models.SortPriceHigh, DefaultPageSize, 1)

	require.Len(t, res.Products, 6)
	assert.InDelta(t, 79.99, res.Products[0].Price, 1e-9)
}

func TestQuerySortNewestKeepsRelativeOrder(t *testing.T) {
	res := Query(seedProducts(), NewFilterOptions(), models.SortNewest, DefaultPageSize, 1)

	// New-flagged products first, source order preserved within each
	// group.
	assert.Equal(t, []string{"2", "6", "1", "3", "4", "5"}, ids(res.Products))
}

func TestQueryDefaultSortIsPopularity(t *testing.T) {
	res := Query(seedProducts(), NewFilterOptions(), "", DefaultPageSize, 1)

	// Review counts: 203, 156, 128, 92, 89, 64.
	assert.Equal(t, []string{"6", "4", "1", "5", "2", "3"}, ids(res.Products))
}

func TestQuerySinglePageAtDefaultSize(t *testing.T) {
	res := Query(seedProducts(), NewFilterOptions(), models.SortPopularity, 9, 1)

	assert.Len(t, res.Products, 6)
	assert.Equal(t, 6, res.TotalFiltered)
	assert.Equal(t, 1, res.TotalPages)
}

func TestQueryPaginationSlices(t *testing.T) {
	res := Query(seedProducts(), NewFilterOptions(), models.SortPriceLow, 4, 2)

	require.Len(t, res.Products, 2)
	assert.Equal(t, 2, res.TotalPages)
	assert.InDelta(t, 69.99, res.Products[0].Price, 1e-9)
	assert.InDelta(t, 79.99, res.Products[1].Price, 1e-9)
}

func TestQueryOvershootPageYieldsEmptySlice(t *testing.T) {
	res := Query(seedProducts(), NewFilterOptions(), models.SortPopularity, 9, 3)

	assert.Empty(t, res.Products)
	assert.Equal(t, 6, res.TotalFiltered)
	assert.Equal(t, 1, res.TotalPages)
}

func TestQueryDoesNotMutateSource(t *testing.T) {
	all := seedProducts()
	before := ids(all)

	Query(all, NewFilterOptions(), models.SortPriceHigh, 9, 1)

	assert.Equal(t, before, ids(all))
}

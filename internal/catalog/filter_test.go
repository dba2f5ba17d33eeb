package catalog

import (
	"testing"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/stretchr/testify/assert"
)

func fixture() []domain.Product {
	return []domain.Product{
		{ID: "1", Title: "Minimalist Ceramics Vase", Price: 45, Category: "Home Decor", Tags: []string{"Ceramics", "Minimalist", "Home"}, Stock: 3},
		{ID: "2", Title: "Leather Weekender Bag", Price: 185, Category: "Accessories", Tags: []string{"Travel", "Leather", "Bag"}, Stock: 0},
		{ID: "3", Title: "Organic Cotton Tee", Price: 28, Category: "Apparel", Tags: []string{"Sustainable", "Cotton", "Clothing"}, Stock: 10},
		{ID: "4", Title: "Artisan Coffee Blend", Price: 18.5, Category: "Food & Drink", Tags: []string{"Coffee", "Artisan", "Breakfast"}, Stock: 7},
		{ID: "5", Title: "Noise-Cancelling Headphones", Price: 249.99, Category: "Electronics", Tags: []string{"Tech", "Music", "Wireless"}, Stock: 2},
		{ID: "6", Title: "Succulent Trio", Price: 32, Category: "Plants", Tags: []string{"Plants", "Decor", "Green"}, Stock: 5},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	products := fixture()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "everything",
			criteria: Criteria{Category: AllCategories, PriceMax: MaxPrice(products)},
			want:     []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:     "title_case_insensitive",
			criteria: Criteria{Query: "VASE", Category: AllCategories, PriceMax: 1000},
			want:     []string{"1"},
		},
		{
			name:     "tag_match",
			criteria: Criteria{Query: "decor", Category: AllCategories, PriceMax: 1000},
			want:     []string{"6"},
		},
		{
			name:     "tag_and_category",
			criteria: Criteria{Query: "sustainable", Category: "Apparel", PriceMax: 1000},
			want:     []string{"3"},
		},
		{
			name:     "tag_and_wrong_category",
			criteria: Criteria{Query: "coffee", Category: "Plants", PriceMax: 1000},
			want:     []string{},
		},
		{
			name:     "price_bound_inclusive",
			criteria: Criteria{Category: AllCategories, PriceMax: 32},
			want:     []string{"3", "4", "6"},
		},
		{
			name:     "in_stock_only",
			criteria: Criteria{Query: "bag", PriceMax: 1000, InStockOnly: true},
			want:     []string{},
		},
		{
			name:     "empty_category_means_all",
			criteria: Criteria{Query: "tech", PriceMax: 1000},
			want:     []string{"5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(products, tt.criteria)))
		})
	}
}

func TestFilter_EmptyCatalog(t *testing.T) {
	got := Filter(nil, Criteria{Category: AllCategories, PriceMax: 100})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_FullCatalogUnchanged(t *testing.T) {
	products := fixture()
	got := Filter(products, Criteria{Query: "", Category: AllCategories, PriceMax: MaxPrice(products)})
	assert.Equal(t, products, got)
}

func TestCategories(t *testing.T) {
	products := append(fixture(), domain.Product{ID: "7", Category: "Apparel"})
	assert.Equal(t,
		[]string{"All", "Home Decor", "Accessories", "Apparel", "Food & Drink", "Electronics", "Plants"},
		Categories(products))
	assert.Equal(t, []string{"All"}, Categories(nil))
}

func TestMaxPrice(t *testing.T) {
	assert.Equal(t, 249.99, MaxPrice(fixture()))
	assert.Equal(t, DefaultPriceCeiling, MaxPrice([]domain.Product{{Price: 12}}))
	assert.Equal(t, DefaultPriceCeiling, MaxPrice(nil))
}

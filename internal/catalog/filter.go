// Package catalog narrows a product list for display.
package catalog

import (
	"strings"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
)

// AllCategories matches every category.
const AllCategories = "All"

// DefaultPriceCeiling is the lowest upper bound offered for the price range.
const DefaultPriceCeiling = 100.0

type Criteria struct {
	Query       string
	Category    string
	PriceMax    float64
	InStockOnly bool
}

// Filter returns the products matching every criterion, in catalog order.
func Filter(products []domain.Product, c Criteria) []domain.Product {
	query := strings.ToLower(c.Query)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesText(p, query) {
			continue
		}
		if c.Category != "" && c.Category != AllCategories && p.Category != c.Category {
			continue
		}
		if p.Price < 0 || p.Price > c.PriceMax {
			continue
		}
		if c.InStockOnly && !p.InStock() {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesText(p domain.Product, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Categories lists "All" followed by each distinct category in first-seen order.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := []string{AllCategories}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// MaxPrice is the upper end of the price range: the highest price, but never
// below DefaultPriceCeiling.
func MaxPrice(products []domain.Product) float64 {
	max := DefaultPriceCeiling
	for _, p := range products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultCategory = "General"
	DefaultImageURL = "https://picsum.photos/500"
)

var ErrInvalidProduct = errors.New("invalid product")

type Product struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	ImageURL       string    `json:"image_url"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	Stock          int       `json:"stock"`
	Rating         float64   `json:"rating"`
	Reviews        int       `json:"reviews"`
	SEOTitle       string    `json:"seo_title,omitempty"`
	SEODescription string    `json:"seo_description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UnitPrice returns the USD price as an exact decimal.
func (p Product) UnitPrice() decimal.Decimal {
	return decimal.NewFromFloat(p.Price)
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

type CreateProductRequest struct {
	Title          string   `json:"title"       binding:"required"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"       binding:"min=0"`
	ImageURL       string   `json:"image_url"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	Stock          int      `json:"stock"       binding:"min=0"`
	Rating         float64  `json:"rating"      binding:"min=0,max=5"`
	Reviews        int      `json:"reviews"     binding:"min=0"`
	SEOTitle       string   `json:"seo_title"`
	SEODescription string   `json:"seo_description"`
}

// Validate checks the request and returns the product it describes.
// ID and timestamps are left for the backend to assign.
func (r CreateProductRequest) Validate() (Product, error) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return Product{}, fmt.Errorf("%w: title is required", ErrInvalidProduct)
	}
	if r.Price < 0 {
		return Product{}, fmt.Errorf("%w: price must be non-negative, got %v", ErrInvalidProduct, r.Price)
	}
	if r.Stock < 0 {
		return Product{}, fmt.Errorf("%w: stock must be non-negative, got %d", ErrInvalidProduct, r.Stock)
	}
	if r.Rating < 0 || r.Rating > 5 {
		return Product{}, fmt.Errorf("%w: rating must be between 0 and 5, got %v", ErrInvalidProduct, r.Rating)
	}
	if r.Reviews < 0 {
		return Product{}, fmt.Errorf("%w: reviews must be non-negative, got %d", ErrInvalidProduct, r.Reviews)
	}

	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = DefaultCategory
	}
	image := r.ImageURL
	if image == "" {
		image = DefaultImageURL
	}

	return Product{
		Title:          title,
		Description:    r.Description,
		Price:          r.Price,
		ImageURL:       image,
		Category:       category,
		Tags:           cleanTags(r.Tags),
		Stock:          r.Stock,
		Rating:         r.Rating,
		Reviews:        r.Reviews,
		SEOTitle:       r.SEOTitle,
		SEODescription: r.SEODescription,
	}, nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

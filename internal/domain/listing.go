package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidListing = errors.New("invalid generated listing")

// ListingDraft is the structured metadata produced from a merchant's free text.
// It is untrusted until Validate succeeds.
type ListingDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url,omitempty"`
}

func (d ListingDraft) Validate() (ListingDraft, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return ListingDraft{}, fmt.Errorf("%w: empty title", ErrInvalidListing)
	}
	if d.Price < 0 || math.IsNaN(d.Price) || math.IsInf(d.Price, 0) {
		return ListingDraft{}, fmt.Errorf("%w: price %v", ErrInvalidListing, d.Price)
	}
	d.Description = strings.TrimSpace(d.Description)
	d.Category = strings.TrimSpace(d.Category)
	if d.Category == "" {
		d.Category = DefaultCategory
	}
	d.Tags = cleanTags(d.Tags)
	return d, nil
}

// ProductRequest turns a validated draft into a merchant create request.
func (d ListingDraft) ProductRequest(stock int) CreateProductRequest {
	return CreateProductRequest{
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
		Category:    d.Category,
		Tags:        d.Tags,
		Stock:       stock,
	}
}

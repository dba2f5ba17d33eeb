package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingDraft_Validate(t *testing.T) {
	t.Run("normalizes", func(t *testing.T) {
		d, err := ListingDraft{
			Title:       " Canvas Tote ",
			Description: " Sturdy. ",
			Price:       24,
			Tags:        []string{"canvas", " ", " bag"},
		}.Validate()
		require.NoError(t, err)
		assert.Equal(t, "Canvas Tote", d.Title)
		assert.Equal(t, "Sturdy.", d.Description)
		assert.Equal(t, DefaultCategory, d.Category)
		assert.Equal(t, []string{"canvas", "bag"}, d.Tags)
	})

	for name, d := range map[string]ListingDraft{
		"empty_title": {Title: " ", Price: 1},
		"negative":    {Title: "x", Price: -0.01},
		"nan":         {Title: "x", Price: math.NaN()},
		"inf":         {Title: "x", Price: math.Inf(1)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := d.Validate()
			assert.ErrorIs(t, err, ErrInvalidListing)
		})
	}
}

func TestListingDraft_ProductRequest(t *testing.T) {
	d := ListingDraft{Title: "Tote", Price: 24, Category: "Bags", Tags: []string{"canvas"}, ImageURL: "https://img"}
	req := d.ProductRequest(10)

	assert.Equal(t, CreateProductRequest{
		Title:    "Tote",
		Price:    24,
		ImageURL: "https://img",
		Category: "Bags",
		Tags:     []string{"canvas"},
		Stock:    10,
	}, req)

	p, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
}

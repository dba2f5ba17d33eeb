package repository

import "github.com/emmawebdev2005/ShopGenius/internal/domain"

// SeedProducts is the catalog a fresh store starts with.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Title:       "Minimalist Ceramics Vase",
			Description: "Handcrafted ceramic vase with a matte finish. Perfect for dried flowers or standing alone as a piece of art.",
			Price:       45.00,
			ImageURL:    "https://picsum.photos/seed/vase/500/500",
			Category:    "Home Decor",
			Tags:        []string{"Ceramics", "Minimalist", "Home"},
			Stock:       24,
			Rating:      4.6,
			Reviews:     38,
		},
		{
			ID:          "2",
			Title:       "Leather Weekender Bag",
			Description: "Durable, full-grain leather travel bag with brass hardware. Spacious enough for a 3-day trip.",
			Price:       185.00,
			ImageURL:    "https://picsum.photos/seed/leatherbag/500/500",
			Category:    "Accessories",
			Tags:        []string{"Travel", "Leather", "Bag"},
			Stock:       8,
			Rating:      4.8,
			Reviews:     112,
		},
		{
			ID:          "3",
			Title:       "Organic Cotton Tee",
			Description: "Soft, breathable organic cotton t-shirt in earthy tones. Sustainable fashion staple.",
			Price:       28.00,
			ImageURL:    "https://picsum.photos/seed/tshirt/500/500",
			Category:    "Apparel",
			Tags:        []string{"Sustainable", "Cotton", "Clothing"},
			Stock:       60,
			Rating:      4.3,
			Reviews:     204,
		},
		{
			ID:          "4",
			Title:       "Artisan Coffee Blend",
			Description: "Rich, dark roast coffee beans sourced from small farms in Colombia. Notes of chocolate and cherry.",
			Price:       18.50,
			ImageURL:    "https://picsum.photos/seed/coffee/500/500",
			Category:    "Food & Drink",
			Tags:        []string{"Coffee", "Artisan", "Breakfast"},
			Stock:       45,
			Rating:      4.7,
			Reviews:     89,
		},
		{
			ID:          "5",
			Title:       "Noise-Cancelling Headphones",
			Description: "Immerse yourself in music with these high-fidelity wireless headphones. 20-hour battery life.",
			Price:       249.99,
			ImageURL:    "https://picsum.photos/seed/headphones/500/500",
			Category:    "Electronics",
			Tags:        []string{"Tech", "Music", "Wireless"},
			Stock:       12,
			Rating:      4.5,
			Reviews:     310,
		},
		{
			ID:          "6",
			Title:       "Succulent Trio",
			Description: "A set of three low-maintenance succulents in geometric concrete pots.",
			Price:       32.00,
			ImageURL:    "https://picsum.photos/seed/succulents/500/500",
			Category:    "Plants",
			Tags:        []string{"Plants", "Decor", "Green"},
			Stock:       18,
			Rating:      4.4,
			Reviews:     57,
		},
	}
}

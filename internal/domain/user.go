package domain

// User is the session-facing view of an account. Wishlist is never nil once
// it leaves the backend.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Wishlist []string `json:"wishlist"`
}

func (u User) InWishlist(productID string) bool {
	for _, id := range u.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

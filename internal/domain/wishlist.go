package domain

// WishlistItem is a saved product. Presence is boolean: there is no
// quantity, and an item appears at most once per ID.
type WishlistItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Category      string `json:"category,omitempty"`
	Price         Money  `json:"price"`
	OriginalPrice *Money `json:"originalPrice,omitempty"`
}

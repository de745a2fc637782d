package domain

// Product is one entry of the read-only catalog snapshot supplied by the
// catalog collaborator. The pipeline never mutates products in place.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	Price         Money   `json:"price"`
	OriginalPrice *Money  `json:"originalPrice,omitempty"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

func (p Product) CartItem() CartItem {
	return CartItem{
		ID:            p.ID,
		Name:          p.Name,
		Image:         p.Image,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Quantity:      1,
	}
}

func (p Product) WishlistItem() WishlistItem {
	return WishlistItem{
		ID:            p.ID,
		Name:          p.Name,
		Image:         p.Image,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
	}
}

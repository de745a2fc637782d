package domain

type Cart struct {
	Items []CartItem `json:"items"`
}

type CartItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Category      string `json:"category,omitempty"`
	Price         Money  `json:"price"`
	OriginalPrice *Money `json:"originalPrice,omitempty"`
	Quantity      int    `json:"quantity"`
}

// ItemCount is the total number of units across all lines,
// not the number of distinct lines.
func (c Cart) ItemCount() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c Cart) Subtotal() Money {
	var total Money
	for i, item := range c.Items {
		line := item.Price.MulInt(int64(item.Quantity))
		if i == 0 {
			total = line
			continue
		}
		total = total.Add(line)
	}
	return total
}

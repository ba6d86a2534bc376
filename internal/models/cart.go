package models

import "time"

// CartItem is a snapshot of a product at the moment it was added. Adding the
// same product twice produces two independent entries, not a quantity of 2.
type CartItem struct {
	ProductID int       `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	AddedAt   time.Time `json:"addedAt"`
}

func NewCartItem(p Product) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		AddedAt:   time.Now(),
	}
}

// CartTotal sums item prices. Totals are always recomputed, never cached.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}

package models

import (
	"fmt"
	"time"
)

// Categories are the four product groups the admin form offers. The catalog
// itself does not enforce membership; admin input validation does.
var Categories = []string{"Data Bundles", "Broadband", "Airtime", "Devices"}

type Product struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}

func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// FormatCedis renders an amount the way it appears everywhere in the shop.
func FormatCedis(amount float64) string {
	return fmt.Sprintf("₵%.2f", amount)
}

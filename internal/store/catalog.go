package store

import (
	"sync"
	"time"

	"mtnshop/internal/models"
)

// Catalog holds the product list in insertion order. Everything lives in
// memory; gin serves requests concurrently so access is mutex-guarded.
type Catalog struct {
	mu       sync.Mutex
	products []models.Product
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// SeedCatalog builds the catalog pre-loaded with the standard MTN line-up.
func SeedCatalog() *Catalog {
	now := time.Now()
	seed := []models.Product{
		{ID: 1, Name: "MTN Mobile Data 1GB", Price: 10.00, Category: "Data Bundles", Available: true},
		{ID: 2, Name: "MTN Mobile Data 3GB", Price: 25.00, Category: "Data Bundles", Available: true},
		{ID: 3, Name: "MTN Mobile Data 5GB", Price: 40.00, Category: "Data Bundles", Available: true},
		{ID: 4, Name: "MTN Fiber Broadband 10MBPS", Price: 200.00, Category: "Broadband", Available: true},
		{ID: 5, Name: "MTN Fiber Broadband 20MBPS", Price: 350.00, Category: "Broadband", Available: true},
		{ID: 6, Name: "MTN Airtime ₵10", Price: 10.00, Category: "Airtime", Available: true},
		{ID: 7, Name: "MTN Airtime ₵20", Price: 20.00, Category: "Airtime", Available: true},
		{ID: 8, Name: "MTN Router", Price: 300.00, Category: "Devices", Available: true},
		{ID: 9, Name: "MTN 4G MiFi", Price: 250.00, Category: "Devices", Available: true},
	}
	for i := range seed {
		seed[i].CreatedAt = now
	}
	return &Catalog{products: seed}
}

// List returns products in catalog order, optionally filtered by category
// and, for the public listing, restricted to available ones.
func (c *Catalog) List(category string, availableOnly bool) []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if availableOnly && !p.Available {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Snapshot returns a copy of the whole catalog, available or not.
func (c *Catalog) Snapshot() []models.Product {
	return c.List("", false)
}

func (c *Catalog) Get(id int) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Add appends a product with the next free id: max existing id + 1, or 1 for
// an empty catalog. Duplicate names are accepted silently.
func (c *Catalog) Add(name string, price float64, category string, available bool) models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	nextID := 1
	for _, p := range c.products {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}

	product := models.Product{
		ID:        nextID,
		Name:      name,
		Price:     price,
		Category:  category,
		Available: available,
		CreatedAt: time.Now(),
	}
	c.products = append(c.products, product)
	return product
}

// ProductUpdate carries the fields an update wants to touch; nil means keep.
type ProductUpdate struct {
	Name      *string
	Price     *float64
	Category  *string
	Available *bool
}

func (c *Catalog) Update(id int, upd ProductUpdate) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}
		if upd.Name != nil {
			c.products[i].Name = *upd.Name
		}
		if upd.Price != nil {
			c.products[i].Price = *upd.Price
		}
		if upd.Category != nil {
			c.products[i].Category = *upd.Category
		}
		if upd.Available != nil {
			c.products[i].Available = *upd.Available
		}
		return c.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

func (c *Catalog) Delete(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Categories lists the distinct categories present in the catalog, in the
// order they first appear.
func (c *Catalog) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := map[string]struct{}{}
	out := make([]string, 0, len(models.Categories))
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.products)
}

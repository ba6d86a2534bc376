package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mtnshop/internal/store"
)

/*
GET /products
- category filter OPTIONAL
- only available products are listed; the admin API sees everything
*/
func GetProducts(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		category := strings.TrimSpace(c.Query("category"))
		products := catalog.List(category, true)

		c.JSON(http.StatusOK, gin.H{
			"data":  products,
			"total": len(products),
		})
	}
}

// GET /categories — the distinct categories currently in the catalog, used
// to build the product sidebar.
func GetCategories(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, gin.H{"data": catalog.Categories()})
	}
}

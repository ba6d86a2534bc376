package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mtnshop/internal/models"
	"mtnshop/internal/store"
)

/* =======================
   REQUEST MODELS
======================= */

type ProductCreateRequest struct {
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Category  string  `json:"category" binding:"required"`
	Available *bool   `json:"available"`
}

type ProductUpdateRequest struct {
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	Category  *string  `json:"category"`
	Available *bool    `json:"available"`
}

/* =======================
   GET (ADMIN) – LIST
======================= */

func GetAllProducts(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/products"
		defer handlePanic(c, route)

		category := strings.TrimSpace(c.Query("category"))
		products := catalog.List(category, false)

		if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
			filtered := products[:0]
			for _, p := range products {
				if strings.Contains(strings.ToLower(p.Name), search) {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}

		c.JSON(http.StatusOK, gin.H{
			"data":  products,
			"total": len(products),
		})
	}
}

/* =======================
   CREATE
======================= */

func CreateProduct(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products"
		defer handlePanic(c, route)

		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			respondWithError(c, http.StatusBadRequest, route, "name required")
			return
		}
		if req.Price < 0 {
			respondWithError(c, http.StatusBadRequest, route, "invalid price")
			return
		}
		if !models.ValidCategory(req.Category) {
			respondWithError(c, http.StatusBadRequest, route, "invalid category")
			return
		}

		available := true
		if req.Available != nil {
			available = *req.Available
		}

		product := catalog.Add(name, req.Price, req.Category, available)
		log.Printf("[%s] product #%d created: %s", route, product.ID, product.Name)
		c.JSON(http.StatusCreated, product)
	}
}

/* =======================
   UPDATE
======================= */

func UpdateProduct(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/products/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		upd := store.ProductUpdate{Price: req.Price, Available: req.Available}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				respondWithError(c, http.StatusBadRequest, route, "name required")
				return
			}
			upd.Name = &name
		}
		if req.Price != nil && *req.Price < 0 {
			respondWithError(c, http.StatusBadRequest, route, "invalid price")
			return
		}
		if req.Category != nil {
			if !models.ValidCategory(*req.Category) {
				respondWithError(c, http.StatusBadRequest, route, "invalid category")
				return
			}
			upd.Category = req.Category
		}

		if upd.Name == nil && upd.Price == nil && upd.Category == nil && upd.Available == nil {
			respondWithError(c, http.StatusBadRequest, route, "no fields to update")
			return
		}

		product, err := catalog.Update(id, upd)
		if errors.Is(err, store.ErrProductNotFound) {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

/* =======================
   DELETE
======================= */

func DeleteProduct(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/products/:id"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if err := catalog.Delete(id); errors.Is(err, store.ErrProductNotFound) {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}

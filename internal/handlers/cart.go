package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mtnshop/internal/middleware"
	"mtnshop/internal/models"
	"mtnshop/internal/store"
)

type addToCartRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

/* =========================
   CART
========================= */

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		sess := middleware.SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{
			"items": sess.Cart(),
			"total": sess.CartTotal(),
		})
	}
}

// AddToCart snapshots the product into the cart. Availability is not
// re-checked here; the public listing already hides unavailable products.
func AddToCart(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		product, err := catalog.Get(req.ProductID)
		if errors.Is(err, store.ErrProductNotFound) {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		sess := middleware.SessionFrom(c)
		sess.AddToCart(product)
		sess.AppendMessage(models.RoleAssistant, fmt.Sprintf(
			"Added %s to your cart. Current total: %s",
			product.Name,
			models.FormatCedis(sess.CartTotal()),
		))

		c.JSON(http.StatusOK, gin.H{
			"items": sess.Cart(),
			"total": sess.CartTotal(),
		})
	}
}

// RemoveFromCart removes every cart entry with the given product id.
func RemoveFromCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:productId"
		defer handlePanic(c, route)

		productID, ok := parseIDParam(c, "productId")
		if !ok {
			return
		}

		sess := middleware.SessionFrom(c)
		if removed := sess.RemoveFromCart(productID); removed == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not in cart")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": sess.Cart(),
			"total": sess.CartTotal(),
		})
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mtnshop/internal/models"
	"mtnshop/internal/store"
)

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func GetAllOrders(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders"
		defer handlePanic(c, route)

		orders := ledger.All()
		c.JSON(http.StatusOK, gin.H{
			"data":  orders,
			"total": len(orders),
		})
	}
}

// UpdateOrderStatus overwrites the status with whatever the admin picked.
// Any transition is allowed, including moving a Delivered order back.
func UpdateOrderStatus(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/orders/:id/status"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req orderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}
		if !models.ValidOrderStatus(req.Status) {
			respondWithError(c, http.StatusBadRequest, route, "invalid status")
			return
		}

		order, err := ledger.SetStatus(id, models.OrderStatus(req.Status))
		if errors.Is(err, store.ErrOrderNotFound) {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}

		log.Printf("[%s] order #%d set to %s", route, order.ID, order.Status)
		c.JSON(http.StatusOK, order)
	}
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mtnshop/internal/middleware"
	"mtnshop/internal/models"
	"mtnshop/internal/store"
)

/* =========================
   ORDER HISTORY & CANCELLATION
========================= */

// GetMyOrders lists the session's orders and, like the original "My Orders"
// button, drops a summary into the chat transcript.
func GetMyOrders(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		sess := middleware.SessionFrom(c)
		orders := ledger.BySession(sess.ID)

		sess.AppendMessage(models.RoleAssistant, orderSummary(orders))

		c.JSON(http.StatusOK, gin.H{"data": orders})
	}
}

func orderSummary(orders []models.Order) string {
	if len(orders) == 0 {
		return "You haven't placed any orders yet."
	}

	var b strings.Builder
	b.WriteString("Your Orders:\n\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "Order #%d (%s) - %s\n", o.ID, o.Status, models.FormatCedis(o.Total))
		fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "Payment: %s\n\n", o.PaymentMethod)
	}
	return b.String()
}

// CancelOrder cancels one of the session's own orders. Non-cancellable
// statuses (Shipped, Delivered, Cancelled) leave the order untouched.
func CancelOrder(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/cancel"
		defer handlePanic(c, route)

		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		sess := middleware.SessionFrom(c)
		order, err := ledger.Get(id)
		if errors.Is(err, store.ErrOrderNotFound) || order.SessionID != sess.ID {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}

		if !ledger.Cancel(id) {
			respondWithError(c, http.StatusConflict, route, "order can no longer be cancelled")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("order #%d cancelled", id)})
	}
}

package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mtnshop/internal/middleware"
	"mtnshop/internal/models"
	"mtnshop/internal/session"
	"mtnshop/internal/store"
)

type checkoutUpdateRequest struct {
	DeliveryAddress *string `json:"deliveryAddress"`
	PaymentMethod   *string `json:"paymentMethod"`
}

/* =========================
   CHECKOUT FLOW
   Empty → Filled → CheckingOut → Confirmed → Empty
========================= */

// BeginCheckout moves the session into the checkout step. An empty cart
// aborts with a warning and no state change.
func BeginCheckout() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout"
		defer handlePanic(c, route)

		sess := middleware.SessionFrom(c)
		if sess.CartLen() == 0 {
			respondWithError(c, http.StatusConflict, route, "cart is empty")
			return
		}

		sess.SetStep(session.StepCheckout)
		c.JSON(http.StatusOK, gin.H{
			"step":  sess.Step(),
			"items": sess.Cart(),
			"total": sess.CartTotal(),
		})
	}
}

// UpdateCheckout records delivery address and/or payment method.
func UpdateCheckout() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /checkout"
		defer handlePanic(c, route)

		var req checkoutUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if req.DeliveryAddress == nil && req.PaymentMethod == nil {
			respondWithError(c, http.StatusBadRequest, route, "no fields to update")
			return
		}

		sess := middleware.SessionFrom(c)
		if req.DeliveryAddress != nil {
			sess.SetDeliveryAddress(strings.TrimSpace(*req.DeliveryAddress))
		}
		if req.PaymentMethod != nil {
			method := strings.TrimSpace(*req.PaymentMethod)
			if !models.ValidPaymentMethod(method) {
				respondWithError(c, http.StatusBadRequest, route, "invalid payment method")
				return
			}
			sess.SetPaymentMethod(method)
		}

		c.JSON(http.StatusOK, gin.H{
			"deliveryAddress": sess.DeliveryAddress(),
			"paymentMethod":   sess.PaymentMethod(),
		})
	}
}

// PlaceOrder snapshots the cart into the ledger, clears the cart and parks
// the session on the confirmation step.
func PlaceOrder(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout/order"
		defer handlePanic(c, route)

		sess := middleware.SessionFrom(c)

		if sess.CartLen() == 0 {
			respondWithError(c, http.StatusConflict, route, "cart is empty")
			return
		}
		if strings.TrimSpace(sess.DeliveryAddress()) == "" {
			respondWithError(c, http.StatusBadRequest, route, "delivery address required")
			return
		}
		if !models.ValidPaymentMethod(sess.PaymentMethod()) {
			respondWithError(c, http.StatusBadRequest, route, "payment method required")
			return
		}

		order, err := ledger.Place(sess.ID, sess.Cart(), sess.DeliveryAddress(), sess.PaymentMethod())
		if err != nil {
			respondWithError(c, http.StatusConflict, route, err.Error())
			return
		}

		sess.ClearCart()
		sess.SetCurrentOrder(order.ID)
		sess.SetStep(session.StepConfirmation)

		log.Printf("[%s] order #%d placed, total %s", route, order.ID, models.FormatCedis(order.Total))
		c.JSON(http.StatusCreated, gin.H{
			"order":   order,
			"message": "order placed",
		})
	}
}

// ConfirmOrder acknowledges the confirmation screen and returns the session
// to shopping: step and current-order pointer are cleared.
func ConfirmOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout/confirm"
		defer handlePanic(c, route)

		sess := middleware.SessionFrom(c)
		sess.SetStep(session.StepNone)
		sess.ClearCurrentOrder()

		c.JSON(http.StatusOK, gin.H{"message": "back to shopping"})
	}
}

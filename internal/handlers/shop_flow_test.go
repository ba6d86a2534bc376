package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"mtnshop/internal/models"
	"mtnshop/internal/store"
)

type cartResponse struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func TestPublicProductListing(t *testing.T) {
	router, catalog, _ := newTestRouter(t)
	cl := newClient(t, router)

	w := cl.do(http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []models.Product `json:"data"`
		Total int              `json:"total"`
	}
	decodeBody(t, w, &resp)
	require.Equal(t, 9, resp.Total)

	// Unavailable products disappear from the public listing.
	available := false
	_, err := catalog.Update(8, store.ProductUpdate{Available: &available})
	require.NoError(t, err)

	w = cl.do(http.MethodGet, "/products?category=Devices", nil)
	decodeBody(t, w, &resp)
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "MTN 4G MiFi", resp.Data[0].Name)
}

func TestCheckoutFlowEndToEnd(t *testing.T) {
	router, _, ledger := newTestRouter(t)
	cl := newClient(t, router)

	// Two adds of the same airtime product: two entries, total 20.
	w := cl.do(http.MethodPost, "/cart/items", gin.H{"productId": 6})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, cl.sessionID)

	w = cl.do(http.MethodPost, "/cart/items", gin.H{"productId": 6})
	require.Equal(t, http.StatusOK, w.Code)

	var cart cartResponse
	decodeBody(t, w, &cart)
	require.Len(t, cart.Items, 2)
	require.Equal(t, 20.00, cart.Total)

	w = cl.do(http.MethodPost, "/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = cl.do(http.MethodPut, "/checkout", gin.H{
		"deliveryAddress": "12 Ring Road, Accra",
		"paymentMethod":   "MTN Mobile Money",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = cl.do(http.MethodPost, "/checkout/order", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		Order models.Order `json:"order"`
	}
	decodeBody(t, w, &placed)
	require.Equal(t, 1, placed.Order.ID)
	require.Equal(t, models.StatusPending, placed.Order.Status)
	require.Equal(t, 20.00, placed.Order.Total)
	require.Len(t, placed.Order.Items, 2)
	require.Equal(t, 1, ledger.Len())

	// Cart is cleared by placement.
	w = cl.do(http.MethodGet, "/cart", nil)
	decodeBody(t, w, &cart)
	require.Empty(t, cart.Items)
	require.Equal(t, 0.00, cart.Total)

	w = cl.do(http.MethodPost, "/checkout/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = cl.do(http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		Data []models.Order `json:"data"`
	}
	decodeBody(t, w, &history)
	require.Len(t, history.Data, 1)
}

func TestCheckoutRequiresNonEmptyCart(t *testing.T) {
	router, _, ledger := newTestRouter(t)
	cl := newClient(t, router)

	w := cl.do(http.MethodPost, "/checkout", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	w = cl.do(http.MethodPost, "/checkout/order", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, 0, ledger.Len(), "no order may be created from an empty cart")
}

func TestPlaceOrderRequiresDeliveryDetails(t *testing.T) {
	router, _, _ := newTestRouter(t)
	cl := newClient(t, router)

	cl.do(http.MethodPost, "/cart/items", gin.H{"productId": 1})

	w := cl.do(http.MethodPost, "/checkout/order", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	cl.do(http.MethodPut, "/checkout", gin.H{"deliveryAddress": "Accra"})
	w = cl.do(http.MethodPost, "/checkout/order", nil)
	require.Equal(t, http.StatusBadRequest, w.Code, "payment method still missing")
}

func TestUpdateCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	router, _, _ := newTestRouter(t)
	cl := newClient(t, router)

	w := cl.do(http.MethodPut, "/checkout", gin.H{"paymentMethod": "Barter"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFromCartRemovesAllCopies(t *testing.T) {
	router, _, _ := newTestRouter(t)
	cl := newClient(t, router)

	cl.do(http.MethodPost, "/cart/items", gin.H{"productId": 6})
	cl.do(http.MethodPost, "/cart/items", gin.H{"productId": 6})

	w := cl.do(http.MethodDelete, "/cart/items/6", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cart cartResponse
	decodeBody(t, w, &cart)
	require.Empty(t, cart.Items)

	w = cl.do(http.MethodDelete, "/cart/items/6", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddUnknownProductToCart(t *testing.T) {
	router, _, _ := newTestRouter(t)
	cl := newClient(t, router)

	w := cl.do(http.MethodPost, "/cart/items", gin.H{"productId": 404})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelOwnOrder(t *testing.T) {
	router, _, ledger := newTestRouter(t)
	cl := newClient(t, router)

	cl.do(http.MethodPost, "/cart/items", gin.H{"productId": 1})
	cl.do(http.MethodPut, "/checkout", gin.H{
		"deliveryAddress": "Accra",
		"paymentMethod":   "Cash on Delivery",
	})
	w := cl.do(http.MethodPost, "/checkout/order", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = cl.do(http.MethodPost, "/orders/1/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	order, err := ledger.Get(1)
	require.NoError(t, err)
	require.Equal(t, models.StatusCancelled, order.Status)

	// Already cancelled: second attempt fails without touching the order.
	w = cl.do(http.MethodPost, "/orders/1/cancel", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCannotCancelAnotherSessionsOrder(t *testing.T) {
	router, _, ledger := newTestRouter(t)

	_, err := ledger.Place("someone-else", []models.CartItem{{ProductID: 1, Price: 10}}, "Accra", "Credit Card")
	require.NoError(t, err)

	cl := newClient(t, router)
	w := cl.do(http.MethodPost, "/orders/1/cancel", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatRoundTrip(t *testing.T) {
	router, _, _ := newTestRouter(t)
	cl := newClient(t, router)

	w := cl.do(http.MethodPost, "/chat", gin.H{"message": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reply string `json:"reply"`
	}
	decodeBody(t, w, &resp)
	require.Equal(t, "Hello! Welcome to MTN Ghana. How can I help you today?", resp.Reply)

	w = cl.do(http.MethodPost, "/chat", gin.H{"message": "what's the price of MTN Router"})
	decodeBody(t, w, &resp)
	require.True(t, strings.Contains(resp.Reply, "₵300.00"), "got %q", resp.Reply)

	w = cl.do(http.MethodGet, "/chat", nil)
	var transcript struct {
		Data []models.ChatMessage `json:"data"`
	}
	decodeBody(t, w, &transcript)
	require.Len(t, transcript.Data, 4)
	require.Equal(t, models.RoleUser, transcript.Data[0].Role)
	require.Equal(t, models.RoleAssistant, transcript.Data[1].Role)

	w = cl.do(http.MethodPost, "/chat/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = cl.do(http.MethodGet, "/chat", nil)
	decodeBody(t, w, &transcript)
	require.Empty(t, transcript.Data)
}

func TestAddToCartLeavesAssistantNote(t *testing.T) {
	router, _, _ := newTestRouter(t)
	cl := newClient(t, router)

	cl.do(http.MethodPost, "/cart/items", gin.H{"productId": 8})

	w := cl.do(http.MethodGet, "/chat", nil)
	var transcript struct {
		Data []models.ChatMessage `json:"data"`
	}
	decodeBody(t, w, &transcript)
	require.Len(t, transcript.Data, 1)
	require.Contains(t, transcript.Data[0].Content, "Added MTN Router to your cart")
	require.Contains(t, transcript.Data[0].Content, "₵300.00")
}

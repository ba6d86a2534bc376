package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"mtnshop/internal/auth"
	"mtnshop/internal/chat"
	"mtnshop/internal/middleware"
	"mtnshop/internal/session"
	"mtnshop/internal/store"
)

const testJWTSecret = "test-secret"

// newTestRouter wires the routes the same way main does, against fresh
// in-memory state.
func newTestRouter(t *testing.T) (*gin.Engine, *store.Catalog, *store.Ledger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := store.SeedCatalog()
	ledger := store.NewLedger()
	sessions := session.NewManager(time.Hour)
	responder := chat.NewResponder()

	verifier, err := auth.NewStaticVerifier("admin", "admin123")
	require.NoError(t, err)

	r := gin.New()

	r.GET("/products", GetProducts(catalog))
	r.GET("/categories", GetCategories(catalog))

	r.POST("/admin/login", AdminLogin(verifier, testJWTSecret, time.Hour))
	r.POST("/admin/logout", AdminLogout())

	shop := r.Group("/")
	shop.Use(middleware.ShopperSession(sessions))
	{
		shop.GET("/chat", GetChatMessages())
		shop.POST("/chat", SendChatMessage(responder, catalog, ledger))
		shop.POST("/chat/reset", ResetChat())

		shop.GET("/cart", GetCart())
		shop.POST("/cart/items", AddToCart(catalog))
		shop.DELETE("/cart/items/:productId", RemoveFromCart())

		shop.POST("/checkout", BeginCheckout())
		shop.PUT("/checkout", UpdateCheckout())
		shop.POST("/checkout/order", PlaceOrder(ledger))
		shop.POST("/checkout/confirm", ConfirmOrder())

		shop.GET("/orders", GetMyOrders(ledger))
		shop.POST("/orders/:id/cancel", CancelOrder(ledger))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(testJWTSecret))
	{
		admin.GET("/products", GetAllProducts(catalog))
		admin.POST("/products", CreateProduct(catalog))
		admin.PUT("/products/:id", UpdateProduct(catalog))
		admin.DELETE("/products/:id", DeleteProduct(catalog))

		admin.GET("/orders", GetAllOrders(ledger))
		admin.PUT("/orders/:id/status", UpdateOrderStatus(ledger))
	}

	return r, catalog, ledger
}

// client replays the session id and admin token across requests, the way a
// browser client would.
type client struct {
	t         *testing.T
	router    *gin.Engine
	sessionID string
	token     string
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router}
}

func (cl *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	cl.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(cl.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cl.sessionID != "" {
		req.Header.Set(middleware.SessionHeader, cl.sessionID)
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}

	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)

	if sid := w.Header().Get(middleware.SessionHeader); sid != "" {
		cl.sessionID = sid
	}
	return w
}

func (cl *client) login(username, password string) *httptest.ResponseRecorder {
	cl.t.Helper()

	w := cl.do(http.MethodPost, "/admin/login", gin.H{
		"username": username,
		"password": password,
	})
	if w.Code == http.StatusOK {
		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(cl.t, json.Unmarshal(w.Body.Bytes(), &resp))
		cl.token = resp.Token
	}
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

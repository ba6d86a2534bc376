package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"mtnshop/internal/auth"
	"mtnshop/internal/chat"
	"mtnshop/internal/config"
	"mtnshop/internal/handlers"
	"mtnshop/internal/middleware"
	"mtnshop/internal/session"
	"mtnshop/internal/store"
)

func main() {
	config.Load()

	catalog := store.SeedCatalog()
	ledger := store.NewLedger()
	sessions := session.NewManager(config.AppEnv.SessionTTL)
	responder := chat.NewResponder()

	verifier, err := auth.NewStaticVerifier(config.AppEnv.AdminUsername, config.AppEnv.AdminPassword)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("catalog seeded with %d products", catalog.Len())

	r := gin.Default()

	r.GET("/products", handlers.GetProducts(catalog))
	r.GET("/categories", handlers.GetCategories(catalog))

	r.POST("/admin/login", handlers.AdminLogin(verifier, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
	r.POST("/admin/logout", handlers.AdminLogout())

	shop := r.Group("/")
	shop.Use(middleware.ShopperSession(sessions))
	{
		shop.GET("/chat", handlers.GetChatMessages())
		shop.POST("/chat", handlers.SendChatMessage(responder, catalog, ledger))
		shop.POST("/chat/reset", handlers.ResetChat())

		shop.GET("/cart", handlers.GetCart())
		shop.POST("/cart/items", handlers.AddToCart(catalog))
		shop.DELETE("/cart/items/:productId", handlers.RemoveFromCart())

		shop.POST("/checkout", handlers.BeginCheckout())
		shop.PUT("/checkout", handlers.UpdateCheckout())
		shop.POST("/checkout/order", handlers.PlaceOrder(ledger))
		shop.POST("/checkout/confirm", handlers.ConfirmOrder())

		shop.GET("/orders", handlers.GetMyOrders(ledger))
		shop.POST("/orders/:id/cancel", handlers.CancelOrder(ledger))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/products", handlers.GetAllProducts(catalog))
		admin.POST("/products", handlers.CreateProduct(catalog))
		admin.PUT("/products/:id", handlers.UpdateProduct(catalog))
		admin.DELETE("/products/:id", handlers.DeleteProduct(catalog))

		admin.GET("/orders", handlers.GetAllOrders(ledger))
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus(ledger))
	}

	r.Run(":" + config.AppEnv.Port)
}

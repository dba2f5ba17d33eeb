package handler

import (
	"net/http"

	"github.com/emmawebdev2005/ShopGenius/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Storefront *StorefrontHandler
	Checkout   *CheckoutHandler
	Merchant   *MerchantHandler
	Assistant  *AssistantHandler
}

func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	v1 := router.Group("/api/v1")
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	shop := v1.Group("", middleware.Session())
	{
		shop.GET("/products", h.Storefront.ListProducts)
		shop.GET("/products/:id", h.Storefront.GetProduct)
		shop.GET("/categories", h.Storefront.Categories)

		shop.GET("/cart", h.Storefront.GetCart)
		shop.POST("/cart/items", h.Storefront.AddItem)
		shop.PATCH("/cart/items/:id", h.Storefront.UpdateItem)
		shop.DELETE("/cart/items/:id", h.Storefront.RemoveItem)
		shop.POST("/cart/promo", h.Storefront.ApplyPromo)
		shop.POST("/checkout", h.Checkout.Checkout)
		shop.GET("/orders", h.Storefront.Orders)

		shop.POST("/auth/register", h.Storefront.Register)
		shop.POST("/auth/login", h.Storefront.Login)
		shop.POST("/auth/logout", h.Storefront.Logout)
		shop.GET("/auth/session", h.Storefront.Session)
		shop.POST("/wishlist/:id", h.Storefront.ToggleWishlist)

		shop.POST("/products", h.Merchant.CreateProduct)
		shop.POST("/listings/generate", h.Merchant.GenerateListing)
		shop.POST("/listings", h.Merchant.PublishListing)

		shop.GET("/chat", h.Assistant.History)
		shop.POST("/chat", h.Assistant.Chat)
	}

	return router
}

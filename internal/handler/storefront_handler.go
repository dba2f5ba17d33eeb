package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/emmawebdev2005/ShopGenius/internal/currency"
	"github.com/emmawebdev2005/ShopGenius/internal/service"
	"github.com/emmawebdev2005/ShopGenius/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StorefrontHandler struct {
	storefront *service.StorefrontService
	logger     *zap.Logger
}

func NewStorefrontHandler(storefront *service.StorefrontService, logger *zap.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		storefront: storefront,
		logger:     logger,
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// Delta is a pointer so that an explicit 0 passes the required check.
type updateItemRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

type promoRequest struct {
	Code string `json:"code"`
}

type registerRequest struct {
	Name     string `json:"name"     binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	query := service.ProductQuery{
		Query:       c.Query("q"),
		Category:    c.Query("category"),
		InStockOnly: c.Query("in_stock") == "true",
	}
	if raw, ok := c.GetQuery("max_price"); ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || math.IsNaN(v) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_price must be a non-negative number"})
			return
		}
		query.PriceMax = &v
	}

	products, err := h.storefront.ListProducts(c.Request.Context(), query)
	if err != nil {
		respondError(c, h.logger, "list products", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	product, err := h.storefront.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get product", err, nil)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *StorefrontHandler) Categories(c *gin.Context) {
	facets, err := h.storefront.Facets(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list categories", err, nil)
		return
	}
	c.JSON(http.StatusOK, facets)
}

func (h *StorefrontHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if raw := c.Query("currency"); raw != "" {
		cur, err := currency.Parse(raw)
		if err != nil {
			respondError(c, h.logger, "get cart", err, nil)
			return
		}
		c.JSON(http.StatusOK, h.storefront.SetCurrency(sessionID, cur))
		return
	}
	c.JSON(http.StatusOK, h.storefront.Cart(sessionID))
}

func (h *StorefrontHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := h.storefront.AddToCart(c.Request.Context(), middleware.GetSessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, h.logger, "add to cart", err, gin.H{"cart": view})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StorefrontHandler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	view, err := h.storefront.UpdateCartItem(middleware.GetSessionID(c), c.Param("id"), *req.Delta)
	if err != nil {
		respondError(c, h.logger, "update cart", err, gin.H{"cart": view})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StorefrontHandler) RemoveItem(c *gin.Context) {
	view, err := h.storefront.RemoveFromCart(middleware.GetSessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "update cart", err, gin.H{"cart": view})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StorefrontHandler) ApplyPromo(c *gin.Context) {
	var req promoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	view, err := h.storefront.ApplyPromo(middleware.GetSessionID(c), req.Code)
	if err != nil {
		respondError(c, h.logger, "apply promo code", err, gin.H{"cart": view})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StorefrontHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	user, err := h.storefront.Register(c.Request.Context(), middleware.GetSessionID(c), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, "register", err, nil)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *StorefrontHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	user, err := h.storefront.Login(c.Request.Context(), middleware.GetSessionID(c), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, "log in", err, nil)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *StorefrontHandler) Logout(c *gin.Context) {
	if err := h.storefront.Logout(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		respondError(c, h.logger, "log out", err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StorefrontHandler) Session(c *gin.Context) {
	user, err := h.storefront.CurrentUser(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, h.logger, "get session", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": user != nil,
		"user":          user,
	})
}

func (h *StorefrontHandler) ToggleWishlist(c *gin.Context) {
	wishlist, err := h.storefront.ToggleWishlist(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "update wishlist", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": wishlist})
}

func (h *StorefrontHandler) Orders(c *gin.Context) {
	orders, err := h.storefront.Orders(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, h.logger, "list orders", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

package handler

import (
	"net/http"

	"github.com/emmawebdev2005/ShopGenius/internal/service"
	"github.com/emmawebdev2005/ShopGenius/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	checkout *service.CheckoutService
	logger   *zap.Logger
}

func NewCheckoutHandler(checkout *service.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger,
	}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	ctx := service.WithRequestID(c.Request.Context(), middleware.GetRequestID(c))

	order, err := h.checkout.Checkout(ctx, middleware.GetSessionID(c))
	if err != nil {
		respondError(c, h.logger, "place order", err, nil)
		return
	}
	c.JSON(http.StatusCreated, order)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/emmawebdev2005/ShopGenius/internal/assistant"
	"github.com/emmawebdev2005/ShopGenius/internal/currency"
	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/emmawebdev2005/ShopGenius/internal/pricing"
	"github.com/emmawebdev2005/ShopGenius/internal/repository"
	"github.com/emmawebdev2005/ShopGenius/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatus = []struct {
	target error
	status int
}{
	{service.ErrInvalidQuantity, http.StatusBadRequest},
	{service.ErrEmptyCart, http.StatusBadRequest},
	{service.ErrEmptyMessage, http.StatusBadRequest},
	{pricing.ErrInvalidPromoCode, http.StatusBadRequest},
	{currency.ErrUnknownCurrency, http.StatusBadRequest},
	{domain.ErrInvalidProduct, http.StatusBadRequest},
	{assistant.ErrEmptyPrompt, http.StatusBadRequest},
	{repository.ErrInvalidRegistration, http.StatusBadRequest},
	{domain.ErrInvalidListing, http.StatusUnprocessableEntity},
	{service.ErrNotAuthenticated, http.StatusUnauthorized},
	{repository.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrProductNotFound, http.StatusNotFound},
	{service.ErrOrderNotFound, http.StatusNotFound},
	{repository.ErrUserExists, http.StatusConflict},
	{service.ErrCheckoutInProgress, http.StatusConflict},
	{service.ErrOutOfStock, http.StatusConflict},
	{assistant.ErrEmptyResponse, http.StatusBadGateway},
	{assistant.ErrModelUnavailable, http.StatusServiceUnavailable},
}

func statusFor(err error) int {
	for _, m := range errorStatus {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err with its mapped status. Unmapped errors are logged
// and hidden behind a generic "Failed to <op>" message.
func respondError(c *gin.Context, logger *zap.Logger, op string, err error, extra gin.H) {
	_ = c.Error(err)
	status := statusFor(err)

	body := gin.H{"error": err.Error()}
	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+op, zap.Error(err))
		body = gin.H{"error": "Failed to " + op}
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, logger *zap.Logger, err error) {
	logger.Warn("Invalid request", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Invalid request format",
	})
}

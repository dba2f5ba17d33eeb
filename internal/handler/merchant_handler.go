package handler

import (
	"net/http"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/emmawebdev2005/ShopGenius/internal/service"
	"github.com/emmawebdev2005/ShopGenius/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MerchantHandler struct {
	merchant *service.MerchantService
	logger   *zap.Logger
}

func NewMerchantHandler(merchant *service.MerchantService, logger *zap.Logger) *MerchantHandler {
	return &MerchantHandler{
		merchant: merchant,
		logger:   logger,
	}
}

type generateRequest struct {
	Text string `json:"text"`
}

func (h *MerchantHandler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	product, err := h.merchant.Publish(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		respondError(c, h.logger, "create product", err, nil)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *MerchantHandler) GenerateListing(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	draft, err := h.merchant.Generate(c.Request.Context(), middleware.GetSessionID(c), req.Text)
	if err != nil {
		respondError(c, h.logger, "generate listing", err, nil)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *MerchantHandler) PublishListing(c *gin.Context) {
	var draft domain.ListingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	product, err := h.merchant.PublishDraft(c.Request.Context(), middleware.GetSessionID(c), draft)
	if err != nil {
		respondError(c, h.logger, "publish listing", err, nil)
		return
	}
	c.JSON(http.StatusCreated, product)
}

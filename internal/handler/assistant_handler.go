package handler

import (
	"net/http"

	"github.com/emmawebdev2005/ShopGenius/internal/service"
	"github.com/emmawebdev2005/ShopGenius/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AssistantHandler struct {
	assistant *service.AssistantService
	logger    *zap.Logger
}

func NewAssistantHandler(assistant *service.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		logger:    logger,
	}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *AssistantHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": h.assistant.History(middleware.GetSessionID(c))})
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	reply, err := h.assistant.Chat(c.Request.Context(), middleware.GetSessionID(c), req.Message)
	if err != nil {
		respondError(c, h.logger, "chat", err, nil)
		return
	}
	c.JSON(http.StatusOK, reply)
}

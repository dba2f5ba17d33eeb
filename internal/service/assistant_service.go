package service

import (
	"context"
	"strings"
	"time"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"go.uber.org/zap"
)

type AssistantService struct {
	chatter  Chatter
	catalog  CatalogGateway
	sessions *SessionManager
	logger   *zap.Logger
	now      func() time.Time
}

func NewAssistantService(chatter Chatter, catalog CatalogGateway, sessions *SessionManager, logger *zap.Logger) *AssistantService {
	return &AssistantService{
		chatter:  chatter,
		catalog:  catalog,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// History returns the session's conversation, starting with the greeting.
func (s *AssistantService) History(sessionID string) []domain.ChatTurn {
	sess := s.sessions.Get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return append([]domain.ChatTurn(nil), sess.history...)
}

// Chat sends message to the assistant and records both turns. The reply
// is always usable text, possibly a fallback.
func (s *AssistantService) Chat(ctx context.Context, sessionID, message string) (domain.ChatTurn, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.ChatTurn{}, ErrEmptyMessage
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.logger.Warn("Chat without catalog context", zap.Error(err))
	}

	sess := s.sessions.Get(sessionID)
	sess.mu.Lock()
	// The greeting is local; the model only sees the real exchange.
	prior := append([]domain.ChatTurn(nil), sess.history[1:]...)
	sess.mu.Unlock()

	asked := s.now()
	reply := s.chatter.Chat(ctx, prior, message, products)
	turn := domain.ChatTurn{Role: domain.RoleModel, Text: reply, Timestamp: s.now()}

	sess.mu.Lock()
	sess.history = append(sess.history,
		domain.ChatTurn{Role: domain.RoleUser, Text: message, Timestamp: asked},
		turn,
	)
	sess.mu.Unlock()

	return turn, nil
}

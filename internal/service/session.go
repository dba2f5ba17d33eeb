package service

import (
	"sync"
	"time"

	"github.com/emmawebdev2005/ShopGenius/internal/assistant"
	"github.com/emmawebdev2005/ShopGenius/internal/cart"
	"github.com/emmawebdev2005/ShopGenius/internal/currency"
	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/emmawebdev2005/ShopGenius/internal/pricing"
)

// Session is one shopper's in-memory state. Fields are guarded by mu.
type Session struct {
	mu          sync.Mutex
	ledger      *cart.Ledger
	promo       pricing.Promotion
	currency    currency.Currency
	checkingOut bool
	history     []domain.ChatTurn
}

type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Get returns the session for id, creating an empty one on first use.
func (m *SessionManager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := &Session{
		ledger:   cart.NewLedger(),
		currency: currency.USD,
		history: []domain.ChatTurn{
			{Role: domain.RoleModel, Text: assistant.Greeting, Timestamp: m.now()},
		},
	}
	m.sessions[id] = s
	return s
}

func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

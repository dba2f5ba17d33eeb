package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidRegistration = errors.New("name, email and password are required")

type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Wishlist     []string  `json:"wishlist"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r userRecord) user() *domain.User {
	wishlist := make([]string, len(r.Wishlist))
	copy(wishlist, r.Wishlist)
	return &domain.User{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Wishlist: wishlist,
	}
}

type sessionRecord struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (b *Backend) users(ctx context.Context) ([]userRecord, error) {
	users := []userRecord{}
	if err := b.load(ctx, keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (b *Backend) openSession(ctx context.Context, token, userID string) error {
	return b.save(ctx, keySessionPrefix+token, sessionRecord{UserID: userID, CreatedAt: b.now()})
}

// Register creates an account and signs it in under token.
func (b *Backend) Register(ctx context.Context, token, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrInvalidRegistration
	}
	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	users, err := b.users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	rec := userRecord{
		ID:           b.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Wishlist:     []string{},
		CreatedAt:    b.now(),
	}
	users = append(users, rec)
	if err := b.save(ctx, keyUsers, users); err != nil {
		return nil, err
	}
	if err := b.openSession(ctx, token, rec.ID); err != nil {
		return nil, err
	}
	return rec.user(), nil
}

func (b *Backend) Login(ctx context.Context, token, email, password string) (*domain.User, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	users, err := b.users(ctx)
	if err != nil {
		return nil, err
	}

	email = normalizeEmail(email)
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		if err := b.openSession(ctx, token, u.ID); err != nil {
			return nil, err
		}
		return u.user(), nil
	}
	return nil, ErrInvalidCredentials
}

// GetSession returns the user signed in under token, or nil when there is none.
func (b *Backend) GetSession(ctx context.Context, token string) (*domain.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sess sessionRecord
	if err := b.load(ctx, keySessionPrefix+token, &sess); err != nil {
		return nil, err
	}
	if sess.UserID == "" {
		return nil, nil
	}

	users, err := b.users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == sess.UserID {
			return u.user(), nil
		}
	}
	// account vanished underneath the session
	return nil, nil
}

func (b *Backend) Logout(ctx context.Context, token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.store.Delete(ctx, keySessionPrefix+token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ToggleWishlist adds productID to the user's wishlist, or removes it if present.
func (b *Backend) ToggleWishlist(ctx context.Context, userID, productID string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	users, err := b.users(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID != userID {
			continue
		}
		users[i].Wishlist = toggle(users[i].Wishlist, productID)
		if err := b.save(ctx, keyUsers, users); err != nil {
			return nil, err
		}
		return users[i].user().Wishlist, nil
	}
	return nil, ErrUserNotFound
}

func toggle(list []string, id string) []string {
	out := make([]string, 0, len(list)+1)
	found := false
	for _, v := range list {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

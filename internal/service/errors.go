package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/emmawebdev2005/ShopGenius/internal/repository"
)

var (
	ErrNotAuthenticated   = errors.New("sign in required")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOutOfStock         = errors.New("product is out of stock")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrEmptyMessage       = errors.New("message is empty")
)

func currentUser(ctx context.Context, auth AuthGateway, sessionID string) (*domain.User, error) {
	user, err := auth.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

func mapProductErr(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return ErrProductNotFound
	}
	return err
}

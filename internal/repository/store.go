package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Store is the key-value persistence the mocked backend runs on.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Package metadata is a small key/value table of the local database. The
// session provider keeps the signed-in identity and refresh token there.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns nil, nil for an absent key.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Package drafts persists the in-progress journal draft so it survives a
// restart. Values are stored verbatim under a caller-chosen key.
package drafts

import "context"

type Repository interface {
	// Get reports ok=false for an absent key.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove is idempotent.
	Remove(ctx context.Context, key string) error
}

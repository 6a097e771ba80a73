// Package refreshtokens stores the opaque refresh tokens of the sync server.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/refugio/internal/server/models"
)

type Repository interface {
	// Create stores token for userID, valid until now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns common.ErrorNotFound when the token is unknown.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is idempotent.
	Delete(ctx context.Context, token string) error
}

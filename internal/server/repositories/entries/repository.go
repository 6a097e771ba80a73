// Package entries stores journal entries. Entries are append-only: there is
// no update or delete.
package entries

import (
	"context"

	"github.com/dmitrijs2005/refugio/internal/server/models"
)

type Repository interface {
	// Create inserts entry and fills in CreatedAt.
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	// ListByOwner returns at most limit entries of userID, newest first.
	ListByOwner(ctx context.Context, userID string, limit uint64) ([]*models.Entry, error)
}

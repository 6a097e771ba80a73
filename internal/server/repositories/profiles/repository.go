// Package profiles stores the settings profile of each user.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/refugio/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when the user never saved a profile.
	Get(ctx context.Context, userID string) (*models.Profile, error)
	// Upsert creates or replaces the profile of p.UserID and fills in
	// UpdatedAt.
	Upsert(ctx context.Context, p *models.Profile) (*models.Profile, error)
}

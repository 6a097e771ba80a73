package client

import (
	"context"

	"github.com/dmitrijs2005/refugio/internal/client/models"
)

type Client interface {
	Close() error

	Register(ctx context.Context, email string, salt, verifier []byte) error
	GetSalt(ctx context.Context, email string) ([]byte, error)
	// Login and RefreshToken also make the returned tokens current.
	Login(ctx context.Context, email string, verifier []byte) (models.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (models.Session, error)
	// Logout revokes the current refresh token and forgets both tokens.
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error

	InsertEntry(ctx context.Context, e models.NewEntry) error
	ListEntries(ctx context.Context, ownerID string, limit int) ([]models.Entry, error)

	GetProfile(ctx context.Context, ownerID string) (models.Profile, error)
	UpsertProfile(ctx context.Context, ownerID string, p models.Profile) (models.Profile, error)
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/refugio/internal/common"
	"github.com/dmitrijs2005/refugio/internal/server/models"
	"github.com/dmitrijs2005/refugio/internal/server/repositories/repomanager"
)

// ProfileService reads and saves the settings profile of a user.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

// Get returns common.ErrorNotFound if userID has no saved profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.repomanager.Profiles(s.db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error reading profile: %w", err)
	}
	return p, nil
}

// Save normalizes p and stores it as the profile of userID, replacing any
// previous one.
func (s *ProfileService) Save(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error) {
	if err := p.Normalize(); err != nil {
		return nil, err
	}
	p.UserID = userID

	saved, err := s.repomanager.Profiles(s.db).Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("error saving profile: %w", err)
	}
	return saved, nil
}

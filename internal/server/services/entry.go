package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/refugio/internal/common"
	"github.com/dmitrijs2005/refugio/internal/server/models"
	"github.com/dmitrijs2005/refugio/internal/server/repositories/repomanager"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// EntryService appends and lists journal entries.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	newID       func() string
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager) *EntryService {
	return &EntryService{db: db, repomanager: m, newID: uuid.NewString}
}

// Insert stores a new entry for userID. Content is trimmed and must not be
// empty; an empty emotion is stored as neutral.
func (s *EntryService) Insert(ctx context.Context, userID, content, emotion string) (*models.Entry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.ErrorEmptyContent
	}
	e, err := models.ParseEmotion(emotion)
	if err != nil {
		return nil, err
	}

	entry := &models.Entry{
		ID:      s.newID(),
		UserID:  userID,
		Content: content,
		Emotion: e,
	}

	created, err := s.repomanager.Entries(s.db).Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("error creating entry: %w", err)
	}
	return created, nil
}

// List returns the newest entries of userID. Limit is clamped to
// [1, MaxListLimit]; zero or negative means DefaultListLimit.
func (s *EntryService) List(ctx context.Context, userID string, limit int) ([]*models.Entry, error) {
	items, err := s.repomanager.Entries(s.db).ListByOwner(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return items, nil
}

func clampLimit(limit int) uint64 {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return uint64(limit)
	}
}

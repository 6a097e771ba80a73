package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/refugio/internal/common"
	"github.com/dmitrijs2005/refugio/internal/server/models"
)

func newProfileService(t *testing.T, repo *fakeProfilesRepo) *ProfileService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	return NewProfileService(db, &fakeRepoManager{p: repo})
}

func TestProfileService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		stored := &models.Profile{UserID: "u1", Name: "Ana"}
		s := newProfileService(t, &fakeProfilesRepo{stored: map[string]*models.Profile{"u1": stored}})

		got, err := s.Get(context.Background(), "u1")
		require.NoError(t, err)
		require.Same(t, stored, got)
	})

	t.Run("not found passes through", func(t *testing.T) {
		s := newProfileService(t, &fakeProfilesRepo{})

		_, err := s.Get(context.Background(), "u1")
		require.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		s := newProfileService(t, &fakeProfilesRepo{getErr: errBoom})

		_, err := s.Get(context.Background(), "u1")
		require.ErrorIs(t, err, errBoom)
	})
}

func TestProfileService_Save(t *testing.T) {
	t.Run("normalizes and binds owner", func(t *testing.T) {
		repo := &fakeProfilesRepo{}
		s := newProfileService(t, repo)

		got, err := s.Save(context.Background(), "u1", &models.Profile{
			UserID:   "someone-else",
			Name:     " Ana ",
			Emotions: []string{"Calma", "calma"},
		})
		require.NoError(t, err)
		require.Equal(t, "u1", got.UserID)
		require.Equal(t, "Ana", got.Name)
		require.Equal(t, []string{"Calma"}, got.Emotions)
		require.False(t, got.UpdatedAt.IsZero())
		require.Contains(t, repo.stored, "u1")
	})

	t.Run("validation", func(t *testing.T) {
		repo := &fakeProfilesRepo{}
		s := newProfileService(t, repo)

		_, err := s.Save(context.Background(), "u1", &models.Profile{Color: "azul"})
		require.ErrorIs(t, err, common.ErrorValidation)
		require.Empty(t, repo.stored)
	})

	t.Run("db error", func(t *testing.T) {
		s := newProfileService(t, &fakeProfilesRepo{saveErr: errBoom})

		_, err := s.Save(context.Background(), "u1", &models.Profile{})
		require.ErrorIs(t, err, errBoom)
	})
}

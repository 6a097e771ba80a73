package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/refugio/internal/common"
	"github.com/dmitrijs2005/refugio/internal/dbx"
	"github.com/dmitrijs2005/refugio/internal/server/models"
	entriesrepo "github.com/dmitrijs2005/refugio/internal/server/repositories/entries"
	profilesrepo "github.com/dmitrijs2005/refugio/internal/server/repositories/profiles"
	refreshtokensrepo "github.com/dmitrijs2005/refugio/internal/server/repositories/refreshtokens"
	usersrepo "github.com/dmitrijs2005/refugio/internal/server/repositories/users"
)

var (
	errBoom  = errors.New("boom")
	notFound = common.ErrorNotFound
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	byEmail    map[string]*models.User
	byEmailErr error
	byIDErr    error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u1"
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, notFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, notFound
}

type fakeRefreshRepo struct {
	tokens    map[string]*models.RefreshToken
	findErr   error
	deleteErr error
	createErr error
	deleted   []string
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.tokens == nil {
		f.tokens = map[string]*models.RefreshToken{}
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeRefreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if rt, ok := f.tokens[token]; ok {
		return rt, nil
	}
	return nil, notFound
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, token)
	delete(f.tokens, token)
	return nil
}

type fakeEntriesRepo struct {
	created   *models.Entry
	createErr error

	listOut   []*models.Entry
	listErr   error
	listUser  string
	listLimit uint64
}

func (f *fakeEntriesRepo) Create(_ context.Context, e *models.Entry) (*models.Entry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	e.CreatedAt = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	f.created = e
	return e, nil
}

func (f *fakeEntriesRepo) ListByOwner(_ context.Context, userID string, limit uint64) ([]*models.Entry, error) {
	f.listUser, f.listLimit = userID, limit
	return f.listOut, f.listErr
}

type fakeProfilesRepo struct {
	stored  map[string]*models.Profile
	getErr  error
	saveErr error
}

func (f *fakeProfilesRepo) Get(_ context.Context, userID string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if p, ok := f.stored[userID]; ok {
		return p, nil
	}
	return nil, notFound
}

func (f *fakeProfilesRepo) Upsert(_ context.Context, p *models.Profile) (*models.Profile, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	if f.stored == nil {
		f.stored = map[string]*models.Profile{}
	}
	p.UpdatedAt = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	f.stored[p.UserID] = p
	return p, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	e *fakeEntriesRepo
	p *fakeProfilesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error        { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Entries(dbx.DBTX) entriesrepo.Repository             { return m.e }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profilesrepo.Repository           { return m.p }

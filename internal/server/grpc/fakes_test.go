package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/refugio/internal/common"
	"github.com/dmitrijs2005/refugio/internal/server/models"
	"github.com/dmitrijs2005/refugio/internal/server/services"
)

type fakeUsers struct {
	regResp *models.User
	regErr  error

	saltResp []byte
	saltErr  error

	loginResp *services.TokenPair
	loginErr  error

	refreshResp *services.TokenPair
	refreshErr  error

	logoutErr error
	loggedOut []string
}

func (f *fakeUsers) Register(context.Context, string, []byte, []byte) (*models.User, error) {
	return f.regResp, f.regErr
}

func (f *fakeUsers) GetSalt(context.Context, string) ([]byte, error) {
	return f.saltResp, f.saltErr
}

func (f *fakeUsers) Login(context.Context, string, []byte) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeUsers) RefreshToken(context.Context, string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

func (f *fakeUsers) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return f.logoutErr
}

type insertCall struct {
	userID, content, emotion string
}

type fakeEntries struct {
	inserted  []insertCall
	insertErr error

	listOut   []*models.Entry
	listErr   error
	listUser  string
	listLimit int
}

func (f *fakeEntries) Insert(_ context.Context, userID, content, emotion string) (*models.Entry, error) {
	f.inserted = append(f.inserted, insertCall{userID, content, emotion})
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return &models.Entry{
		ID:        "e1",
		UserID:    userID,
		Content:   content,
		Emotion:   models.Emotion(emotion),
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeEntries) List(_ context.Context, userID string, limit int) ([]*models.Entry, error) {
	f.listUser, f.listLimit = userID, limit
	return f.listOut, f.listErr
}

type fakeProfiles struct {
	stored  *models.Profile
	getErr  error
	saveErr error
	savedBy string
}

func (f *fakeProfiles) Get(_ context.Context, userID string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.stored == nil || f.stored.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return f.stored, nil
}

func (f *fakeProfiles) Save(_ context.Context, userID string, p *models.Profile) (*models.Profile, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.savedBy = userID
	p.UserID = userID
	p.UpdatedAt = time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	f.stored = p
	return p, nil
}

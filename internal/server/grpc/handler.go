package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dmitrijs2005/refugio/internal/api"
	"github.com/dmitrijs2005/refugio/internal/common"
	"github.com/dmitrijs2005/refugio/internal/server/models"
	"github.com/dmitrijs2005/refugio/internal/server/services"
)

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {
	user, err := s.users.Register(ctx, req.Email, req.Salt, req.Verifier)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			return nil, status.Error(codes.AlreadyExists, "email already registered")
		case errors.Is(err, common.ErrorValidation):
			return nil, status.Error(codes.InvalidArgument, "email, salt and verifier are required")
		}
		s.logger.Error(ctx, "register failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &api.RegisterResponse{UserID: user.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *api.GetSaltRequest) (*api.GetSaltResponse, error) {
	salt, err := s.users.GetSalt(ctx, req.Email)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &api.GetSaltResponse{Salt: salt}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenResponse, error) {
	pair, err := s.users.Login(ctx, req.Email, req.Verifier)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "invalid email or password")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}
	return tokenResponse(pair), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.TokenResponse, error) {
	pair, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRefreshTokenExpired):
			return nil, status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
		case errors.Is(err, common.ErrorUnauthorized):
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		s.logger.Error(ctx, "refresh failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return tokenResponse(pair), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *api.LogoutRequest) (*emptypb.Empty, error) {
	if err := s.users.Logout(ctx, req.RefreshToken); err != nil {
		s.logger.Error(ctx, "logout failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) InsertEntry(ctx context.Context, req *api.InsertEntryRequest) (*api.InsertEntryResponse, error) {
	userID, err := s.owner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.Insert(ctx, userID, req.Content, req.Emotion)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorEmptyContent), errors.Is(err, common.ErrorUnknownEmotion):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, "insert entry failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Entry stored", "user_id", userID, "entry_id", entry.ID, "emotion", string(entry.Emotion))
	return &api.InsertEntryResponse{ID: entry.ID, CreatedAt: entry.CreatedAt}, nil
}

func (s *GRPCServer) ListEntries(ctx context.Context, req *api.ListEntriesRequest) (*api.ListEntriesResponse, error) {
	userID, err := s.owner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	items, err := s.entries.List(ctx, userID, int(req.Limit))
	if err != nil {
		s.logger.Error(ctx, "list entries failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &api.ListEntriesResponse{Entries: make([]api.Entry, 0, len(items))}
	for _, e := range items {
		resp.Entries = append(resp.Entries, entryToAPI(e))
	}
	return resp, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *api.GetProfileRequest) (*api.ProfileResponse, error) {
	userID, err := s.owner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "profile not found")
		}
		s.logger.Error(ctx, "get profile failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &api.ProfileResponse{Profile: profileToAPI(p)}, nil
}

func (s *GRPCServer) UpsertProfile(ctx context.Context, req *api.UpsertProfileRequest) (*api.ProfileResponse, error) {
	userID, err := s.owner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.Save(ctx, userID, profileFromAPI(req.Profile))
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, "save profile failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Profile saved", "user_id", userID)
	return &api.ProfileResponse{Profile: profileToAPI(p)}, nil
}

// owner resolves the acting user. A request naming another owner is
// rejected: users only ever see and write their own entries.
func (s *GRPCServer) owner(ctx context.Context, requested string) (string, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	if requested != "" && requested != userID {
		return "", status.Error(codes.PermissionDenied, "owner mismatch")
	}
	return userID, nil
}

func tokenResponse(p *services.TokenPair) *api.TokenResponse {
	return &api.TokenResponse{
		UserID:       p.UserID,
		Email:        p.Email,
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
	}
}

func entryToAPI(e *models.Entry) api.Entry {
	return api.Entry{
		ID:        e.ID,
		OwnerID:   e.UserID,
		Content:   e.Content,
		Emotion:   string(e.Emotion),
		CreatedAt: e.CreatedAt,
	}
}

func profileToAPI(p *models.Profile) api.Profile {
	return api.Profile{
		Name:     p.Name,
		Pronouns: p.Pronouns,
		Color:    p.Color,
		Emotions: p.Emotions,
		Reminder: api.Reminder{
			Enabled: p.Reminder.Enabled,
			Hour:    int32(p.Reminder.Hour),
			Minute:  int32(p.Reminder.Minute),
		},
		UpdatedAt: p.UpdatedAt,
	}
}

func profileFromAPI(p api.Profile) *models.Profile {
	return &models.Profile{
		Name:     p.Name,
		Pronouns: p.Pronouns,
		Color:    p.Color,
		Emotions: p.Emotions,
		Reminder: models.Reminder{
			Enabled: p.Reminder.Enabled,
			Hour:    int(p.Reminder.Hour),
			Minute:  int(p.Reminder.Minute),
		},
	}
}

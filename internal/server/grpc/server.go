// Package grpc exposes the sync server over gRPC.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/refugio/internal/api"
	"github.com/dmitrijs2005/refugio/internal/logging"
	"github.com/dmitrijs2005/refugio/internal/server/models"
	"github.com/dmitrijs2005/refugio/internal/server/services"
)

// UserService is the account side of services.UserService.
type UserService interface {
	Register(ctx context.Context, email string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, email string) ([]byte, error)
	Login(ctx context.Context, email string, verifier []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// EntryService is the journal side of services.EntryService.
type EntryService interface {
	Insert(ctx context.Context, userID, content, emotion string) (*models.Entry, error)
	List(ctx context.Context, userID string, limit int) ([]*models.Entry, error)
}

// ProfileService is services.ProfileService.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Save(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error)
}

type GRPCServer struct {
	api.UnimplementedRefugioServer
	address   string
	users     UserService
	entries   EntryService
	profiles  ProfileService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(address string, l logging.Logger, us UserService, es EntryService, ps ProfileService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		entries:   es,
		profiles:  ps,
		jwtSecret: []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	api.RegisterRefugioServer(srv, s)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}

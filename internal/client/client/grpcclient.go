package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dmitrijs2005/refugio/internal/api"
	"github.com/dmitrijs2005/refugio/internal/client/models"
	"github.com/dmitrijs2005/refugio/internal/common"
)

// GRPCClient is safe for concurrent use; the editor inserts entries from a
// background goroutine while the REPL keeps running.
type GRPCClient struct {
	endpointURL string
	dialOpts    []grpc.DialOption
	conn        *grpc.ClientConn
	client      api.RefugioClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	onRefresh    func(models.Session)

	// serializes refreshes so a rotated token is never used twice
	refreshMu sync.Mutex
}

type Option func(*GRPCClient)

// WithDialOptions appends grpc dial options, e.g. a bufconn dialer in tests.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOpts = append(c.dialOpts, opts...) }
}

// WithRefreshListener is called with the new session whenever the client
// rotates tokens on its own.
func WithRefreshListener(fn func(models.Session)) Option {
	return func(c *GRPCClient) { c.onRefresh = fn }
}

func NewGRPCClient(endpointURL string, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	for _, o := range opts {
		o(c)
	}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *GRPCClient) initGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, c.dialOpts...)

	conn, err := grpc.NewClient(c.endpointURL, opts...)
	if err != nil {
		return err
	}
	c.conn = conn
	c.client = api.NewRefugioClient(conn)
	return nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// SetTokens makes the given pair current, e.g. after restoring a session.
func (c *GRPCClient) SetTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken, c.refreshToken = access, refresh
}

func (c *GRPCClient) tokens() (string, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken, c.refreshToken
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, _ := c.tokens()
	if access != "" {
		ctx = withAccessToken(ctx, access)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) || method == api.MethodRefreshToken {
		return err
	}

	fresh, rerr := c.refreshAfterExpiry(ctx, access)
	if rerr != nil {
		return err
	}
	return invoker(withAccessToken(ctx, fresh), method, req, reply, cc, opts...)
}

// refreshAfterExpiry rotates the token pair unless another call already did
// so since stale was sent.
func (c *GRPCClient) refreshAfterExpiry(ctx context.Context, stale string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	access, refresh := c.tokens()
	if access != stale && access != "" {
		return access, nil
	}
	if refresh == "" {
		return "", ErrUnauthorized
	}

	s, err := c.RefreshToken(ctx, refresh)
	if err != nil {
		return "", err
	}
	if c.onRefresh != nil {
		c.onRefresh(s)
	}
	return s.AccessToken, nil
}

func (c *GRPCClient) Register(ctx context.Context, email string, salt, verifier []byte) error {
	_, err := c.client.Register(ctx, &api.RegisterRequest{Email: email, Salt: salt, Verifier: verifier})
	return mapError(err)
}

func (c *GRPCClient) GetSalt(ctx context.Context, email string) ([]byte, error) {
	resp, err := c.client.GetSalt(ctx, &api.GetSaltRequest{Email: email})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Salt, nil
}

func (c *GRPCClient) Login(ctx context.Context, email string, verifier []byte) (models.Session, error) {
	resp, err := c.client.Login(ctx, &api.LoginRequest{Email: email, Verifier: verifier})
	if err != nil {
		return models.Session{}, mapError(err)
	}
	return c.adopt(resp), nil
}

func (c *GRPCClient) RefreshToken(ctx context.Context, refreshToken string) (models.Session, error) {
	resp, err := c.client.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return models.Session{}, mapError(err)
	}
	return c.adopt(resp), nil
}

func (c *GRPCClient) adopt(resp *api.TokenResponse) models.Session {
	c.SetTokens(resp.AccessToken, resp.RefreshToken)
	return models.Session{
		UserID:       resp.UserID,
		Email:        resp.Email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
}

func (c *GRPCClient) Logout(ctx context.Context) error {
	_, refresh := c.tokens()
	c.SetTokens("", "")
	if refresh == "" {
		return nil
	}
	_, err := c.client.Logout(ctx, &api.LogoutRequest{RefreshToken: refresh})
	return mapError(err)
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) InsertEntry(ctx context.Context, e models.NewEntry) error {
	_, err := c.client.InsertEntry(ctx, &api.InsertEntryRequest{
		OwnerID: e.OwnerID,
		Content: e.Content,
		Emotion: string(e.Emotion.OrNeutral()),
	})
	return mapError(err)
}

func (c *GRPCClient) ListEntries(ctx context.Context, ownerID string, limit int) ([]models.Entry, error) {
	resp, err := c.client.ListEntries(ctx, &api.ListEntriesRequest{OwnerID: ownerID, Limit: int32(limit)})
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]models.Entry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		out = append(out, models.Entry{
			ID:        e.ID,
			OwnerID:   e.OwnerID,
			Content:   e.Content,
			Emotion:   models.Emotion(e.Emotion).OrNeutral(),
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

// GetProfile returns ErrNotFound if ownerID never saved a profile.
func (c *GRPCClient) GetProfile(ctx context.Context, ownerID string) (models.Profile, error) {
	resp, err := c.client.GetProfile(ctx, &api.GetProfileRequest{OwnerID: ownerID})
	if err != nil {
		return models.Profile{}, mapError(err)
	}
	return profileFromAPI(resp.Profile), nil
}

// UpsertProfile replaces the profile of ownerID and returns the stored
// version.
func (c *GRPCClient) UpsertProfile(ctx context.Context, ownerID string, p models.Profile) (models.Profile, error) {
	resp, err := c.client.UpsertProfile(ctx, &api.UpsertProfileRequest{
		OwnerID: ownerID,
		Profile: api.Profile{
			Name:     p.Name,
			Pronouns: p.Pronouns,
			Color:    p.Color,
			Emotions: p.Emotions,
			Reminder: api.Reminder{
				Enabled: p.Reminder.Enabled,
				Hour:    int32(p.Reminder.Hour),
				Minute:  int32(p.Reminder.Minute),
			},
		},
	})
	if err != nil {
		return models.Profile{}, mapError(err)
	}
	return profileFromAPI(resp.Profile), nil
}

func profileFromAPI(p api.Profile) models.Profile {
	return models.Profile{
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

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return ErrUnavailable
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// Package session holds the signed-in identity of the client and notifies
// interested parties when it is established or ends.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/refugio/internal/client/client"
	"github.com/dmitrijs2005/refugio/internal/client/models"
	"github.com/dmitrijs2005/refugio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/refugio/internal/cryptox"
	"github.com/dmitrijs2005/refugio/internal/logging"
)

// MinPasswordLength is enforced at sign-up only.
const MinPasswordLength = 6

// metadata keys
const (
	keyUserID       = "user_id"
	keyEmail        = "email"
	keyRefreshToken = "refresh_token"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrEmailRequired      = errors.New("email is required")
	ErrServerUnavailable  = errors.New("server is not reachable, try again later")
)

// Remote is the part of the sync server client the provider talks to.
type Remote interface {
	Register(ctx context.Context, email string, salt, verifier []byte) error
	GetSalt(ctx context.Context, email string) ([]byte, error)
	Login(ctx context.Context, email string, verifier []byte) (models.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (models.Session, error)
	Logout(ctx context.Context) error
}

// Provider is the process-wide session holder. It is built once at startup
// and handed to the controllers that need it.
type Provider struct {
	remote Remote
	meta   metadata.Repository
	log    logging.Logger

	mu      sync.RWMutex
	current models.Session

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(models.Session, bool)
}

func NewProvider(remote Remote, meta metadata.Repository, log logging.Logger) *Provider {
	if log == nil {
		log = logging.Nop{}
	}
	return &Provider{
		remote: remote,
		meta:   meta,
		log:    log.With("component", "session"),
		subs:   make(map[int]func(models.Session, bool)),
	}
}

// Current returns the signed-in session, if any.
func (p *Provider) Current() (models.Session, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current, p.current.Valid()
}

// Subscribe registers fn and returns a func that removes it. fn receives the
// session after every sign-in or sign-out; ok is false when nobody is
// signed in.
func (p *Provider) Subscribe(fn func(s models.Session, ok bool)) func() {
	p.subMu.Lock()
	defer p.subMu.Unlock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	return func() {
		p.subMu.Lock()
		defer p.subMu.Unlock()
		delete(p.subs, id)
	}
}

func (p *Provider) notify(s models.Session, ok bool) {
	p.subMu.Lock()
	subs := make([]func(models.Session, bool), 0, len(p.subs))
	for i := 0; i < p.nextID; i++ {
		if fn, found := p.subs[i]; found {
			subs = append(subs, fn)
		}
	}
	p.subMu.Unlock()

	for _, fn := range subs {
		fn(s, ok)
	}
}

// SignIn fetches the user's salt, derives the verifier locally and logs in.
func (p *Provider) SignIn(ctx context.Context, email string, password []byte) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrEmailRequired
	}

	salt, err := p.remote.GetSalt(ctx, email)
	if err != nil {
		return userError(err)
	}

	s, err := p.remote.Login(ctx, email, cryptox.VerifierFor(password, salt))
	if err != nil {
		return userError(err)
	}

	p.establish(ctx, s)
	return nil
}

// SignUp registers a new account and signs in with it.
func (p *Provider) SignUp(ctx context.Context, email string, password []byte) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrEmailRequired
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	salt := cryptox.NewSalt()
	verifier := cryptox.VerifierFor(password, salt)

	if err := p.remote.Register(ctx, email, salt, verifier); err != nil {
		return userError(err)
	}

	s, err := p.remote.Login(ctx, email, verifier)
	if err != nil {
		return userError(err)
	}

	p.establish(ctx, s)
	return nil
}

// SignOut revokes the refresh token on a best-effort basis and forgets the
// session locally. It only fails if the local state cannot be cleared.
func (p *Provider) SignOut(ctx context.Context) error {
	if _, ok := p.Current(); !ok {
		return nil
	}

	if err := p.remote.Logout(ctx); err != nil {
		p.log.Warn(ctx, "remote logout failed", "error", err)
	}

	p.mu.Lock()
	p.current = models.Session{}
	p.mu.Unlock()

	err := p.forget(ctx)
	p.notify(models.Session{}, false)
	return err
}

// Restore exchanges a stored refresh token for a fresh session. Any failure
// leaves the client signed out; a rejected token is also forgotten.
func (p *Provider) Restore(ctx context.Context) {
	token, err := p.meta.Get(ctx, keyRefreshToken)
	if err != nil {
		p.log.Warn(ctx, "reading stored session failed", "error", err)
		return
	}
	if len(token) == 0 {
		return
	}

	s, err := p.remote.RefreshToken(ctx, string(token))
	if err != nil {
		p.log.Info(ctx, "stored session not restored", "error", err)
		if errors.Is(err, client.ErrUnauthorized) {
			if ferr := p.forget(ctx); ferr != nil {
				p.log.Warn(ctx, "clearing stored session failed", "error", ferr)
			}
		}
		return
	}

	p.establish(ctx, s)
}

// OnTokensRotated records a token pair the client refreshed on its own.
// Listeners are not notified since the identity did not change.
func (p *Provider) OnTokensRotated(s models.Session) {
	p.mu.Lock()
	if !p.current.Valid() || p.current.UserID != s.UserID {
		p.mu.Unlock()
		return
	}
	p.current.AccessToken = s.AccessToken
	p.current.RefreshToken = s.RefreshToken
	p.mu.Unlock()

	ctx := context.Background()
	if err := p.meta.Set(ctx, keyRefreshToken, []byte(s.RefreshToken)); err != nil {
		p.log.Warn(ctx, "persisting rotated token failed", "error", err)
	}
}

func (p *Provider) establish(ctx context.Context, s models.Session) {
	p.mu.Lock()
	p.current = s
	p.mu.Unlock()

	if err := p.persist(ctx, s); err != nil {
		p.log.Warn(ctx, "persisting session failed", "error", err)
	}
	p.log.Info(ctx, "session established", "user_id", s.UserID)
	p.notify(s, true)
}

func (p *Provider) persist(ctx context.Context, s models.Session) error {
	for k, v := range map[string]string{
		keyUserID:       s.UserID,
		keyEmail:        s.Email,
		keyRefreshToken: s.RefreshToken,
	} {
		if err := p.meta.Set(ctx, k, []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provider) forget(ctx context.Context) error {
	for _, k := range []string{keyUserID, keyEmail, keyRefreshToken} {
		if err := p.meta.Delete(ctx, k); err != nil {
			return fmt.Errorf("forget session: %w", err)
		}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// userError turns client errors into the short messages shown in the auth
// prompt.
func userError(err error) error {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return ErrInvalidCredentials
	case errors.Is(err, client.ErrAlreadyExists):
		return ErrEmailTaken
	case errors.Is(err, client.ErrUnavailable):
		return ErrServerUnavailable
	default:
		return err
	}
}

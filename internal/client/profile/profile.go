// Package profile keeps the settings profile of the signed-in user. It is
// fetched from the server when a session is established and goes back to
// the defaults when the session ends.
package profile

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/refugio/internal/client/client"
	"github.com/dmitrijs2005/refugio/internal/client/models"
	"github.com/dmitrijs2005/refugio/internal/logging"
)

const DefaultLoadTimeout = 10 * time.Second

var ErrNoSession = errors.New("sign in to keep a profile")

type Sessions interface {
	Current() (models.Session, bool)
	Subscribe(fn func(models.Session, bool)) func()
}

type Remote interface {
	GetProfile(ctx context.Context, ownerID string) (models.Profile, error)
	UpsertProfile(ctx context.Context, ownerID string, p models.Profile) (models.Profile, error)
}

type Service struct {
	sessions    Sessions
	remote      Remote
	log         logging.Logger
	loadTimeout time.Duration

	mu      sync.Mutex
	current models.Profile
	// gen changes with every session change; results of older loads are
	// dropped.
	gen    uint64
	closed bool

	loads sync.WaitGroup
	unsub func()
}

type Option func(*Service)

func WithLogger(l logging.Logger) Option { return func(s *Service) { s.log = l } }

func WithLoadTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.loadTimeout = d
		}
	}
}

func NewService(sessions Sessions, remote Remote, opts ...Option) *Service {
	s := &Service{
		sessions:    sessions,
		remote:      remote,
		log:         logging.Nop{},
		loadTimeout: DefaultLoadTimeout,
		current:     models.DefaultProfile(),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("component", "profile")
	s.unsub = sessions.Subscribe(s.onSession)
	return s
}

// Current returns a copy of the profile in use.
func (s *Service) Current() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.current
	p.Emotions = slices.Clone(p.Emotions)
	return p
}

func (s *Service) onSession(sess models.Session, ok bool) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	if !ok {
		s.current = models.DefaultProfile()
		s.mu.Unlock()
		return
	}
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.loads.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.loads.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.loadTimeout)
		defer cancel()
		_ = s.load(ctx, sess.UserID, gen)
	}()
}

// Load fetches the profile of the current session again. A user who never
// saved one gets the defaults.
func (s *Service) Load(ctx context.Context) error {
	sess, ok := s.sessions.Current()
	if !ok {
		return ErrNoSession
	}
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()
	return s.load(ctx, sess.UserID, gen)
}

func (s *Service) load(ctx context.Context, owner string, gen uint64) error {
	p, err := s.remote.GetProfile(ctx, owner)
	switch {
	case errors.Is(err, client.ErrNotFound):
		p = models.DefaultProfile()
	case err != nil:
		s.log.Warn(ctx, "profile load failed", "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen {
		s.current = p
	}
	return nil
}

// Save replaces the stored profile with p and makes the version returned by
// the server current. On error the previous profile stays in use.
func (s *Service) Save(ctx context.Context, p models.Profile) (models.Profile, error) {
	sess, ok := s.sessions.Current()
	if !ok {
		return models.Profile{}, ErrNoSession
	}
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	saved, err := s.remote.UpsertProfile(ctx, sess.UserID, p)
	if err != nil {
		s.log.Warn(ctx, "profile save failed", "error", err)
		return models.Profile{}, err
	}

	s.mu.Lock()
	if gen == s.gen {
		s.current = saved
	}
	s.mu.Unlock()
	return saved, nil
}

// Close stops listening to session changes and waits for pending loads.
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.unsub()
	s.loads.Wait()
}

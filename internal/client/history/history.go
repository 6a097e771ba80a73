// Package history prepares the emotional map: the newest entries of the
// signed-in user, or a placeholder constellation when there is nothing to
// show from the server.
package history

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrijs2005/refugio/internal/client/models"
	"github.com/dmitrijs2005/refugio/internal/common"
	"github.com/dmitrijs2005/refugio/internal/logging"
)

// PlaceholderDays is how far back the placeholder constellation reaches,
// today included.
const PlaceholderDays = 29

// PlaceholderContent is the text of every placeholder entry.
const PlaceholderContent = "Hoy fue un día particular. Sentí que el tiempo pasaba de una forma distinta, más espesa. Al principio me incomodó, pero luego decidí observarlo sin juzgarlo. Es extraño cómo cambiar la perspectiva aligera la mente."

type Source int

const (
	SourceRemote Source = iota
	SourcePlaceholder
)

func (s Source) String() string {
	if s == SourceRemote {
		return "remote"
	}
	return "placeholder"
}

// Item is one node of the map. Intensity scales the node when drawn.
type Item struct {
	ID        string
	Day       time.Time
	Emotion   models.Emotion
	Content   string
	Intensity float64
}

type Sessions interface {
	Current() (models.Session, bool)
}

type Remote interface {
	ListEntries(ctx context.Context, ownerID string, limit int) ([]models.Entry, error)
}

// Random is the subset of *rand.Rand used for gaps, emotions and sizes.
type Random interface {
	Float64() float64
	IntN(n int) int
}

type Service struct {
	sessions Sessions
	remote   Remote
	clock    clockwork.Clock
	rnd      Random
	log      logging.Logger
}

type Option func(*Service)

func WithClock(c clockwork.Clock) Option { return func(s *Service) { s.clock = c } }
func WithRandom(r Random) Option         { return func(s *Service) { s.rnd = r } }
func WithLogger(l logging.Logger) Option { return func(s *Service) { s.log = l } }

func NewService(sessions Sessions, remote Remote, opts ...Option) *Service {
	s := &Service{
		sessions: sessions,
		remote:   remote,
		clock:    clockwork.NewRealClock(),
		rnd:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		log:      logging.Nop{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load never fails: without a session or when the server cannot be reached
// it returns placeholder items instead.
func (s *Service) Load(ctx context.Context) ([]Item, Source) {
	sess, ok := s.sessions.Current()
	if !ok {
		return s.placeholder(), SourcePlaceholder
	}

	entries, err := s.remote.ListEntries(ctx, sess.UserID, common.DefaultHistoryLimit)
	if err != nil {
		s.log.Error(ctx, "loading history failed", "error", err)
		return s.placeholder(), SourcePlaceholder
	}

	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{
			ID:        e.ID,
			Day:       e.CreatedAt,
			Emotion:   e.Emotion.OrNeutral(),
			Content:   e.Content,
			Intensity: 0.7 + s.rnd.Float64()*0.3,
		})
	}
	return items, SourceRemote
}

var placeholderEmotions = []models.Emotion{
	models.EmotionSadness,
	models.EmotionAnxiety,
	models.EmotionCalm,
	models.EmotionJoy,
	models.EmotionNeutral,
}

// placeholder builds up to PlaceholderDays items, oldest first, with about
// one day in five left empty.
func (s *Service) placeholder() []Item {
	today := s.clock.Now()
	items := make([]Item, 0, PlaceholderDays)

	for i := PlaceholderDays - 1; i >= 0; i-- {
		if s.rnd.Float64() > 0.8 {
			continue
		}
		items = append(items, Item{
			ID:        fmt.Sprintf("entry-%d", i),
			Day:       today.AddDate(0, 0, -i),
			Emotion:   placeholderEmotions[s.rnd.IntN(len(placeholderEmotions))],
			Content:   PlaceholderContent,
			Intensity: 0.6 + s.rnd.Float64()*0.4,
		})
	}
	return items
}

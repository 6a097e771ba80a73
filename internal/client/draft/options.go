package draft

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrijs2005/refugio/internal/logging"
)

const (
	DefaultAutosaveInterval       = 5 * time.Second
	DefaultIdleTimeout            = 2 * time.Second
	DefaultAckDuration            = 4 * time.Second
	DefaultPromptRotationInterval = 15 * time.Second
	DefaultDispatchTimeout        = 30 * time.Second
)

type options struct {
	clock           clockwork.Clock
	log             logging.Logger
	autosave        time.Duration
	idle            time.Duration
	ack             time.Duration
	promptRotation  time.Duration
	dispatchTimeout time.Duration
	prompts         []string
}

type Option func(*options)

func WithClock(c clockwork.Clock) Option {
	return func(o *options) { o.clock = c }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithAutosaveInterval sets the persistence period. Non-positive values
// keep the default.
func WithAutosaveInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.autosave = d
		}
	}
}

func WithIdleTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.idle = d
		}
	}
}

func WithAckDuration(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.ack = d
		}
	}
}

// WithPromptRotationInterval sets the prompt ticker period. Non-positive
// values keep the default.
func WithPromptRotationInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.promptRotation = d
		}
	}
}

// WithDispatchTimeout bounds a single background insert.
func WithDispatchTimeout(d time.Duration) Option {
	return func(o *options) { o.dispatchTimeout = d }
}

func WithPrompts(p []string) Option {
	return func(o *options) {
		if len(p) > 0 {
			o.prompts = p
		}
	}
}

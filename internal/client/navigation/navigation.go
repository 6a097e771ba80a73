// Package navigation decides which top-level view the client shows and when
// the sign-in prompt is open.
package navigation

import (
	"sync"

	"github.com/dmitrijs2005/refugio/internal/client/models"
)

// Sessions is the part of the session provider navigation depends on.
type Sessions interface {
	Current() (models.Session, bool)
	Subscribe(fn func(models.Session, bool)) func()
}

// State is what the screen renders.
type State struct {
	View     models.View
	AuthOpen bool
}

type Controller struct {
	sessions Sessions

	mu       sync.Mutex
	view     models.View
	authOpen bool

	unsubscribe func()
	onChange    func(State)
}

// NewController starts on the landing view and follows sign-in and sign-out
// of sessions until Close.
func NewController(sessions Sessions) *Controller {
	c := &Controller{sessions: sessions, view: models.ViewLanding}
	c.unsubscribe = sessions.Subscribe(func(_ models.Session, ok bool) {
		if ok {
			c.OnSessionEstablished()
		} else {
			c.OnSessionEnded()
		}
	})
	return c
}

func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

// OnChange sets a callback invoked after every state change.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{View: c.view, AuthOpen: c.authOpen}
}

// RequestNavigation shows v if it is public or someone is signed in.
// Otherwise the sign-in prompt opens and the request is dropped; after
// signing in the user lands on the editor, not on v.
func (c *Controller) RequestNavigation(v models.View) {
	_, ok := c.sessions.Current()

	c.update(func() {
		if v.Public() || ok {
			c.view = v
			return
		}
		c.authOpen = true
	})
}

// OnSessionEstablished closes the prompt and leaves the landing view for
// the editor.
func (c *Controller) OnSessionEstablished() {
	c.update(func() {
		c.authOpen = false
		if c.view == models.ViewLanding {
			c.view = models.ViewEditor
		}
	})
}

// DismissAuth closes the prompt without signing in.
func (c *Controller) DismissAuth() {
	c.update(func() { c.authOpen = false })
}

// OnSessionEnded returns to the landing view.
func (c *Controller) OnSessionEnded() {
	c.update(func() {
		c.view = models.ViewLanding
	})
}

func (c *Controller) update(fn func()) {
	c.mu.Lock()
	before := State{View: c.view, AuthOpen: c.authOpen}
	fn()
	after := State{View: c.view, AuthOpen: c.authOpen}
	cb := c.onChange
	c.mu.Unlock()

	if cb != nil && before != after {
		cb(after)
	}
}

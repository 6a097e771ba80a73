package draft

import (
	"context"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrijs2005/refugio/internal/client/models"
	"github.com/dmitrijs2005/refugio/internal/common"
	"github.com/dmitrijs2005/refugio/internal/logging"
)

// Store is the local draft storage, see repositories/drafts.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Sessions reports who is signed in at the moment of a release.
type Sessions interface {
	Current() (models.Session, bool)
}

// Remote receives released entries.
type Remote interface {
	InsertEntry(ctx context.Context, e models.NewEntry) error
}

type Controller struct {
	store    Store
	sessions Sessions
	remote   Remote
	opts     options

	// storeMu orders store writes so an autosave never resurrects a
	// draft that Submit already removed.
	storeMu sync.Mutex

	mu         sync.Mutex
	phase      Phase
	text       string
	emotion    models.Emotion
	focused    bool
	ackVisible bool
	prompt     int

	idleTimer clockwork.Timer
	idleGen   uint64
	ackTimer  clockwork.Timer
	ackGen    uint64

	started bool
	closed  bool
	done    chan struct{}
	loops   sync.WaitGroup

	dispatches sync.WaitGroup

	subMu  sync.Mutex
	nextID int
	subs   map[int]Listener
}

func NewController(store Store, sessions Sessions, remote Remote, opts ...Option) *Controller {
	o := options{
		clock:           clockwork.NewRealClock(),
		log:             logging.Nop{},
		autosave:        DefaultAutosaveInterval,
		idle:            DefaultIdleTimeout,
		ack:             DefaultAckDuration,
		promptRotation:  DefaultPromptRotationInterval,
		dispatchTimeout: DefaultDispatchTimeout,
		prompts:         Prompts,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = o.log.With("component", "draft")

	return &Controller{
		store:    store,
		sessions: sessions,
		remote:   remote,
		opts:     o,
		done:     make(chan struct{}),
		subs:     make(map[int]Listener),
	}
}

// Subscribe registers fn and returns a func that removes it.
func (c *Controller) Subscribe(fn Listener) func() {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Controller) emit(events ...Event) {
	if len(events) == 0 {
		return
	}

	c.subMu.Lock()
	subs := make([]Listener, 0, len(c.subs))
	for i := 0; i < c.nextID; i++ {
		if fn, ok := c.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	c.subMu.Unlock()
	if len(subs) == 0 {
		return
	}

	snap := c.Snapshot()
	for _, e := range events {
		for _, fn := range subs {
			fn(e, snap)
		}
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:      c.phase,
		Text:       c.text,
		Emotion:    c.emotion,
		Focused:    c.focused,
		AckVisible: c.ackVisible,
		Prompt:     c.opts.prompts[c.prompt],
	}
}

// Restore loads a previously saved draft. It does nothing if the user has
// already started typing.
func (c *Controller) Restore(ctx context.Context) {
	text, ok, err := c.store.Get(ctx, common.DraftKey)
	if err != nil {
		c.opts.log.Warn(ctx, "draft restore failed", "error", err)
		return
	}
	if !ok || text == "" {
		return
	}

	c.mu.Lock()
	if c.phase != PhaseEmpty {
		c.mu.Unlock()
		return
	}
	c.text = text
	c.phase = PhaseEditing
	c.mu.Unlock()

	c.opts.log.Debug(ctx, "draft restored", "length", len(text))
	c.emit(EventRestored)
}

// OnTextChange replaces the draft text and keeps focus mode alive for
// another idle period.
func (c *Controller) OnTextChange(text string) {
	var events []Event

	c.mu.Lock()
	c.text = text
	if c.phase == PhaseEmpty {
		c.phase = PhaseEditing
	}
	if !c.closed {
		if !c.focused {
			c.focused = true
			events = append(events, EventFocusEntered)
		}
		c.armIdleLocked()
	}
	c.mu.Unlock()

	c.emit(events...)
}

func (c *Controller) armIdleLocked() {
	if c.idleTimer != nil {
		c.idleTimer.Stop()
	}
	c.idleGen++
	gen := c.idleGen
	c.idleTimer = c.opts.clock.AfterFunc(c.opts.idle, func() { c.onIdle(gen) })
}

func (c *Controller) onIdle(gen uint64) {
	c.mu.Lock()
	if gen != c.idleGen || !c.focused {
		c.mu.Unlock()
		return
	}
	c.focused = false
	c.idleTimer = nil
	c.mu.Unlock()

	c.emit(EventFocusExited)
}

func (c *Controller) SelectEmotion(tag models.Emotion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emotion = tag
}

func (c *Controller) ClearEmotion() {
	c.SelectEmotion("")
}

// PersistTick saves the current text verbatim. Empty text is not written.
func (c *Controller) PersistTick(ctx context.Context) {
	c.storeMu.Lock()
	defer c.storeMu.Unlock()

	c.mu.Lock()
	text := c.text
	c.mu.Unlock()

	if text == "" {
		return
	}
	if err := c.store.Set(ctx, common.DraftKey, text); err != nil {
		c.opts.log.Warn(ctx, "draft autosave failed", "error", err)
	}
}

// Submit releases the draft. Whitespace-only text is ignored. With a
// session the trimmed text is sent to the server in the background; the
// outcome is only logged. The local draft is cleared either way.
func (c *Controller) Submit(ctx context.Context) {
	c.storeMu.Lock()
	defer c.storeMu.Unlock()

	c.mu.Lock()
	content := strings.TrimSpace(c.text)
	if content == "" {
		c.mu.Unlock()
		return
	}
	emotion := c.emotion.OrNeutral()
	c.phase = PhaseSubmitting
	c.mu.Unlock()

	c.emit(EventSubmitted)

	if s, ok := c.sessions.Current(); ok {
		c.dispatch(ctx, models.NewEntry{OwnerID: s.UserID, Content: content, Emotion: emotion})
	} else {
		c.opts.log.Debug(ctx, "no session, entry kept off the server")
	}

	c.mu.Lock()
	c.text = ""
	c.emotion = ""
	c.phase = PhaseEmpty
	c.ackVisible = true
	if !c.closed {
		c.armAckLocked()
	}
	c.mu.Unlock()

	if err := c.store.Remove(ctx, common.DraftKey); err != nil {
		c.opts.log.Warn(ctx, "draft removal failed", "error", err)
	}

	c.emit(EventCleared, EventAckShown)
}

// dispatch sends e in the background unless the controller is closed.
func (c *Controller) dispatch(ctx context.Context, e models.NewEntry) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.opts.log.Warn(ctx, "controller closed, entry kept off the server")
		return
	}
	c.dispatches.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.dispatches.Done()

		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.dispatchTimeout)
		defer cancel()

		if err := c.remote.InsertEntry(dctx, e); err != nil {
			c.opts.log.Error(dctx, "entry sync failed", "error", err, "emotion", string(e.Emotion))
			return
		}
		c.opts.log.Info(dctx, "entry synced", "emotion", string(e.Emotion))
	}()
}

func (c *Controller) armAckLocked() {
	if c.ackTimer != nil {
		c.ackTimer.Stop()
	}
	c.ackGen++
	gen := c.ackGen
	c.ackTimer = c.opts.clock.AfterFunc(c.opts.ack, func() { c.onAckElapsed(gen) })
}

func (c *Controller) onAckElapsed(gen uint64) {
	c.mu.Lock()
	if gen != c.ackGen || !c.ackVisible {
		c.mu.Unlock()
		return
	}
	c.ackVisible = false
	c.ackTimer = nil
	c.mu.Unlock()

	c.emit(EventAckHidden)
}

func (c *Controller) rotatePrompt() {
	c.mu.Lock()
	c.prompt = (c.prompt + 1) % len(c.opts.prompts)
	c.mu.Unlock()

	c.emit(EventPromptRotated)
}

// Start arms the autosave and prompt rotation tickers. They run until ctx
// is done or Close is called. Calling Start again has no effect.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started || c.closed {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	autosave := c.opts.clock.NewTicker(c.opts.autosave)
	rotation := c.opts.clock.NewTicker(c.opts.promptRotation)

	c.loops.Add(2)
	go c.loop(ctx, autosave, func() { c.PersistTick(ctx) })
	go c.loop(ctx, rotation, c.rotatePrompt)
}

func (c *Controller) loop(ctx context.Context, t clockwork.Ticker, fn func()) {
	defer c.loops.Done()
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case <-t.Chan():
			fn()
		}
	}
}

// Close stops every timer and waits for background sends to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.done)
	if c.idleTimer != nil {
		c.idleTimer.Stop()
		c.idleTimer = nil
	}
	c.idleGen++
	c.focused = false
	if c.ackTimer != nil {
		c.ackTimer.Stop()
		c.ackTimer = nil
	}
	c.ackGen++
	c.mu.Unlock()

	c.loops.Wait()
	c.dispatches.Wait()
}

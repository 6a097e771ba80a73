package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/refugio/internal/client/draft"
	"github.com/dmitrijs2005/refugio/internal/client/history"
	"github.com/dmitrijs2005/refugio/internal/client/models"
	"github.com/dmitrijs2005/refugio/internal/client/navigation"
	"github.com/dmitrijs2005/refugio/internal/logging"
)

var errBadCredentials = errors.New("invalid email or password")

type fakeSessions struct {
	current  models.Session
	password string
	subs     []func(models.Session, bool)

	restored   bool
	signOutErr error
}

func (f *fakeSessions) Current() (models.Session, bool) { return f.current, f.current.Valid() }

func (f *fakeSessions) Subscribe(fn func(models.Session, bool)) func() {
	f.subs = append(f.subs, fn)
	return func() {}
}

func (f *fakeSessions) set(s models.Session) {
	f.current = s
	for _, fn := range f.subs {
		fn(s, s.Valid())
	}
}

func (f *fakeSessions) SignIn(_ context.Context, email string, password []byte) error {
	if string(password) != f.password {
		return errBadCredentials
	}
	f.set(models.Session{UserID: "u1", Email: email})
	return nil
}

func (f *fakeSessions) SignUp(ctx context.Context, email string, password []byte) error {
	f.password = string(password)
	return f.SignIn(ctx, email, password)
}

func (f *fakeSessions) SignOut(context.Context) error {
	if f.signOutErr != nil {
		return f.signOutErr
	}
	f.set(models.Session{})
	return nil
}

func (f *fakeSessions) Restore(context.Context) { f.restored = true }

type fakeDraft struct {
	snap      draft.Snapshot
	texts     []string
	submitted int
	started   bool
	closed    bool
	restored  bool
}

func (f *fakeDraft) Snapshot() draft.Snapshot         { return f.snap }
func (f *fakeDraft) Subscribe(draft.Listener) func()  { return func() {} }
func (f *fakeDraft) OnTextChange(text string)         { f.texts = append(f.texts, text); f.snap.Text = text }
func (f *fakeDraft) SelectEmotion(tag models.Emotion) { f.snap.Emotion = tag }
func (f *fakeDraft) ClearEmotion()                    { f.snap.Emotion = "" }
func (f *fakeDraft) Submit(context.Context)           { f.submitted++; f.snap.Text = "" }
func (f *fakeDraft) Restore(context.Context)          { f.restored = true }
func (f *fakeDraft) Start(context.Context)            { f.started = true }
func (f *fakeDraft) Close()                           { f.closed = true }

type fakeHistory struct {
	items []history.Item
	src   history.Source
	loads int
}

func (f *fakeHistory) Load(context.Context) ([]history.Item, history.Source) {
	f.loads++
	return f.items, f.src
}

type fakeProfiles struct {
	current models.Profile
	saved   []models.Profile
	saveErr error
}

func (f *fakeProfiles) Current() models.Profile { return f.current }

func (f *fakeProfiles) Save(_ context.Context, p models.Profile) (models.Profile, error) {
	if f.saveErr != nil {
		return models.Profile{}, f.saveErr
	}
	f.saved = append(f.saved, p)
	f.current = p
	return p, nil
}

type testApp struct {
	*App
	sessions *fakeSessions
	draft    *fakeDraft
	history  *fakeHistory
	profiles *fakeProfiles
	nav      *navigation.Controller
	editors  []models.View
	out      *bytes.Buffer
}

// newTestApp builds an App over fakes. Every editor run returns the next
// view from leave, then landing.
func newTestApp(t *testing.T, input string, leave ...models.View) *testApp {
	t.Helper()

	fs := &fakeSessions{}
	nav := navigation.NewController(fs)
	fd := &fakeDraft{snap: draft.Snapshot{Prompt: "¿Qué pesa hoy en tu mente?"}}
	fh := &fakeHistory{src: history.SourcePlaceholder}
	fp := &fakeProfiles{current: models.DefaultProfile()}
	out := &bytes.Buffer{}

	ta := &testApp{sessions: fs, draft: fd, history: fh, profiles: fp, nav: nav, out: out}
	ta.App = &App{
		sessions: fs,
		nav:      nav,
		draft:    fd,
		history:  fh,
		profiles: fp,
		log:      logging.Nop{},
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}
	ta.App.runEditor = func(context.Context) (models.View, error) {
		ta.editors = append(ta.editors, nav.State().View)
		if len(leave) == 0 {
			return models.ViewLanding, nil
		}
		next := leave[0]
		leave = leave[1:]
		return next, nil
	}
	return ta
}

// capturePrint replaces printlnFn for the duration of the test.
func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func contains(lines []string, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

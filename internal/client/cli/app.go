package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/refugio/internal/client/client"
	"github.com/dmitrijs2005/refugio/internal/client/config"
	"github.com/dmitrijs2005/refugio/internal/client/draft"
	"github.com/dmitrijs2005/refugio/internal/client/history"
	"github.com/dmitrijs2005/refugio/internal/client/models"
	"github.com/dmitrijs2005/refugio/internal/client/navigation"
	"github.com/dmitrijs2005/refugio/internal/client/profile"
	"github.com/dmitrijs2005/refugio/internal/client/session"
	"github.com/dmitrijs2005/refugio/internal/client/tui/editor"
	"github.com/dmitrijs2005/refugio/internal/logging"
)

type sessionService interface {
	Current() (models.Session, bool)
	SignIn(ctx context.Context, email string, password []byte) error
	SignUp(ctx context.Context, email string, password []byte) error
	SignOut(ctx context.Context) error
	Restore(ctx context.Context)
}

type navigator interface {
	State() navigation.State
	RequestNavigation(v models.View)
	DismissAuth()
}

type draftController interface {
	editor.Controller
	Restore(ctx context.Context)
	Start(ctx context.Context)
	Close()
}

type profileService interface {
	Current() models.Profile
	Save(ctx context.Context, p models.Profile) (models.Profile, error)
}

type historyLoader interface {
	Load(ctx context.Context) ([]history.Item, history.Source)
}

type App struct {
	config   *config.Config
	sessions sessionService
	nav      navigator
	draft    draftController
	history  historyLoader
	profiles profileService
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// runEditor shows the editor and returns the view the user asked for next.
	runEditor func(ctx context.Context) (models.View, error)

	closers []func()
}

// NewApp opens the local database, connects to the sync server and builds
// the controllers of the client.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	// the provider is created after the client, the listener only runs later
	var sessions *session.Provider
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr,
		client.WithRefreshListener(func(s models.Session) { sessions.OnTokensRotated(s) }))
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	sessions = session.NewProvider(apiClient, repos.Metadata, log)
	nav := navigation.NewController(sessions)
	dc := draft.NewController(repos.Drafts, sessions, apiClient,
		draft.WithLogger(log),
		draft.WithAutosaveInterval(c.AutosaveInterval))
	hs := history.NewService(sessions, apiClient, history.WithLogger(log))
	ps := profile.NewService(sessions, apiClient, profile.WithLogger(log))

	a := &App{
		config:   c,
		sessions: sessions,
		nav:      nav,
		draft:    dc,
		history:  hs,
		profiles: ps,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	a.runEditor = a.defaultEditor
	a.closers = []func(){
		ps.Close,
		nav.Close,
		func() { _ = apiClient.Close() },
		func() { _ = repos.Close() },
	}
	return a, nil
}

// Run restores the previous session and draft, then serves commands until
// the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer func() {
		for _, c := range a.closers {
			c()
		}
	}()

	a.sessions.Restore(ctx)
	a.draft.Restore(ctx)
	a.draft.Start(ctx)
	defer a.draft.Close()

	printlnFn("Refugio. Tu refugio digital sin evaluaciones ni ruido exterior. (escribe 'help')")
	a.render(ctx)

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sessions.Current()
	return ok
}

func (a *App) status() string {
	st := a.nav.State()
	who := "invitado"
	if s, ok := a.sessions.Current(); ok {
		who = s.Email
	}
	if st.AuthOpen {
		return fmt.Sprintf("(%s %s, acceso)", who, st.View)
	}
	return fmt.Sprintf("(%s %s)", who, st.View)
}

func (a *App) defaultEditor(ctx context.Context) (models.View, error) {
	if !isTerminal(int(os.Stdin.Fd())) {
		return a.plainEditor(ctx)
	}
	return editor.Run(ctx, a.draft)
}

// plainEditor reads one entry from a non-interactive stdin and releases it.
func (a *App) plainEditor(ctx context.Context) (models.View, error) {
	text, err := GetMultiline(a.reader, a.draft.Snapshot().Prompt, a.out)
	if err != nil {
		return models.ViewLanding, err
	}
	if text != "" {
		a.draft.OnTextChange(text)
		a.draft.Submit(ctx)
		printlnFn(draft.AckMessage)
	}
	return models.ViewLanding, nil
}

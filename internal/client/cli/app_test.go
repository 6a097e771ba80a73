package cli

import (
	"bufio"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/refugio/internal/client/config"
	"github.com/dmitrijs2005/refugio/internal/client/history"
	"github.com/dmitrijs2005/refugio/internal/client/models"
	"github.com/dmitrijs2005/refugio/internal/client/navigation"
)

func stubCredentials(t *testing.T, email, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
}

func TestApp_RunRestoresAndStops(t *testing.T) {
	lines := capturePrint(t)
	ta := newTestApp(t, "exit\n")
	closed := false
	ta.closers = []func(){func() { closed = true }}

	ta.Run(context.Background())

	assert.True(t, ta.sessions.restored)
	assert.True(t, ta.draft.restored)
	assert.True(t, ta.draft.started)
	assert.True(t, ta.draft.closed)
	assert.True(t, closed)
	assert.True(t, contains(*lines, "'write'"))
}

func TestApp_GuardedViewOpensAuthPrompt(t *testing.T) {
	lines := capturePrint(t)
	ta := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, ta.History(ctx))

	assert.Equal(t, navigation.State{View: models.ViewLanding, AuthOpen: true}, ta.nav.State())
	assert.Zero(t, ta.history.loads)
	assert.True(t, contains(*lines, "'login'"))

	require.NoError(t, ta.Cancel(ctx))
	assert.False(t, ta.nav.State().AuthOpen)
}

func TestApp_LoginLandsOnEditor(t *testing.T) {
	capturePrint(t)
	ta := newTestApp(t, "", models.ViewHistory)
	ta.sessions.password = "secreto"
	stubCredentials(t, "ana@example.com", "secreto")
	ctx := context.Background()

	require.NoError(t, ta.Write(ctx))
	require.True(t, ta.nav.State().AuthOpen)

	require.NoError(t, ta.Login(ctx))

	// the editor opened right after sign-in; leaving it went to the map
	assert.Equal(t, []models.View{models.ViewEditor}, ta.editors)
	assert.Equal(t, 1, ta.history.loads)
	assert.Equal(t, navigation.State{View: models.ViewHistory}, ta.nav.State())
	assert.True(t, ta.isLoggedIn())
}

func TestApp_LoginFailureIsInline(t *testing.T) {
	lines := capturePrint(t)
	ta := newTestApp(t, "")
	ta.sessions.password = "secreto"
	stubCredentials(t, "ana@example.com", "otra")
	ctx := context.Background()

	require.NoError(t, ta.Settings(ctx))
	err := ta.Login(ctx)

	require.ErrorIs(t, err, errBadCredentials)
	assert.True(t, contains(*lines, "Error: invalid email or password"))
	assert.True(t, ta.nav.State().AuthOpen, "prompt stays open")
	assert.Empty(t, ta.editors)
}

func TestApp_RegisterThenLogout(t *testing.T) {
	lines := capturePrint(t)
	ta := newTestApp(t, "")
	stubCredentials(t, "eva@example.com", "secreto")
	ctx := context.Background()

	require.NoError(t, ta.Register(ctx))
	require.Len(t, ta.editors, 1)

	require.NoError(t, ta.Settings(ctx))
	assert.True(t, contains(*lines, "eva@example.com"))

	require.NoError(t, ta.Logout(ctx))
	assert.Equal(t, navigation.State{View: models.ViewLanding}, ta.nav.State())
	assert.False(t, ta.isLoggedIn())
	assert.True(t, contains(*lines, "Sesión cerrada."))
}

func TestApp_EditorReturningEditorStops(t *testing.T) {
	capturePrint(t)
	ta := newTestApp(t, "", models.ViewEditor)
	ta.sessions.current = models.Session{UserID: "u1", Email: "ana@example.com"}

	require.NoError(t, ta.Write(context.Background()))

	assert.Len(t, ta.editors, 1)
	assert.Equal(t, models.ViewLanding, ta.nav.State().View)
}

func TestApp_HistoryListing(t *testing.T) {
	lines := capturePrint(t)
	ta := newTestApp(t, "")
	ta.sessions.current = models.Session{UserID: "u1", Email: "ana@example.com"}
	ta.history.src = history.SourceRemote
	ta.history.items = []history.Item{
		{ID: "e1", Day: time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local), Emotion: models.EmotionCalm, Content: "Hoy\nrespiré", Intensity: 0.95},
	}

	require.NoError(t, ta.History(context.Background()))

	assert.True(t, contains(*lines, "miércoles, 1 de mayo"))
	assert.True(t, contains(*lines, "Hoy respiré"))
	assert.False(t, contains(*lines, "(ejemplo"))
}

func TestApp_SettingsShowsConfig(t *testing.T) {
	lines := capturePrint(t)
	ta := newTestApp(t, "")
	ta.sessions.current = models.Session{UserID: "u1", Email: "ana@example.com"}
	ta.config = &config.Config{ServerEndpointAddr: "srv:1", DatabasePath: "r.db", LogFile: "r.log", AutosaveInterval: 5 * time.Second}

	ta.showSettings()

	assert.True(t, contains(*lines, "srv:1"))
	assert.True(t, contains(*lines, "5s"))
}

func TestApp_PlainEditorSubmits(t *testing.T) {
	lines := capturePrint(t)
	ta := newTestApp(t, "primera línea\nsegunda\n\n")

	next, err := ta.plainEditor(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.ViewLanding, next)
	assert.Equal(t, []string{"primera línea\nsegunda"}, ta.draft.texts)
	assert.Equal(t, 1, ta.draft.submitted)
	assert.True(t, contains(*lines, "Guardado con éxito"))
}

func TestApp_PlainEditorEmptyInput(t *testing.T) {
	capturePrint(t)
	ta := newTestApp(t, "\n")

	_, err := ta.plainEditor(context.Background())

	require.NoError(t, err)
	assert.Zero(t, ta.draft.submitted)
}

func TestFormatItem_Truncates(t *testing.T) {
	long := ""
	for i := 0; i < 10; i++ {
		long += "palabra "
	}
	got := formatItem(history.Item{Emotion: models.EmotionJoy, Content: long, Intensity: 0.6, Day: time.Now()})
	assert.Contains(t, got, "…")
	assert.Contains(t, got, "joy")
}

func TestNodeSize(t *testing.T) {
	assert.Equal(t, 1, nodeSize(0.6))
	assert.Equal(t, 2, nodeSize(0.8))
	assert.Equal(t, 3, nodeSize(0.95))
}

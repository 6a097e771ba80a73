package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/refugio/internal/client/history"
	"github.com/dmitrijs2005/refugio/internal/client/models"
)

func (a *App) Home(ctx context.Context) error     { return a.navigate(ctx, models.ViewLanding) }
func (a *App) Write(ctx context.Context) error    { return a.navigate(ctx, models.ViewEditor) }
func (a *App) History(ctx context.Context) error  { return a.navigate(ctx, models.ViewHistory) }
func (a *App) Settings(ctx context.Context) error { return a.navigate(ctx, models.ViewSettings) }

func (a *App) navigate(ctx context.Context, v models.View) error {
	a.nav.RequestNavigation(v)
	a.render(ctx)
	return nil
}

// render shows the current view. Leaving the editor may request another
// view, which is rendered in turn.
func (a *App) render(ctx context.Context) {
	for {
		st := a.nav.State()
		if st.AuthOpen {
			printlnFn("Necesitas una cuenta para entrar: 'login', 'register' o 'cancel'.")
			return
		}

		switch st.View {
		case models.ViewLanding:
			printlnFn("Escribe 'write' para entrar al refugio.")
			return

		case models.ViewHistory:
			a.showHistory(ctx)
			return

		case models.ViewSettings:
			a.showSettings()
			return

		case models.ViewEditor:
			next, err := a.runEditor(ctx)
			if err != nil {
				a.log.Error(ctx, "editor failed", "error", err)
				printlnFn("Error:", err.Error())
			}
			if next == models.ViewEditor {
				next = models.ViewLanding
			}
			a.nav.RequestNavigation(next)

		default:
			return
		}
	}
}

func (a *App) showHistory(ctx context.Context) {
	items, src := a.history.Load(ctx)

	printlnFn("Mapa emocional")
	if src == history.SourcePlaceholder {
		printlnFn("(ejemplo: aún no hay entradas guardadas en la nube)")
	}
	if len(items) == 0 {
		printlnFn("Todavía no has soltado ningún pensamiento.")
		return
	}
	for _, it := range items {
		printlnFn(formatItem(it))
	}
}

const previewLen = 60

func formatItem(it history.Item) string {
	anchor := models.AnchorFor(it.Emotion)
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(anchor.Color)).Render(strings.Repeat("●", nodeSize(it.Intensity)))

	content := strings.Join(strings.Fields(it.Content), " ")
	if r := []rune(content); len(r) > previewLen {
		content = string(r[:previewLen]) + "…"
	}
	return fmt.Sprintf("%-3s %-28s %-10s %s", dot, history.FormatDay(it.Day), it.Emotion, content)
}

// nodeSize maps an intensity in [0.6, 1) to 1..3 dots.
func nodeSize(intensity float64) int {
	switch {
	case intensity >= 0.9:
		return 3
	case intensity >= 0.75:
		return 2
	default:
		return 1
	}
}

func (a *App) showSettings() {
	printlnFn("Configuración")
	if s, ok := a.sessions.Current(); ok {
		p := a.profiles.Current()
		printlnFn("  Cuenta:      ", s.Email)
		printlnFn("  Nombre:      ", orDash(p.Name))
		printlnFn("  Pronombres:  ", orDash(p.Pronouns))
		printlnFn("  Color:       ", orDash(p.Color))
		printlnFn("  Emociones:   ", orDash(strings.Join(p.Emotions, ", ")))
		printlnFn("  Recordatorio:", p.Reminder)
	}
	if a.config != nil {
		printlnFn("  Servidor:    ", a.config.ServerEndpointAddr)
		printlnFn("  Base local:  ", a.config.DatabasePath)
		printlnFn("  Registro:    ", a.config.LogFile)
		printlnFn("  Autoguardado cada", a.config.AutosaveInterval)
	}
	printlnFn("Escribe 'profile' para editar tu perfil o 'logout' para cerrar la sesión.")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

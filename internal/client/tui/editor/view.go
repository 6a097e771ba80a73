package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/refugio/internal/client/draft"
	"github.com/dmitrijs2005/refugio/internal/client/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2E4036"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9A9A9A"))
	dimStyle    = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CFCFCF"))
	toastStyle  = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("#2E4036")).Foreground(lipgloss.Color("#FAF8F5"))
	buttonStyle = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#CC5833"))
)

func anchorStyle(a models.Anchor, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color(a.Color)).Foreground(lipgloss.Color("#1A1A1A"))
	if selected {
		return s.Bold(true).Underline(true)
	}
	return s.Faint(true)
}

// palette renders the emotion selector. In focus mode it is dimmed so only
// the text stays in view.
func palette(snap draft.Snapshot) string {
	parts := make([]string, 0, len(models.Anchors))
	for i, a := range models.Anchors {
		label := string(rune('1'+i)) + " " + a.Icon + " " + a.Label
		if snap.Focused {
			parts = append(parts, dimStyle.Render(label))
			continue
		}
		parts = append(parts, anchorStyle(a, snap.Emotion == a.Tag).Render(label))
	}
	return strings.Join(parts, "  ")
}

func (m Model) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder

	header := titleStyle.Render("Paso 1: Identifica tu emoción")
	help := mutedStyle.Render("alt+1..4 emoción · alt+0 quitar · F2 mapa · F3 configuración · esc salir")
	if m.snap.Focused {
		header = dimStyle.Render("Paso 1: Identifica tu emoción")
		help = dimStyle.Render("alt+1..4 emoción · alt+0 quitar · F2 mapa · F3 configuración · esc salir")
	}

	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(palette(m.snap))
	b.WriteString("\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")

	if m.canRelease() {
		b.WriteString(buttonStyle.Render("ctrl+s  " + draft.ReleaseLabel))
		b.WriteString("\n")
	}
	if m.snap.AckVisible {
		b.WriteString(toastStyle.Render(draft.AckMessage))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(help)

	return lipgloss.NewStyle().Width(m.width).Padding(1, 2).Render(b.String())
}

// Package editor is the full-screen writing view of the client, a bubbletea
// program on top of draft.Controller.
package editor

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/refugio/internal/client/draft"
	"github.com/dmitrijs2005/refugio/internal/client/models"
)

// Controller is what the editor needs from draft.Controller.
type Controller interface {
	Snapshot() draft.Snapshot
	Subscribe(fn draft.Listener) func()
	OnTextChange(text string)
	SelectEmotion(tag models.Emotion)
	ClearEmotion()
	Submit(ctx context.Context)
}

type eventMsg struct {
	event draft.Event
	snap  draft.Snapshot
}

const maxWidth = 80

type Model struct {
	ctx  context.Context
	ctrl Controller

	textarea textarea.Model
	snap     draft.Snapshot
	events   chan eventMsg
	done     chan struct{}
	unsub    func()

	width int
	next  models.View
	quit  bool
}

// New builds the model and subscribes it to ctrl. Call Close when done.
func New(ctx context.Context, ctrl Controller) Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetWidth(maxWidth - 4)
	ta.SetHeight(10)
	ta.Focus()

	snap := ctrl.Snapshot()
	ta.Placeholder = snap.Prompt
	ta.SetValue(snap.Text)

	events := make(chan eventMsg, 32)
	unsub := ctrl.Subscribe(func(e draft.Event, s draft.Snapshot) {
		select {
		case events <- eventMsg{event: e, snap: s}:
		default:
			// renderer is behind; the next event carries a fresh snapshot
		}
	})

	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		textarea: ta,
		snap:     snap,
		events:   events,
		done:     make(chan struct{}),
		unsub:    unsub,
		width:    maxWidth,
		next:     models.ViewLanding,
	}
}

// Close detaches the model from the controller. Call it once.
func (m Model) Close() {
	if m.unsub != nil {
		m.unsub()
	}
	close(m.done)
}

// Next is the view the user asked for when leaving the editor.
func (m Model) Next() models.View {
	return m.next
}

func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-m.events:
			return e
		case <-m.done:
			return nil
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.waitForEvent())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.snap = msg.snap
		// ctrl+s already emptied the textarea; a queued Cleared event must
		// not wipe what was typed since.
		if msg.event == draft.EventPromptRotated {
			m.textarea.Placeholder = msg.snap.Prompt
		}
		return m, m.waitForEvent()

	case tea.WindowSizeMsg:
		m.width = min(msg.Width, maxWidth)
		m.textarea.SetWidth(max(m.width-4, 20))
		m.textarea.SetHeight(max(msg.Height-12, 5))
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	before := m.textarea.Value()
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if after := m.textarea.Value(); after != before {
		m.ctrl.OnTextChange(after)
		m.snap = m.ctrl.Snapshot()
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch key := msg.String(); key {
	case "ctrl+c", "esc":
		return m.leave(models.ViewLanding), true
	case "f2":
		return m.leave(models.ViewHistory), true
	case "f3":
		return m.leave(models.ViewSettings), true
	case "ctrl+s":
		m.ctrl.Submit(m.ctx)
		m.textarea.Reset()
		m.snap = m.ctrl.Snapshot()
		return nil, true
	case "alt+0":
		m.ctrl.ClearEmotion()
		m.snap = m.ctrl.Snapshot()
		return nil, true
	case "alt+1", "alt+2", "alt+3", "alt+4":
		idx := int(key[len(key)-1] - '1')
		m.ctrl.SelectEmotion(models.Anchors[idx].Tag)
		m.snap = m.ctrl.Snapshot()
		return nil, true
	}
	return nil, false
}

func (m *Model) leave(next models.View) tea.Cmd {
	m.next = next
	m.quit = true
	return tea.Quit
}

func (m Model) canRelease() bool {
	return strings.TrimSpace(m.snap.Text) != ""
}

// Run shows the editor until the user leaves it and returns the view they
// asked for.
func Run(ctx context.Context, ctrl Controller, opts ...tea.ProgramOption) (models.View, error) {
	m := New(ctx, ctrl)
	defer m.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return models.ViewLanding, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Next(), nil
	}
	return models.ViewLanding, nil
}

package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tally/internal/cli/formatter"
	"tally/internal/domain"
	"tally/internal/engine"
)

type tickMsg time.Time

type pollMsg time.Time

// engineEventMsg asks the model to drain the notifier after an engine call.
type engineEventMsg struct{}

// actionDoneMsg carries the outcome of a pause/resume/cancel request.
type actionDoneMsg struct {
	err error
}

// pollInterval is how often the timer reconciles with the server while a
// 1s tick drives the countdown in between.
const pollInterval = 5 * time.Second

// terminalNotifier buffers engine events so the bubbletea update loop can
// consume them on its own schedule.
type terminalNotifier struct {
	mu        sync.Mutex
	completed *domain.FocusSession
	stale     bool
}

func (n *terminalNotifier) SessionCompleted(s *domain.FocusSession) {
	n.mu.Lock()
	n.completed = s
	n.mu.Unlock()
}

func (n *terminalNotifier) HistoryStale() {
	n.mu.Lock()
	n.stale = true
	n.mu.Unlock()
}

func (n *terminalNotifier) drain() (*domain.FocusSession, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	completed, stale := n.completed, n.stale
	n.completed, n.stale = nil, false
	return completed, stale
}

type timerKeyMap struct {
	Pause  key.Binding
	Resume key.Binding
	Cancel key.Binding
	Detach key.Binding
}

var timerKeys = timerKeyMap{
	Pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	Resume: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "resume"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cancel"),
	),
	Detach: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "detach"),
	),
}

// timerModel renders the live countdown for the session the engine tracks.
// Detaching leaves the session running server-side; a later `tally focus
// start` or `tally focus status` picks it up again.
type timerModel struct {
	engine   *engine.Engine
	notifier *terminalNotifier
	progress progress.Model

	width     int
	height    int
	detached  bool
	canceled  bool
	completed *domain.FocusSession
	actionErr error
}

func newTimerModel(eng *engine.Engine, notifier *terminalNotifier) timerModel {
	prog := progress.New(progress.WithScaledGradient("#8ec07c", "#fabd2f"))
	prog.Width = 60

	return timerModel{
		engine:   eng,
		notifier: notifier,
		progress: prog,
	}
}

func (m timerModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), pollCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 20; w > 0 && w < 80 {
			m.progress.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		eng := m.engine
		return m, tea.Batch(tickCmd(), func() tea.Msg {
			eng.Tick(context.Background())
			return engineEventMsg{}
		})

	case pollMsg:
		// Reconcile only while running; a paused session settles on the
		// next user action instead.
		session := m.engine.Session()
		if session == nil || session.Status != domain.SessionRunning {
			return m, pollCmd()
		}
		eng := m.engine
		return m, tea.Batch(pollCmd(), func() tea.Msg {
			eng.Poll(context.Background())
			return engineEventMsg{}
		})

	case engineEventMsg:
		if completed, _ := m.notifier.drain(); completed != nil {
			m.completed = completed
			return m, tea.Sequence(tea.Printf("\a"), tea.Quit)
		}
		if m.engine.Session() == nil && m.completed == nil && !m.canceled {
			// Session settled or vanished elsewhere.
			m.detached = true
			return m, tea.Quit
		}
		return m, nil

	case actionDoneMsg:
		m.actionErr = msg.err
		if m.canceled && msg.err == nil {
			return m, tea.Quit
		}
		if msg.err != nil {
			m.canceled = false
		}
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m timerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.engine.Session()

	switch {
	case key.Matches(msg, timerKeys.Pause):
		if session == nil || session.Status != domain.SessionRunning {
			return m, nil
		}
		eng := m.engine
		return m, func() tea.Msg {
			_, err := eng.Pause(context.Background())
			return actionDoneMsg{err: err}
		}

	case key.Matches(msg, timerKeys.Resume):
		if session == nil || session.Status != domain.SessionPaused {
			return m, nil
		}
		eng := m.engine
		return m, func() tea.Msg {
			_, err := eng.Resume(context.Background())
			return actionDoneMsg{err: err}
		}

	case key.Matches(msg, timerKeys.Cancel):
		if session == nil {
			return m, nil
		}
		m.canceled = true
		eng := m.engine
		return m, func() tea.Msg {
			_, err := eng.Cancel(context.Background())
			return actionDoneMsg{err: err}
		}

	case key.Matches(msg, timerKeys.Detach):
		m.detached = true
		return m, tea.Quit
	}

	return m, nil
}

func (m timerModel) View() string {
	if m.completed != nil {
		return m.completionView()
	}
	if m.canceled {
		return formatter.StyleRed.Render("Session canceled.") + "\n"
	}

	session := m.engine.Session()
	if session == nil {
		return formatter.StyleDim.Render("No active session.") + "\n"
	}

	remaining := m.engine.Remaining()
	percent := 1 - float64(remaining)/float64(session.DurationSeconds)
	if percent < 0 {
		percent = 0
	}

	timerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ebdbb2")).
		Padding(0, 2)

	status := "Focus. Stay with it."
	if session.Status == domain.SessionPaused {
		status = "PAUSED - press 'r' to resume"
	}
	if m.actionErr != nil {
		status = m.actionErr.Error()
	}

	lines := []string{
		timerStyle.Render(formatter.Clock(remaining)),
		m.progress.ViewAs(percent),
		formatter.StatusStyle(session.Status).Render(status),
		formatter.StyleDim.Render("p: pause • r: resume • c: cancel • q: detach"),
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width == 0 {
		return content + "\n"
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Padding(1).
		Render(content)
}

func (m timerModel) completionView() string {
	minutes := m.completed.FocusLogValue()
	lines := []string{
		formatter.StyleGreen.Render("Session complete!"),
		formatter.StyleFg.Render(fmt.Sprintf("%s of focus in the books.", formatter.Minutes(minutes))),
	}
	if m.completed.GoalID != nil {
		lines = append(lines, formatter.StyleDim.Render(
			fmt.Sprintf("Logged %d toward goal #%d.", minutes, *m.completed.GoalID)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

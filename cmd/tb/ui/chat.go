package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/johns/thoughtbuddy/internal/catalog"
	"github.com/johns/thoughtbuddy/internal/dialogue"
	"github.com/johns/thoughtbuddy/internal/journey"
	"github.com/johns/thoughtbuddy/internal/settings"
)

// typingDelay paces bot replies so they feel typed rather than dumped.
// Purely presentation: replies are computed before the timer starts and
// delivered in FIFO order.
const typingDelay = 900 * time.Millisecond

// chipDelay paces the trailing "here are some options" message.
const chipDelay = 500 * time.Millisecond

type phase int

const (
	phaseChat phase = iota
	phasePlan
	phaseDone
)

// Messages for tea updates.
type (
	// botTickMsg delivers the next queued bot message.
	botTickMsg struct{}
	// CatalogReloadedMsg arrives from the fsnotify watcher when the
	// external content file changed and validated.
	CatalogReloadedMsg struct{ Catalog *catalog.Catalog }
)

// Model is the bubbletea model for one guided chat.
type Model struct {
	engine   *dialogue.Engine
	session  *dialogue.Session
	journeys *journey.Store
	prefs    settings.Settings
	log      *zap.Logger

	textinput textinput.Model
	viewport  viewport.Model
	styles    Styles

	// queue holds computed bot messages not yet shown; the visible
	// transcript is session.Messages minus the queue tail.
	queue       []dialogue.Message
	suggestions []string
	phase       phase
	notice      string
	saved       bool

	width  int
	height int
	ready  bool
}

// NewModel builds the chat model for an already-seeded session.
func NewModel(engine *dialogue.Engine, session *dialogue.Session, journeys *journey.Store, prefs settings.Settings, log *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your response... (Enter to send, Esc to leave)"
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 500

	vp := viewport.New(80, 20)

	return Model{
		engine:    engine,
		session:   session,
		journeys:  journeys,
		prefs:     prefs,
		log:       log,
		textinput: ti,
		viewport:  vp,
		styles:    DefaultStyles(prefs.Theme),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 7
		m.textinput.Width = msg.Width - 4
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			// A pending reply dies with the UI; nothing is persisted
			// unless a journey was saved.
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}

	case botTickMsg:
		return m.deliverNext()

	case CatalogReloadedMsg:
		m.engine.SwapCatalog(msg.Catalog)
		m.notice = "Content updated!"
		m.refresh()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if len(m.queue) > 0 {
		// A new turn can't start while a reply is being delivered.
		return m, nil
	}
	text := strings.TrimSpace(m.textinput.Value())

	// On the plan prompt an empty Enter means "skip".
	if m.phase == phasePlan {
		m.textinput.SetValue("")
		m.notice = ""
		return m.savePlan(text)
	}

	if text == "" {
		return m, nil
	}

	// A bare number picks the matching suggestion chip.
	if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(m.suggestions) {
		text = m.suggestions[n-1]
	}

	m.textinput.SetValue("")
	m.notice = ""

	replies := m.engine.HandleInput(m.session, text)
	if len(replies) == 0 {
		return m, nil
	}
	m.queue = replies
	m.suggestions = nil
	m.refresh()
	return m, tea.Tick(typingDelay, func(time.Time) tea.Msg { return botTickMsg{} })
}

// deliverNext reveals the next queued bot message.
func (m Model) deliverNext() (tea.Model, tea.Cmd) {
	if len(m.queue) == 0 {
		return m, nil
	}
	delivered := m.queue[0]
	m.queue = m.queue[1:]

	if len(delivered.Suggestions) > 0 {
		m.suggestions = delivered.Suggestions
	}
	m.refresh()

	if len(m.queue) > 0 {
		return m, tea.Tick(chipDelay, func(time.Time) tea.Msg { return botTickMsg{} })
	}

	// Once the walk-through completes, offer to save it as a journey.
	if m.session.Step == dialogue.StepComplete && m.phase == phaseChat && !m.saved {
		m.phase = phasePlan
		m.notice = "Let's remember this! What's your plan for next time? (Enter to skip)"
		m.refresh()
	}
	return m, nil
}

func (m Model) savePlan(plan string) (tea.Model, tea.Cmd) {
	m.phase = phaseDone
	if plan == "" {
		m.notice = "No worries - you can chat more or press Esc to leave."
		m.refresh()
		return m, nil
	}

	j, err := m.journeys.Save(journey.Journey{
		Problem:   m.session.Scenario.Label,
		Thought:   m.session.Thought,
		Feeling:   m.session.Feeling,
		Behavior:  m.session.Behavior,
		Plan:      plan,
		Completed: true,
	})
	if err != nil {
		m.log.Warn("journey save failed", zap.Error(err))
		m.notice = "Couldn't save right now, but your plan still counts!"
	} else {
		m.saved = true
		m.notice = fmt.Sprintf("Journey saved (%s). You can keep chatting or press Esc.", j.ID)
	}
	m.refresh()
	return m, nil
}

// refresh re-renders the transcript into the viewport.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	visible := len(m.session.Messages) - len(m.queue)
	var b strings.Builder
	width := m.viewport.Width - 4
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)

	for _, msg := range m.session.Messages[:visible] {
		if msg.IsBot {
			b.WriteString(m.styles.BotBubble.Render(wrap.Render("🤖 " + msg.Text)))
		} else {
			b.WriteString(m.styles.UserLabel.Render(wrap.Render("You: " + msg.Text)))
		}
		b.WriteString("\n\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var b strings.Builder
	header := fmt.Sprintf("%s  %s", m.session.Scenario.Emoji, m.session.Scenario.Label)
	b.WriteString(m.styles.Header.Render(header))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	switch {
	case len(m.queue) > 0:
		b.WriteString(m.styles.Typing.Render("buddy is typing..."))
	case m.notice != "":
		b.WriteString(m.styles.Notice.Render(m.notice))
	case len(m.suggestions) > 0:
		b.WriteString(m.renderChips())
	}
	b.WriteString("\n")
	b.WriteString(m.textinput.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("Enter: send · 1-9: pick an option · Esc: leave"))
	return b.String()
}

func (m Model) renderChips() string {
	chips := make([]string, 0, len(m.suggestions))
	for i, s := range m.suggestions {
		label := m.styles.ChipIndex.Render(strconv.Itoa(i+1)+" ") + s
		chips = append(chips, m.styles.Chip.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	if lipgloss.Width(row) > m.width {
		// Too wide for one row; fall back to a compact list.
		lines := make([]string, len(m.suggestions))
		for i, s := range m.suggestions {
			lines[i] = fmt.Sprintf("  %d. %s", i+1, s)
		}
		return strings.Join(lines, "\n")
	}
	return row
}

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/typeracer/internal/stats"
	"github.com/vovakirdan/typeracer/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the view list sidebar
	sidebarWidth       = 18  // Width of the view list sidebar
	maxSessions        = 100 // Max sessions to load
)

// historyView selects which sessions are listed.
type historyView int

const (
	viewTop historyView = iota
	viewRecent
)

var historyViews = []struct {
	view  historyView
	title string
}{
	{viewTop, "Top scores"},
	{viewRecent, "Recent"},
}

// HistoryKeyMap defines the key bindings for the session history browser.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.NextView, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "words"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel browses the stored sessions and the words typed in each.
type HistoryModel struct {
	store       *storage.Store
	viewCursor  int
	sessions    []storage.SessionEntry
	trials      []stats.Trial // Non-nil while a session is open
	openID      int64
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	err         error
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a history browser over store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadSessions()
	return m
}

// sessionColumns sizes the session table to the available width.
func (m *HistoryModel) sessionColumns() []table.Column {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Wave", Width: 5},
		{Title: "Words", Width: 6},
		{Title: "WPM", Width: 6},
		{Title: "Acc %", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 13},
	}
	if m.tableWidth() < 70 {
		// Drop player and accuracy on narrow terminals
		columns = append(columns[:5], columns[7])
	}
	return columns
}

func (m *HistoryModel) trialColumns() []table.Column {
	return []table.Column{
		{Title: "No", Width: 4},
		{Title: "Word", Width: 12},
		{Title: "Time (s)", Width: 9},
		{Title: "WPM", Width: 7},
		{Title: "Acc %", Width: 7},
	}
}

func (m *HistoryModel) tableWidth() int {
	w := m.width - 4 // Margins
	if m.showSidebar {
		w -= sidebarWidth + 3
	}
	return w
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := m.sessionColumns()
	if m.trials != nil {
		columns = m.trialColumns()
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions loads the sessions of the current view.
func (m *HistoryModel) loadSessions() {
	m.trials = nil
	m.sessions = nil
	m.err = nil

	if m.store != nil {
		ctx := context.Background()
		var err error
		switch historyViews[m.viewCursor].view {
		case viewTop:
			m.sessions, err = m.store.TopSessions(ctx, maxSessions)
		case viewRecent:
			m.sessions, err = m.store.RecentSessions(ctx, maxSessions)
		}
		m.err = err
	}

	m.table = m.createTable()
	m.updateSessionRows()
}

// openSession loads the trials of the selected session.
func (m *HistoryModel) openSession() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.sessions) {
		return
	}

	id := m.sessions[i].ID
	trials, err := m.store.SessionTrials(context.Background(), id)
	if err != nil {
		m.err = err
		return
	}
	if trials == nil {
		trials = []stats.Trial{}
	}
	m.trials = trials
	m.openID = id
	m.table = m.createTable()
	m.updateTrialRows()
}

func (m *HistoryModel) updateSessionRows() {
	narrow := len(m.sessionColumns()) < 8
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			fmt.Sprintf("%d", s.WordsTyped),
			fmt.Sprintf("%.1f", s.AvgWPM),
		}
		if !narrow {
			row = append(row, fmt.Sprintf("%.1f", s.AvgAccuracy), s.Player)
		}
		rows[i] = append(row, s.CreatedAt.Format("Jan 02 15:04"))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *HistoryModel) updateTrialRows() {
	rows := make([]table.Row, len(m.trials))
	for i, t := range m.trials {
		rows[i] = table.Row{
			fmt.Sprintf("%d", t.WordNo),
			t.Word,
			fmt.Sprintf("%.2f", t.Time),
			fmt.Sprintf("%.1f", t.WPM),
			fmt.Sprintf("%.1f", t.Accuracy),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.trials != nil {
				m.loadSessions()
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			if m.trials == nil {
				m.openSession()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextView):
			m.viewCursor = (m.viewCursor + 1) % len(historyViews)
			m.loadSessions()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.viewCursor = (m.viewCursor + len(historyViews) - 1) % len(historyViews)
			m.loadSessions()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		if m.trials != nil {
			m.updateTrialRows()
		} else {
			m.updateSessionRows()
		}
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "SESSION HISTORY - " + historyViews[m.viewCursor].title
	if m.trials != nil {
		title = fmt.Sprintf("SESSION #%d - words typed", m.openID)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(centerText(content, m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the available views.
func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Views\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, v := range historyViews {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.viewCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + v.title))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or an explanatory message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not read history:\n" + m.err.Error())
	case m.store == nil:
		return emptyStyle.Render("Session history is unavailable.")
	case m.trials != nil && len(m.trials) == 0:
		return emptyStyle.Render("No words were typed in this session.")
	case m.trials == nil && len(m.sessions) == 0:
		return emptyStyle.Render("No sessions recorded yet.\nPlay a game to start your history!")
	}
	return m.table.View()
}

// centerText centers every line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunHistory runs the session history browser.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

const (
	maxRuns       = 100 // Runs loaded per mode
	playerColumn  = 1
	playerColMax  = 24
	scoreboardPad = 10 // Title, tabs, stats, help
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// scoreboardKeys are the bindings shown in the scoreboard help bar.
type scoreboardKeys struct {
	Scroll key.Binding
	Mode   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(
			key.WithKeys("up", "k", "down", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab/←/→", "mode"),
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

// ScoreboardModel shows the best runs of one mode at a time.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int
	store     *storage.Store
	runs      []storage.Run
	stats     map[string]*storage.GameStats
	table     table.Model
	help      help.Model
	keys      scoreboardKeys
	width     int
	height    int
	quitting  bool
	goingBack bool // Back to the menu rather than quit
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   newScoreboardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if store != nil {
		if stats, err := store.AllGamesStats(); err == nil {
			m.stats = stats
		}
	}
	m.table = m.newTable()
	m.loadRuns()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Height", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Date", Width: 14},
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - used - 6; spare > 0 {
		columns[playerColumn].Width = min(columns[playerColumn].Width+spare, playerColMax)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardPad, 3)),
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

// loadRuns fills the table with the current mode's runs.
func (m *ScoreboardModel) loadRuns() {
	m.runs = nil
	if m.store != nil && len(m.modes) > 0 {
		if runs, err := m.store.TopRuns(m.modes[m.mode].ID, maxRuns); err == nil {
			m.runs = runs
		}
	}
	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
}

// RunRows formats runs as table rows, ranked in order.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// switchMode moves to the next (step 1) or previous (step -1) mode.
func (m *ScoreboardModel) switchMode(step int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + step + len(m.modes)) % len(m.modes)
	m.loadRuns()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mode):
			switch msg.String() {
			case "shift+tab", "left", "h":
				m.switchMode(-1)
			default:
				m.switchMode(1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(RunRows(m.runs))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("BEST RUNS"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(statsStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	body := emptyStyle.Render("No runs recorded yet.\nClimb to set a record!")
	if len(m.runs) > 0 {
		body = m.table.View()
	}
	b.WriteString(centerText(boardStyle.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(statsStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.mode {
			tabs[i] = activeTabStyle.Render(mode.Title)
		} else {
			tabs[i] = tabStyle.Render(mode.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// statsLine summarizes every run of the current mode.
func (m ScoreboardModel) statsLine() string {
	if len(m.modes) == 0 {
		return ""
	}
	st, ok := m.stats[m.modes[m.mode].ID]
	if !ok || st.RunsCount == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("%d runs · best %d · avg %.0f · last %s",
		st.RunsCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// It returns true when the user wants to go back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

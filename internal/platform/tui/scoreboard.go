package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lab-arcade/internal/registry"
	"github.com/vovakirdan/lab-arcade/internal/storage"
)

const (
	maxLogRuns   = 100 // runs loaded per experiment
	logChrome    = 12  // rows used by title, tabs, detail, stats and help
	runIDLen     = 8
	minLogHeight = 3
)

var (
	logTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	logTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	logActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("46")).Padding(0, 1)
	logFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28")).Padding(0, 1)
	logDetailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	logDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the experiment log.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "prev run")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "next run")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next experiment")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev experiment")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the experiment log: the recorded runs of each game,
// best first, with the stage every run reached and a summary of all runs.
type ScoreboardModel struct {
	games  []registry.GameInfo
	game   int
	store  *storage.Store
	runs   []storage.ScoreEntry
	stats  *storage.GameStats
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates the log over every registered game. store may
// be nil, in which case every experiment shows as empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.load()
	return m
}

// load reads the selected game's runs and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.game].ID
		if runs, err := m.store.TopScores(id, maxLogRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil && stats.GamesCount > 0 {
			m.stats = stats
		}
	}
	m.table = m.buildTable()
}

// buildTable lays out one row per run. The stage column is titled after
// what the game counts: generations or levels.
func (m ScoreboardModel) buildTable() table.Model {
	date := 12
	if m.width >= 90 {
		date = 16
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 9},
		{Title: stageTitle(m.runs), Width: 10},
		{Title: "Time", Width: 6},
		{Title: "Run", Width: runIDLen},
		{Title: "Date", Width: date},
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Score),
			stageCell(r),
			formatDuration(r.Duration),
			shortRunID(r.SessionID),
			formatDate(r.CreatedAt, date),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-logChrome, minLogHeight)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("28")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("46")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
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
		case key.Matches(msg, m.keys.Next):
			m.switchGame(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.buildTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.game = (m.game + delta + len(m.games)) % len(m.games)
	m.load()
}

// SelectedRun returns the run under the table cursor.
func (m ScoreboardModel) SelectedRun() (storage.ScoreEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.ScoreEntry{}, false
	}
	return m.runs[i], true
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(logTitleStyle.Render("EXPERIMENT LOG"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		empty := logDimStyle.Italic(true).Padding(1, 4).Render("No runs logged yet.")
		b.WriteString(centerText(logFrameStyle.Render(empty), m.width))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, logFrameStyle.Render(m.table.View())))
		b.WriteString("\n")
		b.WriteString(centerText(logDetailStyle.Render(m.detailLine()), m.width))
	}
	b.WriteString("\n")

	if m.stats != nil {
		b.WriteString(centerText(logDimStyle.Render(m.statsLine()), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(logDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders one tab per experiment. When they do not fit, only the
// selected one is shown between arrows.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			parts[i] = logActiveStyle.Render(g.Title)
		} else {
			parts[i] = logTabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(line) > m.width {
		return "< " + logActiveStyle.Render(m.games[m.game].Title) + " >"
	}
	return line
}

// detailLine describes the selected run.
func (m ScoreboardModel) detailLine() string {
	r, ok := m.SelectedRun()
	if !ok {
		return ""
	}
	parts := []string{"run " + shortRunID(r.SessionID)}
	if r.StageLabel != "" {
		parts = append(parts, fmt.Sprintf("%s %d", strings.ToLower(r.StageLabel), r.Stage))
	}
	parts = append(parts, formatDuration(r.Duration))
	if !r.CreatedAt.IsZero() {
		parts = append(parts, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	if m.stats != nil && r.Score == m.stats.HighScore {
		parts = append(parts, "record")
	}
	return strings.Join(parts, "  |  ")
}

// statsLine summarises every recorded run of the selected game.
func (m ScoreboardModel) statsLine() string {
	st := m.stats
	line := fmt.Sprintf("%d runs  |  record %d  |  avg %.0f", st.GamesCount, st.HighScore, st.AvgScore)
	if st.MaxStage > 0 {
		line += fmt.Sprintf("  |  furthest %s %d", strings.ToLower(stageTitle(m.runs)), st.MaxStage)
	}
	return line + "  |  logged " + formatDuration(st.PlayTime)
}

// stageTitle names the stage column after the first run that recorded one.
func stageTitle(runs []storage.ScoreEntry) string {
	for _, r := range runs {
		if r.StageLabel != "" {
			return r.StageLabel
		}
	}
	return "Stage"
}

func stageCell(r storage.ScoreEntry) string {
	if r.StageLabel == "" {
		return "-"
	}
	return fmt.Sprint(r.Stage)
}

func shortRunID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) > runIDLen {
		return id[:runIDLen]
	}
	return id
}

func formatDate(t time.Time, width int) string {
	if t.IsZero() {
		return "-"
	}
	if width >= 16 {
		return t.Format("2006-01-02 15:04")
	}
	return t.Format("Jan 02 15:04")
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the experiment log on its own.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

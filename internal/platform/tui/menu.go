package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/registry"
)

const (
	// AccessFlash is how long "ACCESS GRANTED" shows before the game starts.
	AccessFlash = 2200 * time.Millisecond

	// Three clicks on the title within this window unlock tapUnlockGame.
	tapWindow     = 800 * time.Millisecond
	tapsToUnlock  = 3
	tapUnlockGame = "rnase"

	// Title box rows, counted from the top of the view.
	titleTop    = 1
	titleBottom = 3
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28")).
			Padding(0, 2)
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	grantedStyle    = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("46")).
			Padding(1, 4)
)

// MenuItem represents an unlocked game in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// accessDoneMsg ends the ACCESS GRANTED flash for a game.
type accessDoneMsg struct {
	gameID string
}

// MenuModel is the lab terminal: games stay hidden until their access code
// is typed, then flash ACCESS GRANTED and launch.
type MenuModel struct {
	games     []registry.GameInfo
	detector  *core.SecretDetector
	taps      *core.TapCounter
	start     time.Time
	now       func() time.Time
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper

	granting       string // game shown in the ACCESS GRANTED flash
	selected       *MenuItem
	quitting       bool
	openScoreboard bool
}

// NewMenuModel creates a menu over every registered game.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return newMenuModel(cfg, core.NewSecretDetector(registry.Secrets()), time.Now)
}

func newMenuModel(cfg core.RuntimeConfig, detector *core.SecretDetector, now func() time.Time) MenuModel {
	return MenuModel{
		games:     registry.List(),
		detector:  detector,
		taps:      core.NewTapCounter(tapsToUnlock, tapWindow),
		start:     now(),
		now:       now,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case accessDoneMsg:
		if m.granting == msg.gameID {
			m.granting = ""
			m.selected = m.itemFor(msg.gameID)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey navigates the unlocked list and feeds letters to the detector.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.granting != "" {
		return m, nil
	}

	items := m.Items()
	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case MenuActionDown:
		if m.cursor < len(items)-1 {
			m.cursor++
		}
		return m, nil

	case MenuActionSelect:
		if len(items) > 0 {
			selected := items[m.cursor]
			m.selected = &selected
		}
		return m, nil

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if id := m.detector.Feed(msg.Runes[0]); id != "" {
			return m.grant(id)
		}
	}
	return m, nil
}

// handleMouse counts left clicks on the title box.
func (m MenuModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y < titleTop || msg.Y > titleBottom || m.granting != "" {
		return m, nil
	}
	if !m.taps.Tap(m.now().Sub(m.start)) || !registry.Exists(tapUnlockGame) {
		return m, nil
	}
	m.detector.Unlock(tapUnlockGame)
	return m.grant(tapUnlockGame)
}

// grant starts the ACCESS GRANTED flash for a freshly unlocked game.
func (m MenuModel) grant(id string) (tea.Model, tea.Cmd) {
	m.granting = id
	for i, it := range m.Items() {
		if it.GameID == id {
			m.cursor = i
		}
	}
	return m, tea.Tick(AccessFlash, func(time.Time) tea.Msg {
		return accessDoneMsg{gameID: id}
	})
}

// Items returns the unlocked games in registry order.
func (m MenuModel) Items() []MenuItem {
	var items []MenuItem
	for _, g := range m.games {
		if m.detector.Unlocked(g.ID) {
			items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
		}
	}
	return items
}

func (m MenuModel) itemFor(id string) *MenuItem {
	for _, it := range m.Items() {
		if it.GameID == id {
			return &it
		}
	}
	return nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.granting != "" {
		return m.viewGranted()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menuTitleStyle.Render("L A B   T E R M I N A L")))
	b.WriteString("\n\n")

	b.WriteString(centerText(menuDimStyle.Render("Restricted experiments. Type an access code."), m.width))
	b.WriteString("\n\n")

	prompt := "> " + m.detector.Buffer() + "_"
	b.WriteString(centerText(menuPromptStyle.Render(prompt), m.width))
	b.WriteString("\n\n")

	items := m.Items()
	for i, item := range items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	if locked := len(m.games) - len(items); locked > 0 {
		b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("%d experiment(s) locked", locked)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Run  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewGranted() string {
	title := m.granting
	if it := m.itemFor(m.granting); it != nil {
		title = it.Title
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		grantedStyle.Render("ACCESS GRANTED"),
		"",
		menuPromptStyle.Render("loading "+title+"..."),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Granting returns the game in the ACCESS GRANTED flash, or "".
func (m MenuModel) Granting() string {
	return m.granting
}

// Reopen returns the menu to browsing after a game or the scoreboard.
// The typed code buffer is cleared; unlocked games stay unlocked.
func (m MenuModel) Reopen(width, height int) MenuModel {
	m.detector.Clear()
	m.selected = nil
	m.openScoreboard = false
	m.granting = ""
	m.width = width
	m.height = height
	return m
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

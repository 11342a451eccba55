// Package tui runs the arcade in a terminal with Bubble Tea: the lab menu,
// the game screen, the experiment log and the SSH server that serves them.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/session"
	"github.com/vovakirdan/lab-arcade/internal/storage"
)

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScores
)

// App manages the full arcade flow: menu -> game -> menu, plus the
// scoreboard. One App serves one terminal or one SSH connection.
type App struct {
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	host     *TermHost
	sessions *session.Manager

	screen     appScreen
	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewApp creates the top-level model. store may be nil.
func NewApp(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) App {
	if logger == nil {
		logger = log.Default()
	}
	host := NewTermHost(bestStore(store), logger)
	return App{
		store:    store,
		config:   cfg,
		logger:   logger,
		host:     host,
		sessions: session.NewManager(host, cfg, resultSaver(store), logger),
		menu:     NewMenuModel(cfg),
	}
}

// Init initializes the app.
func (a App) Init() tea.Cmd {
	return a.menu.Init()
}

// Update routes messages to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.config.ScreenW = wsm.Width
		a.config.ScreenH = wsm.Height
		a.sessions.SetScreen(wsm.Width, wsm.Height)
	}

	switch a.screen {
	case screenGame:
		return a.updateGame(msg)
	case screenScores:
		return a.updateScores(msg)
	default:
		return a.updateMenu(msg)
	}
}

func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		a.menu = mm
	}

	switch {
	case a.menu.IsQuitting():
		a.quitting = true
		return a, tea.Quit

	case a.menu.WantsScoreboard():
		a.scoreboard = NewScoreboardModel(a.store, a.config.ScreenW, a.config.ScreenH)
		a.screen = screenScores
		return a, a.scoreboard.Init()

	case a.menu.Selected() != nil:
		id := a.menu.Selected().GameID
		a.game = NewGameModel(id, a.host, a.sessions, a.config, a.logger)
		a.screen = screenGame
		return a, a.game.Init()
	}

	return a, cmd
}

func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		a.game = gm
	}

	if a.game.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if a.game.BackToMenu() {
		a.backToMenu()
		return a, nil
	}
	return a, cmd
}

func (a App) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.scoreboard.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		a.scoreboard = sm
	}

	if a.scoreboard.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	// On its own the scoreboard quits the program to go back; here the
	// quit command is dropped and the menu reopens.
	if a.scoreboard.IsGoingBack() {
		a.backToMenu()
		return a, nil
	}
	return a, cmd
}

func (a *App) backToMenu() {
	a.screen = screenMenu
	a.menu = a.menu.Reopen(a.config.ScreenW, a.config.ScreenH)
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	switch a.screen {
	case screenGame:
		return a.game.View()
	case screenScores:
		return a.scoreboard.View()
	default:
		return a.menu.View()
	}
}

// Close ends any running session.
func (a App) Close() {
	a.sessions.End()
}

// RunApp runs the menu-driven arcade in the local terminal.
func RunApp(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	app := NewApp(store, cfg, logger)
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if fa, ok := final.(App); ok {
		fa.Close()
	}
	return err
}

// bestStore keeps a nil store from becoming a non-nil interface.
func bestStore(store *storage.Store) BestStore {
	if store == nil {
		return nil
	}
	return store
}

func resultSaver(store *storage.Store) session.ResultSaver {
	if store == nil {
		return nil
	}
	return store
}

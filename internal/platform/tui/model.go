package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/session"
	"github.com/vovakirdan/lab-arcade/internal/storage"
)

// TickMsg asks the running game for its next frame.
type TickMsg time.Time

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(tickRate, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// GameModel is the Bubble Tea model for one running game.
// The game itself lives in the session manager; the model forwards input to
// the host and renders each tick.
type GameModel struct {
	gameID     string
	host       *TermHost
	sessions   *session.Manager
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	logger     *log.Logger
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for gameID. The session starts in Init.
func NewGameModel(gameID string, host *TermHost, sessions *session.Manager, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.Default()
	}
	return GameModel{
		gameID:    gameID,
		host:      host,
		sessions:  sessions,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		logger:    logger,
	}
}

// Init starts the session and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.host.ReleaseAll()
	if _, err := m.sessions.Start(m.gameID); err != nil {
		m.logger.Error("cannot start game", "game", m.gameID, "err", err)
		return tea.Quit
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.sessions.SetScreen(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.Apply(msg, m.host) {
		m.sessions.End()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m GameModel) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.host.Pointer(PointerDown, msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion:
		m.host.Pointer(PointerMove, msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		m.host.Pointer(PointerUp, msg.X, msg.Y)
	}
}

// handleTick fires due host timers, then runs one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.host.Fire()
	res, ok := m.sessions.Tick(m.screen)
	if !ok {
		m.backToMenu = true
		return m, nil
	}
	m.gameState = res.State
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.gameID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
	}
}

// View renders the last frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true once the player has left the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal until the player leaves it.
func Run(gameID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	host := NewTermHost(bestStore(store), logger)
	sessions := session.NewManager(host, cfg, resultSaver(store), logger)
	model := playOnly{NewGameModel(gameID, host, sessions, cfg, logger)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	sessions.End()
	return err
}

// playOnly quits the program when the game is left.
type playOnly struct {
	GameModel
}

func (p playOnly) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		p.GameModel = gm
	}
	if p.BackToMenu() {
		return p, tea.Quit
	}
	return p, cmd
}

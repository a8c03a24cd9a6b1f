package tui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

// footerHeight is the number of rows below the game screen.
const footerHeight = 1

var modelSeq atomic.Int64

// BackToMenuMsg asks the enclosing session to leave the current game.
type BackToMenuMsg struct{}

// Options carries what a game model needs from its host.
type Options struct {
	Store   *storage.Store
	Logger  *log.Logger
	Palette *Palette
	Player  string

	// Embedded models send BackToMenuMsg on esc instead of quitting.
	Embedded bool
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Palette == nil {
		o.Palette = NewPalette(nil)
	}
	if o.Player == "" {
		o.Player = "local"
	}
	return o
}

// GameModel runs one game inside Bubble Tea. Each TickMsg drives exactly
// one frame: the collected input is stepped once and the screen is
// rendered once. View only projects the last rendered screen.
type GameModel struct {
	id     int64
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	opts   Options
	logger *log.Logger

	keys    GameKeyMap
	help    help.Model
	console Console
	driver  *core.Driver
	latch   *core.Latch
	oneShot map[core.Action]bool
	now     func() time.Time

	input    core.InputFrame
	state    core.GameState
	saved    bool
	status   string
	quitting bool
}

// NewGameModel creates a model for game. A zero seed is replaced with
// the current time.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) *GameModel {
	opts = opts.withDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := &GameModel{
		id:      modelSeq.Add(1),
		game:    game,
		config:  cfg,
		opts:    opts,
		logger:  opts.Logger.With("game", game.ID(), "player", opts.Player),
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		console: NewConsole(),
		input:   core.NewInputFrame(),
		latch:   core.NewLatch(core.DefaultRepeatDelay, core.DefaultRepeatWindow),
		oneShot: oneShotActions(game),
		now:     time.Now,
	}
	m.help.Width = cfg.ScreenW
	_, inspectable := game.(registry.Inspectable)
	m.keys.Console.SetEnabled(inspectable)

	m.screen = core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1))
	m.config.ScreenH = m.screen.Height()
	m.config.BestScore = m.loadBest()
	m.driver = core.NewDriver(m.update, m.render)
	return m
}

// Init resets the game and starts the tick loop.
func (m *GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.render()
	return m.tick()
}

func (m *GameModel) tick() tea.Cmd {
	return tickCmd(m.id, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.console.Open() {
			ApplyMouse(msg, &m.input)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m *GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.console.Open() {
		target, _ := m.game.(registry.Inspectable)
		cmd := m.console.Update(msg, target)
		if target != nil {
			m.render()
		}
		return m, cmd
	}

	pressed := core.NewInputFrame()
	result := m.keys.Apply(msg, &pressed, m.wantsText())
	m.merge(pressed)

	switch result {
	case KeyQuit:
		return m, m.quit()
	case KeyMenu:
		if m.opts.Embedded {
			m.driver.Stop()
			return m, func() tea.Msg { return BackToMenuMsg{} }
		}
		return m, m.quit()
	case KeyConsole:
		return m, m.console.Show()
	}
	return m, nil
}

// defaultOneShot actions fire once per physical press in every game.
// Terminals send no key-up, so auto-repeat of these keys is filtered
// through the latch.
var defaultOneShot = []core.Action{
	core.ActionJump,
	core.ActionConfirm,
	core.ActionPause,
	core.ActionRestart,
}

// oneShotActions adds the game's own discrete actions to the defaults.
func oneShotActions(g registry.Game) map[core.Action]bool {
	set := make(map[core.Action]bool, len(defaultOneShot))
	for _, a := range defaultOneShot {
		set[a] = true
	}
	if d, ok := g.(registry.OneShot); ok {
		for _, a := range d.OneShotActions() {
			set[a] = true
		}
	}
	return set
}

// merge adds one key press to the frame being collected.
func (m *GameModel) merge(pressed core.InputFrame) {
	now := m.now()
	for a, on := range pressed.Actions {
		if !on {
			continue
		}
		if m.oneShot[a] && !m.latch.Press(a, now) {
			continue
		}
		m.input.Set(a)
	}
	m.input.Type(pressed.Text...)
}

func (m *GameModel) quit() tea.Cmd {
	m.quitting = true
	m.driver.Stop()
	return tea.Quit
}

func (m *GameModel) wantsText() bool {
	t, ok := m.game.(registry.TextInput)
	return ok && t.WantsText()
}

// handleResize resizes the screen and restarts a running game so it can
// lay itself out again. A finished game keeps its final frame.
func (m *GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	m.console.SetWidth(msg.Width)

	h := max(msg.Height-footerHeight, 1)
	if msg.Width == m.config.ScreenW && h == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = h
	m.screen.Resize(msg.Width, h)

	if !m.state.GameOver {
		m.game.Reset(m.config)
		m.state = m.game.State()
	}
	m.render()
	return m, nil
}

func (m *GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.console.Open() {
		return m, m.tick()
	}
	if !m.driver.Frame() {
		if err := m.driver.Err(); err != nil {
			m.logger.Error("game stopped", "err", err)
			m.status = err.Error()
		}
		return m, nil
	}
	return m, m.tick()
}

// update is the driver's update step.
func (m *GameModel) update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tui: %s step: %v", m.game.ID(), r)
		}
	}()
	defer m.input.Clear()

	if m.state.GameOver && m.input.Has(core.ActionRestart) {
		m.restart()
		return nil
	}

	m.state = m.game.Step(m.input).State
	if m.state.GameOver && !m.saved {
		m.saveResult()
	}
	return nil
}

// render is the driver's render step.
func (m *GameModel) render() {
	m.screen.Clear()
	m.game.Render(m.screen)
}

func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.config.BestScore = m.loadBest()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.latch.Reset()
	m.saved = false
	m.status = ""
	m.logger.Debug("restart", "seed", m.config.Seed)
}

func (m *GameModel) loadBest() int {
	key := registry.HighScoreKey(m.game)
	if m.opts.Store == nil || key == "" {
		return 0
	}
	best, err := m.opts.Store.HighScore(key)
	if err != nil {
		m.logger.Warn("cannot load high score", "key", key, "err", err)
		return 0
	}
	return best
}

// saveResult records the finished run once per game over.
func (m *GameModel) saveResult() {
	m.saved = true
	score := m.state.Score
	m.logger.Info("game over", "score", score, "won", m.state.Won)

	if m.opts.Store == nil {
		return
	}
	if score > 0 {
		if entry, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Player, score); err != nil {
			m.logger.Error("cannot save score", "err", err)
		} else {
			m.logger.Debug("score saved", "run", entry.RunID)
		}
	}

	key := registry.HighScoreKey(m.game)
	if key == "" {
		return
	}
	improved, err := m.opts.Store.SubmitHighScore(key, score)
	if err != nil {
		m.logger.Error("cannot submit high score", "key", key, "err", err)
		return
	}
	if improved {
		m.config.BestScore = score
		m.status = fmt.Sprintf("new best: %d", score)
		m.logger.Info("new high score", "key", key, "score", score)
	}
}

// State returns the last observed game state.
func (m *GameModel) State() core.GameState {
	return m.state
}

// View projects the last rendered frame plus a one-line footer.
func (m *GameModel) View() string {
	if m.quitting {
		return ""
	}
	pal := m.opts.Palette
	body := pal.RenderScreen(m.screen)

	var footer string
	switch {
	case m.console.Open():
		footer = m.console.View(pal)
	case m.status != "":
		footer = pal.Status.Render(m.status)
		if m.driver.Err() != nil {
			footer = pal.Error.Render(m.status)
		}
	default:
		footer = pal.Dim.Render(m.help.View(m.keys))
	}
	return body + "\n" + footer
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Embedded = false
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

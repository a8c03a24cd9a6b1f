package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// SessionModel is one player's whole visit: the menu, the games they
// open from it and the scoreboard. Local `menu` runs and SSH connections
// both use it.
type SessionModel struct {
	opts   Options
	config core.RuntimeConfig
	width  int
	height int

	current screen
	menu    *MenuModel
	game    *GameModel
	scores  *ScoreboardModel
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) *SessionModel {
	opts = opts.withDefaults()
	opts.Embedded = true
	s := &SessionModel{
		opts:   opts,
		config: cfg,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	s.menu = NewMenuModel(opts.Palette, s.highScores())
	return s
}

func (s *SessionModel) highScores() map[string]int {
	if s.opts.Store == nil {
		return nil
	}
	best, err := s.opts.Store.HighScores()
	if err != nil {
		s.opts.Logger.Warn("cannot load high scores", "err", err)
		return nil
	}
	return best
}

// Screen reports which view is active: "menu", "game" or "scores".
func (s *SessionModel) Screen() string {
	switch s.current {
	case screenGame:
		return "game"
	case screenScores:
		return "scores"
	}
	return "menu"
}

// Init implements tea.Model.
func (s *SessionModel) Init() tea.Cmd { return nil }

func (s *SessionModel) sizeMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: s.width, Height: s.height}
}

// Update routes messages to the active screen.
func (s *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.config.ScreenW, s.config.ScreenH = msg.Width, msg.Height
		s.menu.Update(msg)
		if s.scores != nil {
			s.scores.Update(msg)
		}
		if s.game != nil {
			s.game.Update(msg)
		}
		return s, nil

	case OpenGameMsg:
		g, err := registry.Create(msg.GameID)
		if err != nil {
			s.opts.Logger.Error("cannot open game", "err", err)
			return s, nil
		}
		s.opts.Logger.Info("game opened", "game", msg.GameID, "player", s.opts.Player)
		s.game = NewGameModel(g, s.config, s.opts)
		s.current = screenGame
		return s, s.game.Init()

	case OpenScoresMsg:
		s.scores = NewScoreboardModel(s.opts.Store, s.opts, s.width, s.height)
		s.current = screenScores
		return s, nil

	case BackToMenuMsg:
		s.game = nil
		s.scores = nil
		s.current = screenMenu
		s.menu.SetBest(s.highScores())
		return s, nil
	}

	switch s.current {
	case screenGame:
		_, cmd := s.game.Update(msg)
		return s, cmd
	case screenScores:
		_, cmd := s.scores.Update(msg)
		return s, cmd
	}
	_, cmd := s.menu.Update(msg)
	return s, cmd
}

// View renders the active screen.
func (s *SessionModel) View() string {
	switch s.current {
	case screenGame:
		return s.game.View()
	case screenScores:
		return s.scores.View()
	}
	return s.menu.View()
}

// RunSession starts a local session in the alternate screen.
func RunSession(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

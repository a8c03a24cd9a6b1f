package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigames/internal/core"
)

// GameKeyMap defines the key bindings used while a game is running.
// It implements help.KeyMap so the footer can list them.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Console key.Binding
	Menu    key.Binding
	Quit    key.Binding
}

// DefaultGameKeyMap returns the default game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "action"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "ctrl+p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Console: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "console"),
			key.WithDisabled(),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Restart, k.Console, k.Menu, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Jump, k.Confirm, k.Back},
		{k.Pause, k.Restart, k.Console, k.Menu, k.Quit},
	}
}

// KeyResult tells the model what a key press meant beyond game input.
type KeyResult int

const (
	KeyNone KeyResult = iota
	KeyQuit
	KeyMenu
	KeyConsole
)

// Apply records a key press into frame. When text is true printable keys
// are delivered as typed runes only, so letters like q and p can be typed;
// ctrl+c and esc still work. Otherwise bindings are matched and any runes
// are also passed along as text for games that read digits.
func (k GameKeyMap) Apply(msg tea.KeyMsg, frame *core.InputFrame, text bool) KeyResult {
	if msg.Type == tea.KeyCtrlC {
		return KeyQuit
	}
	if key.Matches(msg, k.Menu) {
		return KeyMenu
	}

	printable := msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
	if text && printable {
		frame.Type(msg.Runes...)
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			frame.Type(' ')
		}
		return KeyNone
	}

	switch {
	case key.Matches(msg, k.Quit):
		return KeyQuit
	case key.Matches(msg, k.Console):
		return KeyConsole
	case key.Matches(msg, k.Up):
		frame.Set(core.ActionUp)
	case key.Matches(msg, k.Down):
		frame.Set(core.ActionDown)
	case key.Matches(msg, k.Left):
		frame.Set(core.ActionLeft)
	case key.Matches(msg, k.Right):
		frame.Set(core.ActionRight)
	case key.Matches(msg, k.Jump):
		frame.Set(core.ActionJump)
	case key.Matches(msg, k.Confirm):
		frame.Set(core.ActionConfirm)
	case key.Matches(msg, k.Back):
		frame.Set(core.ActionBack)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	}
	if msg.Type == tea.KeyRunes {
		frame.Type(msg.Runes...)
	}
	return KeyNone
}

// ApplyMouse records a left click in screen cells.
func ApplyMouse(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Click(msg.X, msg.Y)
	}
}

// MenuKeyMap defines the bindings for the game picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/minigames/internal/registry"
)

// OpenGameMsg asks the session to start a game.
type OpenGameMsg struct{ GameID string }

// OpenScoresMsg asks the session to show the scoreboard.
type OpenScoresMsg struct{}

// menuEntry is one row of the menu: a category header or a game.
type menuEntry struct {
	header registry.Category
	game   registry.GameInfo
	hsKey  string
}

func (e menuEntry) isHeader() bool { return e.header != "" }

// MenuModel is the game picker. Games are grouped by category.
type MenuModel struct {
	entries []menuEntry
	cursor  int
	width   int
	height  int
	keys    MenuKeyMap
	help    help.Model
	pal     *Palette
	best    map[string]int
}

// NewMenuModel builds the menu from the registry. best maps high-score
// keys to stored values and may be nil.
func NewMenuModel(pal *Palette, best map[string]int) *MenuModel {
	if pal == nil {
		pal = NewPalette(nil)
	}
	m := &MenuModel{
		keys: DefaultMenuKeyMap(),
		help: help.New(),
		pal:  pal,
		best: best,
	}

	groups := registry.ByCategory()
	for _, cat := range registry.Categories {
		games := groups[cat]
		if len(games) == 0 {
			continue
		}
		m.entries = append(m.entries, menuEntry{header: cat})
		for _, g := range games {
			e := menuEntry{game: g}
			if inst, err := registry.Create(g.ID); err == nil {
				e.hsKey = registry.HighScoreKey(inst)
			}
			m.entries = append(m.entries, e)
		}
	}
	m.cursor = m.next(-1, 1)
	return m
}

// next returns the first game entry after from in direction dir, or from
// if there is none.
func (m *MenuModel) next(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.entries); i += dir {
		if !m.entries[i].isHeader() {
			return i
		}
	}
	return from
}

// Selected returns the game under the cursor.
func (m *MenuModel) Selected() (registry.GameInfo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) || m.entries[m.cursor].isHeader() {
		return registry.GameInfo{}, false
	}
	return m.entries[m.cursor].game, true
}

// Init implements tea.Model.
func (m *MenuModel) Init() tea.Cmd { return nil }

// Update handles navigation and selection.
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.next(m.cursor, -1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.next(m.cursor, 1)
		case key.Matches(msg, m.keys.Scores):
			return m, func() tea.Msg { return OpenScoresMsg{} }
		case key.Matches(msg, m.keys.Select):
			if g, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenGameMsg{GameID: g.ID} }
			}
		}
	}
	return m, nil
}

// SetBest replaces the high-score map shown next to each game.
func (m *MenuModel) SetBest(best map[string]int) { m.best = best }

// View renders the grouped list.
func (m *MenuModel) View() string {
	var b strings.Builder
	b.WriteString(m.pal.Title.Render("A R C A D E"))
	b.WriteString("\n")

	for i, e := range m.entries {
		if e.isHeader() {
			b.WriteString("\n")
			b.WriteString(m.pal.Header.Render(strings.ToUpper(string(e.header))))
			b.WriteString("\n")
			continue
		}
		line := "  " + e.game.Title
		if best := m.best[e.hsKey]; e.hsKey != "" && best > 0 {
			line += m.pal.Dim.Render("  best " + humanize.Comma(int64(best)))
		}
		if i == m.cursor {
			b.WriteString(m.pal.Selected.Render("> " + e.game.Title))
			b.WriteString(strings.TrimPrefix(line, "  "+e.game.Title))
		} else {
			b.WriteString(m.pal.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.pal.Dim.Render(m.help.View(m.keys)))

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.pal.Frame.Render(b.String()))
	}
	return m.pal.Frame.Render(b.String())
}

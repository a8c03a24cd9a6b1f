package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minigames/internal/core"
)

var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Palette holds the styles used to draw screens and chrome. It is bound
// to one lipgloss renderer so SSH sessions get their own colour profile.
type Palette struct {
	colors map[core.Color]lipgloss.Style
	plain  lipgloss.Style

	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Frame    lipgloss.Style
}

// NewPalette builds a palette for r. A nil renderer means the default one.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{
		colors: make(map[core.Color]lipgloss.Style, len(ansiCodes)),
		plain:  r.NewStyle(),

		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1),
		Header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Normal:   r.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:      r.NewStyle().Foreground(lipgloss.Color("241")),
		Status:   r.NewStyle().Foreground(lipgloss.Color("245")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("196")),
		Frame:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
	}
	for c, code := range ansiCodes {
		p.colors[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if st, ok := p.colors[c]; ok {
		return st
	}
	return p.plain
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colour share one style run.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigames/internal/registry"
)

// ErrConsoleUsage is returned for a line the console cannot parse.
var ErrConsoleUsage = errors.New("usage: get [field] | set <field> <value>")

// ExecConsole runs one console line against target and returns the text
// to show. Supported commands:
//
//	get            list every field
//	get <field>    show one field
//	set <f> <v>    write a field through Poke
func ExecConsole(target registry.Inspectable, line string) (string, error) {
	if target == nil {
		return "", errors.New("console: this game has no inspectable state")
	}
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", ErrConsoleUsage
	}

	switch args[0] {
	case "get", "ls":
		fields := target.Inspect()
		if len(args) == 1 {
			parts := make([]string, len(fields))
			for i, f := range fields {
				parts[i] = f.Name + "=" + f.Value
			}
			return strings.Join(parts, " "), nil
		}
		for _, f := range fields {
			if f.Name == args[1] {
				return f.Name + "=" + f.Value, nil
			}
		}
		return "", fmt.Errorf("console: no field %q", args[1])

	case "set":
		if len(args) != 3 {
			return "", ErrConsoleUsage
		}
		if err := target.Poke(args[1], args[2]); err != nil {
			return "", err
		}
		return args[1] + "=" + args[2], nil
	}
	return "", ErrConsoleUsage
}

// Console is the one-line inspector opened with ':'.
type Console struct {
	input  textinput.Model
	result string
	failed bool
}

// NewConsole creates a closed console.
func NewConsole() Console {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "set gold 500"
	ti.CharLimit = 64
	return Console{input: ti}
}

// Open reports whether the console has focus.
func (c *Console) Open() bool { return c.input.Focused() }

// Show focuses the console with an empty line.
func (c *Console) Show() tea.Cmd {
	c.input.Reset()
	c.result = ""
	c.failed = false
	return c.input.Focus()
}

// SetWidth limits the visible input width.
func (c *Console) SetWidth(w int) {
	c.input.Width = max(w-len(c.input.Prompt)-1, 1)
}

// Update handles a key while the console is open. Enter runs the line,
// esc closes the console.
func (c *Console) Update(msg tea.KeyMsg, target registry.Inspectable) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		c.input.Blur()
		return nil
	case tea.KeyEnter:
		out, err := ExecConsole(target, c.input.Value())
		c.failed = err != nil
		if err != nil {
			c.result = err.Error()
		} else {
			c.result = out
		}
		c.input.Reset()
		return nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// Result returns the output of the last command and whether it failed.
func (c *Console) Result() (string, bool) { return c.result, c.failed }

// View renders the input line, or the last result while nothing is typed.
func (c *Console) View(pal *Palette) string {
	if c.input.Value() == "" && c.result != "" {
		if c.failed {
			return pal.Error.Render("! " + c.result)
		}
		return pal.Status.Render("= " + c.result)
	}
	return c.input.View()
}

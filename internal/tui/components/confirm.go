package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/casefix/internal/tui"
)

// Confirm is a yes/no prompt. The cursor starts on "No".
type Confirm struct {
	title     string
	details   []string
	yes       bool
	keyMap    tui.KeyMap
	showHelp  bool
	submitted bool
	cancelled bool
}

// NewConfirm creates a confirmation prompt with optional detail lines
// shown under the title.
func NewConfirm(title string, details ...string) Confirm {
	return Confirm{
		title:    title,
		details:  details,
		keyMap:   tui.DefaultKeyMap(),
		showHelp: true,
	}
}

// WithShowHelp enables or disables the help text.
func (c Confirm) WithShowHelp(show bool) Confirm {
	c.showHelp = show
	return c
}

// Init implements tea.Model.
func (c Confirm) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (c Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keyMap.Quit):
		c.cancelled = true
		return c, tea.Quit
	case key.Matches(keyMsg, c.keyMap.Yes):
		c.yes = true
		c.submitted = true
		return c, tea.Quit
	case key.Matches(keyMsg, c.keyMap.No):
		c.yes = false
		c.submitted = true
		return c, tea.Quit
	case key.Matches(keyMsg, c.keyMap.Toggle):
		c.yes = !c.yes
	case key.Matches(keyMsg, c.keyMap.Select):
		c.submitted = true
		return c, tea.Quit
	}
	return c, nil
}

// View implements tea.Model.
func (c Confirm) View() string {
	if c.submitted || c.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render(c.title))
	b.WriteString("\n")
	for _, d := range c.details {
		b.WriteString(tui.DetailStyle.Render(d))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(option("Yes", c.yes))
	b.WriteString("   ")
	b.WriteString(option("No", !c.yes))
	b.WriteString("\n")

	if c.showHelp {
		b.WriteString(tui.HelpStyle.Render(c.keyMap.HelpText()))
		b.WriteString("\n")
	}
	return b.String()
}

func option(label string, selected bool) string {
	if selected {
		return tui.SelectedStyle.Render(tui.SymbolSelected + " " + label)
	}
	return tui.UnselectedStyle.Render(tui.SymbolUnselected + " " + label)
}

// Confirmed returns true only if the prompt was submitted on "Yes".
func (c Confirm) Confirmed() bool {
	return c.submitted && c.yes
}

// Cancelled returns true if the user dismissed the prompt.
func (c Confirm) Cancelled() bool {
	return c.cancelled
}

// Submitted returns true if the user made a choice.
func (c Confirm) Submitted() bool {
	return c.submitted
}

// RunConfirm runs the prompt as a bubbletea program reading from in and
// rendering to out. Cancelling ctx stops the program and returns an error.
func RunConfirm(ctx context.Context, c Confirm, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(c,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	result, ok := final.(Confirm)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", final)
	}
	return result.Confirmed(), nil
}

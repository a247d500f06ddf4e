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

// Option is one entry of a Selector.
type Option struct {
	Label       string
	Description string
	Value       string
}

// Selector picks one value from a list. The cursor starts on the first
// option whose value matches the initial value given to NewSelector.
type Selector struct {
	title     string
	options   []Option
	cursor    int
	keyMap    tui.ListKeyMap
	showHelp  bool
	submitted bool
	cancelled bool
}

// NewSelector creates a selector positioned on initial, or on the first
// option when no option has that value.
func NewSelector(title string, options []Option, initial string) Selector {
	s := Selector{
		title:    title,
		options:  options,
		keyMap:   tui.DefaultListKeyMap(),
		showHelp: true,
	}
	for i, opt := range options {
		if opt.Value == initial {
			s.cursor = i
			break
		}
	}
	return s
}

// WithShowHelp enables or disables the help text.
func (s Selector) WithShowHelp(show bool) Selector {
	s.showHelp = show
	return s
}

// Init implements tea.Model.
func (s Selector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keyMap.Quit):
		s.cancelled = true
		return s, tea.Quit
	case key.Matches(keyMsg, s.keyMap.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, s.keyMap.Down):
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, s.keyMap.Select):
		if len(s.options) > 0 {
			s.submitted = true
			return s, tea.Quit
		}
	}
	return s, nil
}

// View implements tea.Model.
func (s Selector) View() string {
	if s.submitted || s.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render(s.title))
	b.WriteString("\n")
	for i, opt := range s.options {
		b.WriteString(option(opt.Label, i == s.cursor))
		b.WriteString("\n")
		if opt.Description != "" {
			b.WriteString(tui.DetailStyle.Render(opt.Description))
			b.WriteString("\n")
		}
	}

	if s.showHelp {
		b.WriteString(tui.HelpStyle.Render(s.keyMap.HelpText()))
		b.WriteString("\n")
	}
	return b.String()
}

// Value returns the chosen value, or "" if nothing was submitted.
func (s Selector) Value() string {
	if !s.submitted {
		return ""
	}
	return s.options[s.cursor].Value
}

// Cancelled returns true if the user dismissed the list.
func (s Selector) Cancelled() bool {
	return s.cancelled
}

// RunSelect runs the selector as a bubbletea program reading from in and
// rendering to out. A dismissed list returns "" with no error.
func RunSelect(ctx context.Context, s Selector, in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(s,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("selection prompt failed: %w", err)
	}

	result, ok := final.(Selector)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	return result.Value(), nil
}

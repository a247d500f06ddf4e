package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys to the model and reports whether the last one quit.
func press(t *testing.T, c Confirm, keys ...tea.KeyMsg) (Confirm, bool) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var m tea.Model
		m, cmd = c.Update(k)
		c = m.(Confirm)
	}
	if cmd == nil {
		return c, false
	}
	_, quit := cmd().(tea.QuitMsg)
	return c, quit
}

func TestConfirm_Keys(t *testing.T) {
	tests := []struct {
		name          string
		keys          []tea.KeyMsg
		wantConfirmed bool
		wantCancelled bool
		wantQuit      bool
	}{
		{"y approves", []tea.KeyMsg{runes("y")}, true, false, true},
		{"Y approves", []tea.KeyMsg{runes("Y")}, true, false, true},
		{"n denies", []tea.KeyMsg{runes("n")}, false, false, true},
		{"enter defaults to no", []tea.KeyMsg{{Type: tea.KeyEnter}}, false, false, true},
		{"toggle then enter approves", []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyEnter}}, true, false, true},
		{"double toggle then enter denies", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyRight}, {Type: tea.KeyEnter}}, false, false, true},
		{"esc cancels", []tea.KeyMsg{{Type: tea.KeyEsc}}, false, true, true},
		{"ctrl+c cancels", []tea.KeyMsg{{Type: tea.KeyCtrlC}}, false, true, true},
		{"toggle onto yes then cancel", []tea.KeyMsg{{Type: tea.KeyLeft}, runes("q")}, false, true, true},
		{"other keys ignored", []tea.KeyMsg{runes("x")}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, quit := press(t, NewConfirm("Fix?"), tt.keys...)
			assert.Equal(t, tt.wantConfirmed, c.Confirmed())
			assert.Equal(t, tt.wantCancelled, c.Cancelled())
			assert.Equal(t, tt.wantQuit, quit)
		})
	}
}

func TestConfirm_IgnoresNonKeyMessages(t *testing.T) {
	m, cmd := NewConfirm("Fix?").Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.False(t, m.(Confirm).Submitted())
}

func TestConfirm_View(t *testing.T) {
	c := NewConfirm("Fix 3 issues?", "in 2 files")
	view := c.View()
	assert.Contains(t, view, "Fix 3 issues?")
	assert.Contains(t, view, "in 2 files")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "No")
	assert.Contains(t, view, "enter confirm")

	assert.NotContains(t, c.WithShowHelp(false).View(), "enter confirm")

	done, _ := press(t, c, runes("n"))
	assert.Empty(t, done.View())
}

func TestRunConfirm_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := RunConfirm(ctx, NewConfirm("Fix?"), strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.False(t, ok)
}

func TestRunConfirm_ReadsKeysFromInput(t *testing.T) {
	ok, err := RunConfirm(context.Background(), NewConfirm("Fix?"), strings.NewReader("y"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, ok)
}

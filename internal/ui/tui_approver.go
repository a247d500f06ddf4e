package ui

import (
	"context"
	"io"
	"os"

	"github.com/vvka-141/casefix/internal/tui"
	"github.com/vvka-141/casefix/internal/tui/components"
	"github.com/vvka-141/casefix/pkg/casefix"
)

// TUIApprover asks for confirmation with a bubbletea yes/no prompt.
// Dismissing the prompt (esc, q, ctrl+c) counts as declining.
type TUIApprover struct {
	input  io.Reader
	output io.Writer
}

// NewTUIApprover creates a TUIApprover bound to the terminal.
func NewTUIApprover() casefix.Approver {
	return &TUIApprover{input: os.Stdin, output: os.Stderr}
}

// RequestApproval runs the prompt until the user answers or ctx is cancelled.
func (a *TUIApprover) RequestApproval(ctx context.Context, summary casefix.FixSummary) (bool, error) {
	prompt := components.NewConfirm(
		"Would you like to automatically fix these?",
		tui.WarningStyle.Render("Rewrites "+describe(summary)+" in place."),
	)
	return components.RunConfirm(ctx, prompt, a.input, a.output)
}

// SelectApprover picks the approver for a run: --yes skips the prompt, a
// terminal session gets the TUI prompt, anything else the line prompt.
func SelectApprover(assumeYes bool, mode tui.Mode, verbose bool) casefix.Approver {
	switch {
	case assumeYes:
		return NewForcedApprover(verbose)
	case mode == tui.ModeInteractive:
		return NewTUIApprover()
	default:
		return NewInteractiveApprover(verbose)
	}
}

// Verify TUIApprover implements the Approver interface at compile time
var _ casefix.Approver = (*TUIApprover)(nil)

package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for casefix.
type Mode int

const (
	// ModeNonInteractive is used for CI pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// NonInteractiveEnv forces non-interactive mode when set to "1".
const NonInteractiveEnv = "CASEFIX_NON_INTERACTIVE"

// DetectMode determines whether casefix should prompt with the TUI.
//
// Returns ModeNonInteractive if:
//   - CASEFIX_NON_INTERACTIVE=1 is set
//   - CI is set (common CI convention)
//   - NO_COLOR is set
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv(NonInteractiveEnv) == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	// the TUI renders to stdout
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

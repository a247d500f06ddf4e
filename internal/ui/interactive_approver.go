package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/casefix/pkg/casefix"
)

// PromptText is the question asked before any file is rewritten.
const PromptText = "Would you like to automatically fix these? (y/n): "

// InteractiveApprover implements the Approver interface with a line-based
// prompt. Only "y" or "yes" (any case, surrounding whitespace ignored)
// approves; any other answer declines.
type InteractiveApprover struct {
	input   io.Reader
	output  io.Writer
	verbose bool
}

// NewInteractiveApprover creates a new InteractiveApprover reading from stdin.
func NewInteractiveApprover(verbose bool) casefix.Approver {
	return &InteractiveApprover{input: os.Stdin, output: os.Stderr, verbose: verbose}
}

// RequestApproval prints the prompt and waits for one line of input.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, summary casefix.FixSummary) (bool, error) {
	if a.verbose {
		fmt.Fprintf(a.output, "\nAbout to rewrite %s.\n", describe(summary))
	}
	fmt.Fprint(a.output, "\n"+PromptText)

	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		// a final answer without a trailing newline still counts
		if err != nil && !(errors.Is(err, io.EOF) && input != "") {
			errChan <- err
			return
		}
		inputChan <- input
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		return IsAffirmative(input), nil
	}
}

// IsAffirmative reports whether answer approves the prompt.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ casefix.Approver = (*InteractiveApprover)(nil)

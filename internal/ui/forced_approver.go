package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/casefix/pkg/casefix"
)

// ForcedApprover implements the Approver interface for non-interactive
// approval, used when the --yes flag is provided.
type ForcedApprover struct {
	output  io.Writer
	verbose bool
}

// NewForcedApprover creates a new ForcedApprover writing to stderr.
func NewForcedApprover(verbose bool) casefix.Approver {
	return &ForcedApprover{output: os.Stderr, verbose: verbose}
}

// RequestApproval approves immediately unless ctx is already cancelled.
func (a *ForcedApprover) RequestApproval(ctx context.Context, summary casefix.FixSummary) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if a.verbose {
		fmt.Fprintf(a.output, "✓ Auto-approved (--yes): fixing %s\n", describe(summary))
	}
	return true, nil
}

func describe(s casefix.FixSummary) string {
	return fmt.Sprintf("%d %s in %d %s",
		s.IssueCount, plural(s.IssueCount, "issue", "issues"),
		s.FileCount, plural(s.FileCount, "file", "files"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ casefix.Approver = (*ForcedApprover)(nil)

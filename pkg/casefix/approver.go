package casefix

import "context"

// Approver handles user interaction before source files are rewritten.
//
// Implementations:
//   - ForcedApprover: approves without asking (--yes)
//   - InteractiveApprover: reads a y/n answer from a line-based input
//   - TUIApprover: bubbletea yes/no prompt for terminals
type Approver interface {
	// RequestApproval asks whether the pending fixes should be applied.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - summary: Number of issues and files that would be rewritten
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, summary FixSummary) (bool, error)
}

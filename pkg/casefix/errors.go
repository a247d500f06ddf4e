package casefix

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := service.Run(ctx, cfg)
//	if errors.Is(err, casefix.ErrIssuesFound) {
//	    // check mode found violations
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrIssuesFound indicates check mode found casing violations.
	ErrIssuesFound = errors.New("casing issues found")

	// ErrFileChanged indicates a file was modified between scanning and rewriting.
	ErrFileChanged = errors.New("file changed since scan")

	// ErrApprovalDenied indicates the user declined the fixes and the run
	// was configured to fail in that case.
	ErrApprovalDenied = errors.New("approval denied")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrIssuesFound):
		return ExitIssuesFound
	case errors.Is(err, ErrFileChanged):
		return ExitFileChanged
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts at most",
	"accepts 1 arg(s)",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

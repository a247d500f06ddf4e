package casefix

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Run completed (including "no changes made")
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (invalid args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration
	ExitIssuesFound    = 11 // check found casing violations
	ExitFileChanged    = 12 // File modified between scan and rewrite
	ExitApprovalDenied = 13 // Fixes declined with --fail-on-decline
)

const (
	// ConfigFileName is the project configuration file looked up in the scanned root.
	ConfigFileName = "casefix.yaml"

	// ExemptPropertyName is the class property name that is never flagged by default.
	ExemptPropertyName = "message"
)

// DefaultExcludedDirs are directory names skipped during discovery:
// build output and version control.
var DefaultExcludedDirs = []string{"bin", "obj", ".git"}

// DefaultExtensions are the file extensions analyzed by default.
var DefaultExtensions = []string{".cs"}

// DefaultExemptions are the class property names exempt from the uppercase rule.
var DefaultExemptions = []string{ExemptPropertyName}

package casefix

import (
	"fmt"
	"strings"
)

// AggregateKind identifies the kind of type declaration that encloses a property.
// The zero value means the property is not inside a recognized struct or class.
type AggregateKind int

const (
	// KindNone marks scan positions outside any struct or class body.
	KindNone AggregateKind = iota

	// KindStruct is a C# struct (value type). Its properties must start lowercase.
	KindStruct

	// KindClass is a C# class (reference type). Its properties must start uppercase.
	KindClass
)

// String returns the C# keyword for the kind.
func (k AggregateKind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindClass:
		return "class"
	default:
		return "none"
	}
}

// Issue is a single casing convention violation. Issues are created by the
// analyzer and are not modified afterwards.
type Issue struct {
	// File is the path of the source file as discovered by the file scanner.
	File string

	// RelativePath is File relative to the scanned root, using forward slashes.
	RelativePath string

	// Line is the 1-based line number of the property declaration.
	Line int

	// Column is the 1-based byte column of the property identifier.
	Column int

	// Kind is the kind of the enclosing type.
	Kind AggregateKind

	// TypeName is the name of the enclosing struct or class.
	TypeName string

	// Property is the identifier as declared.
	Property string

	// Suggested is Property with the case of its first character flipped.
	Suggested string

	// Text is the trimmed source line.
	Text string
}

// String formats the issue as "path:line struct Name: Old -> New".
func (i Issue) String() string {
	return fmt.Sprintf("%s:%d %s %s: %s -> %s", i.displayPath(), i.Line, i.Kind, i.TypeName, i.Property, i.Suggested)
}

func (i Issue) displayPath() string {
	if i.RelativePath != "" {
		return i.RelativePath
	}
	return i.File
}

// SourceFile is a discovered source file with its content at discovery time.
type SourceFile struct {
	// Path is the absolute path of the file.
	Path string

	// RelativePath is the path relative to the scanned root, forward slashes, no "./" prefix.
	RelativePath string

	// Content is the full file content.
	Content string

	// Checksum is the SHA-256 of Content, used to detect modification before rewriting.
	Checksum string
}

// FileScanResult contains the results of scanning a directory.
type FileScanResult struct {
	Files []SourceFile
}

// RewriteScope selects how far a rewrite may reach inside a file.
type RewriteScope int

const (
	// ScopeLine rewrites only the identifier at each issue's recorded position.
	ScopeLine RewriteScope = iota

	// ScopeFile substitutes every declaration in the file that matches
	// the offending declaration shape, not only the recorded one.
	ScopeFile
)

// String returns the flag/config spelling of the scope.
func (s RewriteScope) String() string {
	switch s {
	case ScopeFile:
		return "file"
	default:
		return "line"
	}
}

// ParseRewriteScope parses "line" or "file" (case-insensitive).
func ParseRewriteScope(s string) (RewriteScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "line":
		return ScopeLine, nil
	case "file":
		return ScopeFile, nil
	default:
		return ScopeLine, fmt.Errorf("unknown rewrite scope %q (expected line or file): %w", s, ErrInvalidConfig)
	}
}

// RunConfig contains all parameters for one scan/fix run.
type RunConfig struct {
	// SourcePath is the root directory to scan.
	SourcePath string

	// Exclude lists directory names skipped at any depth.
	Exclude []string

	// Extensions lists file extensions (with leading dot) that are analyzed.
	Extensions []string

	// Exemptions lists class property names that are never flagged.
	Exemptions []string

	// Scope controls how issues are rewritten.
	Scope RewriteScope

	// CheckOnly reports issues without prompting or rewriting.
	CheckOnly bool

	// FailOnDecline turns a declined prompt into ErrApprovalDenied.
	FailOnDecline bool

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks that the RunConfig can drive a run.
func (c *RunConfig) Validate() error {
	if c.SourcePath == "" {
		return fmt.Errorf("SourcePath is required: %w", ErrInvalidConfig)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("at least one extension is required: %w", ErrInvalidConfig)
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with '.': %w", ext, ErrInvalidConfig)
		}
	}
	if c.Scope != ScopeLine && c.Scope != ScopeFile {
		return fmt.Errorf("invalid rewrite scope %d: %w", c.Scope, ErrInvalidConfig)
	}
	return nil
}

// RunResult summarizes a completed run.
type RunResult struct {
	FilesScanned int
	Issues       []Issue
	Approved     bool
	FilesFixed   []string
}

// CountByKind returns the number of issues in the run for the given kind.
func (r RunResult) CountByKind(kind AggregateKind) int {
	return CountByKind(r.Issues, kind)
}

// CountByKind returns the number of issues with the given kind.
func CountByKind(issues []Issue, kind AggregateKind) int {
	n := 0
	for _, issue := range issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

// FixSummary describes a pending rewrite for approval prompts.
type FixSummary struct {
	IssueCount int
	FileCount  int
}

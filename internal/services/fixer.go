package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/vvka-141/casefix/pkg/casefix"
)

// Messages printed around a run.
const (
	msgScanning = "Scanning C# files for casing convention issues..."
	msgClean    = "No casing convention issues found!"
	msgFixing   = "\nFixing casing conventions..."
	msgFixed    = "\nCasing conventions fixed!"
	msgDeclined = "\nNo changes made."
	msgRefNote  = "\nNOTE: Property references in code may still need manual fixes.\n" +
		"Consider running build/tests to catch any reference issues."
)

// FixService runs one scan -> analyze -> report -> approve -> rewrite pass.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
type FixService struct {
	fileScanner casefix.FileScanner
	analyzer    casefix.Analyzer
	rewriter    casefix.Rewriter
	reporter    casefix.Reporter
	approver    casefix.Approver
	logger      casefix.Logger
}

// NewFixService creates a FixService with all dependencies injected.
// Panics on nil dependencies.
func NewFixService(
	fileScanner casefix.FileScanner,
	analyzer casefix.Analyzer,
	rewriter casefix.Rewriter,
	reporter casefix.Reporter,
	approver casefix.Approver,
	logger casefix.Logger,
) *FixService {
	if fileScanner == nil {
		panic("fileScanner cannot be nil")
	}
	if analyzer == nil {
		panic("analyzer cannot be nil")
	}
	if rewriter == nil {
		panic("rewriter cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &FixService{
		fileScanner: fileScanner,
		analyzer:    analyzer,
		rewriter:    rewriter,
		reporter:    reporter,
		approver:    approver,
		logger:      logger,
	}
}

// Run scans cfg.SourcePath and, unless cfg.CheckOnly is set, rewrites the
// offending declarations after approval.
//
// In check mode a non-empty result is returned together with an error
// wrapping casefix.ErrIssuesFound. A declined prompt is not an error unless
// cfg.FailOnDecline is set, in which case it wraps casefix.ErrApprovalDenied.
func (s *FixService) Run(ctx context.Context, cfg casefix.RunConfig) (casefix.RunResult, error) {
	var result casefix.RunResult

	if err := cfg.Validate(); err != nil {
		return result, err
	}

	s.logger.Info(msgScanning)
	scan, err := s.fileScanner.ScanDirectory(cfg.SourcePath)
	if err != nil {
		return result, fmt.Errorf("failed to scan %s: %w", cfg.SourcePath, err)
	}
	result.FilesScanned = len(scan.Files)
	s.logger.Verbose("Discovered %d source files under %s", len(scan.Files), cfg.SourcePath)

	byFile := make(map[string][]casefix.Issue)
	for _, file := range scan.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		issues := s.analyzer.Analyze(file)
		if len(issues) > 0 {
			s.logger.Verbose("%s: %d issues", file.RelativePath, len(issues))
			byFile[file.Path] = issues
			result.Issues = append(result.Issues, issues...)
		}
	}

	if err := s.reporter.Report(result.Issues); err != nil {
		return result, err
	}
	if len(result.Issues) == 0 {
		s.logger.Info(msgClean)
		return result, nil
	}

	if cfg.CheckOnly {
		return result, fmt.Errorf("%d struct and %d class violations: %w",
			result.CountByKind(casefix.KindStruct), result.CountByKind(casefix.KindClass), casefix.ErrIssuesFound)
	}

	approved, err := s.approver.RequestApproval(ctx, casefix.FixSummary{
		IssueCount: len(result.Issues),
		FileCount:  len(byFile),
	})
	if err != nil {
		return result, fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		s.logger.Info(msgDeclined)
		if cfg.FailOnDecline {
			return result, fmt.Errorf("%d issues left unfixed: %w", len(result.Issues), casefix.ErrApprovalDenied)
		}
		return result, nil
	}
	result.Approved = true

	s.logger.Info(msgFixing)
	for _, file := range filesWithIssues(scan.Files, byFile) {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		changed, err := s.rewriter.Rewrite(file, byFile[file.Path])
		if err != nil {
			return result, err
		}
		if changed {
			result.FilesFixed = append(result.FilesFixed, file.RelativePath)
			s.logger.Info("Fixed: %s", file.RelativePath)
		} else {
			s.logger.Verbose("%s: nothing to rewrite", file.RelativePath)
		}
	}

	s.logger.Info(msgFixed)
	s.logger.Info(msgRefNote)
	return result, nil
}

// filesWithIssues returns the files that have issues, sorted by relative path.
func filesWithIssues(files []casefix.SourceFile, byFile map[string][]casefix.Issue) []casefix.SourceFile {
	var out []casefix.SourceFile
	for _, f := range files {
		if _, ok := byFile[f.Path]; ok {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RelativePath < out[j].RelativePath })
	return out
}

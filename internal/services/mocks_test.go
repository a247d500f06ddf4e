package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/casefix/pkg/casefix"
)

type mockApprover struct {
	approved bool
	err      error
	calls    int
	summary  casefix.FixSummary
}

func (m *mockApprover) RequestApproval(_ context.Context, summary casefix.FixSummary) (bool, error) {
	m.calls++
	m.summary = summary
	return m.approved, m.err
}

type mockFileScanner struct {
	scanResult casefix.FileScanResult
	scanErr    error
}

func (m *mockFileScanner) ScanDirectory(_ string) (casefix.FileScanResult, error) {
	return m.scanResult, m.scanErr
}

type mockAnalyzer struct {
	issues map[string][]casefix.Issue
}

func (m *mockAnalyzer) Analyze(file casefix.SourceFile) []casefix.Issue {
	return m.issues[file.Path]
}

type mockRewriter struct {
	err       error
	unchanged bool
	rewritten []string
}

func (m *mockRewriter) Rewrite(file casefix.SourceFile, _ []casefix.Issue) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.rewritten = append(m.rewritten, file.RelativePath)
	return !m.unchanged, nil
}

type mockReporter struct {
	err      error
	reported []casefix.Issue
	calls    int
}

func (m *mockReporter) Report(issues []casefix.Issue) error {
	m.calls++
	m.reported = issues
	return m.err
}

// recordingLogger keeps every line for assertions.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.lines = append(l.lines, "[VERBOSE] "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.lines = append(l.lines, "[ERROR] "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) String() string {
	return strings.Join(l.lines, "\n")
}

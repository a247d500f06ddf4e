package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vvka-141/casefix/pkg/casefix"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the accepted --format values.
var Formats = []string{FormatText, FormatYAML, FormatJSON}

// New returns the reporter for format writing to w.
func New(format string, w io.Writer) (casefix.Reporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return NewTextReporter(w), nil
	case FormatYAML:
		return &StructuredReporter{out: w, format: FormatYAML}, nil
	case FormatJSON:
		return &StructuredReporter{out: w, format: FormatJSON}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (expected one of %s): %w",
			format, strings.Join(Formats, ", "), casefix.ErrInvalidConfig)
	}
}

// sorted returns the issues of one kind ordered by path, line and column.
func sorted(issues []casefix.Issue, kind casefix.AggregateKind) []casefix.Issue {
	var out []casefix.Issue
	for _, issue := range issues {
		if issue.Kind == kind {
			out = append(out, issue)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.RelativePath != b.RelativePath {
			return a.RelativePath < b.RelativePath
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return out
}

func displayPath(issue casefix.Issue) string {
	if issue.RelativePath != "" {
		return issue.RelativePath
	}
	return issue.File
}

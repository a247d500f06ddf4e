package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/casefix/pkg/casefix"
)

type document struct {
	Summary summary     `yaml:"summary" json:"summary"`
	Issues  []issueView `yaml:"issues" json:"issues"`
}

type summary struct {
	Structs int `yaml:"structs" json:"structs"`
	Classes int `yaml:"classes" json:"classes"`
	Total   int `yaml:"total" json:"total"`
}

type issueView struct {
	File      string `yaml:"file" json:"file"`
	Line      int    `yaml:"line" json:"line"`
	Column    int    `yaml:"column" json:"column"`
	Kind      string `yaml:"kind" json:"kind"`
	Type      string `yaml:"type" json:"type"`
	Property  string `yaml:"property" json:"property"`
	Suggested string `yaml:"suggested" json:"suggested"`
	Text      string `yaml:"text" json:"text"`
}

// StructuredReporter writes the report as a YAML or JSON document.
type StructuredReporter struct {
	out    io.Writer
	format string
}

// Report writes the document. An empty issue list still produces a
// document with zero counts.
func (r *StructuredReporter) Report(issues []casefix.Issue) error {
	doc := buildDocument(issues)

	var data []byte
	var err error
	switch r.format {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	if _, err := fmt.Fprintln(r.out, strings.TrimRight(string(data), "\n")); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func buildDocument(issues []casefix.Issue) document {
	ordered := append(sorted(issues, casefix.KindStruct), sorted(issues, casefix.KindClass)...)

	doc := document{
		Summary: summary{
			Structs: casefix.CountByKind(issues, casefix.KindStruct),
			Classes: casefix.CountByKind(issues, casefix.KindClass),
		},
		Issues: make([]issueView, 0, len(ordered)),
	}
	doc.Summary.Total = doc.Summary.Structs + doc.Summary.Classes

	for _, issue := range ordered {
		doc.Issues = append(doc.Issues, issueView{
			File:      displayPath(issue),
			Line:      issue.Line,
			Column:    issue.Column,
			Kind:      issue.Kind.String(),
			Type:      issue.TypeName,
			Property:  issue.Property,
			Suggested: issue.Suggested,
			Text:      issue.Text,
		})
	}
	return doc
}

var _ casefix.Reporter = (*StructuredReporter)(nil)

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/casefix/internal/tui"
	"github.com/vvka-141/casefix/pkg/casefix"
)

const (
	structHeader = "=== STRUCTS WITH UPPERCASE PROPERTIES (Should be lowercase) ==="
	classHeader  = "=== CLASSES WITH LOWERCASE PROPERTIES (Should be uppercase) ==="
)

type textStyles struct {
	header   lipgloss.Style
	location lipgloss.Style
	oldName  lipgloss.Style
	newName  lipgloss.Style
	source   lipgloss.Style
	summary  lipgloss.Style
}

// newTextStyles binds styles to a renderer for w, so colour is only
// emitted when w is a colour-capable terminal.
func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		header:   r.NewStyle().Bold(true).Foreground(tui.ColorPrimary),
		location: r.NewStyle().Foreground(tui.ColorSecondary),
		oldName:  r.NewStyle().Foreground(tui.ColorError),
		newName:  r.NewStyle().Foreground(tui.ColorSuccess),
		source:   r.NewStyle().Foreground(tui.ColorMuted),
		summary:  r.NewStyle().Bold(true),
	}
}

// TextReporter writes the human-readable grouped report.
type TextReporter struct {
	out    io.Writer
	styles textStyles
}

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{out: w, styles: newTextStyles(w)}
}

// Report writes both sections and the summary line. Nothing is written
// when issues is empty.
func (r *TextReporter) Report(issues []casefix.Issue) error {
	if len(issues) == 0 {
		return nil
	}

	structs := sorted(issues, casefix.KindStruct)
	classes := sorted(issues, casefix.KindClass)

	var b strings.Builder
	r.section(&b, structHeader, structs)
	r.section(&b, classHeader, classes)
	b.WriteString("\n")
	b.WriteString(r.styles.summary.Render(
		fmt.Sprintf("Found %d struct issues and %d class issues.", len(structs), len(classes))))
	b.WriteString("\n")

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func (r *TextReporter) section(b *strings.Builder, header string, issues []casefix.Issue) {
	b.WriteString("\n")
	b.WriteString(r.styles.header.Render(header))
	b.WriteString("\n")
	for _, issue := range issues {
		fmt.Fprintf(b, "\n%s - %s %s\n",
			r.styles.location.Render(fmt.Sprintf("%s:%d", displayPath(issue), issue.Line)),
			issue.Kind, issue.TypeName)
		fmt.Fprintf(b, "  %s -> %s\n",
			r.styles.oldName.Render(issue.Property), r.styles.newName.Render(issue.Suggested))
		fmt.Fprintf(b, "  Line: %s\n", r.styles.source.Render(issue.Text))
	}
}

var _ casefix.Reporter = (*TextReporter)(nil)

package rewriter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/vvka-141/casefix/pkg/casefix"
)

// declarationPattern matches a property declaration naming exactly name.
// Group 1 is everything before the identifier, group 2 the accessor opener.
func declarationPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(
		`(\bpublic\s+(?:(?:virtual|override|static)\s+)?\S+\s+)` + regexp.QuoteMeta(name) + `(\s*\{\s*(?:get|set))`)
}

// ReplaceDeclarations substitutes each issue's suggested name into every
// matching declaration in content, in issue order.
func ReplaceDeclarations(content string, issues []casefix.Issue) string {
	for _, issue := range issues {
		replacement := "${1}" + strings.ReplaceAll(issue.Suggested, "$", "$$") + "${2}"
		content = declarationPattern(issue.Property).ReplaceAllString(content, replacement)
	}
	return content
}

// ReplaceAt substitutes each issue's suggested name at its recorded line and
// column. Issues whose position no longer holds the old declaration are skipped.
func ReplaceAt(content string, issues []casefix.Issue) string {
	ordered := make([]casefix.Issue, len(issues))
	copy(ordered, issues)
	// right to left within a line so earlier columns stay valid
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Line != ordered[j].Line {
			return ordered[i].Line < ordered[j].Line
		}
		return ordered[i].Column > ordered[j].Column
	})

	lines := strings.Split(content, "\n")
	for _, issue := range ordered {
		idx := issue.Line - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}
		lines[idx] = replaceInLine(lines[idx], issue)
	}
	return strings.Join(lines, "\n")
}

func replaceInLine(line string, issue casefix.Issue) string {
	start := issue.Column - 1
	end := start + len(issue.Property)
	if start < 0 || end > len(line) || line[start:end] != issue.Property {
		return line
	}

	for _, m := range declarationPattern(issue.Property).FindAllStringSubmatchIndex(line, -1) {
		if m[3] == start {
			return line[:start] + issue.Suggested + line[end:]
		}
	}
	return line
}

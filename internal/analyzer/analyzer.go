package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vvka-141/casefix/pkg/casefix"
)

// Analyzer applies the casing rules to source files.
// Analyzer is immutable after construction and safe for concurrent use.
type Analyzer struct {
	exemptions map[string]struct{}
}

// New creates an Analyzer. Names in exemptions are never flagged inside a class.
// A nil slice uses casefix.DefaultExemptions; an empty slice exempts nothing.
func New(exemptions []string) *Analyzer {
	if exemptions == nil {
		exemptions = casefix.DefaultExemptions
	}
	set := make(map[string]struct{}, len(exemptions))
	for _, name := range exemptions {
		set[name] = struct{}{}
	}
	return &Analyzer{exemptions: set}
}

// Analyze returns one issue per offending property declaration, in line order.
func (a *Analyzer) Analyze(file casefix.SourceFile) []casefix.Issue {
	var (
		issues []casefix.Issue
		state  State
		decls  []Declaration
	)

	for i, line := range strings.Split(file.Content, "\n") {
		state, decls = Step(state, line)
		for _, d := range decls {
			suggested, ok := a.Check(d)
			if !ok {
				continue
			}
			issues = append(issues, casefix.Issue{
				File:         file.Path,
				RelativePath: file.RelativePath,
				Line:         i + 1,
				Column:       d.Column,
				Kind:         d.Enclosing.Kind,
				TypeName:     d.Enclosing.Name,
				Property:     d.Name,
				Suggested:    suggested,
				Text:         strings.TrimSpace(line),
			})
		}
	}

	return issues
}

// Check applies the naming rule for the declaration's enclosing type.
// It returns the suggested name and true when the declaration violates it.
func (a *Analyzer) Check(d Declaration) (string, bool) {
	first, _ := utf8.DecodeRuneInString(d.Name)

	var suggested string
	switch d.Enclosing.Kind {
	case casefix.KindStruct:
		if !unicode.IsUpper(first) {
			return "", false
		}
		suggested = LowerFirst(d.Name)
	case casefix.KindClass:
		if !unicode.IsLower(first) {
			return "", false
		}
		if _, exempt := a.exemptions[d.Name]; exempt {
			return "", false
		}
		suggested = UpperFirst(d.Name)
	default:
		return "", false
	}

	if suggested == d.Name {
		return "", false
	}
	return suggested, true
}

// LowerFirst lowercases the first rune of s and leaves the rest unchanged.
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

// UpperFirst uppercases the first rune of s and leaves the rest unchanged.
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

func mapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(fn(r)) + s[size:]
}

var _ casefix.Analyzer = (*Analyzer)(nil)

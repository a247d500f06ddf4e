package analyzer

import (
	"strings"

	"github.com/vvka-141/casefix/pkg/casefix"
)

// State is the scan state carried between lines of one file.
// The zero value is "outside any struct or class".
type State struct {
	Kind casefix.AggregateKind
	Name string

	// Depth is the brace depth relative to the type declaration.
	Depth int

	// Opened is set once the type's body brace has been seen. A
	// declaration whose brace is on a later line stays active until then.
	Opened bool
}

// Active reports whether the state is inside a struct or class.
func (s State) Active() bool {
	return s.Kind != casefix.KindNone
}

// Pending reports whether a struct or class was declared and its body brace has
// not been seen yet.
func (s State) Pending() bool {
	return s.Active() && !s.Opened
}

// abandons reports whether text shows that a pending declaration will not be
// followed by its body: before any brace, the text ends a statement or
// declares a namespace, interface, enum, record or delegate.
func abandons(text string) bool {
	if i := strings.IndexByte(text, '{'); i >= 0 {
		text = text[:i]
	}
	return strings.Contains(text, ";") || otherDeclarationPattern.MatchString(text)
}

// advance applies the braces in text to the state and clears it once the
// type's body has closed.
func (s State) advance(text string) State {
	if !s.Active() {
		return s
	}
	opens := strings.Count(text, "{")
	closes := strings.Count(text, "}")
	s.Depth += opens - closes
	if opens > 0 {
		s.Opened = true
	}
	if s.Depth < 0 || (s.Opened && s.Depth <= 0) {
		return State{}
	}
	return s
}

// Declaration is a property declaration together with the type it was
// declared in.
type Declaration struct {
	Type string
	Name string

	// Column is the 1-based byte column of Name.
	Column int

	// Enclosing is the scan state in force at the declaration's position.
	Enclosing State
}

// Step folds one line into the state. It returns the state for the next line
// and the property declarations on this line.
func Step(s State, line string) (State, []Declaration) {
	if s.Pending() && abandons(line) {
		s = State{}
	}

	next := s
	declAt := -1
	agg, declared := matchAggregate(line)
	if declared {
		next = State{Kind: agg.kind, Name: agg.name}
		declAt = agg.start
	}

	var decls []Declaration
	for _, p := range matchProperties(line) {
		base, from := s, 0
		if declAt >= 0 && p.start >= declAt {
			base, from = next, declAt
		}
		decls = append(decls, Declaration{
			Type:      p.typeName,
			Name:      p.name,
			Column:    p.nameAt + 1,
			Enclosing: base.advance(line[from:p.start]),
		})
	}

	if !declared {
		return next.advance(line), decls
	}
	next = next.advance(line[declAt:])
	if next.Pending() && abandons(line[agg.end:]) {
		next = State{}
	}
	return next, decls
}

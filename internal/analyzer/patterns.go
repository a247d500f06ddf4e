package analyzer

import (
	"regexp"
	"strings"

	"github.com/vvka-141/casefix/pkg/casefix"
)

// identifier matches a C# identifier, including non-ASCII letters.
const identifier = `[\p{L}\p{N}_]+`

var (
	structPattern = regexp.MustCompile(
		`(?:public|internal|private|protected)?\s*(?:readonly\s+)?struct\s+(` + identifier + `)`)

	classPattern = regexp.MustCompile(
		`(?:public|internal|private|protected)?\s*(?:(?:abstract|sealed|static|partial)\s+)*class\s+(` + identifier + `)`)

	propertyPattern = regexp.MustCompile(
		`public\s+(?:(?:virtual|override|static)\s+)?(\S+)\s+(` + identifier + `)\s*\{\s*(?:get|set)`)

	// otherDeclarationPattern matches declarations whose body cannot belong
	// to a struct or class declared on an earlier line.
	otherDeclarationPattern = regexp.MustCompile(`\b(?:namespace|interface|enum|record|delegate)\b`)
)

// Type tokens that introduce a declaration rather than a property type.
var declarationKeywords = []string{"class", "struct", "interface", "enum", "delegate"}

// aggregateMatch is a struct or class declaration found on a line.
type aggregateMatch struct {
	kind  casefix.AggregateKind
	name  string
	start int
	end   int
}

// matchAggregate finds a struct or class declaration on the line.
// When both patterns match, the class declaration wins.
func matchAggregate(line string) (aggregateMatch, bool) {
	if m := classPattern.FindStringSubmatchIndex(line); m != nil {
		return aggregateMatch{kind: casefix.KindClass, name: line[m[2]:m[3]], start: m[0], end: m[1]}, true
	}
	if m := structPattern.FindStringSubmatchIndex(line); m != nil {
		return aggregateMatch{kind: casefix.KindStruct, name: line[m[2]:m[3]], start: m[0], end: m[1]}, true
	}
	return aggregateMatch{}, false
}

// propertyMatch is a property declaration found on a line.
type propertyMatch struct {
	typeName string
	name     string
	start    int // start of the declaration ("public")
	nameAt   int // byte offset of the identifier
}

// matchProperties returns every non-overlapping property declaration on the line.
func matchProperties(line string) []propertyMatch {
	var out []propertyMatch
	for _, m := range propertyPattern.FindAllStringSubmatchIndex(line, -1) {
		typeName := line[m[2]:m[3]]
		if isDeclarationKeyword(typeName) {
			continue
		}
		out = append(out, propertyMatch{
			typeName: typeName,
			name:     line[m[4]:m[5]],
			start:    m[0],
			nameAt:   m[4],
		})
	}
	return out
}

func isDeclarationKeyword(token string) bool {
	for _, kw := range declarationKeywords {
		if strings.HasPrefix(token, kw) {
			return true
		}
	}
	return false
}

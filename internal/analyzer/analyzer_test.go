package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/casefix/pkg/casefix"
)

func analyze(t *testing.T, content string) []casefix.Issue {
	t.Helper()
	return New(nil).Analyze(casefix.SourceFile{
		Path:         "/src/Models.cs",
		RelativePath: "Models.cs",
		Content:      content,
	})
}

func TestAnalyze_StructOneLiner(t *testing.T) {
	issues := analyze(t, "struct Point { public int X { get; set; } }")

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, casefix.KindStruct, issue.Kind)
	assert.Equal(t, "Point", issue.TypeName)
	assert.Equal(t, "X", issue.Property)
	assert.Equal(t, "x", issue.Suggested)
	assert.Equal(t, 1, issue.Line)
	assert.Equal(t, 27, issue.Column)
	assert.Equal(t, "/src/Models.cs", issue.File)
	assert.Equal(t, "Models.cs", issue.RelativePath)
}

func TestAnalyze_ClassWithExemptMessage(t *testing.T) {
	content := `public class Person
{
    public string name { get; set; }
    public string message { get; set; }
}`
	issues := analyze(t, content)

	require.Len(t, issues, 1)
	assert.Equal(t, casefix.KindClass, issues[0].Kind)
	assert.Equal(t, "Person", issues[0].TypeName)
	assert.Equal(t, "name", issues[0].Property)
	assert.Equal(t, "Name", issues[0].Suggested)
	assert.Equal(t, 3, issues[0].Line)
	assert.Equal(t, 19, issues[0].Column)
	assert.Equal(t, "public string name { get; set; }", issues[0].Text)
}

func TestAnalyze_ClassOneLinerWithMessage(t *testing.T) {
	issues := analyze(t, "class Person { public string name { get; set; } public string message { get; set; } }")

	require.Len(t, issues, 1)
	assert.Equal(t, "name", issues[0].Property)
}

func TestAnalyze_ConformingPropertiesProduceNothing(t *testing.T) {
	content := `public struct Point
{
    public int x { get; set; }
    public int y { get; set; }
}

public class Person
{
    public string Name { get; set; }
    public int Age { get; private set; }
}`
	assert.Empty(t, analyze(t, content))
}

func TestAnalyze_OnlyFirstCharacterChanges(t *testing.T) {
	content := `public struct Range
{
    public int StartIndex { get; set; }
}
public class Account
{
    public string accountID { get; set; }
}`
	issues := analyze(t, content)

	require.Len(t, issues, 2)
	assert.Equal(t, "startIndex", issues[0].Suggested)
	assert.Equal(t, "AccountID", issues[1].Suggested)
}

func TestAnalyze_ModifiersAndQualifiers(t *testing.T) {
	content := `internal readonly struct Vector
{
    public static int Zero { get; }
}
public abstract partial class Shape
{
    public virtual double area { get; }
    public override string label { get; set; }
}
public sealed class Box
{
    public static int count { get; set; }
}`
	issues := analyze(t, content)

	require.Len(t, issues, 4)
	assert.Equal(t, "Vector", issues[0].TypeName)
	assert.Equal(t, "zero", issues[0].Suggested)
	assert.Equal(t, "Shape", issues[1].TypeName)
	assert.Equal(t, "Area", issues[1].Suggested)
	assert.Equal(t, "Label", issues[2].Suggested)
	assert.Equal(t, "Box", issues[3].TypeName)
	assert.Equal(t, "Count", issues[3].Suggested)
}

func TestAnalyze_NoIssuesAfterBodyCloses(t *testing.T) {
	content := `public struct Point
{
    public int x { get; set; }
}
public int Stray { get; set; }
public string stray { get; set; }`
	assert.Empty(t, analyze(t, content))
}

func TestAnalyze_ClosingBraceOnSameLineEndsScope(t *testing.T) {
	content := `public struct Point {
    public int x { get; set; }
} public int After { get; set; }`
	assert.Empty(t, analyze(t, content))
}

func TestAnalyze_PropertiesOutsideAggregatesIgnored(t *testing.T) {
	content := `public interface IShape
{
    public double Area { get; }
    public string name { get; }
}`
	assert.Empty(t, analyze(t, content))
}

func TestAnalyze_MethodBodiesDoNotCloseAggregate(t *testing.T) {
	content := `public class Service
{
    public void Run()
    {
        if (ready) {
            Go();
        } else {
            Stop();
        }
    }

    public int retries { get; set; }
}`
	issues := analyze(t, content)

	require.Len(t, issues, 1)
	assert.Equal(t, "retries", issues[0].Property)
	assert.Equal(t, 12, issues[0].Line)
}

func TestAnalyze_NestedAggregateOverwritesContext(t *testing.T) {
	content := `public class Outer
{
    public struct Inner
    {
        public int Value { get; set; }
    }
    public string name { get; set; }
}`
	issues := analyze(t, content)

	// The inner struct replaces the outer context and its closing brace
	// ends tracking, so the trailing class property goes unattributed.
	require.Len(t, issues, 1)
	assert.Equal(t, "Inner", issues[0].TypeName)
	assert.Equal(t, "value", issues[0].Suggested)
}

func TestAnalyze_ClassMentionedInCommentDoesNotClaimInterface(t *testing.T) {
	content := `/// Adapter for the legacy class Engine.
public interface IEngine
{
    public int speed { get; set; }
}`
	assert.Empty(t, analyze(t, content))
}

func TestAnalyze_ClassMentionedInCommentDoesNotClaimNamespace(t *testing.T) {
	content := `// This class provides the shared DTOs.
namespace App.Models
{
    public record Person
    {
        public string name { get; init; }
    }
}`
	assert.Empty(t, analyze(t, content))
}

func TestAnalyze_AllmanClassAfterComment(t *testing.T) {
	content := `// This class provides the shared DTOs.
public class Person
    : Entity
{
    public string name { get; set; }
}`
	issues := analyze(t, content)

	require.Len(t, issues, 1)
	assert.Equal(t, "Person", issues[0].TypeName)
	assert.Equal(t, 5, issues[0].Line)
}

func TestAnalyze_DeclarationKeywordsAreNotPropertyTypes(t *testing.T) {
	content := `public class Holder
{
    public enumeration Kind { get; set; }
    public delegateHandler handler { get; set; }
}`
	// Type tokens starting with a declaration keyword are skipped.
	assert.Empty(t, analyze(t, content))
}

func TestAnalyze_MultiLineDeclarationNotRecognized(t *testing.T) {
	content := `public class Person
{
    public string
        name { get; set; }
}`
	assert.Empty(t, analyze(t, content))
}

func TestAnalyze_CRLFLineEndings(t *testing.T) {
	content := "public class Person\r\n{\r\n    public string name { get; set; }\r\n}\r\n"
	issues := analyze(t, content)

	require.Len(t, issues, 1)
	assert.Equal(t, "Name", issues[0].Suggested)
	assert.Equal(t, "public string name { get; set; }", issues[0].Text)
}

func TestAnalyze_GenericAndNullableTypes(t *testing.T) {
	content := `public class Order
{
    public List<string> items { get; set; }
    public int? quantity { get; set; }
}`
	issues := analyze(t, content)

	require.Len(t, issues, 2)
	assert.Equal(t, "Items", issues[0].Suggested)
	assert.Equal(t, "Quantity", issues[1].Suggested)
}

func TestAnalyze_CustomExemptions(t *testing.T) {
	content := `public class Envelope
{
    public string message { get; set; }
    public string payload { get; set; }
}`
	issues := New([]string{"payload"}).Analyze(casefix.SourceFile{Content: content})

	require.Len(t, issues, 1)
	assert.Equal(t, "message", issues[0].Property)

	assert.Empty(t, New([]string{"payload", "message"}).Analyze(casefix.SourceFile{Content: content}))
}

func TestAnalyze_NonASCIIIdentifiers(t *testing.T) {
	content := `public struct Größe
{
    public int Ähnlich { get; set; }
}`
	issues := analyze(t, content)

	require.Len(t, issues, 1)
	assert.Equal(t, "Größe", issues[0].TypeName)
	assert.Equal(t, "ähnlich", issues[0].Suggested)
}

func TestAnalyze_EmptyContent(t *testing.T) {
	assert.Empty(t, analyze(t, ""))
}

func TestLowerUpperFirst(t *testing.T) {
	tests := []struct {
		in, lower, upper string
	}{
		{"X", "x", "X"},
		{"Name", "name", "Name"},
		{"name", "name", "Name"},
		{"HTTPClient", "hTTPClient", "HTTPClient"},
		{"_id", "_id", "_id"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.lower, LowerFirst(tt.in))
			assert.Equal(t, tt.upper, UpperFirst(tt.in))
		})
	}
}

// Package rewriter substitutes suggested property names into source files.
//
// Two scopes are supported:
//
//   - casefix.ScopeLine (default) rewrites only the identifier at each issue's
//     recorded line and column, and only while the declaration there still
//     names the old identifier.
//   - casefix.ScopeFile substitutes every declaration in the file shaped like
//     "public [modifier] Type Old { get|set" with the suggested name. This can
//     rename declarations other than the flagged one.
//
// Both scopes are idempotent: once an identifier has been replaced it no
// longer matches, so applying the same issues again changes nothing.
//
// References to renamed properties elsewhere in the code base are not
// updated.
package rewriter

// Package analyzer finds property casing violations in C# source text.
//
// Analysis is a single pass over the lines of one file. A State value carries
// the enclosing struct or class and its brace depth from one line
// to the next; Step folds a line into the state and reports the property
// declarations found on it.
//
// Rules:
//   - properties of a struct must start with a lowercase letter
//   - properties of a class must start with an uppercase letter, except the
//     exempt names (by default only "message")
//
// Known limitations:
//   - a nested type declaration replaces the enclosing context and resets
//     the depth, so properties after a nested type may be mis-attributed
//   - declarations split across lines are not recognized
//   - braces inside string literals and comments are counted
package analyzer

// Package report renders casing issues for humans and for tooling.
//
// The text format groups issues by struct and class under a section header
// and ends with a one-line count. The yaml and json formats emit the same
// data as a document with a summary and a flat issue list.
package report

// Package logging provides concrete implementations of the casefix.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: writes prefixed lines to stderr (or any io.Writer)
//   - NullLogger: discards all messages
//
// Report output never goes through a Logger; it is written to stdout by the
// report package so that it can be piped separately from diagnostics.
package logging

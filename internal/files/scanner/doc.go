// Package scanner provides source file discovery for casefix.
//
// The scanner package is responsible for:
//   - Recursively discovering source files (by extension) in a directory tree
//   - Skipping excluded directories (build output, version control) at any depth
//   - Reading file content and recording a checksum for later change detection
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner

// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Source file discovery with directory exclusions
//   - rewriter: In-place substitution of flagged property names
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/casefix/internal/files/rewriter"
//	    "github.com/vvka-141/casefix/internal/files/scanner"
//	)
//
//	fileScanner := scanner.NewScanner(checksum.New(), scanner.Options{})
//	result, err := fileScanner.ScanDirectory(".")
//
//	rw := rewriter.New(checksum.New(), casefix.ScopeLine)
//	changed, err := rw.Rewrite(result.Files[0], issues)
package files

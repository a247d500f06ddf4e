// Package checksum provides file content hashing.
//
// casefix records a checksum for every source file when it is discovered and
// compares it with the file's current content before rewriting, so a file
// edited in the meantime is never overwritten with stale content.
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum := calculator.Calculate(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum

package casefix

// FileScanner discovers source files below a root directory.
type FileScanner interface {
	// ScanDirectory recursively scans a directory and returns the matching
	// source files with their content, skipping excluded directories.
	ScanDirectory(sourcePath string) (FileScanResult, error)
}

// Analyzer finds casing issues in one source file.
// Implementations must not retain state between calls.
type Analyzer interface {
	Analyze(file SourceFile) []Issue
}

// Rewriter applies fixes for previously found issues to one file.
type Rewriter interface {
	// Rewrite substitutes the suggested names for the issues of a single file
	// and writes the file back. It reports whether the content changed.
	Rewrite(file SourceFile, issues []Issue) (bool, error)
}

// Reporter presents issues to the user.
type Reporter interface {
	Report(issues []Issue) error
}

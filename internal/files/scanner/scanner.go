package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/casefix/internal/checksum"
	"github.com/vvka-141/casefix/internal/files/filesystem"
	"github.com/vvka-141/casefix/pkg/casefix"
)

// Options controls which files are discovered.
// Zero values fall back to casefix.DefaultExcludedDirs and casefix.DefaultExtensions.
type Options struct {
	// Exclude lists directory names skipped at any depth.
	Exclude []string

	// Extensions lists file extensions (with leading dot), compared case-insensitively.
	Extensions []string
}

// Scanner discovers source files from a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator and fsProvider are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	exclude    map[string]struct{}
	extensions []string
}

// NewScanner creates a new file scanner with the given checksum calculator.
// Uses OS filesystem by default.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator, opts Options) *Scanner {
	return NewScannerWithFS(calculator, filesystem.NewOSFileSystem(), opts)
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider, opts Options) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}

	exclude := opts.Exclude
	if exclude == nil {
		exclude = casefix.DefaultExcludedDirs
	}
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = casefix.DefaultExtensions
	}

	excludeSet := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excludeSet[name] = struct{}{}
	}

	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
		exclude:    excludeSet,
		extensions: extensions,
	}
}

// ScanDirectory recursively scans a directory and returns the source files
// below it, skipping excluded directories.
//
// Parameters:
//   - sourcePath: Root directory to scan
//
// Returns:
//   - casefix.FileScanResult: Discovered files with content and checksums
//   - error: Any error encountered during scanning
func (s *Scanner) ScanDirectory(sourcePath string) (casefix.FileScanResult, error) {
	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return casefix.FileScanResult{}, fmt.Errorf("failed to open directory: %w", err)
	}

	var files []casefix.SourceFile

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		info := file.Info()
		if info.IsDir() {
			if file.RelativePath() != "." && s.isExcluded(info.Name()) {
				return filesystem.SkipDir
			}
			return nil
		}

		if !s.matchesExtension(info.Name()) {
			return nil
		}

		source, err := s.processFile(file)
		if err != nil {
			return fmt.Errorf("failed to process file %s: %w", file.RelativePath(), err)
		}

		files = append(files, source)
		return nil
	})

	if err != nil {
		return casefix.FileScanResult{}, err
	}

	return casefix.FileScanResult{
		Files: files,
	}, nil
}

// processFile reads a file and records its checksum.
func (s *Scanner) processFile(file filesystem.File) (casefix.SourceFile, error) {
	content, err := file.ReadContent()
	if err != nil {
		return casefix.SourceFile{}, fmt.Errorf("failed to read file: %w", err)
	}

	return casefix.SourceFile{
		Path:         file.Path(),
		RelativePath: filepath.ToSlash(file.RelativePath()),
		Content:      string(content),
		Checksum:     s.calculator.Calculate(content),
	}, nil
}

func (s *Scanner) isExcluded(name string) bool {
	_, ok := s.exclude[name]
	return ok
}

func (s *Scanner) matchesExtension(name string) bool {
	ext := filepath.Ext(name)
	for _, want := range s.extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// Verify Scanner implements the interface at compile time
var _ casefix.FileScanner = (*Scanner)(nil)

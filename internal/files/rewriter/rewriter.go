package rewriter

import (
	"fmt"

	"github.com/vvka-141/casefix/internal/checksum"
	"github.com/vvka-141/casefix/internal/files/filesystem"
	"github.com/vvka-141/casefix/internal/retry"
	"github.com/vvka-141/casefix/pkg/casefix"
)

// Rewriter applies fixes to files through a filesystem provider.
// Thread-Safety: NOT safe for concurrent Rewrite calls on the same file.
type Rewriter struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	scope      casefix.RewriteScope
	writes     retry.Policy
}

// New creates a Rewriter that writes to the OS filesystem.
// Panics if calculator is nil.
func New(calculator checksum.Calculator, scope casefix.RewriteScope) *Rewriter {
	return NewWithFS(calculator, filesystem.NewOSFileSystem(), scope)
}

// NewWithFS creates a Rewriter with a custom filesystem provider.
// Panics if calculator or fsProvider is nil.
func NewWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider, scope casefix.RewriteScope) *Rewriter {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Rewriter{
		calculator: calculator,
		fsProvider: fsProvider,
		scope:      scope,
		writes:     retry.FileWritePolicy(),
	}
}

// Rewrite applies the issues recorded for file and writes the result back.
// Issues belonging to other files are ignored. It returns false when the
// content did not change.
//
// If the file was modified after it was scanned, Rewrite returns an error
// wrapping casefix.ErrFileChanged unless the issues no longer apply to it.
func (r *Rewriter) Rewrite(file casefix.SourceFile, issues []casefix.Issue) (bool, error) {
	var own []casefix.Issue
	for _, issue := range issues {
		if issue.File == file.Path {
			own = append(own, issue)
		}
	}
	if len(own) == 0 {
		return false, nil
	}

	data, err := r.fsProvider.ReadFile(file.Path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", file.RelativePath, err)
	}

	content := string(data)
	updated := r.apply(content, own)
	if updated == content {
		return false, nil
	}

	if file.Checksum != "" && r.calculator.Calculate(data) != file.Checksum {
		return false, fmt.Errorf("refusing to rewrite %s: %w", file.RelativePath, casefix.ErrFileChanged)
	}

	err = r.writes.Do(func() error {
		return r.fsProvider.WriteFile(file.Path, []byte(updated))
	})
	if err != nil {
		return false, fmt.Errorf("failed to write %s: %w", file.RelativePath, err)
	}
	return true, nil
}

func (r *Rewriter) apply(content string, issues []casefix.Issue) string {
	if r.scope == casefix.ScopeFile {
		return ReplaceDeclarations(content, issues)
	}
	return ReplaceAt(content, issues)
}

// Verify Rewriter implements the interface at compile time
var _ casefix.Rewriter = (*Rewriter)(nil)

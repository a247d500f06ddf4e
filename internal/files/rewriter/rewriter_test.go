package rewriter

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/casefix/internal/analyzer"
	"github.com/vvka-141/casefix/internal/checksum"
	"github.com/vvka-141/casefix/internal/files/filesystem"
	"github.com/vvka-141/casefix/internal/files/scanner"
	"github.com/vvka-141/casefix/pkg/casefix"
)

const pointSource = `public struct Point
{
    public int X { get; set; }
    public int Y { get; set; }
}
`

const mixedSource = `public struct Vector
{
    public double Length { get; set; }
}

public class Shape
{
    public double Length { get; set; }
    public string message { get; set; }
}
`

// scanOne discovers the single source file under /project and analyzes it.
func scanOne(t *testing.T, fs *filesystem.MemoryFileSystem) (casefix.SourceFile, []casefix.Issue) {
	t.Helper()
	result, err := scanner.NewScannerWithFS(checksum.New(), fs, scanner.Options{}).ScanDirectory("/project")
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	file := result.Files[0]
	return file, analyzer.New(nil).Analyze(file)
}

func readFile(t *testing.T, fs *filesystem.MemoryFileSystem, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNewWithFS_NilArgs(t *testing.T) {
	calc := checksum.New()
	fs := filesystem.NewMemoryFileSystem("/")

	assert.Panics(t, func() { NewWithFS(nil, fs, casefix.ScopeLine) })
	assert.Panics(t, func() { NewWithFS(calc, nil, casefix.ScopeLine) })
	assert.Panics(t, func() { New(nil, casefix.ScopeLine) })
}

func TestRewrite_RoundTrip(t *testing.T) {
	for _, scope := range []casefix.RewriteScope{casefix.ScopeLine, casefix.ScopeFile} {
		t.Run(scope.String(), func(t *testing.T) {
			fs := filesystem.NewMemoryFileSystem("/project")
			fs.AddFile("Point.cs", pointSource)

			file, issues := scanOne(t, fs)
			require.Len(t, issues, 2)

			changed, err := NewWithFS(checksum.New(), fs, scope).Rewrite(file, issues)
			require.NoError(t, err)
			assert.True(t, changed)

			content := readFile(t, fs, file.Path)
			assert.Contains(t, content, "public int x { get; set; }")
			assert.Contains(t, content, "public int y { get; set; }")

			_, after := scanOne(t, fs)
			assert.Empty(t, after, "rescan after fix should report nothing")
		})
	}
}

func TestRewrite_OneLinerStruct(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	fs.AddFile("Point.cs", "struct Point { public int X { get; set; } }\n")

	file, issues := scanOne(t, fs)
	require.Len(t, issues, 1)

	changed, err := NewWithFS(checksum.New(), fs, casefix.ScopeLine).Rewrite(file, issues)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "struct Point { public int x { get; set; } }\n", readFile(t, fs, file.Path))
}

func TestRewrite_Idempotent(t *testing.T) {
	for _, scope := range []casefix.RewriteScope{casefix.ScopeLine, casefix.ScopeFile} {
		t.Run(scope.String(), func(t *testing.T) {
			fs := filesystem.NewMemoryFileSystem("/project")
			fs.AddFile("Point.cs", pointSource)

			file, issues := scanOne(t, fs)
			rw := NewWithFS(checksum.New(), fs, scope)

			changed, err := rw.Rewrite(file, issues)
			require.NoError(t, err)
			require.True(t, changed)
			first := readFile(t, fs, file.Path)

			changed, err = rw.Rewrite(file, issues)
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Equal(t, first, readFile(t, fs, file.Path))
		})
	}
}

func TestRewrite_LineScopeLeavesOtherDeclarations(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	fs.AddFile("Shapes.cs", mixedSource)

	file, issues := scanOne(t, fs)
	require.Len(t, issues, 1)
	assert.Equal(t, "Length", issues[0].Property)

	_, err := NewWithFS(checksum.New(), fs, casefix.ScopeLine).Rewrite(file, issues)
	require.NoError(t, err)

	content := readFile(t, fs, file.Path)
	assert.Contains(t, content, "public double length { get; set; }")
	assert.Contains(t, content, "public double Length { get; set; }", "class property must keep its name")
	assert.Contains(t, content, "public string message { get; set; }")
}

func TestRewrite_FileScopeRenamesEveryMatchingDeclaration(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	fs.AddFile("Shapes.cs", mixedSource)

	file, issues := scanOne(t, fs)
	require.Len(t, issues, 1)

	_, err := NewWithFS(checksum.New(), fs, casefix.ScopeFile).Rewrite(file, issues)
	require.NoError(t, err)

	content := readFile(t, fs, file.Path)
	assert.NotContains(t, content, "Length {")
	assert.Contains(t, content, "public string message { get; set; }")
}

func TestRewrite_ModifiedProperties(t *testing.T) {
	src := "public class Base\n{\n    public virtual int count { get; set; }\n    public static string name { get; }\n}\n"
	for _, scope := range []casefix.RewriteScope{casefix.ScopeLine, casefix.ScopeFile} {
		t.Run(scope.String(), func(t *testing.T) {
			fs := filesystem.NewMemoryFileSystem("/project")
			fs.AddFile("Base.cs", src)

			file, issues := scanOne(t, fs)
			require.Len(t, issues, 2)

			_, err := NewWithFS(checksum.New(), fs, scope).Rewrite(file, issues)
			require.NoError(t, err)

			content := readFile(t, fs, file.Path)
			assert.Contains(t, content, "public virtual int Count { get; set; }")
			assert.Contains(t, content, "public static string Name { get; }")
		})
	}
}

func TestRewrite_PreservesCRLF(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	fs.AddFile("Point.cs", "struct Point\r\n{\r\n    public int X { get; set; }\r\n}\r\n")

	file, issues := scanOne(t, fs)
	require.Len(t, issues, 1)

	_, err := NewWithFS(checksum.New(), fs, casefix.ScopeLine).Rewrite(file, issues)
	require.NoError(t, err)
	assert.Equal(t, "struct Point\r\n{\r\n    public int x { get; set; }\r\n}\r\n", readFile(t, fs, file.Path))
}

func TestRewrite_RefusesChangedFile(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	fs.AddFile("Point.cs", pointSource)

	file, issues := scanOne(t, fs)
	edited := "// edited\n" + pointSource
	require.NoError(t, fs.WriteFile(file.Path, []byte(edited)))

	// Line numbers shifted, so use file scope to make the rewrite applicable.
	changed, err := NewWithFS(checksum.New(), fs, casefix.ScopeFile).Rewrite(file, issues)
	require.Error(t, err)
	assert.True(t, errors.Is(err, casefix.ErrFileChanged))
	assert.False(t, changed)
	assert.Equal(t, edited, readFile(t, fs, file.Path))
}

func TestRewrite_IgnoresIssuesForOtherFiles(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	fs.AddFile("Point.cs", pointSource)

	file, issues := scanOne(t, fs)
	for i := range issues {
		issues[i].File = "/project/Other.cs"
	}

	changed, err := NewWithFS(checksum.New(), fs, casefix.ScopeFile).Rewrite(file, issues)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, pointSource, readFile(t, fs, file.Path))
}

func TestRewrite_NoIssues(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	fs.AddFile("Point.cs", pointSource)

	file, _ := scanOne(t, fs)
	changed, err := NewWithFS(checksum.New(), fs, casefix.ScopeLine).Rewrite(file, nil)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestRewrite_MissingFile(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	file := casefix.SourceFile{Path: "/project/Gone.cs", RelativePath: "Gone.cs"}
	issues := []casefix.Issue{{File: file.Path, Line: 1, Column: 1, Property: "X", Suggested: "x"}}

	_, err := NewWithFS(checksum.New(), fs, casefix.ScopeLine).Rewrite(file, issues)
	assert.Error(t, err)
}

func TestRewrite_OSFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Point.cs")
	require.NoError(t, os.WriteFile(path, []byte(pointSource), 0600))

	result, err := scanner.NewScanner(checksum.New(), scanner.Options{}).ScanDirectory(dir)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	issues := analyzer.New(nil).Analyze(result.Files[0])

	changed, err := New(checksum.New(), casefix.ScopeLine).Rewrite(result.Files[0], issues)
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "public int x { get; set; }")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

// lockedFS fails the first writes with a busy error, like a file held open
// by an editor.
type lockedFS struct {
	*filesystem.MemoryFileSystem
	failures int
	writes   int
}

func (l *lockedFS) WriteFile(path string, data []byte) error {
	l.writes++
	if l.writes <= l.failures {
		return &os.PathError{Op: "open", Path: path, Err: syscall.EBUSY}
	}
	return l.MemoryFileSystem.WriteFile(path, data)
}

func TestRewrite_RetriesLockedFile(t *testing.T) {
	mem := filesystem.NewMemoryFileSystem("/project")
	mem.AddFile("Point.cs", pointSource)
	file, issues := scanOne(t, mem)

	fs := &lockedFS{MemoryFileSystem: mem, failures: 2}
	rw := NewWithFS(checksum.New(), fs, casefix.ScopeLine)
	rw.writes.Sleep = func(time.Duration) {}

	changed, err := rw.Rewrite(file, issues)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 3, fs.writes)
	assert.Contains(t, readFile(t, mem, file.Path), "public int x { get; set; }")
}

func TestRewrite_GivesUpOnPersistentLock(t *testing.T) {
	mem := filesystem.NewMemoryFileSystem("/project")
	mem.AddFile("Point.cs", pointSource)
	file, issues := scanOne(t, mem)

	fs := &lockedFS{MemoryFileSystem: mem, failures: 100}
	rw := NewWithFS(checksum.New(), fs, casefix.ScopeLine)
	rw.writes.Sleep = func(time.Duration) {}

	changed, err := rw.Rewrite(file, issues)
	require.Error(t, err)
	assert.False(t, changed)
	assert.True(t, errors.Is(err, syscall.EBUSY))
	assert.Contains(t, err.Error(), "failed to write Point.cs")
	assert.Equal(t, rw.writes.MaxAttempts, fs.writes)
	assert.Equal(t, pointSource, readFile(t, mem, file.Path))
}

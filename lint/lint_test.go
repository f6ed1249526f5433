package lint

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlint-dev/jlint/config"
	"github.com/jlint-dev/jlint/internal/fixer"
	tt "github.com/jlint-dev/jlint/internal/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewResolvesConfigFromRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.FileName, "max_line_length: 20\n")
	path := writeFile(t, dir, "Demo.java", "// this comment is longer than twenty characters\n")

	engine, err := New(dir, "")
	require.NoError(t, err)

	issues, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "max-line-length", issues[0].Rule)
}

func TestNewInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.FileName, "indent_width: -1\n")

	_, err := New(dir, "")
	assert.Error(t, err)
}

func TestProcessPathWalksDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "A.java", "import java.util.*;\n")
	writeFile(t, dir, "sub/B.java", "import java.io.*;\n")
	writeFile(t, dir, "notes.txt", "not java\n")

	engine, err := New(dir, "")
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, dir, ProcessFile)
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}

func TestProcessPathContinuesPastFailedFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "A.java", "import java.util.*;\n")
	bad := writeFile(t, dir, "B.java", "class B {}\n")

	engine, err := New(dir, "")
	require.NoError(t, err)

	processor := func(e LintEngine, path string) ([]tt.Issue, error) {
		if path == bad {
			return nil, errors.New("read failure")
		}
		return ProcessFile(e, path)
	}

	issues, err := ProcessPath(context.Background(), nil, engine, dir, processor)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, good, issues[0].Filename)
}

func TestProcessPathSkipsExplicitNonJavaFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "not java\n")

	engine, err := New(dir, "")
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, path, ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestProcessFilesAggregates(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "A.java", "import java.util.*;\n")
	b := writeFile(t, dir, "B.java", "import java.io.*;\n")

	engine, err := New(dir, "")
	require.NoError(t, err)

	issues, err := ProcessFiles(context.Background(), nil, engine, []string{a, b}, ProcessFile)
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}

func TestProcessFilesContinuesPastFailedPath(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "A.java", "import java.util.*;\n")
	missing := filepath.Join(dir, "absent.java")

	engine, err := New(dir, "")
	require.NoError(t, err)

	issues, err := ProcessFiles(context.Background(), nil, engine, []string{missing, good}, ProcessFile)
	assert.Error(t, err)
	assert.Len(t, issues, 1)
}

func TestFixFileRewritesAndRelints(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Demo.java", `class Demo {
    void run() {
        int x = 1;;
    }
}
`)

	engine, err := New(dir, "")
	require.NoError(t, err)

	issues, changed, err := FixFile(engine, fixer.New(false), path)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, issues)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), ";;")
}

func TestFixFileNoRewriteReportsOriginalIssues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Demo.java", "import java.util.*;\n")

	engine, err := New(dir, "")
	require.NoError(t, err)

	issues, changed, err := FixFile(engine, fixer.New(false), path)
	require.NoError(t, err)
	assert.False(t, changed)
	require.Len(t, issues, 1)
	assert.Equal(t, "no-wildcard-imports", issues[0].Rule)
}

func TestFixFileDryRunLeavesFile(t *testing.T) {
	dir := t.TempDir()
	original := "class Demo {\n    void run() {\n        ;\n    }\n}\n"
	path := writeFile(t, dir, "Demo.java", original)

	engine, err := New(dir, "")
	require.NoError(t, err)

	issues, changed, err := FixFile(engine, fixer.New(true), path)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, issues, 1)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

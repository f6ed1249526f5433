package fixer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/jlint-dev/jlint/internal/types"
)

func TestApplyEmptyEditSetIsIdentity(t *testing.T) {
	source := []byte("class Demo {}\n")
	assert.Equal(t, source, Apply(source, nil))
	assert.Equal(t, source, Apply(source, []tt.Edit{}))
}

func TestApplySingleEdit(t *testing.T) {
	source := []byte("hello world")

	out := Apply(source, []tt.Edit{{StartByte: 6, EndByte: 11, Replacement: "there"}})
	assert.Equal(t, "hello there", string(out))
}

func TestApplyDeletion(t *testing.T) {
	source := []byte("int x = 1;;\n")

	out := Apply(source, []tt.Edit{{StartByte: 10, EndByte: 11, Replacement: ""}})
	assert.Equal(t, "int x = 1;\n", string(out))
}

func TestApplyInsertion(t *testing.T) {
	source := []byte("ab")

	out := Apply(source, []tt.Edit{{StartByte: 1, EndByte: 1, Replacement: "X"}})
	assert.Equal(t, "aXb", string(out))
}

func TestApplyMultipleEditsInOrder(t *testing.T) {
	source := []byte("aaa bbb ccc")

	out := Apply(source, []tt.Edit{
		{StartByte: 8, EndByte: 11, Replacement: "C"},
		{StartByte: 0, EndByte: 3, Replacement: "A"},
	})
	assert.Equal(t, "A bbb C", string(out))
}

func TestApplyStableForEqualStarts(t *testing.T) {
	source := []byte("abc")

	// Two insertions at the same offset keep their input order.
	out := Apply(source, []tt.Edit{
		{StartByte: 1, EndByte: 1, Replacement: "1"},
		{StartByte: 1, EndByte: 1, Replacement: "2"},
	})
	assert.Equal(t, "a12bc", string(out))
}

func TestApplyOverlappingEditsConcatenate(t *testing.T) {
	source := []byte("0123456789")

	// The second edit starts inside the first's range: its replacement is
	// appended directly after the first's, and the cursor jumps to its end.
	out := Apply(source, []tt.Edit{
		{StartByte: 2, EndByte: 6, Replacement: "X"},
		{StartByte: 4, EndByte: 8, Replacement: "Y"},
	})
	assert.Equal(t, "01XY89", string(out))
}

func TestApplyEditEndBeyondSource(t *testing.T) {
	source := []byte("abc")

	out := Apply(source, []tt.Edit{{StartByte: 1, EndByte: 99, Replacement: "Z"}})
	assert.Equal(t, "aZ", string(out))
}

func TestEditsPreservesIssueOrder(t *testing.T) {
	issues := []tt.Issue{
		{Rule: "a", Fix: &tt.Edit{StartByte: 5, EndByte: 6, Replacement: "x"}},
		{Rule: "b"},
		{Rule: "c", Fix: &tt.Edit{StartByte: 1, EndByte: 2, Replacement: "y"}},
	}

	edits := Edits(issues)
	require.Len(t, edits, 2)
	assert.Equal(t, 5, edits[0].StartByte)
	assert.Equal(t, 1, edits[1].StartByte)
}

func TestFixerRewritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Demo.java")
	require.NoError(t, os.WriteFile(path, []byte("int x = 1;;\n"), 0o644))

	issues := []tt.Issue{{
		Rule: "no-empty-statement",
		Fix:  &tt.Edit{StartByte: 10, EndByte: 11, Replacement: ""},
	}}

	changed, err := New(false).Fix(path, issues)
	require.NoError(t, err)
	assert.True(t, changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "int x = 1;\n", string(content))
}

func TestFixerDryRunLeavesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Demo.java")
	original := []byte("int x = 1;;\n")
	require.NoError(t, os.WriteFile(path, original, 0o644))

	issues := []tt.Issue{{
		Rule: "no-empty-statement",
		Fix:  &tt.Edit{StartByte: 10, EndByte: 11, Replacement: ""},
	}}

	changed, err := New(true).Fix(path, issues)
	require.NoError(t, err)
	assert.True(t, changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, content)
}

func TestFixerNoFixableIssues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Demo.java")
	require.NoError(t, os.WriteFile(path, []byte("class Demo {}\n"), 0o644))

	changed, err := New(false).Fix(path, []tt.Issue{{Rule: "max-line-length"}})
	require.NoError(t, err)
	assert.False(t, changed)
}

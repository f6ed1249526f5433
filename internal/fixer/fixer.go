// Package fixer applies the byte-range edits proposed by lint rules.
package fixer

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	tt "github.com/jlint-dev/jlint/internal/types"
)

// Apply merges a set of edits into a rewritten copy of source.
//
// Edits are stably sorted by start byte, then spliced in with a single
// cursor walk over the original text. An edit whose start lies at or before
// the cursor (overlapping or abutting an already applied edit) contributes
// its replacement immediately, with no attempt to merge the overlap; the
// cursor then jumps to that edit's end. An empty edit set returns source
// unchanged.
func Apply(source []byte, edits []tt.Edit) []byte {
	if len(edits) == 0 {
		return source
	}

	sorted := make([]tt.Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartByte < sorted[j].StartByte
	})

	var out bytes.Buffer
	out.Grow(len(source))

	cursor := 0
	for _, e := range sorted {
		if e.StartByte > cursor {
			out.Write(source[cursor:e.StartByte])
		}
		out.WriteString(e.Replacement)
		cursor = e.EndByte
		if cursor > len(source) {
			cursor = len(source)
		}
	}
	if cursor < len(source) {
		out.Write(source[cursor:])
	}
	return out.Bytes()
}

// Edits extracts the fixes carried by a slice of issues, preserving order.
func Edits(issues []tt.Issue) []tt.Edit {
	var edits []tt.Edit
	for _, issue := range issues {
		if issue.Fix != nil {
			edits = append(edits, *issue.Fix)
		}
	}
	return edits
}

// Fixer rewrites files in place using the fixes attached to lint issues.
type Fixer struct {
	DryRun bool
}

func New(dryRun bool) *Fixer {
	return &Fixer{DryRun: dryRun}
}

// Fix applies the fixable subset of issues to the file at filename.
// It returns whether the file content changed.
func (f *Fixer) Fix(filename string, issues []tt.Issue) (bool, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return false, fmt.Errorf("failed to read file: %w", err)
	}

	fixed := Apply(source, Edits(issues))
	if bytes.Equal(fixed, source) {
		return false, nil
	}

	if f.DryRun {
		fmt.Printf("Would fix %d issue(s) in %s\n", len(Edits(issues)), filename)
		return true, nil
	}

	if err := os.WriteFile(filename, fixed, 0o644); err != nil {
		return false, fmt.Errorf("failed to write file: %w", err)
	}
	return true, nil
}

package lints

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlint-dev/jlint/internal/parser"
	tt "github.com/jlint-dev/jlint/internal/types"
)

func TestDetectWildcardImports(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			name:     "single wildcard import",
			code:     "import java.util.*;\n",
			expected: 1,
		},
		{
			name:     "explicit import",
			code:     "import java.util.List;\n",
			expected: 0,
		},
		{
			name: "mixed imports",
			code: `package demo;

import java.util.List;
import java.util.*;
import java.io.*;

class Demo {}
`,
			expected: 2,
		},
		{
			name:     "static wildcard import",
			code:     "import static java.lang.Math.*;\n",
			expected: 1,
		},
		{
			name:     "no imports",
			code:     "class Demo {}\n",
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := []byte(tc.code)
			root, err := parser.Parse(context.Background(), src)
			require.NoError(t, err)

			issues, err := DetectWildcardImports("demo.java", root, src, tt.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)
			for _, issue := range issues {
				assert.Equal(t, "no-wildcard-imports", issue.Rule)
				assert.Nil(t, issue.Fix)
			}
		})
	}
}

func TestDetectWildcardImportsDocumentOrder(t *testing.T) {
	src := []byte(`package demo;

import java.util.*;
import java.io.*;
`)
	root, err := parser.Parse(context.Background(), src)
	require.NoError(t, err)

	issues, err := DetectWildcardImports("demo.java", root, src, tt.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	assert.Equal(t, 3, issues[0].Line)
	assert.Equal(t, 4, issues[1].Line)
	assert.Equal(t, 1, issues[0].Column)
}

package lints

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/jlint-dev/jlint/internal/types"
)

func TestDetectLongLines(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		maxLen   int
		expected int
	}{
		{
			name:     "all lines under limit",
			source:   "short\nalso short\n",
			maxLen:   20,
			expected: 0,
		},
		{
			name:     "line exactly at limit",
			source:   strings.Repeat("a", 10) + "\n",
			maxLen:   10,
			expected: 0,
		},
		{
			name:     "one line over limit",
			source:   strings.Repeat("a", 11) + "\n",
			maxLen:   10,
			expected: 1,
		},
		{
			name:     "unterminated trailing line counts",
			source:   "ok\n" + strings.Repeat("b", 12),
			maxLen:   10,
			expected: 1,
		},
		{
			name:     "multiple long lines",
			source:   strings.Repeat("x", 15) + "\n" + strings.Repeat("y", 15) + "\n",
			maxLen:   10,
			expected: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues, err := DetectLongLines("demo.java", []byte(tc.source), tc.maxLen, tt.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)
		})
	}
}

func TestLongLineIssuePosition(t *testing.T) {
	source := "fine\n" + strings.Repeat("a", 101) + "\n"

	issues, err := DetectLongLines("demo.java", []byte(source), 100, tt.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, "max-line-length", issue.Rule)
	assert.Equal(t, 2, issue.Line)
	assert.Equal(t, 101, issue.Column)
	assert.Equal(t, "Line exceeds 100 characters (was 101)", issue.Message)
	assert.Nil(t, issue.Fix)
}

func TestLongLinesCountRunesNotBytes(t *testing.T) {
	// 9 two-byte characters: 18 bytes but 9 code points, under a limit of 10.
	line := strings.Repeat("é", 9)
	issues, err := DetectLongLines("demo.java", []byte(line), 10, tt.SeverityError)
	require.NoError(t, err)
	assert.Empty(t, issues)

	// 11 of them crosses the limit.
	line = strings.Repeat("é", 11)
	issues, err = DetectLongLines("demo.java", []byte(line), 10, tt.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "Line exceeds 10 characters (was 11)", issues[0].Message)
}

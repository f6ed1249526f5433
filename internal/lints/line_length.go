package lints

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tt "github.com/jlint-dev/jlint/internal/types"
)

const ruleLineLength = "max-line-length"

// DetectLongLines flags lines longer than maxLineLength. Length is a count
// of Unicode code points, not bytes, so multi-byte characters count as one
// unit each. No fix is offered: splitting a line safely needs semantic
// knowledge this rule does not have.
func DetectLongLines(filename string, source []byte, maxLineLength int, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	for idx, line := range strings.Split(string(source), "\n") {
		line = strings.TrimSuffix(line, "\r")
		length := utf8.RuneCountInString(line)
		if length <= maxLineLength {
			continue
		}
		issues = append(issues, tt.Issue{
			Rule:     ruleLineLength,
			Filename: filename,
			Message:  fmt.Sprintf("Line exceeds %d characters (was %d)", maxLineLength, length),
			Line:     idx + 1,
			Column:   maxLineLength + 1,
			Severity: severity,
		})
	}

	return issues, nil
}

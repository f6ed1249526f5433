package internal

import (
	"os"
	"strings"
)

// SourceCode stores the content of a source code file split into lines.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads a file and returns it as a SourceCode.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewSourceCode(content), nil
}

// NewSourceCode splits in-memory source text into lines.
func NewSourceCode(content []byte) *SourceCode {
	return &SourceCode{Lines: strings.Split(string(content), "\n")}
}

// Line returns the 1-based line n, or "" when out of range.
func (s *SourceCode) Line(n int) string {
	if n < 1 || n > len(s.Lines) {
		return ""
	}
	return s.Lines[n-1]
}

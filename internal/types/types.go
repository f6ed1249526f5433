package types

// Issue represents a lint issue found in a Java source file.
// Line and Column are 1-based and anchor the start of the finding.
type Issue struct {
	Rule     string
	Filename string
	Message  string
	Line     int
	Column   int
	Severity Severity
	// Fix is set only when the rule can safely auto-correct this instance.
	Fix *Edit
}

// HasFix reports whether the issue carries an automatic fix.
func (i Issue) HasFix() bool {
	return i.Fix != nil
}

// Edit proposes replacing the half-open byte range [StartByte, EndByte)
// of the original source text with Replacement.
type Edit struct {
	StartByte   int
	EndByte     int
	Replacement string
}

// ConfigRule holds the per-rule settings read from the configuration file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

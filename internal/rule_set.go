package internal

import (
	"github.com/jlint-dev/jlint/config"
	"github.com/jlint-dev/jlint/internal/lints"
	"github.com/jlint-dev/jlint/internal/syntax"
	tt "github.com/jlint-dev/jlint/internal/types"
)

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the rule over one file's source text and syntax tree.
	Check(filename string, root syntax.Node, source []byte, cfg *config.Config) ([]tt.Issue, error)

	// Name returns the rule's stable identifier.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

type baseRule struct {
	severity tt.Severity
}

func (r *baseRule) Severity() tt.Severity     { return r.severity }
func (r *baseRule) SetSeverity(s tt.Severity) { r.severity = s }

type WildcardImportsRule struct{ baseRule }

func NewWildcardImportsRule() LintRule {
	return &WildcardImportsRule{baseRule{severity: tt.SeverityError}}
}

func (r *WildcardImportsRule) Check(filename string, root syntax.Node, source []byte, _ *config.Config) ([]tt.Issue, error) {
	return lints.DetectWildcardImports(filename, root, source, r.severity)
}

func (r *WildcardImportsRule) Name() string { return "no-wildcard-imports" }

type EmptyStatementRule struct{ baseRule }

func NewEmptyStatementRule() LintRule {
	return &EmptyStatementRule{baseRule{severity: tt.SeverityError}}
}

func (r *EmptyStatementRule) Check(filename string, root syntax.Node, source []byte, _ *config.Config) ([]tt.Issue, error) {
	return lints.DetectEmptyStatements(filename, root, source, r.severity)
}

func (r *EmptyStatementRule) Name() string { return "no-empty-statement" }

type LineLengthRule struct{ baseRule }

func NewLineLengthRule() LintRule {
	return &LineLengthRule{baseRule{severity: tt.SeverityError}}
}

func (r *LineLengthRule) Check(filename string, _ syntax.Node, source []byte, cfg *config.Config) ([]tt.Issue, error) {
	return lints.DetectLongLines(filename, source, cfg.MaxLineLength, r.severity)
}

func (r *LineLengthRule) Name() string { return "max-line-length" }

type IndentStyleRule struct{ baseRule }

func NewIndentStyleRule() LintRule {
	return &IndentStyleRule{baseRule{severity: tt.SeverityError}}
}

func (r *IndentStyleRule) Check(filename string, _ syntax.Node, source []byte, cfg *config.Config) ([]tt.Issue, error) {
	return lints.DetectIndentStyle(filename, source, cfg.IndentStyle, cfg.IndentWidth, r.severity)
}

func (r *IndentStyleRule) Name() string { return "indent-style" }

package lints

import (
	"strings"

	"github.com/jlint-dev/jlint/internal/syntax"
	tt "github.com/jlint-dev/jlint/internal/types"
)

const (
	ruleWildcardImports = "no-wildcard-imports"
	msgWildcardImports  = "Avoid wildcard imports (use explicit classes)"
)

// DetectWildcardImports flags import declarations that pull in a whole
// package with a wildcard, e.g. `import java.util.*;`. No fix is offered:
// replacing the wildcard requires knowing which symbols are actually used.
func DetectWildcardImports(filename string, root syntax.Node, source []byte, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	syntax.Inspect(root, func(n syntax.Node) bool {
		if n.Kind() != "import_declaration" {
			return true
		}
		if strings.Contains(n.Content(source), ".*") {
			issues = append(issues, issueAtNode(n, ruleWildcardImports, msgWildcardImports, filename, severity))
		}
		return true
	})

	return issues, nil
}

// issueAtNode anchors an issue at the 1-based start position of a node.
func issueAtNode(n syntax.Node, rule, message, filename string, severity tt.Severity) tt.Issue {
	start := n.StartPoint()
	return tt.Issue{
		Rule:     rule,
		Filename: filename,
		Message:  message,
		Line:     start.Row + 1,
		Column:   start.Column + 1,
		Severity: severity,
	}
}

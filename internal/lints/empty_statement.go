package lints

import (
	"github.com/jlint-dev/jlint/internal/syntax"
	tt "github.com/jlint-dev/jlint/internal/types"
)

const (
	ruleEmptyStatement = "no-empty-statement"
	msgEmptyStatement  = "Remove unnecessary empty statement"
)

// DetectEmptyStatements flags bare `;` statements. The Java grammar exposes
// them as "empty_statement" nodes, so terminators of valid statements
// (package, import, expression statements) are never matched. The fix
// deletes the node's exact byte span.
func DetectEmptyStatements(filename string, root syntax.Node, source []byte, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	syntax.Inspect(root, func(n syntax.Node) bool {
		if n.Kind() != "empty_statement" {
			return true
		}
		issue := issueAtNode(n, ruleEmptyStatement, msgEmptyStatement, filename, severity)
		issue.Fix = &tt.Edit{
			StartByte:   n.StartByte(),
			EndByte:     n.EndByte(),
			Replacement: "",
		}
		issues = append(issues, issue)
		return true
	})

	return issues, nil
}

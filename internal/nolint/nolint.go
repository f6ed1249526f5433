// Package nolint implements issue suppression driven by source comments.
//
// A comment containing `jlint:ignore` suppresses issues on the line it
// shares with code. A suppression comment standing alone on its line applies
// to the following line instead. An optional comma-separated rule list
// restricts the suppression to those rules; without it, every rule is
// suppressed.
//
//	int x = 1;; // jlint:ignore no-empty-statement
//	// jlint:ignore
//	import java.util.*;
package nolint

import (
	"strings"

	"github.com/jlint-dev/jlint/internal/syntax"
	tt "github.com/jlint-dev/jlint/internal/types"
)

const ignoreMarker = "jlint:ignore"

// Manager holds the suppression scopes parsed from one file's comments.
type Manager struct {
	// scopes maps a 1-based line number to the rules suppressed there.
	// An empty rule set suppresses every rule on that line.
	scopes map[int]map[string]struct{}
}

// ParseComments collects jlint:ignore comments from the syntax tree.
func ParseComments(root syntax.Node, source []byte) *Manager {
	m := &Manager{scopes: make(map[int]map[string]struct{})}

	syntax.Inspect(root, func(n syntax.Node) bool {
		kind := n.Kind()
		if kind != "line_comment" && kind != "block_comment" {
			return true
		}
		text := n.Content(source)
		idx := strings.Index(text, ignoreMarker)
		if idx < 0 {
			return true
		}

		line := n.StartPoint().Row + 1
		if standsAlone(n, source) {
			line++
		}

		rules := parseRuleList(text[idx+len(ignoreMarker):])
		if existing, ok := m.scopes[line]; ok {
			// A bare marker on the line wins over a restricted one.
			if len(existing) == 0 || len(rules) == 0 {
				m.scopes[line] = map[string]struct{}{}
				return true
			}
			for r := range rules {
				existing[r] = struct{}{}
			}
			return true
		}
		m.scopes[line] = rules
		return true
	})

	return m
}

// IsSuppressed reports whether an issue of the given rule on the given
// 1-based line should be dropped.
func (m *Manager) IsSuppressed(line int, rule string) bool {
	rules, ok := m.scopes[line]
	if !ok {
		return false
	}
	if len(rules) == 0 {
		return true
	}
	_, ok = rules[rule]
	return ok
}

// Filter drops the issues suppressed by m, preserving order.
func (m *Manager) Filter(issues []tt.Issue) []tt.Issue {
	if m == nil || len(m.scopes) == 0 {
		return issues
	}
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if !m.IsSuppressed(issue.Line, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// standsAlone reports whether only whitespace precedes the comment on its line.
func standsAlone(n syntax.Node, source []byte) bool {
	start := n.StartByte()
	for i := start - 1; i >= 0; i-- {
		switch source[i] {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		default:
			return false
		}
	}
	return true
}

// parseRuleList parses the optional comma-separated rule list after the marker.
func parseRuleList(rest string) map[string]struct{} {
	rest = strings.TrimSuffix(strings.TrimSpace(rest), "*/")
	rest = strings.TrimSpace(rest)
	rules := make(map[string]struct{})
	if rest == "" {
		return rules
	}
	// Only the first whitespace-separated field is the rule list; anything
	// after it is prose.
	field := strings.Fields(rest)[0]
	for _, r := range strings.Split(field, ",") {
		r = strings.TrimSpace(r)
		if r != "" {
			rules[r] = struct{}{}
		}
	}
	return rules
}

package internal

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/jlint-dev/jlint/config"
	"github.com/jlint-dev/jlint/internal/fixer"
	"github.com/jlint-dev/jlint/internal/nolint"
	"github.com/jlint-dev/jlint/internal/parser"
	tt "github.com/jlint-dev/jlint/internal/types"
)

// Engine manages the linting process for Java source files.
type Engine struct {
	cfg          *config.Config
	rules        []LintRule
	ignoredRules map[string]bool
	cache        *Cache

	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching atomic.Bool
}

type ruleConstructor func() LintRule

// Rules run in this order; per-rule issue grouping in the engine's output
// follows it, so the list is ordered rather than keyed.
var allRuleConstructors = []struct {
	name      string
	construct ruleConstructor
}{
	{"no-wildcard-imports", NewWildcardImportsRule},
	{"no-empty-statement", NewEmptyStatementRule},
	{"max-line-length", NewLineLengthRule},
	{"indent-style", NewIndentStyleRule},
}

// NewEngine creates a lint engine for the given configuration.
func NewEngine(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	engine := &Engine{cfg: cfg}
	engine.applyRules(cfg.Rules)
	return engine, nil
}

func (e *Engine) applyRules(ruleConfig map[string]tt.ConfigRule) {
	for _, rc := range allRuleConstructors {
		rule := rc.construct()
		if cfgRule, ok := ruleConfig[rc.name]; ok && cfgRule.Severity != "" {
			if cfgRule.Severity == tt.SeverityOff {
				continue
			}
			rule.SetSeverity(cfgRule.Severity)
		}
		e.rules = append(e.rules, rule)
	}
}

// IgnoreRule disables a rule for the lifetime of the engine.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// Run applies all lint rules to the given file and returns its issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}

	if e.cache != nil {
		hash := e.sourceHash(source)
		if issues, ok := e.cache.Get(filename, hash); ok {
			return issues, nil
		}
		issues, err := e.runSource(filename, source)
		if err != nil {
			return nil, err
		}
		e.cache.Set(filename, hash, issues)
		return issues, nil
	}

	return e.runSource(filename, source)
}

// RunSource applies all lint rules to in-memory source text.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.runSource("", source)
}

func (e *Engine) runSource(filename string, source []byte) ([]tt.Issue, error) {
	root, err := parser.Parse(context.Background(), source)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filename, err)
	}

	nolintMgr := nolint.ParseComments(root, source)

	// Rules run sequentially in registration order: the output sequence
	// groups each rule's issues together, tree rules in document order and
	// text rules in ascending line order.
	var allIssues []tt.Issue
	for _, rule := range e.rules {
		if e.ignoredRules[rule.Name()] {
			continue
		}
		issues, err := rule.Check(filename, root, source, e.cfg)
		if err != nil {
			return nil, fmt.Errorf("rule %s failed on %s: %w", rule.Name(), filename, err)
		}
		allIssues = append(allIssues, nolintMgr.Filter(issues)...)
	}

	return allIssues, nil
}

// FixSource lints source, applies the fixable subset of issues, and returns
// the rewritten text together with the issues found before the rewrite.
// Callers that need residual diagnostics must re-lint when the returned text
// differs from the input; the pre-fix issue list is intentionally not
// recomputed here.
func (e *Engine) FixSource(source []byte) ([]byte, []tt.Issue, error) {
	issues, err := e.RunSource(source)
	if err != nil {
		return nil, nil, err
	}
	fixed := fixer.Apply(source, fixer.Edits(issues))
	return fixed, issues, nil
}

// Package lint is the high-level entry point: it resolves configuration,
// builds engines, and batches lint runs over files and directory trees.
package lint

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/jlint-dev/jlint/config"
	"github.com/jlint-dev/jlint/internal"
	"github.com/jlint-dev/jlint/internal/fixer"
	tt "github.com/jlint-dev/jlint/internal/types"
	"github.com/jlint-dev/jlint/scanner"
)

const javaExtension = ".java"

// LintEngine is the engine surface the batch helpers need.
type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	FixSource(source []byte) ([]byte, []tt.Issue, error)
	IgnoreRule(rule string)
}

// New builds an engine with configuration resolved from rootDir, or from an
// explicit configuration path when one is given.
func New(rootDir string, configurationPath string) (*internal.Engine, error) {
	cfg, err := config.Resolve(rootDir, configurationPath)
	if err != nil {
		return nil, err
	}
	return internal.NewEngine(cfg)
}

// ProcessFile lints a single file.
func ProcessFile(engine LintEngine, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

// ProcessSource lints in-memory source text.
func ProcessSource(engine LintEngine, source []byte) ([]tt.Issue, error) {
	return engine.RunSource(source)
}

// ProcessFiles lints every given path, file or directory.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	failed := 0
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			failed++
			continue
		}
		allIssues = append(allIssues, issues...)
	}

	if failed > 0 {
		return allIssues, fmt.Errorf("%d path(s) failed", failed)
	}
	return allIssues, nil
}

// ProcessPath lints one path. Directories are walked for Java files and
// linted concurrently; explicit non-Java files are skipped with a warning.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !strings.HasSuffix(path, javaExtension) {
			if logger != nil {
				logger.Warn("Skipping non-Java file", zap.String("path", path))
			}
			return nil, nil
		}
		return processor(engine, path)
	}

	files, err := scanner.New(path, javaExtension).Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)

	// One engine per invocation is safe across files: lint passes share no
	// mutable state, so files fan out over a bounded worker pool.
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	resultChan := make(chan []tt.Issue, len(files))

	var wg sync.WaitGroup
	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			fileIssues, err := processor(engine, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				return
			}
			resultChan <- fileIssues
			_ = bar.Add(1)
		}(file.Path)
	}
	wg.Wait()
	close(resultChan)

	// A failed file inside a directory is logged by its worker and yields no
	// issues; the batch itself does not fail, so the remaining files report.
	var issues []tt.Issue
	for result := range resultChan {
		issues = append(issues, result...)
	}
	fmt.Println()
	return issues, nil
}

// FixFile lints path, applies the fixable issues, and re-lints when the
// rewrite changed the text. The returned issues are the residual diagnostics
// when a rewrite happened, and the pre-fix diagnostics otherwise.
func FixFile(engine LintEngine, fix *fixer.Fixer, path string) ([]tt.Issue, bool, error) {
	before, err := engine.Run(path)
	if err != nil {
		return nil, false, err
	}

	changed, err := fix.Fix(path, before)
	if err != nil {
		return nil, false, err
	}
	if !changed || fix.DryRun {
		return before, changed, nil
	}

	after, err := engine.Run(path)
	if err != nil {
		return nil, true, err
	}
	return after, true, nil
}

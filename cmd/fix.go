package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jlint-dev/jlint/formatter"
	"github.com/jlint-dev/jlint/internal/fixer"
	"github.com/jlint-dev/jlint/lint"
	"github.com/jlint-dev/jlint/scanner"
)

var dryRun bool

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Automatically fix issues",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "error: please provide file or directory paths")
			os.Exit(2)
		}

		engine := newEngine()
		runAutoFix(engine, fixer.New(dryRun), args)
	},
}

func init() {
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show fixes without applying them")
}

func runAutoFix(engine lint.LintEngine, fix *fixer.Fixer, paths []string) {
	files, failed := collectJavaFiles(paths)
	// An inaccessible path counts as a failure for exit-status purposes.
	totalIssues := failed

	for _, file := range files {
		issues, changed, err := lint.FixFile(engine, fix, file)
		if err != nil {
			logger.Error("Error fixing file", zap.String("file", file), zap.Error(err))
			totalIssues++ // count the failure toward the exit status
			continue
		}
		if changed && !fix.DryRun {
			fmt.Fprintf(os.Stderr, "applied fixes: %s\n", file)
		}
		fmt.Print(formatter.Plain(issues))
		totalIssues += len(issues)
	}

	if totalIssues > 0 {
		os.Exit(1)
	}
}

// collectJavaFiles expands directories and drops non-Java files with a
// warning. It also reports how many paths could not be accessed or scanned.
func collectJavaFiles(paths []string) ([]string, int) {
	var files []string
	failed := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			logger.Error("Error accessing path", zap.String("path", path), zap.Error(err))
			failed++
			continue
		}
		if !info.IsDir() {
			if !strings.HasSuffix(path, ".java") {
				logger.Warn("Skipping non-Java file", zap.String("path", path))
				continue
			}
			files = append(files, path)
			continue
		}
		found, err := scanner.New(path, ".java").Scan()
		if err != nil {
			logger.Error("Error scanning directory", zap.String("path", path), zap.Error(err))
			failed++
			continue
		}
		for _, f := range found {
			files = append(files, f.Path)
		}
	}
	return files, failed
}

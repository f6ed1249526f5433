package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jlint-dev/jlint/formatter"
	"github.com/jlint-dev/jlint/internal"
	tt "github.com/jlint-dev/jlint/internal/types"
	"github.com/jlint-dev/jlint/lint"
)

var (
	ignoreRules    string
	lintJSONOutput bool
	outPath        string
	plainOutput    bool
	watchMode      bool
	cacheDir       string
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Run the lint rules over Java files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "error: please provide file or directory paths")
			os.Exit(2)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine := newEngine()

		if cacheDir != "" {
			if err := engine.EnableCache(cacheDir); err != nil {
				logger.Error("Failed to enable cache", zap.Error(err))
				os.Exit(2)
			}
			defer func() {
				if err := engine.SaveCache(); err != nil {
					logger.Warn("Failed to save cache", zap.Error(err))
				}
			}()
		}

		if watchMode {
			runWatch(ctx, engine, args)
			return
		}

		runNormalLintProcess(ctx, logger, engine, args)
	},
}

func init() {
	lintCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of lint rules to ignore")
	lintCmd.Flags().BoolVar(&lintJSONOutput, "json", false, "Output issues in JSON format")
	lintCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	lintCmd.Flags().BoolVar(&plainOutput, "plain", false, "One issue per line: path:line:column: rule: message")
	lintCmd.Flags().BoolVar(&watchMode, "watch", false, "Re-lint files whenever they change")
	lintCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Directory for the lint result cache")
}

// newEngine builds an engine from the resolved configuration and the
// --ignore flag. Configuration failures are fatal before any linting begins.
func newEngine() *internal.Engine {
	engine, err := lint.New(".", cfgFile)
	if err != nil {
		logger.Error("Failed to initialize lint engine", zap.Error(err))
		os.Exit(2)
	}

	if ignoreRules != "" {
		for _, rule := range strings.Split(ignoreRules, ",") {
			engine.IgnoreRule(strings.TrimSpace(rule))
		}
	}
	return engine
}

func runNormalLintProcess(ctx context.Context, logger *zap.Logger, engine lint.LintEngine, paths []string) {
	issues, err := lint.ProcessFiles(ctx, logger, engine, paths, lint.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
	}

	printIssues(logger, issues)

	// A failed path counts as a failure for exit-status purposes.
	if err != nil || len(issues) > 0 {
		os.Exit(1)
	}
}

func runWatch(ctx context.Context, engine *internal.Engine, paths []string) {
	if err := engine.StartWatching(paths); err != nil {
		logger.Error("Failed to start watching", zap.Error(err))
		os.Exit(2)
	}
	defer func() { _ = engine.StopWatching() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	<-ctx.Done()
}

func printIssues(logger *zap.Logger, issues []tt.Issue) {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	switch {
	case lintJSONOutput:
		d, err := json.Marshal(issuesByFile)
		if err != nil {
			logger.Error("Error marshalling issues to JSON", zap.Error(err))
			return
		}
		if outPath == "" {
			fmt.Println(string(d))
			return
		}
		if err := os.WriteFile(outPath, d, 0o644); err != nil {
			logger.Error("Error writing JSON output file", zap.Error(err))
		}

	case plainOutput:
		for _, filename := range sortedFiles {
			fmt.Print(formatter.Plain(issuesByFile[filename]))
		}

	default:
		for _, filename := range sortedFiles {
			sourceCode, err := internal.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				continue
			}
			fmt.Println(formatter.Generate(issuesByFile[filename], sourceCode))
		}
	}
}

// Package cmd wires the dirscan command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mialy/dirscan/internal/config"
	"github.com/mialy/dirscan/internal/logger"
	"github.com/mialy/dirscan/internal/progress"
	"github.com/mialy/dirscan/internal/scanner"
)

// Version is the current version of the dirscan tool.
const Version = "0.1.0"

// ErrPartialScan reports that a scan finished but had to skip
// unreadable subtrees, so the result may be incomplete.
var ErrPartialScan = errors.New("scan completed with skipped directories")

// Execute runs the root command and maps its outcome to a process exit
// code: 0 for a complete scan, 1 for a scan that skipped subtrees, 2
// for usage or scan failures.
func Execute() int {
	root := NewRootCommand()
	err := root.Execute()
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrPartialScan) {
		return 1
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 2
}

// NewRootCommand builds the dirscan root command.
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		filter     string
		recursive  bool
		maxDepth   int
		sortOrder  string
		dirs       bool
		strict     bool
		verbose    bool
		logFile    string
		noColor    bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "dirscan [base-dir]",
		Short: "Enumerate files beneath a directory",
		Long: `dirscan enumerates the regular files (and optionally the directories)
beneath a base directory, bounded by a depth limit, filtered by a
regular expression, and printed in a chosen order.

Unreadable subtrees are skipped rather than failing the scan; use
--strict to fail instead. Defaults can be placed in a YAML config file
(see --config).`,
		Example: `  dirscan /var/log --filter '\.log$'
  dirscan . --dirs --max-depth 2 --sort desc
  dirscan /data --recursive --strict --filter 'report_[0-9]+'`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir := "."
			if len(args) == 1 {
				baseDir = args[0]
			}

			if configPath == "" {
				configPath = config.DefaultPath()
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Explicitly set flags override config file values.
			flags := cmd.Flags()
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}
			if flags.Changed("log-file") {
				cfg.LogFile = logFile
			}
			if flags.Changed("no-color") {
				cfg.NoColor = noColor
			}

			opts := cfg.ScanOptions()
			if flags.Changed("recursive") {
				opts.Recursion = recursive
			}
			if flags.Changed("max-depth") {
				opts.MaxDepth = maxDepth
			}
			if flags.Changed("dirs") {
				opts.FilesOnly = !dirs
			}
			if flags.Changed("strict") {
				opts.Strict = strict
			}
			if flags.Changed("sort") {
				order, ok := scanner.ParseSortOrder(sortOrder)
				if !ok {
					return fmt.Errorf("invalid --sort value %q: must be one of asc, desc, none", sortOrder)
				}
				opts.Sort = order
			}

			if cfg.NoColor {
				color.NoColor = true
			}

			if err := logger.Setup(cfg.Verbose, cfg.LogFile); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to set up logging: %v\n", err)
			}
			defer logger.Close()

			return runScan(cmd, baseDir, filter, opts, quiet)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "config file path (default: "+config.DefaultPath()+")")
	flags.StringVarP(&filter, "filter", "f", "", "regular expression matched against full paths (empty matches everything)")
	flags.BoolVarP(&recursive, "recursive", "r", false, "use the recursive traversal strategy instead of iteration")
	flags.IntVarP(&maxDepth, "max-depth", "d", -1, "maximum descent depth (-1 for unlimited)")
	flags.StringVarP(&sortOrder, "sort", "s", "asc", "result ordering: asc, desc or none")
	flags.BoolVar(&dirs, "dirs", false, "report directory entries too (with a trailing slash)")
	flags.BoolVar(&strict, "strict", false, "fail the scan if any directory cannot be read")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&logFile, "log-file", "", "also write logs to this file")
	flags.BoolVar(&noColor, "no-color", false, "disable colorized output")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress the progress line and summary")

	return cmd
}

// runScan executes the scan and renders paths, progress and summary.
func runScan(cmd *cobra.Command, baseDir, filter string, opts scanner.Options, quiet bool) error {
	runID := uuid.NewString()
	logger.Info("scan started",
		"run", runID,
		"base", baseDir,
		"filter", filter,
		"strategy", strategyName(opts.Recursion))

	s := scanner.NewScanner(baseDir, opts)

	var reporter *progress.Reporter
	if !quiet {
		reporter = progress.NewReporter(cmd.ErrOrStderr())
		s.SetProgress(reporter.Update)
	}

	start := time.Now()
	res, err := s.ScanDetailed(filter)
	if reporter != nil {
		reporter.Finish()
	}
	if err != nil {
		logger.Error("scan failed", "run", runID, "error", err)
		return err
	}

	out := cmd.OutOrStdout()
	dirStyle := color.New(color.FgCyan)
	for _, p := range res.Paths {
		if strings.HasSuffix(p, "/") {
			dirStyle.Fprintln(out, p)
		} else {
			fmt.Fprintln(out, p)
		}
	}

	if !quiet {
		printSummary(cmd, res, time.Since(start))
	}

	logger.Info("scan finished",
		"run", runID,
		"matched", len(res.Paths),
		"scanned", res.Scanned,
		"skipped", len(res.Skipped))

	if len(res.Skipped) > 0 {
		return fmt.Errorf("%w: %d unreadable", ErrPartialScan, len(res.Skipped))
	}
	return nil
}

// printSummary writes the completion summary to stderr so that stdout
// stays a clean list of paths.
func printSummary(cmd *cobra.Command, res *scanner.Result, elapsed time.Duration) {
	errOut := cmd.ErrOrStderr()

	dirPaths := lo.CountBy(res.Paths, func(p string) bool {
		return strings.HasSuffix(p, "/")
	})
	filePaths := len(res.Paths) - dirPaths

	color.New(color.FgGreen).Fprintf(errOut, "\n%s entries matched (%s files, %s directories) out of %s scanned in %s\n",
		progress.FormatNumber(len(res.Paths)),
		progress.FormatNumber(filePaths),
		progress.FormatNumber(dirPaths),
		progress.FormatNumber(res.Scanned),
		progress.FormatDuration(elapsed))

	if len(res.Skipped) > 0 {
		color.New(color.FgYellow).Fprintf(errOut, "%s directories skipped (unreadable); result may be incomplete\n",
			progress.FormatNumber(len(res.Skipped)))
	}
}

// strategyName names the traversal strategy for logging.
func strategyName(recursion bool) string {
	if recursion {
		return "recursive"
	}
	return "iterative"
}

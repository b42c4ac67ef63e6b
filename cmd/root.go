// Package cmd provides the root command and CLI setup for mojifix.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mouse-blink/mojifix/internal/adapter"
	"github.com/mouse-blink/mojifix/internal/config"
	"github.com/mouse-blink/mojifix/internal/controller"
	"github.com/mouse-blink/mojifix/internal/domain"
	"github.com/mouse-blink/mojifix/internal/domain/repair"
	"github.com/mouse-blink/mojifix/internal/logging"
	m "github.com/mouse-blink/mojifix/internal/model"
)

// Exit codes.
const (
	ExitClean      = 0
	ExitUnresolved = 1
	ExitFailed     = 2
)

var cfg *config.Config
var logger *slog.Logger
var logCloser io.Closer
var workflow domain.Workflow
var ui controller.UI

var configFlag string
var logLevelFlag string
var logFileFlag string
var reportFlag string

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"log.level":      "log-level",
	"log.file":       "log-file",
	"report.path":    "report",
	"workers":        "parallel",
	"backup":         "backup",
	"exclude":        "exclude",
	"watch.debounce": "debounce",
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mojifix",
		Short: "Repair Arabic mojibake in source string literals",
		Long: `Mojifix finds string literals in JavaScript and TypeScript sources whose
Arabic text was mangled by a wrong encoding round trip, and rewrites them
with the most plausible original text. Code outside literals is never touched.

Roots default to the configured list (current directory). Settings come from
.mojifix.yaml, MOJIFIX_* environment variables and flags, in rising order.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "config file (default .mojifix.yaml in the working directory)")
	flags.StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&logFileFlag, "log-file", "", "write logs to this file instead of stderr")
	flags.StringVar(&reportFlag, "report", "", "report file, .json or .yaml (default .mojifix/report.json)")

	cmd.AddCommand(newFixCmd(), newCheckCmd(), newWatchCmd(), newViewCmd())

	return cmd
}

// setup loads configuration and wires the collaborators that tests have
// not already replaced.
func setup(cmd *cobra.Command, _ []string) error {
	bindings := make(map[string]*pflag.Flag, len(flagKeys))
	for key, name := range flagKeys {
		bindings[key] = lookupFlag(cmd, name)
	}

	loaded, err := config.Load(config.LoadOptions{File: configFlag, Flags: bindings})
	if err != nil {
		return err
	}

	cfg = loaded

	if logCloser != nil {
		_ = logCloser.Close()
	}

	logger, logCloser = logging.New(cfg.Log.Level, cfg.Log.File, cmd.ErrOrStderr())

	if workflow == nil {
		workflow = newWorkflow(cfg, logger)
	}

	if ui == nil {
		ui = controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	}

	return nil
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}

	return cmd.InheritedFlags().Lookup(name)
}

func newWorkflow(c *config.Config, log *slog.Logger) domain.Workflow {
	matcher := adapter.NewIgnoreMatcher(adapter.MatcherOptions{
		Roots:            c.Roots,
		Extensions:       c.Extensions,
		ExcludeDirs:      c.ExcludeDirs,
		Exclude:          c.Exclude,
		RespectGitignore: c.RespectGitignore,
	})

	resolver := repair.NewResolver(c.Scoring, repair.NewGenerator())

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(matcher),
		adapter.NewReportStore(),
		resolver,
		domain.Options{
			Logger: log,
			Limits: domain.ReportLimits{
				MaxRecords: c.Report.MaxRecords,
				SampleSize: c.Report.SampleSize,
			},
			Events: func(roots []m.Path) (adapter.EventSource, error) {
				dirs := make([]string, 0, len(roots))
				for _, root := range roots {
					matcher.AddRoot(string(root))
					dirs = append(dirs, string(root))
				}

				w, err := adapter.NewWatcher(dirs, matcher, log)
				if err != nil {
					return nil, err
				}

				return w, nil
			},
		},
	)
}

// rootsFrom prefers positional arguments over configured roots.
func rootsFrom(args []string) []m.Path {
	names := args
	if len(names) == 0 && cfg != nil {
		names = cfg.Roots
	}

	roots := make([]m.Path, 0, len(names))
	for _, name := range names {
		roots = append(roots, m.Path(name))
	}

	return roots
}

// interruptContext cancels on SIGINT or SIGTERM.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitClean
	case errors.Is(err, domain.ErrUnresolvedIssues):
		return ExitUnresolved
	default:
		return ExitFailed
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	if logCloser != nil {
		_ = logCloser.Close()
	}

	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}

	os.Exit(exitCode(err))
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/mojifix/internal/controller"
	"github.com/mouse-blink/mojifix/internal/domain"
	m "github.com/mouse-blink/mojifix/internal/model"
)

var fixDryRunFlag bool
var fixBackupFlag bool
var fixParallelFlag int
var fixExcludeFlags []string

const fixLongDescription = `Scan the roots and rewrite every string literal that reads as Arabic
mojibake with its recovered text. Files are replaced atomically and, unless
--backup=false, the original is kept next to each changed file as NAME.bak.

With --dry-run nothing is written; the report lists what would change.`

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [roots...]",
		Short: "Repair corrupted literals in place",
		Long:  fixLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := interruptContext(cmd.Context())
			defer stop()

			return runReport(func(onResult func(m.FileResult)) (m.ScanReport, error) {
				return workflow.Scan(ctx, scanArgs(args, fixDryRunFlag, onResult))
			})
		},
	}
	cmd.Flags().BoolVarP(&fixDryRunFlag, "dry-run", "n", false, "report what would change without writing")
	cmd.Flags().BoolVar(&fixBackupFlag, "backup", true, "keep a .bak copy of every rewritten file")
	cmd.Flags().IntVarP(&fixParallelFlag, "parallel", "p", 0, "number of files processed at once (default: number of CPUs)")
	cmd.Flags().StringSliceVarP(&fixExcludeFlags, "exclude", "x", nil, "skip files matching a glob, relative to the root (can be repeated)")

	return cmd
}

func scanArgs(args []string, dryRun bool, onResult func(m.FileResult)) domain.ScanArgs {
	return domain.ScanArgs{
		Roots:      rootsFrom(args),
		DryRun:     dryRun,
		Backup:     cfg.Backup,
		Workers:    cfg.Workers,
		ReportPath: m.Path(cfg.Report.Path),
		OnResult:   onResult,
	}
}

// runReport drives a one-shot run through the UI: per-file lines while it
// runs, then the report. The report is shown even when the run ends in a
// sentinel error.
func runReport(run func(onResult func(m.FileResult)) (m.ScanReport, error)) error {
	if err := ui.Start(controller.WithReportMode()); err != nil {
		return err
	}
	defer ui.Close()

	report, err := run(ui.DisplayFileResult)

	if report.RunID != "" {
		if displayErr := ui.DisplayReport(report); displayErr != nil && err == nil {
			err = displayErr
		}
	}

	return err
}

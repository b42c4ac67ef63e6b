package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/mojifix/internal/controller"
	"github.com/mouse-blink/mojifix/internal/domain"
	m "github.com/mouse-blink/mojifix/internal/model"
)

var watchBackupFlag bool
var watchDebounceFlag time.Duration

const watchLongDescription = `Watch the roots and repair files as they are saved. Bursts of events for
one file are collapsed into a single run once the file has been quiet for
the debounce window. Stop with Ctrl+C; the report is written on exit.`

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [roots...]",
		Short: "Repair files continuously as they change",
		Long:  watchLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := interruptContext(cmd.Context())
			defer stop()

			if err := ui.Start(controller.WithWatchMode()); err != nil {
				return err
			}

			// quitting the UI ends the watch
			view := ui
			go func() {
				view.Wait()
				stop()
			}()

			roots := rootsFrom(args)
			debounce := cfg.Watch.Debounce

			err := workflow.Watch(ctx, domain.WatchArgs{
				Roots:      roots,
				Backup:     cfg.Backup,
				Debounce:   debounce,
				ReportPath: m.Path(cfg.Report.Path),
				OnResult:   ui.DisplayFileResult,
				OnReady: func() {
					ui.DisplayWatching(roots, debounce)
				},
			})

			ui.Close()

			return err
		},
	}
	cmd.Flags().BoolVar(&watchBackupFlag, "backup", true, "keep a .bak copy of every rewritten file")
	cmd.Flags().DurationVar(&watchDebounceFlag, "debounce", domain.DefaultDebounce, "quiet period per file before it is processed")

	return cmd
}

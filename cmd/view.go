package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/mojifix/internal/controller"
	m "github.com/mouse-blink/mojifix/internal/model"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the last saved report",
		Long:  "View the report written by the last fix, check or watch run. In a terminal the rows can be browsed and filtered.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			report, err := workflow.LoadReport(m.Path(cfg.Report.Path))
			if err != nil {
				return fmt.Errorf("failed to load report: %w", err)
			}

			if err := ui.Start(controller.WithBrowseMode()); err != nil {
				return err
			}
			defer ui.Close()

			if err := ui.DisplayReport(report); err != nil {
				return err
			}

			ui.Wait()

			return nil
		},
	}

	return cmd
}

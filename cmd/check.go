package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/mojifix/internal/domain"
	m "github.com/mouse-blink/mojifix/internal/model"
)

var checkFixFlag bool

const checkLongDescription = `Scan the roots without writing and exit non-zero when anything is left to
do: a literal that would be rewritten, a file that needs normalizing, a
literal that still looks corrupted, or a file that could not be read.

With --fix, repairs are applied first and only what remains counts.

Exit status is 0 when clean, 1 when issues remain and 2 when a file failed.`

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [roots...]",
		Short: "Fail when corrupted literals remain",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := interruptContext(cmd.Context())
			defer stop()

			return runReport(func(onResult func(m.FileResult)) (m.ScanReport, error) {
				return workflow.Check(ctx, domain.CheckArgs{
					ScanArgs: scanArgs(args, false, onResult),
					Fix:      checkFixFlag,
				})
			})
		},
	}
	cmd.Flags().BoolVar(&checkFixFlag, "fix", false, "apply repairs before checking")

	return cmd
}

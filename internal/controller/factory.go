package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the view for a run. Interactive terminals get the Bubble Tea
// spinner and report browser. Redirected output gets plain result lines.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if !useTTY {
		return NewSimpleUI(cmd)
	}

	return NewTUI(cmd.OutOrStdout())
}

// IsTTY reports whether report output goes to a character device. Anything
// that is not an *os.File, or cannot be stat'ed, is treated as redirected.
func IsTTY(w io.Writer) bool {
	out, ok := w.(*os.File)
	if !ok {
		return false
	}

	stat, err := out.Stat()
	if err != nil {
		return false
	}

	return stat.Mode()&os.ModeCharDevice != 0
}

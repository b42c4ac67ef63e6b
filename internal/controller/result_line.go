package controller

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/mojifix/internal/model"
)

const (
	statusFixed      = "fixed"
	statusWouldFix   = "would fix"
	statusNormalized = "normalized"
	statusUnresolved = "unresolved"
	statusFailed     = "failed"
	statusClean      = "clean"
	statusSkipped    = "unchanged"
)

// resultStatus names the outcome of a file run.
func resultStatus(res m.FileResult) string {
	switch {
	case res.Err != nil:
		return statusFailed
	case res.Skipped:
		return statusSkipped
	case len(res.Changes) > 0 && res.Written:
		return statusFixed
	case len(res.Changes) > 0:
		return statusWouldFix
	case res.Normalized:
		return statusNormalized
	case len(res.Unresolved) > 0:
		return statusUnresolved
	default:
		return statusClean
	}
}

// resultLine formats a file result for plain output. Clean and skipped
// files are reported only when verbose is set.
func resultLine(res m.FileResult, verbose bool) (string, bool) {
	status := resultStatus(res)
	if !verbose && (status == statusClean || status == statusSkipped) {
		return "", false
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%-10s %s", status, res.File)

	if n := len(res.Changes); n > 0 {
		fmt.Fprintf(&b, " (%d literal%s)", n, plural(n))
	}

	if n := len(res.Unresolved); n > 0 && status != statusUnresolved {
		fmt.Fprintf(&b, " (%d unresolved)", n)
	}

	if res.Err != nil {
		fmt.Fprintf(&b, ": %v", res.Err)
	}

	return b.String(), true
}

func plural(n int) string {
	if n == 1 {
		return ""
	}

	return "s"
}

func joinPaths(paths []m.Path) string {
	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		parts = append(parts, string(p))
	}

	return strings.Join(parts, ", ")
}

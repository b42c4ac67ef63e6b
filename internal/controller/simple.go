package controller

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command

	mu     sync.Mutex
	mode   StartMode
	done   chan struct{}
	closed bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, done: make(chan struct{})}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	s.mu.Lock()
	s.mode = cfg.mode
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI and releases Wait.
func (s *SimpleUI) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	close(s.done)
}

// Wait blocks until Close is called in watch mode. Plain output has no
// way for the user to quit on their own, so other modes return at once.
func (s *SimpleUI) Wait() {
	s.mu.Lock()
	mode := s.mode
	s.mu.Unlock()

	if mode != ModeWatch {
		return
	}

	<-s.done
}

// DisplayReport prints the summary and detail tables of a run.
func (s *SimpleUI) DisplayReport(report m.ScanReport) error {
	var buf bytes.Buffer

	_, _ = fmt.Fprintf(&buf, "Run %s (%s) at %s\n\n",
		report.RunID, report.Mode, report.GeneratedAt.Format(time.RFC3339))
	writeSummaryTable(&buf, report)

	if len(report.Changes) > 0 {
		buf.WriteString("\n")
		writeChangesTable(&buf, report.Changes, report.Truncated)
	}

	if len(report.Unresolved) > 0 || len(report.Errors) > 0 {
		buf.WriteString("\n")
		writeFindingsTable(&buf, report.Unresolved, report.Errors)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("%s", buf.String())

	return nil
}

// DisplayFileResult prints one line per file that needed attention.
// Clean and skipped files are silent outside watch mode.
func (s *SimpleUI) DisplayFileResult(res m.FileResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := resultLine(res, s.mode == ModeWatch)
	if !ok {
		return
	}

	s.printf("%s\n", line)
}

// DisplayWatching announces the watched roots.
func (s *SimpleUI) DisplayWatching(roots []m.Path, debounce time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("Watching %s (debounce %s). Press Ctrl+C to stop.\n", joinPaths(roots), debounce)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

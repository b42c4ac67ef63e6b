package controller

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	// input feeds key presses to the program; nil disables input.
	input io.Reader

	mu      sync.Mutex
	mode    StartMode
	program *tea.Program
	started bool
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI reading keys from stdin.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// Start initializes the UI. Watch mode starts the live view right away;
// browse mode waits for the report to show.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	t.mu.Lock()
	t.mode = cfg.mode
	t.mu.Unlock()

	if cfg.mode == ModeWatch {
		return t.startWithModel(newWatchModel())
	}

	return nil
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(t.input))
	t.done = make(chan struct{})
	t.started = true

	program := t.program
	done := t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	return nil
}

// ensureStarted falls back to the watch view when nothing is running.
func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.startWithModel(newWatchModel())
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Close stops the program, if any, and waits for it to restore the
// terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	done := t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits the running program. It returns
// immediately when nothing is running.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayReport shows a run. Browse mode opens an interactive list; the
// other modes print a styled summary followed by the detail tables.
func (t *TUI) DisplayReport(report m.ScanReport) error {
	t.mu.Lock()
	mode := t.mode
	t.mu.Unlock()

	if mode == ModeBrowse {
		return t.startWithModel(newReportModel(report))
	}

	var buf bytes.Buffer

	c := report.Counts

	buf.WriteString(titleStyle.Render(fmt.Sprintf("Run %s (%s)", report.RunID, report.Mode)))
	buf.WriteString("\n")
	buf.WriteString(summaryStyle.Render(fmt.Sprintf(
		"scanned %d  changed %d  literals %d  normalized %d  unresolved %d  failed %d",
		c.FilesScanned, c.FilesChanged, c.LiteralsFixed, c.FilesNormalized, c.Unresolved, c.FilesFailed,
	)))
	buf.WriteString("\n\n")

	writeChangesTable(&buf, report.Changes, report.Truncated)

	if len(report.Unresolved) > 0 || len(report.Errors) > 0 {
		buf.WriteString("\n")
		writeFindingsTable(&buf, report.Unresolved, report.Errors)
	}

	_, err := io.Copy(t.output, &buf)

	return err
}

// DisplayFileResult feeds the live view in watch mode and prints a styled
// line for files that needed attention otherwise.
func (t *TUI) DisplayFileResult(res m.FileResult) {
	t.mu.Lock()
	mode := t.mode
	t.mu.Unlock()

	if mode == ModeWatch {
		t.ensureStarted()
		t.send(fileResultMsg{result: res})

		return
	}

	status := resultStatus(res)
	if status == statusClean || status == statusSkipped {
		return
	}

	line := statusStyle(status).Render(status) + " " + fileStyle.Render(res.File)
	if res.Err != nil {
		line += ": " + res.Err.Error()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintln(t.output, line)
}

// DisplayWatching sets the header of the live view.
func (t *TUI) DisplayWatching(roots []m.Path, debounce time.Duration) {
	names := make([]string, 0, len(roots))
	for _, r := range roots {
		names = append(names, string(r))
	}

	t.send(watchingMsg{roots: names, debounce: debounce})
}

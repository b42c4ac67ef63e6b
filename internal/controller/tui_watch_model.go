package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/mojifix/internal/model"
)

const maxRecentResults = 12

type watchCounts struct {
	processed  int
	fixed      int
	normalized int
	unresolved int
	failed     int
}

type watchModel struct {
	spinner  spinner.Model
	roots    []string
	debounce time.Duration
	counts   watchCounts
	recent   []m.FileResult
	width    int
	quitting bool
}

func newWatchModel() watchModel {
	return watchModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(accentColor)),
		),
		width: 80,
	}
}

func (w watchModel) Init() tea.Cmd {
	return w.spinner.Tick
}

func (w watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			w.quitting = true

			return w, tea.Quit
		}
	case tea.WindowSizeMsg:
		w.width = msg.Width
	case watchingMsg:
		w.roots = msg.roots
		w.debounce = msg.debounce
	case fileResultMsg:
		w = w.record(msg.result)
	case spinner.TickMsg:
		var cmd tea.Cmd

		w.spinner, cmd = w.spinner.Update(msg)

		return w, cmd
	}

	return w, nil
}

func (w watchModel) record(res m.FileResult) watchModel {
	if res.Skipped {
		return w
	}

	w.counts.processed++

	switch resultStatus(res) {
	case statusFixed, statusWouldFix:
		w.counts.fixed++
	case statusNormalized:
		w.counts.normalized++
	case statusFailed:
		w.counts.failed++
	}

	if len(res.Unresolved) > 0 {
		w.counts.unresolved++
	}

	w.recent = append(w.recent, res)
	if len(w.recent) > maxRecentResults {
		w.recent = w.recent[len(w.recent)-maxRecentResults:]
	}

	return w
}

func (w watchModel) View() string {
	var b strings.Builder

	header := "Watching"
	if len(w.roots) > 0 {
		header = fmt.Sprintf("Watching %s", strings.Join(w.roots, ", "))
	}

	if w.quitting {
		b.WriteString(titleStyle.Render("Stopped watching"))
	} else {
		b.WriteString(w.spinner.View() + " " + titleStyle.Render(truncateFile(header, w.width-2)))
	}

	b.WriteString("\n")

	summary := fmt.Sprintf("processed %d  fixed %d  normalized %d  unresolved %d  failed %d",
		w.counts.processed, w.counts.fixed, w.counts.normalized, w.counts.unresolved, w.counts.failed)
	b.WriteString(summaryStyle.Render(summary))
	b.WriteString("\n\n")

	fileWidth := w.width - 12
	for i := len(w.recent) - 1; i >= 0; i-- {
		res := w.recent[i]
		status := resultStatus(res)

		b.WriteString(statusStyle(status).Render(status))
		b.WriteString(" ")
		b.WriteString(fileStyle.Render(truncateFile(res.File, fileWidth)))
		b.WriteString("\n")
	}

	if !w.quitting {
		footer := "q quit"
		if w.debounce > 0 {
			footer = fmt.Sprintf("debounce %s • q quit", w.debounce)
		}

		b.WriteString("\n")
		b.WriteString(footerStyle.Render(footer))
		b.WriteString("\n")
	}

	return b.String()
}

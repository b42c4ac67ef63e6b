package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/mojifix/internal/model"
)

const reportHeaderHeight = 4

// reportDelegate renders one report row per line.
type reportDelegate struct{}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	row, ok := item.(reportItem)
	if !ok {
		return
	}

	status := statusUnresolved

	switch row.kind {
	case itemChange:
		status = statusFixed
	case itemError:
		status = statusFailed
	}

	width := lm.Width() - 11
	locWidth := width / 3
	detail := row.detail()

	loc := truncateFile(row.location(), locWidth)
	text := truncateFile(detail, width-locWidth-2)

	if index == lm.Index() {
		_, _ = fmt.Fprint(w, statusStyle(status).Render(status)+" "+
			selectedStyle.Render(fmt.Sprintf("%-*s  %s", locWidth, loc, text)))

		return
	}

	_, _ = fmt.Fprint(w, statusStyle(status).Render(status)+" "+
		fileStyle.Render(fmt.Sprintf("%-*s", locWidth, loc))+"  "+summaryStyle.Render(text))
}

func (r reportItem) detail() string {
	flat := strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`)

	switch r.kind {
	case itemChange:
		return flat.Replace(r.before) + " → " + flat.Replace(r.after)
	default:
		return flat.Replace(r.before)
	}
}

type reportModel struct {
	report m.ScanReport
	list   list.Model
}

func newReportModel(report m.ScanReport) reportModel {
	rows := reportItems(report)
	items := make([]list.Item, 0, len(rows))

	for _, row := range rows {
		items = append(items, row)
	}

	l := list.New(items, reportDelegate{}, 80, 20)
	l.Title = fmt.Sprintf("Run %s", report.RunID)
	l.SetShowTitle(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return reportModel{report: report, list: l}
}

func (r reportModel) Init() tea.Cmd {
	return nil
}

func (r reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}

		if msg.String() == "q" && r.list.FilterState() != list.Filtering {
			return r, tea.Quit
		}
	case tea.WindowSizeMsg:
		r.list.SetSize(msg.Width, max(msg.Height-reportHeaderHeight, 1))

		return r, nil
	}

	var cmd tea.Cmd

	r.list, cmd = r.list.Update(msg)

	return r, cmd
}

func (r reportModel) View() string {
	c := r.report.Counts

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Run %s (%s)", r.report.RunID, r.report.Mode)))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"scanned %d  changed %d  literals %d  normalized %d  unresolved %d  failed %d",
		c.FilesScanned, c.FilesChanged, c.LiteralsFixed, c.FilesNormalized, c.Unresolved, c.FilesFailed,
	)))

	if r.report.Truncated {
		b.WriteString(footerStyle.Render("  (changes truncated)"))
	}

	b.WriteString("\n\n")
	b.WriteString(r.list.View())

	return b.String()
}

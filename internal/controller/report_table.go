package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/mojifix/internal/model"
)

const maxCellWidth = 48

// writeSummaryTable renders the counts of a report.
func writeSummaryTable(w io.Writer, report m.ScanReport) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scanned", "Changed", "Literals", "Normalized", "Unresolved", "Failed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	c := report.Counts
	table.Append([]string{
		fmt.Sprintf("%d", c.FilesScanned),
		fmt.Sprintf("%d", c.FilesChanged),
		fmt.Sprintf("%d", c.LiteralsFixed),
		fmt.Sprintf("%d", c.FilesNormalized),
		fmt.Sprintf("%d", c.Unresolved),
		fmt.Sprintf("%d", c.FilesFailed),
	})

	table.Render()
}

// writeChangesTable renders change records; nothing is written for none.
func writeChangesTable(w io.Writer, changes []m.ChangeRecord, truncated bool) {
	if len(changes) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Line", "Before", "After", "Via"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, ch := range changes {
		table.Append([]string{
			ch.File,
			fmt.Sprintf("%d", ch.Line),
			cell(ch.Before),
			cell(ch.After),
			string(ch.Provenance),
		})
	}

	footer := fmt.Sprintf("%d records", len(changes))
	if truncated {
		footer += " (truncated)"
	}

	table.SetFooter([]string{footer, "", "", "", ""})
	table.Render()
}

// writeFindingsTable renders unresolved literals and failed files.
func writeFindingsTable(w io.Writer, findings []m.Finding, errs []m.FileError) {
	if len(findings) == 0 && len(errs) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Line", "Problem"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, f := range findings {
		table.Append([]string{f.File, fmt.Sprintf("%d", f.Line), "unresolved: " + cell(f.Text)})
	}

	for _, e := range errs {
		table.Append([]string{e.File, "", "error: " + e.Message})
	}

	table.Render()
}

// cell flattens and shortens text for a single table cell.
func cell(s string) string {
	s = strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`).Replace(s)

	runes := []rune(s)
	if len(runes) > maxCellWidth {
		return string(runes[:maxCellWidth-1]) + "…"
	}

	return s
}

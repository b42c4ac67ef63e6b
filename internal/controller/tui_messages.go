package controller

import (
	"fmt"
	"time"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// Message types.
type fileResultMsg struct {
	result m.FileResult
}

type watchingMsg struct {
	roots    []string
	debounce time.Duration
}

// List item types.
type itemKind int

const (
	itemChange itemKind = iota
	itemUnresolved
	itemError
)

type reportItem struct {
	kind   itemKind
	file   string
	line   int
	before string
	after  string
	via    string
}

func (r reportItem) FilterValue() string {
	return r.file
}

func (r reportItem) location() string {
	if r.line <= 0 {
		return r.file
	}

	return fmt.Sprintf("%s:%d", r.file, r.line)
}

// reportItems flattens a report into list rows: changes first, then
// unresolved literals, then failed files.
func reportItems(report m.ScanReport) []reportItem {
	items := make([]reportItem, 0, len(report.Changes)+len(report.Unresolved)+len(report.Errors))

	for _, ch := range report.Changes {
		items = append(items, reportItem{
			kind:   itemChange,
			file:   ch.File,
			line:   ch.Line,
			before: ch.Before,
			after:  ch.After,
			via:    string(ch.Provenance),
		})
	}

	for _, f := range report.Unresolved {
		items = append(items, reportItem{kind: itemUnresolved, file: f.File, line: f.Line, before: f.Text})
	}

	for _, e := range report.Errors {
		items = append(items, reportItem{kind: itemError, file: e.File, before: e.Message})
	}

	return items
}

package controller

import (
	"errors"
	"time"

	m "github.com/mouse-blink/mojifix/internal/model"
)

func sampleReport() m.ScanReport {
	return m.ScanReport{
		RunID:       "run-1",
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Mode:        m.ModeApply,
		Roots:       []string{"src"},
		Counts: m.Counts{
			FilesScanned:  3,
			FilesChanged:  1,
			LiteralsFixed: 1,
			Unresolved:    1,
			FilesFailed:   1,
		},
		Changes: []m.ChangeRecord{
			{File: "src/app.js", Line: 4, Before: "ط§ظ„ط¹ط±ط¨ظٹط©", After: "العربية", Provenance: m.ProvenanceCodepage},
		},
		Unresolved: []m.Finding{{File: "src/menu.js", Line: 9, Text: "ØØ"}},
		Errors:     []m.FileError{{File: "src/locked.js", Message: "permission denied"}},
	}
}

func fixedResult() m.FileResult {
	return m.FileResult{
		File:    "src/app.js",
		Changes: []m.ChangeRecord{{File: "src/app.js", Line: 4, Before: "ط§ظ„ط¹ط±ط¨ظٹط©", After: "العربية"}},
		Written: true,
	}
}

func failedResult() m.FileResult {
	return m.FileResult{File: "src/locked.js", Err: errors.New("permission denied")}
}

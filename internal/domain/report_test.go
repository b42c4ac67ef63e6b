package domain

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/mojifix/internal/model"
)

func change(file string, line int) m.ChangeRecord {
	return m.ChangeRecord{File: file, Line: line, Before: "b", After: "a", Provenance: m.ProvenanceCodepage}
}

func TestReportBuilder_Counts(t *testing.T) {
	b := NewReportBuilder(m.ModeApply, []m.Path{"src"}, ReportLimits{})

	b.Add(m.FileResult{File: "clean.js"})
	b.Add(m.FileResult{File: "fixed.js", Changes: []m.ChangeRecord{change("fixed.js", 1), change("fixed.js", 9)}, Normalized: true})
	b.Add(m.FileResult{File: "bom.js", Normalized: true})
	b.Add(m.FileResult{File: "bad.js", Unresolved: []m.Finding{{File: "bad.js", Line: 2, Text: "ØØ"}}})
	b.Add(m.FileResult{File: "locked.js", Err: errors.New("permission denied")})
	b.Add(m.FileResult{File: "same.js", Skipped: true})

	report := b.Build()

	assert.Equal(t, m.Counts{
		FilesScanned:    5,
		FilesChanged:    2,
		LiteralsFixed:   2,
		FilesNormalized: 1,
		Unresolved:      1,
		FilesFailed:     1,
	}, report.Counts)
	assert.Equal(t, []m.FileError{{File: "locked.js", Message: "permission denied"}}, report.Errors)
	assert.Equal(t, m.ModeApply, report.Mode)
	assert.Equal(t, []string{"src"}, report.Roots)
	assert.True(t, report.HasIssues())

	_, err := uuid.Parse(report.RunID)
	require.NoError(t, err)
}

func TestReportBuilder_SortsTruncatesAndSamples(t *testing.T) {
	b := NewReportBuilder(m.ModeDryRun, nil, ReportLimits{MaxRecords: 3, SampleSize: 2})
	b.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600)) }

	b.Add(m.FileResult{File: "b.js", Changes: []m.ChangeRecord{change("b.js", 4), change("b.js", 1)}})
	b.Add(m.FileResult{File: "a.js", Changes: []m.ChangeRecord{change("a.js", 7), change("a.js", 3)}})

	report := b.Build()

	assert.Equal(t, []m.ChangeRecord{change("a.js", 3), change("a.js", 7), change("b.js", 1)}, report.Changes)
	assert.True(t, report.Truncated)
	assert.Equal(t, []m.ChangeRecord{change("a.js", 3), change("a.js", 7)}, report.Sample)
	assert.Equal(t, 4, report.Counts.LiteralsFixed, "counts are not truncated")
	assert.Equal(t, time.Date(2026, 1, 2, 2, 4, 5, 0, time.UTC), report.GeneratedAt)
}

func TestReportBuilder_EmptyReport(t *testing.T) {
	report := NewReportBuilder(m.ModeCheck, nil, ReportLimits{SampleSize: 5}).Build()

	assert.NotNil(t, report.Changes)
	assert.Empty(t, report.Changes)
	assert.Nil(t, report.Sample)
	assert.False(t, report.Truncated)
	assert.False(t, report.HasIssues())
}

func TestReportBuilder_ConcurrentAdd(t *testing.T) {
	b := NewReportBuilder(m.ModeApply, nil, ReportLimits{})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			b.Add(m.FileResult{File: "f.js", Changes: []m.ChangeRecord{change("f.js", i)}})
		}()
	}

	wg.Wait()

	report := b.Build()
	assert.Equal(t, 50, report.Counts.FilesChanged)
	assert.Len(t, report.Changes, 50)
}

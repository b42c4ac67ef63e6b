package domain

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// ReportLimits bounds the size of a ScanReport.
type ReportLimits struct {
	// MaxRecords caps Changes; zero keeps every record.
	MaxRecords int
	// SampleSize is the number of records copied into Sample.
	SampleSize int
}

// ReportBuilder collects per-file results from concurrent workers.
type ReportBuilder struct {
	mu sync.Mutex

	mode   m.Mode
	roots  []string
	limits ReportLimits
	now    func() time.Time

	counts     m.Counts
	changes    []m.ChangeRecord
	unresolved []m.Finding
	errors     []m.FileError
}

// NewReportBuilder starts an empty report for one run.
func NewReportBuilder(mode m.Mode, roots []m.Path, limits ReportLimits) *ReportBuilder {
	rootStrs := make([]string, 0, len(roots))
	for _, root := range roots {
		rootStrs = append(rootStrs, string(root))
	}

	return &ReportBuilder{
		mode:   mode,
		roots:  rootStrs,
		limits: limits,
		now:    time.Now,
	}
}

// Add merges one file result.
func (b *ReportBuilder) Add(res m.FileResult) {
	if res.Skipped {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.counts.FilesScanned++

	if res.Err != nil {
		b.counts.FilesFailed++
		b.errors = append(b.errors, m.FileError{File: res.File, Message: res.Err.Error()})

		return
	}

	b.counts.Unresolved += len(res.Unresolved)
	b.unresolved = append(b.unresolved, res.Unresolved...)

	if !res.NeedsWrite() {
		return
	}

	b.counts.FilesChanged++

	if len(res.Changes) == 0 {
		b.counts.FilesNormalized++

		return
	}

	b.counts.LiteralsFixed += len(res.Changes)
	b.changes = append(b.changes, res.Changes...)
}

// Build produces the report. Records are ordered by file and line.
func (b *ReportBuilder) Build() m.ScanReport {
	b.mu.Lock()
	defer b.mu.Unlock()

	changes := append([]m.ChangeRecord(nil), b.changes...)
	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].File != changes[j].File {
			return changes[i].File < changes[j].File
		}

		return changes[i].Line < changes[j].Line
	})

	unresolved := append([]m.Finding(nil), b.unresolved...)
	sort.SliceStable(unresolved, func(i, j int) bool {
		if unresolved[i].File != unresolved[j].File {
			return unresolved[i].File < unresolved[j].File
		}

		return unresolved[i].Line < unresolved[j].Line
	})

	errs := append([]m.FileError(nil), b.errors...)
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].File < errs[j].File })

	report := m.ScanReport{
		RunID:       uuid.NewString(),
		GeneratedAt: b.now().UTC(),
		Mode:        b.mode,
		Roots:       append([]string(nil), b.roots...),
		Counts:      b.counts,
		Changes:     changes,
		Unresolved:  unresolved,
		Errors:      errs,
	}

	if n := b.limits.SampleSize; n > 0 && len(changes) > 0 {
		report.Sample = append([]m.ChangeRecord(nil), changes[:min(n, len(changes))]...)
	}

	if n := b.limits.MaxRecords; n > 0 && len(changes) > n {
		report.Changes = changes[:n]
		report.Truncated = true
	}

	if report.Changes == nil {
		report.Changes = []m.ChangeRecord{}
	}

	return report
}

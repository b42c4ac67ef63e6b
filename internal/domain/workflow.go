package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/mojifix/internal/adapter"
	"github.com/mouse-blink/mojifix/internal/domain/lexer"
	"github.com/mouse-blink/mojifix/internal/logging"
	m "github.com/mouse-blink/mojifix/internal/model"
)

var (
	// ErrUnresolvedIssues is returned by Check when issues remain.
	ErrUnresolvedIssues = errors.New("unresolved encoding issues remain")
	// ErrFilesFailed is returned when at least one file could not be processed.
	ErrFilesFailed = errors.New("one or more files failed")
)

// DefaultDebounce is the per-file quiet period in watch mode.
const DefaultDebounce = 200 * time.Millisecond

// Workflow defines the recovery operations exposed to the CLI.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) (m.ScanReport, error)
	Check(ctx context.Context, args CheckArgs) (m.ScanReport, error)
	Watch(ctx context.Context, args WatchArgs) error
	LoadReport(path m.Path) (m.ScanReport, error)
}

// ScanArgs configures a one-shot run.
type ScanArgs struct {
	Roots      []m.Path
	DryRun     bool
	Backup     bool
	Workers    int
	ReportPath m.Path
	// OnResult, when set, is called once per processed file from the
	// worker goroutines.
	OnResult func(m.FileResult)
}

// CheckArgs configures a gate run.
type CheckArgs struct {
	ScanArgs
	Fix bool
}

// WatchArgs configures continuous mode.
type WatchArgs struct {
	Roots      []m.Path
	Backup     bool
	Debounce   time.Duration
	ReportPath m.Path
	OnResult   func(m.FileResult)
	// OnReady is called once every root is being watched.
	OnReady func()
}

// EventSourceFactory opens a file event stream over roots.
type EventSourceFactory func(roots []m.Path) (adapter.EventSource, error)

// Options carries the collaborators of a workflow.
type Options struct {
	Logger       *slog.Logger
	Limits       ReportLimits
	LexerOptions []lexer.Option
	Events       EventSourceFactory
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	resolver    Resolver
	opts        Options
	logger      *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	resolver Resolver,
	opts Options,
) Workflow {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		resolver:    resolver,
		opts:        opts,
		logger:      logger,
	}
}

// Scan fixes, or with DryRun only reports, every eligible file under the
// roots. Per-file failures are collected; the report is saved either way.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) (m.ScanReport, error) {
	mode := m.ModeApply
	if args.DryRun {
		mode = m.ModeDryRun
	}

	report, err := w.run(ctx, mode, args)
	if err != nil {
		return report, err
	}

	if report.Counts.FilesFailed > 0 {
		return report, ErrFilesFailed
	}

	return report, nil
}

// Check scans without writing, or fixes first when Fix is set, and reports
// whether anything is left to do.
func (w *workflow) Check(ctx context.Context, args CheckArgs) (m.ScanReport, error) {
	mode := m.ModeCheck
	if args.Fix {
		mode = m.ModeApply
	}

	report, err := w.run(ctx, mode, args.ScanArgs)
	if err != nil {
		return report, err
	}

	if report.Counts.FilesFailed > 0 {
		return report, ErrFilesFailed
	}

	if checkFailed(report, args.Fix) {
		return report, ErrUnresolvedIssues
	}

	return report, nil
}

func checkFailed(report m.ScanReport, fixed bool) bool {
	if report.HasIssues() {
		return true
	}

	if fixed {
		return false
	}

	return report.Counts.LiteralsFixed > 0 || report.Counts.FilesNormalized > 0
}

func (w *workflow) run(ctx context.Context, mode m.Mode, args ScanArgs) (m.ScanReport, error) {
	sources, err := w.fsAdapter.Get(args.Roots)
	if err != nil {
		return m.ScanReport{}, fmt.Errorf("failed to get sources: %w", err)
	}

	w.logger.Info("scan started", "mode", mode, "files", len(sources))

	builder := NewReportBuilder(mode, args.Roots, w.opts.Limits)
	pipeline := NewPipeline(w.fsAdapter, w.resolver, w.logger, args.Backup, w.opts.LexerOptions...)

	if err := w.process(ctx, pipeline, sources, mode, args, builder); err != nil {
		return builder.Build(), err
	}

	report := builder.Build()

	if err := w.saveReport(args.ReportPath, report); err != nil {
		return report, err
	}

	w.logger.Info("scan finished",
		"mode", mode,
		"scanned", report.Counts.FilesScanned,
		"changed", report.Counts.FilesChanged,
		"literals", report.Counts.LiteralsFixed,
		"unresolved", report.Counts.Unresolved,
		"failed", report.Counts.FilesFailed,
	)

	return report, nil
}

// process runs the pipeline over sources on a bounded pool.
func (w *workflow) process(
	ctx context.Context,
	pipeline *Pipeline,
	sources []m.SourceFile,
	mode m.Mode,
	args ScanArgs,
	builder *ReportBuilder,
) error {
	workers := args.Workers
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, src := range sources {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res := pipeline.Run(src, mode, 0)
			builder.Add(res)

			if args.OnResult != nil {
				args.OnResult(res)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

func (w *workflow) saveReport(path m.Path, report m.ScanReport) error {
	if path == "" || w.reportStore == nil {
		return nil
	}

	if err := w.reportStore.SaveReport(path, report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	w.logger.Debug("report saved", "path", path)

	return nil
}

// LoadReport reads a previously saved report.
func (w *workflow) LoadReport(path m.Path) (m.ScanReport, error) {
	if w.reportStore == nil {
		return m.ScanReport{}, errors.New("no report store configured")
	}

	return w.reportStore.LoadReport(path)
}

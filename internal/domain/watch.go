package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// Watch reprocesses files as they change until ctx is cancelled. Rapid
// events for one file collapse into a single run after the debounce window,
// and a file never runs twice at once.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if w.opts.Events == nil {
		return errors.New("watch: no event source configured")
	}

	source, err := w.opts.Events(args.Roots)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	go source.Start()

	defer func() { _ = source.Close() }()

	debounce := args.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	builder := NewReportBuilder(m.ModeWatch, args.Roots, w.opts.Limits)

	coord := newWatchCoordinator(
		w.fsAdapter,
		NewPipeline(w.fsAdapter, w.resolver, w.logger, args.Backup, w.opts.LexerOptions...),
		debounce,
		w.logger,
		func(res m.FileResult) {
			builder.Add(res)

			if args.OnResult != nil {
				args.OnResult(res)
			}
		},
	)

	w.logger.Info("watching", "roots", len(args.Roots), "debounce", debounce)

	if args.OnReady != nil {
		args.OnReady()
	}

	coord.run(ctx, source.Events())

	return w.saveReport(args.ReportPath, builder.Build())
}

// sourceLookup resolves a changed path to a SourceFile.
type sourceLookup interface {
	Source(path m.Path) (m.SourceFile, bool)
}

type pendingTimer struct {
	timer *time.Timer
	gen   uint64
}

type timerFired struct {
	path m.Path
	gen  uint64
}

type runDone struct {
	path m.Path
	res  m.FileResult
}

// watchCoordinator owns every per-file timer and run state. All maps are
// touched only from the run goroutine.
type watchCoordinator struct {
	sources  sourceLookup
	pipeline *Pipeline
	debounce time.Duration
	logger   *slog.Logger
	onResult func(m.FileResult)

	gen          uint64
	timers       map[m.Path]pendingTimer
	running      map[m.Path]bool
	dirty        map[m.Path]bool
	fingerprints map[m.Path]uint64

	fired chan timerFired
	done  chan runDone
	stop  chan struct{}
	wg    sync.WaitGroup
}

func newWatchCoordinator(
	sources sourceLookup,
	pipeline *Pipeline,
	debounce time.Duration,
	logger *slog.Logger,
	onResult func(m.FileResult),
) *watchCoordinator {
	return &watchCoordinator{
		sources:      sources,
		pipeline:     pipeline,
		debounce:     debounce,
		logger:       logger,
		onResult:     onResult,
		timers:       make(map[m.Path]pendingTimer),
		running:      make(map[m.Path]bool),
		dirty:        make(map[m.Path]bool),
		fingerprints: make(map[m.Path]uint64),
		fired:        make(chan timerFired),
		done:         make(chan runDone),
		stop:         make(chan struct{}),
	}
}

// run consumes events until ctx is done or events is closed, then stops all
// timers and waits for in-flight runs.
func (c *watchCoordinator) run(ctx context.Context, events <-chan m.WatchEvent) {
	defer c.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}

			c.handleEvent(ev)
		case f := <-c.fired:
			pending, ok := c.timers[f.path]
			if !ok || pending.gen != f.gen {
				// superseded by a later event
				continue
			}

			delete(c.timers, f.path)
			c.start(f.path)
		case d := <-c.done:
			c.finish(d)
		}
	}
}

func (c *watchCoordinator) handleEvent(ev m.WatchEvent) {
	switch ev.Op {
	case m.OpRemove, m.OpRename:
		if pending, ok := c.timers[ev.Path]; ok {
			pending.timer.Stop()
			delete(c.timers, ev.Path)
		}

		delete(c.fingerprints, ev.Path)
	default:
		c.schedule(ev.Path)
	}
}

// schedule starts or resets the debounce timer of path.
func (c *watchCoordinator) schedule(path m.Path) {
	if pending, ok := c.timers[path]; ok {
		pending.timer.Stop()
	}

	c.gen++
	gen := c.gen

	timer := time.AfterFunc(c.debounce, func() {
		select {
		case c.fired <- timerFired{path: path, gen: gen}:
		case <-c.stop:
		}
	})

	c.timers[path] = pendingTimer{timer: timer, gen: gen}
}

// start runs the pipeline for path, or marks it dirty when a run is already
// in flight.
func (c *watchCoordinator) start(path m.Path) {
	if c.running[path] {
		c.dirty[path] = true

		return
	}

	src, ok := c.sources.Source(path)
	if !ok {
		return
	}

	c.running[path] = true
	prev := c.fingerprints[path]

	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		res := c.pipeline.Run(src, m.ModeWatch, prev)

		select {
		case c.done <- runDone{path: path, res: res}:
		case <-c.stop:
			if !res.Skipped {
				c.onResult(res)
			}
		}
	}()
}

func (c *watchCoordinator) finish(d runDone) {
	delete(c.running, d.path)

	if d.res.Err == nil {
		c.fingerprints[d.path] = d.res.Fingerprint
	}

	if !d.res.Skipped {
		c.onResult(d.res)
	}

	if c.dirty[d.path] {
		delete(c.dirty, d.path)
		c.start(d.path)
	}
}

func (c *watchCoordinator) shutdown() {
	for path, pending := range c.timers {
		pending.timer.Stop()
		delete(c.timers, path)
	}

	close(c.stop)
	c.wg.Wait()

	c.logger.Info("watch stopped")
}

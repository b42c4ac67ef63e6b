// Package controller renders mojifix runs to the terminal.
package controller

import (
	"time"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	// ModeReport prints a finished run and returns.
	ModeReport StartMode = iota
	// ModeWatch shows files as they are processed until closed.
	ModeWatch
	// ModeBrowse lets the user page through a saved report.
	ModeBrowse
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithReportMode sets the UI to one-shot report mode.
func WithReportMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReport
	}
}

// WithWatchMode sets the UI to continuous watch mode.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

// WithBrowseMode sets the UI to interactive report browsing.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how runs are shown to the user. Implementations can use
// different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	// Wait blocks until the UI is closed, by the user or by Close.
	Wait()
	DisplayReport(report m.ScanReport) error
	// DisplayFileResult may be called from several goroutines.
	DisplayFileResult(res m.FileResult)
	DisplayWatching(roots []m.Path, debounce time.Duration)
}

package model

import "time"

// Mode is the operating mode of a run.
type Mode string

// Available modes.
const (
	ModeDryRun Mode = "dry-run"
	ModeApply  Mode = "apply"
	ModeCheck  Mode = "check"
	ModeWatch  Mode = "watch"
)

// Writes reports whether the mode rewrites files.
func (m Mode) Writes() bool {
	return m == ModeApply || m == ModeWatch
}

// ChangeRecord describes one literal that was (or would be) rewritten.
type ChangeRecord struct {
	File       string     `json:"file" yaml:"file"`
	Line       int        `json:"line" yaml:"line"`
	Before     string     `json:"before" yaml:"before"`
	After      string     `json:"after" yaml:"after"`
	Provenance Provenance `json:"provenance,omitempty" yaml:"provenance,omitempty"`
}

// Finding is a literal that still looks corrupted and could not be fixed.
type Finding struct {
	File string `json:"file" yaml:"file"`
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

// FileError is a per-file failure that did not abort the run.
type FileError struct {
	File    string `json:"file" yaml:"file"`
	Message string `json:"message" yaml:"message"`
}

// Counts summarises a run.
type Counts struct {
	FilesScanned    int `json:"files_scanned" yaml:"files_scanned"`
	FilesChanged    int `json:"files_changed" yaml:"files_changed"`
	LiteralsFixed   int `json:"literals_fixed" yaml:"literals_fixed"`
	FilesNormalized int `json:"files_normalized" yaml:"files_normalized"`
	Unresolved      int `json:"unresolved" yaml:"unresolved"`
	FilesFailed     int `json:"files_failed" yaml:"files_failed"`
}

// ScanReport is the durable artifact of one run. It is overwritten, never
// merged.
type ScanReport struct {
	RunID       string         `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Mode        Mode           `json:"mode" yaml:"mode"`
	Roots       []string       `json:"roots" yaml:"roots"`
	Counts      Counts         `json:"counts" yaml:"counts"`
	Changes     []ChangeRecord `json:"changes" yaml:"changes"`
	Truncated   bool           `json:"truncated" yaml:"truncated"`
	Sample      []ChangeRecord `json:"sample,omitempty" yaml:"sample,omitempty"`
	Unresolved  []Finding      `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
	Errors      []FileError    `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// HasIssues reports whether anything is left for a human to look at.
func (r ScanReport) HasIssues() bool {
	return r.Counts.Unresolved > 0 || r.Counts.FilesFailed > 0
}

package model

// FileResult is the outcome of running the pipeline over one file.
type FileResult struct {
	File       string
	Path       Path
	Changes    []ChangeRecord
	Unresolved []Finding
	// Normalized reports that a BOM or legacy encoding had to be removed.
	Normalized bool
	// Written reports that the file on disk was replaced.
	Written bool
	Backup  Path
	// Skipped reports that the content matched the last fingerprint and
	// nothing ran.
	Skipped bool
	// Fingerprint is the xxh3 hash of the file content after the run.
	Fingerprint uint64
	Err         error
}

// NeedsWrite reports whether the file content differs from what is on disk.
func (r FileResult) NeedsWrite() bool {
	return len(r.Changes) > 0 || r.Normalized
}

// Package model defines the data structures shared by the recovery pipeline.
package model

// Path represents a file system path.
type Path string

// SourceFile is a text file picked up by the directory walk.
type SourceFile struct {
	Path    Path
	RelPath string // slash-separated, relative to the root it was found under
	Raw     []byte
	// HadBOM reports a UTF-8 byte-order mark that was stripped on decode.
	HadBOM bool
	// NonUTF8 reports that Raw failed UTF-8 validation and was decoded
	// through the legacy Arabic code page instead.
	NonUTF8 bool
}

// NeedsNormalization reports whether the file must be rewritten even when no
// literal changed.
func (f SourceFile) NeedsNormalization() bool {
	return f.HadBOM || f.NonUTF8
}

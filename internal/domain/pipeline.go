package domain

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zeebo/xxh3"

	"github.com/mouse-blink/mojifix/internal/adapter"
	"github.com/mouse-blink/mojifix/internal/domain/codec"
	"github.com/mouse-blink/mojifix/internal/domain/lexer"
	"github.com/mouse-blink/mojifix/internal/logging"
	m "github.com/mouse-blink/mojifix/internal/model"
)

// ErrBinaryFile is reported for files that look binary.
var ErrBinaryFile = errors.New("binary file")

// Pipeline runs decode, tokenize, resolve and rewrite over one file.
type Pipeline struct {
	fs       adapter.SourceFSAdapter
	resolver Resolver
	logger   *slog.Logger
	backup   bool
	lexOpts  []lexer.Option
}

// NewPipeline wires a pipeline. backup controls .bak files on write.
func NewPipeline(fs adapter.SourceFSAdapter, resolver Resolver, logger *slog.Logger, backup bool, lexOpts ...lexer.Option) *Pipeline {
	if logger == nil {
		logger = logging.Discard()
	}

	return &Pipeline{
		fs:       fs,
		resolver: resolver,
		logger:   logger,
		backup:   backup,
		lexOpts:  lexOpts,
	}
}

// Run processes src. Files are written only when mode writes and the content
// changed. When prev is non-zero and matches the content on disk, the file is
// skipped.
func (p *Pipeline) Run(src m.SourceFile, mode m.Mode, prev uint64) m.FileResult {
	res := m.FileResult{File: src.RelPath, Path: src.Path}

	raw, err := p.fs.ReadFile(src.Path)
	if err != nil {
		res.Err = fmt.Errorf("read: %w", err)
		p.logger.Warn("failed to read file", "file", src.RelPath, "error", err)

		return res
	}

	res.Fingerprint = xxh3.Hash(raw)

	if prev != 0 && prev == res.Fingerprint {
		res.Skipped = true

		return res
	}

	if codec.IsBinary(raw) {
		res.Err = ErrBinaryFile
		p.logger.Debug("skipping binary file", "file", src.RelPath)

		return res
	}

	decoded := codec.Decode(raw)
	src.Raw = raw
	src.HadBOM = decoded.HadBOM
	src.NonUTF8 = decoded.NonUTF8

	spans := lexer.Tokenize(decoded.Text, p.lexOpts...)
	lines := newLineIndex(decoded.Text)
	directives := buildDirectives(decoded.Text, spans, lines)

	outcome := process(src.RelPath, decoded.Text, spans, p.resolver, directives, lines)

	res.Changes = outcome.Changes
	res.Unresolved = outcome.Unresolved
	res.Normalized = !directives.IgnoresFile() && src.NeedsNormalization()

	if !res.NeedsWrite() || !mode.Writes() {
		return res
	}

	if p.backup {
		backup, err := p.fs.Backup(src.Path, src.Raw)
		if err != nil {
			res.Err = fmt.Errorf("backup: %w", err)
			p.logger.Error("backup failed, file left unchanged", "file", src.RelPath, "error", err)

			return res
		}

		res.Backup = backup
	}

	content := []byte(outcome.Text)

	if err := p.fs.WriteFileAtomic(src.Path, content); err != nil {
		res.Err = fmt.Errorf("write: %w", err)
		p.logger.Error("failed to write file", "file", src.RelPath, "error", err)

		return res
	}

	res.Written = true
	res.Fingerprint = xxh3.Hash(content)

	p.logger.Info("file rewritten",
		"file", src.RelPath,
		"literals", len(res.Changes),
		"normalized", res.Normalized,
	)

	return res
}

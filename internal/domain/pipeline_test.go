package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"

	"github.com/mouse-blink/mojifix/internal/adapter"
	adaptermocks "github.com/mouse-blink/mojifix/internal/adapter/mocks"
	m "github.com/mouse-blink/mojifix/internal/model"
)

func writeSource(t *testing.T, dir, name string, content []byte) m.SourceFile {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))

	return m.SourceFile{Path: m.Path(path), RelPath: filepath.ToSlash(name)}
}

func readSource(t *testing.T, src m.SourceFile) []byte {
	t.Helper()

	data, err := os.ReadFile(string(src.Path))
	require.NoError(t, err)

	return data
}

func newLocalPipeline(backup bool) *Pipeline {
	return NewPipeline(adapter.NewLocalSourceFSAdapter(nil), newTestResolver(), nil, backup)
}

func TestPipeline_ApplyFixesAndBacksUp(t *testing.T) {
	dir := t.TempDir()
	original := []byte("import x from 'y';\n\nconst title = '" + corruptedArabic + "';\n")
	src := writeSource(t, dir, "src/title.js", original)

	res := newLocalPipeline(true).Run(src, m.ModeApply, 0)

	require.NoError(t, res.Err)
	assert.True(t, res.Written)
	assert.Equal(t, []m.ChangeRecord{{
		File:       "src/title.js",
		Line:       3,
		Before:     corruptedArabic,
		After:      fixedArabic,
		Provenance: m.ProvenanceCodepage,
	}}, res.Changes)

	assert.Equal(t, "import x from 'y';\n\nconst title = '"+fixedArabic+"';\n", string(readSource(t, src)))

	require.Equal(t, m.Path(string(src.Path)+adapter.BackupSuffix), res.Backup)
	backup, err := os.ReadFile(string(res.Backup))
	require.NoError(t, err)
	assert.Equal(t, original, backup)

	assert.Equal(t, xxh3.Hash(readSource(t, src)), res.Fingerprint)
}

func TestPipeline_SecondRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "a.ts", []byte("let s = \""+corruptedSaved+"\";\n"))
	p := newLocalPipeline(false)

	first := p.Run(src, m.ModeApply, 0)
	require.NoError(t, first.Err)
	require.Len(t, first.Changes, 1)
	after := readSource(t, src)

	second := p.Run(src, m.ModeApply, 0)
	require.NoError(t, second.Err)
	assert.Empty(t, second.Changes)
	assert.False(t, second.Written)
	assert.Equal(t, after, readSource(t, src))
}

func TestPipeline_CleanFileIsUntouched(t *testing.T) {
	dir := t.TempDir()
	content := []byte("const a = '" + fixedArabic + "'; // it's fine\n")
	src := writeSource(t, dir, "clean.js", content)

	info, err := os.Stat(string(src.Path))
	require.NoError(t, err)

	res := newLocalPipeline(true).Run(src, m.ModeApply, 0)

	require.NoError(t, res.Err)
	assert.False(t, res.NeedsWrite())
	assert.False(t, res.Written)
	assert.Empty(t, res.Backup)
	assert.Equal(t, content, readSource(t, src))

	after, err := os.Stat(string(src.Path))
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), after.ModTime())

	_, err = os.Stat(string(src.Path) + adapter.BackupSuffix)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestPipeline_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	content := []byte("a = '" + corruptedArabic + "'")
	src := writeSource(t, dir, "a.js", content)

	res := newLocalPipeline(true).Run(src, m.ModeDryRun, 0)

	require.NoError(t, res.Err)
	assert.Len(t, res.Changes, 1)
	assert.False(t, res.Written)
	assert.Equal(t, content, readSource(t, src))

	_, err := os.Stat(string(src.Path) + adapter.BackupSuffix)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestPipeline_NormalizesEncoding(t *testing.T) {
	t.Run("bom is stripped", func(t *testing.T) {
		dir := t.TempDir()
		src := writeSource(t, dir, "bom.js", append([]byte{0xEF, 0xBB, 0xBF}, "x = 1;\n"...))

		res := newLocalPipeline(false).Run(src, m.ModeApply, 0)

		require.NoError(t, res.Err)
		assert.True(t, res.Normalized)
		assert.Empty(t, res.Changes)
		assert.True(t, res.Written)
		assert.Equal(t, "x = 1;\n", string(readSource(t, src)))
	})

	t.Run("legacy bytes become utf-8", func(t *testing.T) {
		dir := t.TempDir()
		src := writeSource(t, dir, "legacy.js", []byte{'a', '=', '"', 0xC7, 0xE1, '"'})

		res := newLocalPipeline(false).Run(src, m.ModeApply, 0)

		require.NoError(t, res.Err)
		assert.True(t, res.Normalized)
		assert.Equal(t, "a=\"ال\"", string(readSource(t, src)))
	})

	t.Run("backup holds the undecoded bytes", func(t *testing.T) {
		dir := t.TempDir()
		raw := []byte{'a', '=', '"', 0xC7, 0xE1, '"'}
		src := writeSource(t, dir, "legacy.js", raw)

		res := newLocalPipeline(true).Run(src, m.ModeApply, 0)

		require.NoError(t, res.Err)
		assert.True(t, res.Normalized)

		backup, err := os.ReadFile(string(res.Backup))
		require.NoError(t, err)
		assert.Equal(t, raw, backup)
	})

	t.Run("plain utf-8 is left alone", func(t *testing.T) {
		dir := t.TempDir()
		src := writeSource(t, dir, "plain.js", []byte("x = 'مرحبا';\n"))

		res := newLocalPipeline(false).Run(src, m.ModeApply, 0)

		require.NoError(t, res.Err)
		assert.False(t, res.Normalized)
		assert.False(t, res.Written)
	})

	t.Run("ignored file is not normalized", func(t *testing.T) {
		dir := t.TempDir()
		content := append([]byte{0xEF, 0xBB, 0xBF}, "// mojifix:ignore-file\n"...)
		src := writeSource(t, dir, "keep.js", content)

		res := newLocalPipeline(false).Run(src, m.ModeApply, 0)

		assert.False(t, res.NeedsWrite())
		assert.Equal(t, content, readSource(t, src))
	})
}

func TestPipeline_SkipsUnchangedFingerprint(t *testing.T) {
	dir := t.TempDir()
	content := []byte("a = '" + corruptedArabic + "'")
	src := writeSource(t, dir, "a.js", content)

	res := newLocalPipeline(false).Run(src, m.ModeWatch, xxh3.Hash(content))

	assert.True(t, res.Skipped)
	assert.Equal(t, content, readSource(t, src))
}

func TestPipeline_Errors(t *testing.T) {
	t.Run("binary", func(t *testing.T) {
		dir := t.TempDir()
		src := writeSource(t, dir, "blob.js", []byte{'a', 0, 'b'})

		res := newLocalPipeline(false).Run(src, m.ModeApply, 0)
		assert.ErrorIs(t, res.Err, ErrBinaryFile)
	})

	t.Run("missing file", func(t *testing.T) {
		src := m.SourceFile{Path: m.Path(filepath.Join(t.TempDir(), "gone.js")), RelPath: "gone.js"}

		res := newLocalPipeline(false).Run(src, m.ModeApply, 0)
		assert.Error(t, res.Err)
	})

	t.Run("failed backup leaves the file alone", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)
		src := m.SourceFile{Path: "/p/a.js", RelPath: "a.js"}
		raw := []byte("a = '" + corruptedArabic + "'")

		fs.EXPECT().ReadFile(src.Path).Return(raw, nil)
		fs.EXPECT().Backup(src.Path, raw).Return(m.Path(""), errors.New("disk full"))

		res := NewPipeline(fs, newTestResolver(), nil, true).Run(src, m.ModeApply, 0)

		require.Error(t, res.Err)
		assert.Contains(t, res.Err.Error(), "backup")
		assert.False(t, res.Written)
		fs.AssertNotCalled(t, "WriteFileAtomic", mock.Anything, mock.Anything)
	})

	t.Run("failed write", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)
		src := m.SourceFile{Path: "/p/a.js", RelPath: "a.js"}
		raw := []byte("a = '" + corruptedArabic + "'")

		fs.EXPECT().ReadFile(src.Path).Return(raw, nil)
		fs.EXPECT().WriteFileAtomic(src.Path, []byte("a = '"+fixedArabic+"'")).Return(errors.New("read-only"))

		res := NewPipeline(fs, newTestResolver(), nil, false).Run(src, m.ModeApply, 0)

		require.Error(t, res.Err)
		assert.False(t, res.Written)
	})
}

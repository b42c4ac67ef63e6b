// Package adapter contains filesystem, report and watch adapters for the
// mojifix CLI.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on, so the pipeline can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get walks the roots and returns every eligible file, without content.
	Get(roots []m.Path) ([]m.SourceFile, error)

	// Source describes a single path the same way Get would, reporting false
	// when the matcher rejects it.
	Source(path m.Path) (m.SourceFile, bool)

	// ReadFile loads a file, retrying once for transient locks.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFileAtomic replaces path with content so readers see either the
	// old or the new bytes, never a mix. The existing file mode is kept.
	WriteFileAtomic(path m.Path, content []byte) error

	// Backup stores original next to path with BackupSuffix.
	Backup(path m.Path, original []byte) (m.Path, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	matcher *IgnoreMatcher
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter. A nil matcher
// accepts default extensions and skips default directories.
func NewLocalSourceFSAdapter(matcher *IgnoreMatcher) *LocalSourceFSAdapter {
	if matcher == nil {
		matcher = NewIgnoreMatcher(MatcherOptions{})
	}

	return &LocalSourceFSAdapter{matcher: matcher}
}

// Get collects eligible files under roots, deduplicated and sorted by path.
func (a *LocalSourceFSAdapter) Get(roots []m.Path) ([]m.SourceFile, error) {
	if len(roots) == 0 {
		return []m.SourceFile{}, nil
	}

	seen := make(map[m.Path]struct{})

	var sources []m.SourceFile

	for _, root := range roots {
		rootPath, err := NormalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(rootPath)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		a.matcher.AddRoot(rootPath)

		if !info.IsDir() {
			if src, ok := a.Source(m.Path(rootPath)); ok {
				if _, dup := seen[src.Path]; !dup {
					seen[src.Path] = struct{}{}
					sources = append(sources, src)
				}
			}

			continue
		}

		err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == rootPath {
					return err
				}

				// unreadable subtrees are skipped, not fatal
				return nil
			}

			if d.IsDir() {
				if path != rootPath && a.matcher.ShouldIgnoreDir(path) {
					return filepath.SkipDir
				}

				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			src, ok := a.Source(m.Path(path))
			if !ok {
				return nil
			}

			if _, dup := seen[src.Path]; dup {
				return nil
			}

			seen[src.Path] = struct{}{}
			sources = append(sources, src)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", rootPath, err)
		}
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })

	return sources, nil
}

// Source describes one file path.
func (a *LocalSourceFSAdapter) Source(path m.Path) (m.SourceFile, bool) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return m.SourceFile{}, false
	}

	if a.matcher.ShouldIgnore(abs) {
		return m.SourceFile{}, false
	}

	return m.SourceFile{
		Path:    m.Path(abs),
		RelPath: a.displayPath(abs),
	}, true
}

// displayPath prefers a path relative to the working directory, which is
// what reports are read against.
func (a *LocalSourceFSAdapter) displayPath(abs string) string {
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}

	return a.matcher.RelativeTo(abs)
}

// ReadFile loads file contents, retrying once after a short delay.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	data, err := os.ReadFile(string(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		time.Sleep(50 * time.Millisecond)

		data, err = os.ReadFile(string(path))
	}

	return data, err
}

// WriteFileAtomic writes to a temp file in the same directory and renames it
// over path.
func (a *LocalSourceFSAdapter) WriteFileAtomic(path m.Path, content []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	}

	return writeFileAtomic(string(path), content, perm)
}

// Backup writes original to path+BackupSuffix.
func (a *LocalSourceFSAdapter) Backup(path m.Path, original []byte) (m.Path, error) {
	target := string(path) + BackupSuffix

	perm := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	}

	if err := writeFileAtomic(target, original, perm); err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}

	return m.Path(target), nil
}

func writeFileAtomic(path string, content []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".mojifix-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return err
	}

	if err = tmp.Sync(); err != nil {
		return err
	}

	if err = tmp.Chmod(perm); err != nil {
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// NormalizeRootPath expands ~, drops a trailing /... and makes the path
// absolute. Roots are always walked recursively.
func NormalizeRootPath(root string) (string, error) {
	rootStr := strings.TrimSuffix(root, "/...")

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Abs(rootStr)
}

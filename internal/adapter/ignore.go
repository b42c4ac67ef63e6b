package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// DefaultExtensions is the allow-list of text file extensions.
var DefaultExtensions = []string{
	".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx",
	".vue", ".svelte", ".html", ".htm", ".json",
}

// DefaultExcludeDirs are directory names that are never descended into.
var DefaultExcludeDirs = []string{
	// version control
	".git", ".svn", ".hg",
	// dependencies
	"node_modules", "vendor", "bower_components", ".yarn", ".pnpm-store",
	// build output
	"dist", "build", "out", ".next", ".nuxt", ".output", "coverage", ".cache",
	// our own artifacts
	".mojifix", "reports", "backups",
}

// BackupSuffix is appended to a file name to form its backup.
const BackupSuffix = ".bak"

// MatcherOptions configures an IgnoreMatcher.
type MatcherOptions struct {
	Roots            []string
	Extensions       []string
	ExcludeDirs      []string
	Exclude          []string // doublestar globs against root-relative slash paths
	RespectGitignore bool
}

// IgnoreMatcher decides which directories are walked and which files are
// processed. Safe for concurrent use.
type IgnoreMatcher struct {
	roots       []string
	extensions  map[string]struct{}
	excludeDirs map[string]struct{}
	exclude     []string
	gitignore   bool

	mu         sync.RWMutex
	gitIgnores map[string]gitignore.GitIgnore
}

// NewIgnoreMatcher builds a matcher. Empty lists fall back to the defaults.
func NewIgnoreMatcher(opts MatcherOptions) *IgnoreMatcher {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	dirs := opts.ExcludeDirs
	if len(dirs) == 0 {
		dirs = DefaultExcludeDirs
	}

	matcher := &IgnoreMatcher{
		extensions:  make(map[string]struct{}, len(exts)),
		excludeDirs: make(map[string]struct{}, len(dirs)),
		exclude:     opts.Exclude,
		gitignore:   opts.RespectGitignore,
		gitIgnores:  make(map[string]gitignore.GitIgnore),
	}

	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		matcher.extensions[ext] = struct{}{}
	}

	for _, dir := range dirs {
		matcher.excludeDirs[dir] = struct{}{}
	}

	for _, root := range opts.Roots {
		matcher.AddRoot(root)
	}

	return matcher
}

// AddRoot registers a root directory and loads its .gitignore.
func (im *IgnoreMatcher) AddRoot(root string) {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	for _, r := range im.roots {
		if r == abs {
			return
		}
	}

	im.roots = append(im.roots, abs)

	if im.gitignore {
		im.gitIgnores[abs] = loadIgnoreFile(filepath.Join(abs, ".gitignore"), abs)
	}
}

// ShouldIgnoreDir reports whether a directory must be skipped entirely.
// Roots themselves are never skipped.
func (im *IgnoreMatcher) ShouldIgnoreDir(absolutePath string) bool {
	root, rel := im.locate(absolutePath)
	if rel == "." {
		return false
	}

	if _, denied := im.excludeDirs[filepath.Base(absolutePath)]; denied {
		return true
	}

	return im.ignoredByRules(root, rel, true)
}

// ShouldIgnore reports whether a file must not be processed.
func (im *IgnoreMatcher) ShouldIgnore(absolutePath string) bool {
	if !im.HasAllowedExtension(absolutePath) {
		return true
	}

	root, rel := im.locate(absolutePath)

	for _, part := range strings.Split(rel, "/") {
		if _, denied := im.excludeDirs[part]; denied {
			return true
		}
	}

	return im.ignoredByRules(root, rel, false)
}

// HasAllowedExtension checks the extension allow-list. Backups never pass.
func (im *IgnoreMatcher) HasAllowedExtension(path string) bool {
	if strings.HasSuffix(path, BackupSuffix) {
		return false
	}

	_, ok := im.extensions[strings.ToLower(filepath.Ext(path))]

	return ok
}

// RelativeTo returns the slash-separated path of absolutePath relative to the
// root that contains it.
func (im *IgnoreMatcher) RelativeTo(absolutePath string) string {
	_, rel := im.locate(absolutePath)

	return rel
}

func (im *IgnoreMatcher) ignoredByRules(root, rel string, isDir bool) bool {
	for _, pattern := range im.exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}

		if isDir {
			// let "dir/**" prune the directory itself
			if ok, err := doublestar.Match(pattern, rel+"/"); err == nil && ok {
				return true
			}
		}
	}

	if !im.gitignore || root == "" {
		return false
	}

	im.mu.RLock()
	gi := im.gitIgnores[root]
	im.mu.RUnlock()

	if gi == nil {
		return false
	}

	match := gi.Relative(rel, isDir)

	return match != nil && match.Ignore()
}

// locate finds the deepest registered root containing path.
func (im *IgnoreMatcher) locate(path string) (string, string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	best := ""

	for _, root := range im.roots {
		if abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator)) {
			continue
		}

		if len(root) > len(best) {
			best = root
		}
	}

	if best == "" {
		return "", filepath.ToSlash(abs)
	}

	rel, err := filepath.Rel(best, abs)
	if err != nil {
		return best, filepath.ToSlash(abs)
	}

	return best, filepath.ToSlash(rel)
}

// loadIgnoreFile reads an ignore file; a missing file yields nil.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath) // #nosec G304 -- path is <root>/.gitignore
	if err != nil {
		return nil
	}

	defer func() { _ = f.Close() }()

	return gitignore.New(f, baseDir, nil)
}

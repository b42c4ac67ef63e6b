package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgnoreMatcher_ShouldIgnore(t *testing.T) {
	root := t.TempDir()
	matcher := NewIgnoreMatcher(MatcherOptions{
		Roots:   []string{root},
		Exclude: []string{"**/*.spec.ts", "legacy/**"},
	})

	tests := []struct {
		name string
		rel  string
		want bool
	}{
		{name: "allowed extension", rel: "src/app.js", want: false},
		{name: "uppercase extension", rel: "src/App.TSX", want: false},
		{name: "disallowed extension", rel: "src/app.go", want: true},
		{name: "backup file", rel: "src/app.js.bak", want: true},
		{name: "inside excluded dir", rel: "node_modules/pkg/index.js", want: true},
		{name: "nested excluded dir", rel: "src/vendor/lib.js", want: true},
		{name: "glob match", rel: "src/app.spec.ts", want: true},
		{name: "directory glob", rel: "legacy/old.js", want: true},
		{name: "similar prefix is not excluded", rel: "legacy2/new.js", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matcher.ShouldIgnore(filepath.Join(root, filepath.FromSlash(tt.rel)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIgnoreMatcher_ShouldIgnoreDir(t *testing.T) {
	root := t.TempDir()
	matcher := NewIgnoreMatcher(MatcherOptions{
		Roots:   []string{root},
		Exclude: []string{"legacy/**"},
	})

	assert.False(t, matcher.ShouldIgnoreDir(root), "roots are never skipped")
	assert.True(t, matcher.ShouldIgnoreDir(filepath.Join(root, ".git")))
	assert.True(t, matcher.ShouldIgnoreDir(filepath.Join(root, "src", "node_modules")))
	assert.True(t, matcher.ShouldIgnoreDir(filepath.Join(root, "legacy")))
	assert.False(t, matcher.ShouldIgnoreDir(filepath.Join(root, "src")))
}

func TestIgnoreMatcher_CustomLists(t *testing.T) {
	root := t.TempDir()
	matcher := NewIgnoreMatcher(MatcherOptions{
		Roots:       []string{root},
		Extensions:  []string{"php", ".Blade"},
		ExcludeDirs: []string{"cache"},
	})

	assert.False(t, matcher.ShouldIgnore(filepath.Join(root, "index.php")))
	assert.False(t, matcher.ShouldIgnore(filepath.Join(root, "view.blade")))
	assert.True(t, matcher.ShouldIgnore(filepath.Join(root, "app.js")))
	assert.True(t, matcher.ShouldIgnoreDir(filepath.Join(root, "cache")))
	assert.False(t, matcher.ShouldIgnoreDir(filepath.Join(root, "node_modules")))
}

func TestIgnoreMatcher_RelativeTo(t *testing.T) {
	outer := t.TempDir()
	inner := filepath.Join(outer, "pkg")

	matcher := NewIgnoreMatcher(MatcherOptions{Roots: []string{outer, inner}})

	assert.Equal(t, "a.js", matcher.RelativeTo(filepath.Join(inner, "a.js")))
	assert.Equal(t, "src/b.js", matcher.RelativeTo(filepath.Join(outer, "src", "b.js")))
	assert.Equal(t, ".", matcher.RelativeTo(outer))
}

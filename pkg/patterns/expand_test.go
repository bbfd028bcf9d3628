// pkg/patterns/expand_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir), afero MemMapFs
// PURPOSE: Test literal passthrough, glob expansion and de-duplication

package patterns_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/graftree/pkg/filesystem"
	"github.com/arthur-debert/graftree/pkg/patterns"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("test"), 0644))
	}
}

func TestIsGlob(t *testing.T) {
	assert.False(t, patterns.IsGlob(".env"))
	assert.False(t, patterns.IsGlob("config/app.json"))
	assert.True(t, patterns.IsGlob("*.json"))
	assert.True(t, patterns.IsGlob("file?.txt"))
	assert.True(t, patterns.IsGlob("[ab].txt"))
}

func TestExpand(t *testing.T) {
	t.Run("literal_paths_pass_through_without_existing", func(t *testing.T) {
		dir := t.TempDir()

		result, err := patterns.Expand([]string{".env", "config.json"}, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{".env", "config.json"}, result)
	})

	t.Run("expands_glob_patterns", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, ".env", ".env.local", "config.json")

		result, err := patterns.Expand([]string{".env*"}, dir)
		require.NoError(t, err)
		assert.Contains(t, result, ".env")
		assert.Contains(t, result, ".env.local")
		assert.NotContains(t, result, "config.json")
	})

	t.Run("merges_multiple_patterns", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, ".env", "config.json", "package.json")

		result, err := patterns.Expand([]string{".env", "*.json"}, dir)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{".env", "config.json", "package.json"}, result)
	})

	t.Run("removes_duplicates", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, ".env", "a.txt")

		result, err := patterns.Expand([]string{".env", ".env*"}, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{".env"}, result)

		result, err = patterns.Expand([]string{"a.txt", "a.txt"}, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt"}, result)
	})

	t.Run("first_occurrence_decides_order", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "a.txt", "b.txt")

		result, err := patterns.Expand([]string{"b.txt", "*.txt"}, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"b.txt", "a.txt"}, result)
	})

	t.Run("double_star_crosses_directories", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "config/app.json", "config/env/prod/db.json", "config/readme.md")

		result, err := patterns.Expand([]string{"config/**/*.json"}, dir)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"config/app.json", "config/env/prod/db.json"}, result)
	})

	t.Run("glob_matches_directories", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "secrets/a.key", "settings/b.toml")

		result, err := patterns.Expand([]string{"se*"}, dir)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"secrets", "settings"}, result)
	})

	t.Run("leading_dot_slash_is_ignored_for_globs", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "config.json")

		result, err := patterns.Expand([]string{"./*.json"}, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"config.json"}, result)
	})

	t.Run("no_matches_is_not_an_error", func(t *testing.T) {
		dir := t.TempDir()

		result, err := patterns.Expand([]string{"*.nonexistent"}, dir)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("empty_patterns", func(t *testing.T) {
		result, err := patterns.Expand(nil, t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("malformed_glob_matches_literal_name", func(t *testing.T) {
		dir := t.TempDir()

		result, err := patterns.Expand([]string{"[abc"}, dir)
		require.NoError(t, err)
		assert.Empty(t, result)

		writeFiles(t, dir, "[abc")
		result, err = patterns.Expand([]string{"[abc"}, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"[abc"}, result)
	})
}

func TestExpand_Symlinks(t *testing.T) {
	t.Run("loop_link_is_not_followed", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "a/x.env")
		require.NoError(t, os.Symlink("..", filepath.Join(dir, "a", "loop")))

		result, err := patterns.Expand([]string{"**/*.env"}, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"a/x.env"}, result)
	})

	t.Run("outside_link_is_not_crawled", func(t *testing.T) {
		outside := t.TempDir()
		writeFiles(t, outside, "lib/a.json", "b.json")
		dir := t.TempDir()
		writeFiles(t, dir, "app.json")
		require.NoError(t, os.Symlink(outside, filepath.Join(dir, "vendor")))

		result, err := patterns.Expand([]string{"**/*.json"}, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"app.json"}, result)
	})

	t.Run("link_itself_is_a_match", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "real/a.txt")
		require.NoError(t, os.Symlink("real", filepath.Join(dir, "shared")))

		result, err := patterns.Expand([]string{"sha*"}, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"shared"}, result)
	})
}

func TestExpand_DotEntries(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, ".secret", "a.txt", ".cache/b.json", "conf/.env.local", "conf/app.json", "conf/.hidden/c.json")

	tests := []struct {
		name     string
		patterns []string
		expected []string
	}{
		{"star_skips_dotfiles", []string{"*"}, []string{"a.txt", "conf"}},
		{"double_star_skips_dot_dirs", []string{"**/*.json"}, []string{"conf/app.json"}},
		{"dot_pattern_matches_dotfiles", []string{".*"}, []string{".cache", ".secret"}},
		{"dot_segment_inside_path", []string{"conf/.env*"}, []string{"conf/.env.local"}},
		{"explicit_dot_dir", []string{".cache/*.json"}, []string{".cache/b.json"}},
		{"double_star_then_dot_dir", []string{"**/.hidden/*.json"}, []string{"conf/.hidden/c.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := patterns.Expand(tt.patterns, dir)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expected, result)
		})
	}
}

func TestExpandFS_InMemory(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/src/.env", []byte("A=1"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/src/config/app.json", []byte("{}"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/src/config/db.json", []byte("{}"), 0644))

	fsys := filesystem.NewAferoFS(mem)
	result, err := patterns.ExpandFS([]string{".env*", "config/*.json"}, fsys.DirFS("/src"))
	require.NoError(t, err)
	assert.Equal(t, []string{".env", "config/app.json", "config/db.json"}, result)
}

package clean

import (
	"os"
	"path/filepath"
	"testing"

	"sweepd/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsFold(t *testing.T) {
	list := []string{"Build", "DEBUG", "release"}

	assert.True(t, containsFold("build", list))
	assert.True(t, containsFold("debug", list))
	assert.True(t, containsFold("RELEASE", list))
	assert.False(t, containsFold("releases", list), "exact match only, no prefixes")
	assert.False(t, containsFold("rel", list))
	assert.False(t, containsFold("build", nil))
}

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"a.tmp":      "tmp",
		"a.tmp.bak":  "bak",
		"archive":    "",
		".gitignore": "", // leading-dot-only names have no extension
		"trailing.":  "",
		"a.B.Cfg":    "Cfg",
	}

	for name, want := range cases {
		assert.Equal(t, want, extension(name), "extension(%q)", name)
	}
}

func TestIsExcluded(t *testing.T) {
	exclude := []string{"node_modules", ".Git"}

	assert.True(t, isExcluded("node_modules", exclude))
	assert.True(t, isExcluded("NODE_MODULES", exclude))
	assert.True(t, isExcluded(".git", exclude))
	assert.False(t, isExcluded("node_modules2", exclude))
	assert.False(t, isExcluded("anything", nil))
}

func TestMatches(t *testing.T) {
	root := t.TempDir()

	file := filepath.Join(root, "report.TMP")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	noExt := filepath.Join(root, "Makefile")
	require.NoError(t, os.WriteFile(noExt, []byte("x"), 0644))
	dir := filepath.Join(root, "Build")
	require.NoError(t, os.Mkdir(dir, 0755))

	t.Run("file kind matches extension case-insensitively", func(t *testing.T) {
		assert.True(t, matches(file, types.File, []string{"tmp"}))
		assert.False(t, matches(file, types.File, []string{"bak"}))
	})

	t.Run("files without extension never match", func(t *testing.T) {
		assert.False(t, matches(noExt, types.File, []string{"makefile", ""}))
	})

	t.Run("folder kind matches base name case-insensitively", func(t *testing.T) {
		assert.True(t, matches(dir, types.Folder, []string{"build"}))
		assert.False(t, matches(dir, types.Folder, []string{"debug"}))
	})

	t.Run("entry type must agree with kind", func(t *testing.T) {
		// A directory named like an extension pattern, and a file named like
		// a folder pattern, are both ineligible.
		assert.False(t, matches(dir, types.File, []string{"build"}))
		assert.False(t, matches(file, types.Folder, []string{"report.TMP"}))
	})

	t.Run("vanished entry never matches", func(t *testing.T) {
		assert.False(t, matches(filepath.Join(root, "gone.tmp"), types.File, []string{"tmp"}))
	})

	t.Run("empty pattern set matches nothing", func(t *testing.T) {
		assert.False(t, matches(file, types.File, nil))
		assert.False(t, matches(dir, types.Folder, nil))
	})
}

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	manifest := "name = \"blinker\"\nentry = \"blink.lus\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(manifest), 0o644))

	p, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "blinker", p.Name)
	assert.Equal(t, "blink.lus", p.Entry)
	assert.Equal(t, filepath.Join(dir, "blink.lus"), p.EntryPath())
}

func TestLoadFromDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), nil, 0o644))

	p, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), p.Name)
	assert.Equal(t, "main.lus", p.Entry)
}

func TestLoadFromMissingManifest(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	require.Error(t, err)
}

func TestSourceFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.lus"), nil, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "util.lus"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), nil, 0o644))

	p, err := LoadFrom(dir)
	require.NoError(t, err)
	files, err := p.SourceFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "lib", "util.lus"),
		filepath.Join(dir, "main.lus"),
	}, files)
}

func TestFindWalksUp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte("name = \"top\"\n"), 0o644))
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	p, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, "top", p.Name)

	_, err = Find(filepath.Join(os.TempDir(), "definitely-not-a-project"))
	assert.Error(t, err)
}

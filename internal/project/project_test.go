package project

import (
	"os"
	"path/filepath"
	"testing"

	"chart-tracer/internal/walker"
	"chart-tracer/pkg/rgb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestNewDefaults(t *testing.T) {
	useTempConfigDir(t)

	f := New("/charts/flower.png")
	assert.Equal(t, "/charts/flower.png", f.ChartPath)
	assert.Equal(t, walker.DefaultConfig().Start, f.Cursor)
	assert.Equal(t, walker.DefaultConfig(), f.Walk)
	require.NotNil(t, f.Palette)
	assert.Equal(t, 0, f.Palette.Len())
	assert.Equal(t, "flower.png.progress.json", filepath.Base(f.Path()))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	red := rgb.RGB{R: 0xFF}
	f := New("/charts/flower.png")
	f.Palette.Add(red, "Cherry Red", "R")
	f.Cursor = walker.Cursor{Row: 7, Col: 3}
	require.NoError(t, f.Save())

	back := Load("/charts/flower.png")
	assert.Equal(t, walker.Cursor{Row: 7, Col: 3}, back.Cursor)
	assert.Equal(t, f.Walk, back.Walk)
	require.NotNil(t, back.Palette)
	full, err := back.Palette.FullName(red)
	require.NoError(t, err)
	assert.Equal(t, "Cherry Red", full)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	useTempConfigDir(t)

	f := Load("/charts/never-saved.png")
	assert.Equal(t, walker.DefaultConfig().Start, f.Cursor)
	require.NotNil(t, f.Palette)
	assert.Equal(t, 0, f.Palette.Len())
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	useTempConfigDir(t)

	path := PathFor("/charts/flower.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	f := Load("/charts/flower.png")
	assert.Equal(t, walker.DefaultConfig().Start, f.Cursor)
	require.NotNil(t, f.Palette)
}

func TestProgressFilesAreKeyedByBaseName(t *testing.T) {
	useTempConfigDir(t)

	a := New("/one/chart.png")
	b := New("/two/other.png")
	assert.NotEqual(t, a.Path(), b.Path())
}

func TestSaveIsAtomicOverExisting(t *testing.T) {
	useTempConfigDir(t)

	f := New("/charts/flower.png")
	require.NoError(t, f.Save())

	f.Cursor = walker.Cursor{Row: 4, Col: 2}
	require.NoError(t, f.Save())

	// No temp file left behind.
	_, err := os.Stat(f.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))

	back := Load("/charts/flower.png")
	assert.Equal(t, walker.Cursor{Row: 4, Col: 2}, back.Cursor)
}

// Package project provides per-chart progress file handling and persistence.
package project

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"chart-tracer/internal/palette"
	"chart-tracer/internal/walker"
)

const fileVersion = 1

// File represents a chart progress file (.progress.json): everything needed
// to resume a walk — the named palette and the cursor — keyed by the source
// chart image.
type File struct {
	Version   int       `json:"version"`
	ChartPath string    `json:"chart_path"`
	Modified  time.Time `json:"modified"`

	Palette *palette.Palette `json:"palette"`
	Cursor  walker.Cursor    `json:"cursor"`
	Walk    walker.Config    `json:"walk"`

	path string
}

// New creates a fresh progress file with an empty palette and the default
// start cursor.
func New(chartPath string) *File {
	cfg := walker.DefaultConfig()
	return &File{
		Version:   fileVersion,
		ChartPath: chartPath,
		Palette:   palette.New(),
		Cursor:    cfg.Start,
		Walk:      cfg,
		path:      PathFor(chartPath),
	}
}

// PathFor returns the progress file path for a chart image, under the user
// config directory.
func PathFor(chartPath string) string {
	return filepath.Join(configDir(), filepath.Base(chartPath)+".progress.json")
}

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "chart-tracer")
}

// Load reads the progress file for a chart image. Any read or parse failure
// falls back to fresh defaults — corrupted progress must never prevent the
// chart from opening.
func Load(chartPath string) *File {
	path := PathFor(chartPath)

	data, err := os.ReadFile(path)
	if err != nil {
		return New(chartPath)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("progress file %s is corrupt, starting fresh: %v", path, err)
		return New(chartPath)
	}
	if f.Palette == nil {
		f.Palette = palette.New()
	}
	if f.Walk.EarlyRowBand == 0 {
		f.Walk = walker.DefaultConfig()
	}
	f.ChartPath = chartPath
	f.path = path
	return &f
}

// Save writes the progress file atomically (temp file + rename).
func (f *File) Save() error {
	f.Modified = time.Now()
	if f.path == "" {
		f.path = PathFor(f.ChartPath)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Path returns where the progress file is (or will be) stored.
func (f *File) Path() string {
	return f.path
}

// Package app provides application lifecycle management, state, and events.
package app

import (
	"fmt"
	"log"
	"sync"

	"chart-tracer/internal/chart"
	"chart-tracer/internal/chartimage"
	"chart-tracer/internal/project"
	"chart-tracer/internal/walker"
	"chart-tracer/pkg/rgb"
)

// State holds the application state: the loaded chart, its progress file,
// the segmented grid, and the walker driving the pattern walk.
type State struct {
	mu sync.RWMutex

	// Chart and persisted progress
	Chart    *chartimage.Chart
	Progress *project.File

	// Segmentation output
	Grid  chart.Grid
	Areas []int

	// The walk; nil until segmentation completes
	Walker *walker.Walker

	// In-flight segmentation
	builder *chart.Builder
	pending *rgb.RGB // color waiting to be named

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventChartLoaded EventType = iota
	EventColorNeeded
	EventSegmentationDone
	EventProgressChanged
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state.
func NewState() *State {
	return &State{
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// LoadChart decodes a chart image, restores its progress file, and starts
// segmentation. Segmentation either completes immediately (every color was
// already named in a previous session) or suspends on the first unnamed
// color, emitting EventColorNeeded; the UI answers via NameColor.
func (s *State) LoadChart(path string) error {
	ch, err := chartimage.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load chart %s: %w", path, err)
	}

	s.mu.Lock()
	s.Chart = ch
	s.Progress = project.Load(path)
	s.Grid = nil
	s.Areas = nil
	s.Walker = nil
	s.pending = nil
	s.builder = chart.NewBuilder(ch.Buffer())
	s.mu.Unlock()

	log.Printf("Loaded %s chart %s (%dx%d)", ch.Format, path, ch.Width(), ch.Height())
	s.Emit(EventChartLoaded, path)

	s.step(s.builder.Build(s.Progress.Palette))
	return nil
}

// NameColor supplies labels for the color segmentation suspended on and
// resumes the scan. Calling it without a pending color is a no-op.
func (s *State) NameColor(fullName, oneChar string) {
	s.mu.RLock()
	builder, pending := s.builder, s.pending
	s.mu.RUnlock()
	if builder == nil || pending == nil {
		return
	}

	log.Printf("Named color %s: %q (%q)", pending.Hex(), fullName, oneChar)
	s.step(builder.Resume(s.Progress.Palette, fullName, oneChar))
}

// PendingColor returns the color segmentation is suspended on, if any.
func (s *State) PendingColor() (rgb.RGB, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pending == nil {
		return rgb.RGB{}, false
	}
	return *s.pending, true
}

// step handles a segmentation result: either park on the unnamed color or
// finish the build and construct the walker.
func (s *State) step(res chart.Result) {
	if !res.Done {
		c := res.Color
		s.mu.Lock()
		s.pending = &c
		s.mu.Unlock()
		s.Emit(EventColorNeeded, c)
		return
	}

	s.mu.Lock()
	s.Grid = res.Grid
	s.Areas = res.Areas
	s.builder = nil
	s.pending = nil

	w, err := walker.New(s.Grid, s.Progress.Cursor, s.Progress.Walk)
	if err != nil {
		// The chart shrank since the cursor was persisted; restart the walk.
		log.Printf("Persisted cursor invalid (%v), restarting from the beginning", err)
		s.Progress.Cursor = s.Progress.Walk.Start
		w, err = walker.New(s.Grid, s.Progress.Cursor, s.Progress.Walk)
		if err != nil {
			log.Printf("Walker construction failed: %v", err)
		}
	}
	s.Walker = w
	s.mu.Unlock()

	// The palette may have grown during segmentation; persist it now.
	if err := s.SaveProgress(); err != nil {
		log.Printf("Failed to save progress: %v", err)
	}

	s.Emit(EventSegmentationDone, s.Grid)
}

// Advance steps the walk forward one cell and persists the new cursor.
// It is a no-op when the walk is finished or not yet constructed.
func (s *State) Advance() {
	s.mu.RLock()
	w := s.Walker
	s.mu.RUnlock()
	if w == nil || w.Done() {
		return
	}

	w.Advance()
	s.Progress.Cursor = w.Cursor()
	if err := s.SaveProgress(); err != nil {
		log.Printf("Failed to save progress: %v", err)
	}
	s.Emit(EventProgressChanged, w.Cursor())
}

// ResetProgress restarts the walk from the configured start cursor.
func (s *State) ResetProgress() {
	s.mu.RLock()
	w := s.Walker
	s.mu.RUnlock()
	if w == nil {
		return
	}

	w.Reset()
	s.Progress.Cursor = w.Cursor()
	if err := s.SaveProgress(); err != nil {
		log.Printf("Failed to save progress: %v", err)
	}
	s.Emit(EventProgressChanged, w.Cursor())
}

// SaveProgress writes the progress file for the loaded chart.
func (s *State) SaveProgress() error {
	s.mu.RLock()
	p := s.Progress
	s.mu.RUnlock()
	if p == nil {
		return nil
	}
	return p.Save()
}

// Summary returns statistics for the segmented chart.
func (s *State) Summary() chart.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return chart.Summarize(s.Grid, s.Areas)
}

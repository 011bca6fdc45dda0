// Package palette maps chart colors to their user-supplied labels.
package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"chart-tracer/pkg/rgb"
)

// ErrUnknownColor is returned when a label is requested for a color that was
// never registered. Callers are expected to check Has first.
var ErrUnknownColor = errors.New("unknown color")

// Entry holds the labels for one registered color. Both fields are always set
// together; a color is either fully present or fully absent.
type Entry struct {
	FullName string `json:"full_name"`
	OneChar  string `json:"one_char"`
}

// Palette maps each cell color to a full name and a one-character label.
// Labels are supplied once during segmentation and never change afterwards.
type Palette struct {
	entries map[rgb.RGB]Entry
}

// New creates an empty palette.
func New() *Palette {
	return &Palette{entries: make(map[rgb.RGB]Entry)}
}

// Has reports whether labels are registered for the color.
func (p *Palette) Has(c rgb.RGB) bool {
	_, ok := p.entries[c]
	return ok
}

// Add registers the label pair for a color. A prior entry for the exact same
// color is overwritten; segmentation only adds each color once.
func (p *Palette) Add(c rgb.RGB, fullName, oneChar string) {
	p.entries[c] = Entry{FullName: fullName, OneChar: oneChar}
}

// FullName returns the full name for a registered color.
func (p *Palette) FullName(c rgb.RGB) (string, error) {
	e, ok := p.entries[c]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownColor, c.Hex())
	}
	return e.FullName, nil
}

// OneChar returns the one-character label for a registered color.
func (p *Palette) OneChar(c rgb.RGB) (string, error) {
	e, ok := p.entries[c]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownColor, c.Hex())
	}
	return e.OneChar, nil
}

// Len returns the number of registered colors.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Colors returns the registered colors in a stable hex order, for legends and
// summaries.
func (p *Palette) Colors() []rgb.RGB {
	colors := make([]rgb.RGB, 0, len(p.entries))
	for c := range p.entries {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		return colors[i].Hex() < colors[j].Hex()
	})
	return colors
}

// MarshalJSON serializes the palette as a hex-keyed object. RGB's text
// marshaler supplies the keys.
func (p *Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.entries)
}

// UnmarshalJSON replaces the palette contents with the serialized entries.
func (p *Palette) UnmarshalJSON(data []byte) error {
	entries := make(map[rgb.RGB]Entry)
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	p.entries = entries
	return nil
}

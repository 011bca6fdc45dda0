package palette

import (
	"encoding/json"
	"testing"

	"chart-tracer/pkg/rgb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = rgb.RGB{R: 0xFF}
	blue = rgb.RGB{B: 0xFF}
)

func TestAddAndLookup(t *testing.T) {
	p := New()
	assert.False(t, p.Has(red))
	assert.Equal(t, 0, p.Len())

	p.Add(red, "Cherry Red", "R")
	assert.True(t, p.Has(red))
	assert.Equal(t, 1, p.Len())

	full, err := p.FullName(red)
	require.NoError(t, err)
	assert.Equal(t, "Cherry Red", full)

	one, err := p.OneChar(red)
	require.NoError(t, err)
	assert.Equal(t, "R", one)
}

func TestLookupUnknownColor(t *testing.T) {
	p := New()

	_, err := p.FullName(blue)
	assert.ErrorIs(t, err, ErrUnknownColor)

	_, err = p.OneChar(blue)
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestColorsSorted(t *testing.T) {
	p := New()
	p.Add(rgb.RGB{R: 0xFF}, "Red", "R")
	p.Add(rgb.RGB{G: 0xFF}, "Green", "G")
	p.Add(rgb.RGB{B: 0xFF}, "Blue", "B")

	colors := p.Colors()
	require.Len(t, colors, 3)
	// Sorted by hex: #0000FF < #00FF00 < #FF0000.
	assert.Equal(t, rgb.RGB{B: 0xFF}, colors[0])
	assert.Equal(t, rgb.RGB{G: 0xFF}, colors[1])
	assert.Equal(t, rgb.RGB{R: 0xFF}, colors[2])
}

func TestJSONRoundTrip(t *testing.T) {
	p := New()
	p.Add(red, "Cherry Red", "R")
	p.Add(blue, "Sky Blue", "b")

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var back Palette
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, p.Len(), back.Len())
	full, err := back.FullName(blue)
	require.NoError(t, err)
	assert.Equal(t, "Sky Blue", full)
	one, err := back.OneChar(red)
	require.NoError(t, err)
	assert.Equal(t, "R", one)
}

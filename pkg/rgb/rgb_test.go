package rgb

import (
	"encoding/json"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "#FF0010", RGB{R: 0xFF, G: 0x00, B: 0x10}.Hex())
	assert.Equal(t, "#000000", RGB{}.Hex())
	assert.Equal(t, "#202020", Separator.Hex())
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF})
	assert.Equal(t, RGB{R: 0x12, G: 0x34, B: 0x56}, c)

	// Alpha is dropped, not premultiplied back in.
	opaque := FromColor(color.RGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xFF})
	assert.Equal(t, RGB{R: 0x80, G: 0x40, B: 0x20}, opaque)
}

func TestAtSet(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	c := RGB{R: 0xAB, G: 0xCD, B: 0xEF}

	Set(img, 2, 3, c)
	assert.Equal(t, c, At(img, 2, 3))
	assert.Equal(t, RGB{}, At(img, 0, 0))
}

func TestTextRoundTrip(t *testing.T) {
	c := RGB{R: 0x6A, G: 0x3D, B: 0x9A}

	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#6A3D9A", string(text))

	var back RGB
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, c, back)
}

func TestUnmarshalTextRejectsGarbage(t *testing.T) {
	var c RGB
	assert.Error(t, c.UnmarshalText([]byte("6A3D9A")))  // no '#'
	assert.Error(t, c.UnmarshalText([]byte("#6A3D")))   // too short
	assert.Error(t, c.UnmarshalText([]byte("#GGGGGG"))) // not hex
}

func TestJSONMapKey(t *testing.T) {
	m := map[RGB]string{
		{R: 0xFF}: "red",
		{B: 0xFF}: "blue",
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back map[RGB]string
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)
}

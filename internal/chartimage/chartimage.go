// Package chartimage provides chart image loading and conversion to the
// mutable pixel buffer segmentation consumes.
package chartimage

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Chart holds a decoded chart image.
type Chart struct {
	Path   string      // Original file path
	Image  image.Image // Decoded image data
	Format string      // Decoded format name ("png", "jpeg", ...)
}

// Load decodes a chart image from the specified path.
func Load(path string) (*Chart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chart: %w", err)
	}

	return &Chart{Path: path, Image: img, Format: format}, nil
}

// Width returns the image width in pixels.
func (c *Chart) Width() int {
	if c.Image == nil {
		return 0
	}
	return c.Image.Bounds().Dx()
}

// Height returns the image height in pixels.
func (c *Chart) Height() int {
	if c.Image == nil {
		return 0
	}
	return c.Image.Bounds().Dy()
}

// Buffer returns a fresh mutable RGBA copy of the image, normalized to a
// zero origin. Segmentation repaints the buffer destructively, so each call
// returns an independent copy.
func (c *Chart) Buffer() *image.RGBA {
	return ToRGBA(c.Image)
}

// ToRGBA copies any image into a zero-origin RGBA buffer.
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)
	return out
}

// SupportedFormats returns the list of supported chart image formats.
func SupportedFormats() []string {
	return []string{".png", ".gif", ".bmp", ".jpg", ".jpeg", ".tiff", ".tif"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}

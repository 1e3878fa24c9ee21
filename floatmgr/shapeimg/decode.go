// Package shapeimg decodes the raster image used by a shape-outside
// image() basic shape into an image.Image the float manager can scan for
// alpha intervals. It registers decoders for every raster format the
// reference typesetting stack's image pipeline plausibly hands a float:
// PNG and JPEG from the standard library, plus BMP, TIFF, and WebP from
// golang.org/x/image, which the reference stack already depends on
// transitively for its font/image handling.
package shapeimg

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads and decodes a raster image from r, wrapping the decoder's
// error on failure.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding shape-outside image: %w", err)
	}
	return img, nil
}

package skin

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
)

// Label artwork limits, matching the historical overlay format.
const (
	MaxImageWidth  = 1024
	MaxImageHeight = 600
)

// DecodeImage reads a PNG file and returns its pixels as RGBA. Dimensions
// outside 1..MaxImageWidth x 1..MaxImageHeight are rejected.
func DecodeImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open label image: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode label image %s: %w", path, err)
	}
	if format != "png" {
		return nil, fmt.Errorf("decode label image %s: format %q, want png", path, format)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || w > MaxImageWidth {
		return nil, fmt.Errorf("label image %s: width %d out of range 1..%d", path, w, MaxImageWidth)
	}
	if h <= 0 || h > MaxImageHeight {
		return nil, fmt.Errorf("label image %s: height %d out of range 1..%d", path, h, MaxImageHeight)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	return rgba, nil
}

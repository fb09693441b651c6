//go:build purego || js

package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff"

	tm "trypmorph/pkg/trypmorph"
)

// loadImageMat reads a single-channel image and returns it as a float32 Mat
// in 8-bit range, matching the native loader: 16-bit grayscale is scaled
// down so mask foreground stays 255, everything else is reduced to 8-bit
// luminance.
func loadImageMat(path string) (tm.Mat, error) {
	f, err := os.Open(path)
	if err != nil {
		return tm.Mat{}, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return tm.Mat{}, fmt.Errorf("decoding image %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]float32, w*h)

	switch src := img.(type) {
	case *image.Gray16:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pixels[y*w+x] = float32(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y >> 8)
			}
		}
	case *image.Gray:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pixels[y*w+x] = float32(src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				gray := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
				pixels[y*w+x] = float32(gray >> 8)
			}
		}
	}

	return tm.MatFromFloat32(pixels, h, w), nil
}

//go:build !purego && !js

package main

import (
	"fmt"

	"gocv.io/x/gocv"

	tm "trypmorph/pkg/trypmorph"
)

// loadImageMat reads a single-channel image and returns it as a float32 Mat
// with raw pixel values preserved.
func loadImageMat(path string) (tm.Mat, error) {
	src := gocv.IMRead(path, gocv.IMReadGrayScale)
	if src.Empty() {
		return tm.Mat{}, fmt.Errorf("could not load image: %s", path)
	}
	defer src.Close()

	floatMat := gocv.NewMat()
	defer floatMat.Close()
	src.ConvertTo(&floatMat, gocv.MatTypeCV32F)

	data, _ := floatMat.DataPtrFloat32()
	pixels := make([]float32, floatMat.Rows()*floatMat.Cols())
	copy(pixels, data)

	return tm.MatFromFloat32(pixels, floatMat.Rows(), floatMat.Cols()), nil
}

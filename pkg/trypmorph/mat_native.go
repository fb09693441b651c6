//go:build !purego && !js

package trypmorph

import (
	"image"
	"math"

	"gocv.io/x/gocv"
)

// Mat wraps gocv.Mat for the native OpenCV backend.
type Mat struct {
	m gocv.Mat
}

func NewMat() Mat { return Mat{m: gocv.NewMat()} }

func NewMatWithSize(rows, cols int) Mat {
	return Mat{m: gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV32F)}
}

// MatFromFloat32 creates a Mat from a row-major float32 slice.
func MatFromFloat32(data []float32, rows, cols int) Mat {
	m := NewMatWithSize(rows, cols)
	dst, _ := m.m.DataPtrFloat32()
	copy(dst, data)
	return m
}

func (mat Mat) Rows() int   { return mat.m.Rows() }
func (mat Mat) Cols() int   { return mat.m.Cols() }
func (mat Mat) Empty() bool { return mat.m.Empty() }
func (mat Mat) Clone() Mat  { return Mat{m: mat.m.Clone()} }
func (mat *Mat) Close()     { mat.m.Close() }

func (mat Mat) DataFloat32() []float32 {
	data, _ := mat.m.DataPtrFloat32()
	return data
}

func CopyMatTo(src Mat, dst *Mat) {
	src.m.CopyTo(&dst.m)
}

// gaussianBlurSigma applies a Gaussian blur with the given sigma, truncated
// at 4 sigma, with edge-replicating borders.
func gaussianBlurSigma(src Mat, dst *Mat, sigma float64) {
	if sigma <= 0 {
		CopyMatTo(src, dst)
		return
	}
	ksize := 2*int(math.Ceil(4*sigma)) + 1
	gocv.GaussianBlur(src.m, &dst.m, image.Pt(ksize, ksize), sigma, sigma, gocv.BorderReplicate)
}

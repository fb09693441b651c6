//go:build purego || js

package trypmorph

import "math"

// Mat is a pure Go 2D float32 image.
type Mat struct {
	data []float32
	rows int
	cols int
}

func NewMat() Mat { return Mat{} }

func NewMatWithSize(rows, cols int) Mat {
	return Mat{data: make([]float32, rows*cols), rows: rows, cols: cols}
}

// MatFromFloat32 wraps a row-major float32 slice as a Mat. The slice is not
// copied.
func MatFromFloat32(data []float32, rows, cols int) Mat {
	return Mat{data: data, rows: rows, cols: cols}
}

func (m Mat) Rows() int   { return m.rows }
func (m Mat) Cols() int   { return m.cols }
func (m Mat) Empty() bool { return m.data == nil || m.rows == 0 || m.cols == 0 }

func (m Mat) Clone() Mat {
	data := make([]float32, len(m.data))
	copy(data, m.data)
	return Mat{data: data, rows: m.rows, cols: m.cols}
}

func (m *Mat) Close() {
	m.data = nil
	m.rows = 0
	m.cols = 0
}

// DataFloat32 returns the row-major backing slice.
func (m Mat) DataFloat32() []float32 { return m.data }

func CopyMatTo(src Mat, dst *Mat) {
	if dst.rows != src.rows || dst.cols != src.cols || dst.data == nil {
		*dst = NewMatWithSize(src.rows, src.cols)
	}
	copy(dst.data, src.data)
}

// gaussianBlurSigma applies a separable Gaussian blur with the given sigma,
// truncated at 4 sigma, with clamped (edge-replicating) borders.
func gaussianBlurSigma(src Mat, dst *Mat, sigma float64) {
	if sigma <= 0 {
		CopyMatTo(src, dst)
		return
	}
	half := int(math.Ceil(4 * sigma))
	kernel := make([]float64, 2*half+1)
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		kernel[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	rows, cols := src.rows, src.cols
	if dst.rows != rows || dst.cols != cols || dst.data == nil {
		*dst = NewMatWithSize(rows, cols)
	}
	srcData := src.data
	tmp := make([]float64, rows*cols)

	clamp := func(v, hi int) int {
		if v < 0 {
			return 0
		}
		if v > hi {
			return hi
		}
		return v
	}

	// Horizontal pass
	for r := 0; r < rows; r++ {
		off := r * cols
		for c := 0; c < cols; c++ {
			var acc float64
			for k, w := range kernel {
				acc += w * float64(srcData[off+clamp(c+k-half, cols-1)])
			}
			tmp[off+c] = acc
		}
	}
	// Vertical pass
	dstData := dst.data
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var acc float64
			for k, w := range kernel {
				acc += w * tmp[clamp(r+k-half, rows-1)*cols+c]
			}
			dstData[r*cols+c] = float32(acc)
		}
	}
}

package trypmorph

import (
	"fmt"
	"sort"
)

// medianFloat32s returns the median of values, averaging the two central
// elements for even-length input. The input is not modified.
func medianFloat32s(values []float32) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	for i, v := range values {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2.0
	}
	return sorted[n/2]
}

// medianCorrected returns a copy of the image with its global median
// subtracted from every pixel. This is the robust background subtraction
// applied to both the DNA and MNG signals before measurement.
func medianCorrected(m Mat) []float32 {
	data := m.DataFloat32()
	med := float32(medianFloat32s(data))
	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = v - med
	}
	return out
}

// validateBinaryMask checks that every pixel of a mask is either 0 or the
// foreground value.
func validateBinaryMask(m Mat, name string) error {
	for i, v := range m.DataFloat32() {
		if v != 0 && v != maskForeground {
			return fmt.Errorf("%s: non-binary value %g at pixel %d (want 0 or %d)",
				name, v, i, maskForeground)
		}
	}
	return nil
}

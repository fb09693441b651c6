package trypmorph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedianFloat32s(t *testing.T) {
	assert.Equal(t, 0.0, medianFloat32s(nil))
	assert.Equal(t, 5.0, medianFloat32s([]float32{5}))
	assert.Equal(t, 3.0, medianFloat32s([]float32{7, 3, 1}))
	// Even length averages the two central elements.
	assert.Equal(t, 2.5, medianFloat32s([]float32{4, 1, 2, 3}))
}

func TestMedianCorrected(t *testing.T) {
	m := MatFromFloat32([]float32{10, 10, 10, 10, 10, 250}, 2, 3)
	defer m.Close()

	out := medianCorrected(m)
	require.Len(t, out, 6)
	assert.Equal(t, float32(0), out[0])
	assert.Equal(t, float32(240), out[5])
	// The source image is untouched.
	assert.Equal(t, float32(10), m.DataFloat32()[0])
}

func TestValidateBinaryMask(t *testing.T) {
	good := newImageBuilder(3, 3).fillRect(0, 0, 1, 1, maskForeground).mat()
	defer good.Close()
	assert.NoError(t, validateBinaryMask(good, "phase_mask"))

	bad := newImageBuilder(3, 3).fillRect(1, 1, 1, 1, 128).mat()
	defer bad.Close()
	err := validateBinaryMask(bad, "dna_mask")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dna_mask")
}

func TestThresholdGrid(t *testing.T) {
	m := MatFromFloat32([]float32{0, 100, 127.5, 128, 255}, 1, 5)
	defer m.Close()

	g := thresholdGrid(m, float32(maskForeground)/2)
	assert.Equal(t, byte(0), g.At(0, 0))
	assert.Equal(t, byte(0), g.At(0, 1))
	assert.Equal(t, byte(0), g.At(0, 2))
	assert.Equal(t, byte(1), g.At(0, 3))
	assert.Equal(t, byte(1), g.At(0, 4))
}

func TestByteGridBoundsAndClone(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.Set(0, 1, 1)

	assert.Equal(t, byte(0), g.At(-1, 0))
	assert.Equal(t, byte(0), g.At(0, 2))

	c := g.Clone()
	c.Set(0, 1, 0)
	assert.Equal(t, byte(1), g.At(0, 1))
	assert.False(t, g.Equal(c))
}

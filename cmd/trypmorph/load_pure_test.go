//go:build purego || js

package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGray16PNG(t *testing.T, path string, values [][]uint16) {
	t.Helper()
	h, w := len(values), len(values[0])
	img := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray16(x, y, color.Gray16{Y: values[y][x]})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadImageMatGray16MaskScalesToByteRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.png")
	writeGray16PNG(t, path, [][]uint16{
		{0, 0xFFFF},
		{0xFFFF, 0},
	})

	m, err := loadImageMat(path)
	require.NoError(t, err)
	defer m.Close()

	// 16-bit foreground comes out as 255, so downstream mask validation
	// accepts files written at either bit depth.
	data := m.DataFloat32()
	require.Len(t, data, 4)
	assert.Equal(t, float32(0), data[0])
	assert.Equal(t, float32(255), data[1])
	assert.Equal(t, float32(255), data[2])
	assert.Equal(t, float32(0), data[3])
}

func TestLoadImageMatGray8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gray.png")
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.Pix[0] = 0
	img.Pix[1] = 200
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	m, err := loadImageMat(path)
	require.NoError(t, err)
	defer m.Close()

	data := m.DataFloat32()
	require.Len(t, data, 2)
	assert.Equal(t, float32(0), data[0])
	assert.Equal(t, float32(200), data[1])
}

func TestLoadImageMatMissingFile(t *testing.T) {
	_, err := loadImageMat(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

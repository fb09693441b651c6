package trypmorph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMidlineStraight(t *testing.T) {
	sk := gridFromRows(
		"..........",
		".########.",
		"..........",
	)
	path := traceMidline(sk, Pixel{Y: 1, X: 1})

	require.Len(t, path, 8)
	for i, p := range path {
		assert.Equal(t, Pixel{Y: 1, X: 1 + i}, p)
	}
	// The trace consumes the skeleton.
	assert.Equal(t, 0, sk.CountAbove(0))
}

func TestTraceMidlineStaircase(t *testing.T) {
	sk := gridFromRows(
		"......",
		".##...",
		"..##..",
		"...##.",
		"......",
	)
	path := traceMidline(sk, Pixel{Y: 1, X: 1})

	require.Len(t, path, 6)
	assert.Equal(t, Pixel{Y: 1, X: 1}, path[0])
	assert.Equal(t, Pixel{Y: 3, X: 4}, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		dy := path[i].Y - path[i-1].Y
		dx := path[i].X - path[i-1].X
		assert.True(t, dy >= -1 && dy <= 1 && dx >= -1 && dx <= 1 && (dy != 0 || dx != 0),
			"path points %d and %d not 8-adjacent", i-1, i)
	}
}

func TestCellMidlineAnalysisSimpleCurve(t *testing.T) {
	cell := barCell()
	defer cell.Close()

	res, err := CellMidlineAnalysis(cell, NewParams())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Termini)
	assert.Equal(t, 0, res.Branches)
	require.NotEmpty(t, res.Midline)
	assert.Equal(t, len(res.Midline), res.MidlinePixels)
	assert.Equal(t, res.Termini+res.Midlines, res.MidlinePixels)

	for i := 1; i < len(res.Midline); i++ {
		dy := res.Midline[i].Y - res.Midline[i-1].Y
		dx := res.Midline[i].X - res.Midline[i-1].X
		assert.True(t, dy >= -1 && dy <= 1 && dx >= -1 && dx <= 1 && (dy != 0 || dx != 0),
			"midline points %d and %d not 8-adjacent", i-1, i)
	}
}

func TestCellMidlineAnalysisBranchedSkeleton(t *testing.T) {
	// A thick T shape keeps a branch point after pruning, so only the
	// aggregate counts are reported.
	phase := newImageBuilder(60, 60).
		fillRect(29, 5, 31, 55, maskForeground).
		fillRect(29, 29, 55, 31, maskForeground)
	cell := &CellImage{
		PhaseMask: phase.mat(),
		DNAMask:   newImageBuilder(60, 60).mat(),
		MNG:       newImageBuilder(60, 60).mat(),
		DNA:       newImageBuilder(60, 60).mat(),
	}
	defer cell.Close()

	res, err := CellMidlineAnalysis(cell, NewParams())
	require.NoError(t, err)

	assert.Greater(t, res.Branches, 0)
	assert.Nil(t, res.Midline)
	assert.Equal(t, 0, res.MidlinePixels)
}

func TestCellMidlineAnalysisValidation(t *testing.T) {
	cell := &CellImage{
		PhaseMask: newImageBuilder(10, 10).mat(),
		DNAMask:   newImageBuilder(10, 12).mat(),
		MNG:       newImageBuilder(10, 10).mat(),
		DNA:       newImageBuilder(10, 10).mat(),
	}
	defer cell.Close()

	_, err := CellMidlineAnalysis(cell, NewParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dna_mask")
}

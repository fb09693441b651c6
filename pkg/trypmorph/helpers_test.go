package trypmorph

// imageBuilder assembles synthetic test images. Rectangles are inclusive of
// their end coordinates.
type imageBuilder struct {
	data []float32
	rows int
	cols int
}

func newImageBuilder(rows, cols int) *imageBuilder {
	return &imageBuilder{data: make([]float32, rows*cols), rows: rows, cols: cols}
}

func (b *imageBuilder) fillRect(y0, x0, y1, x1 int, v float32) *imageBuilder {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			b.data[y*b.cols+x] = v
		}
	}
	return b
}

func (b *imageBuilder) mat() Mat {
	data := make([]float32, len(b.data))
	copy(data, b.data)
	return MatFromFloat32(data, b.rows, b.cols)
}

// gridFromRows parses a ByteGrid from strings, one per row; '#' marks a
// skeleton pixel.
func gridFromRows(rows ...string) *ByteGrid {
	g := NewByteGrid(len(rows), len(rows[0]))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				g.Set(y, x, 1)
			}
		}
	}
	return g
}

// barCell builds a CellImage whose phase mask is a horizontal 3-pixel-wide
// bar spanning columns 5..44 of a 25x50 grid, with empty DNA channels.
// Callers overwrite the DNA mask and intensity images as needed.
func barCell() *CellImage {
	phase := newImageBuilder(25, 50).fillRect(10, 5, 12, 44, maskForeground)
	return &CellImage{
		PhaseMask: phase.mat(),
		DNAMask:   newImageBuilder(25, 50).mat(),
		MNG:       newImageBuilder(25, 50).mat(),
		DNA:       newImageBuilder(25, 50).mat(),
	}
}

package trypmorph

// ByteGrid is a dense uint8 grid addressed by (row, column). Out-of-bounds
// reads return 0, which lets neighborhood scans run without explicit border
// handling.
type ByteGrid struct {
	data []uint8
	rows int
	cols int
}

func NewByteGrid(rows, cols int) *ByteGrid {
	return &ByteGrid{data: make([]uint8, rows*cols), rows: rows, cols: cols}
}

func (g *ByteGrid) Rows() int { return g.rows }
func (g *ByteGrid) Cols() int { return g.cols }

func (g *ByteGrid) At(y, x int) uint8 {
	if y < 0 || y >= g.rows || x < 0 || x >= g.cols {
		return 0
	}
	return g.data[y*g.cols+x]
}

func (g *ByteGrid) Set(y, x int, v uint8) {
	g.data[y*g.cols+x] = v
}

func (g *ByteGrid) Clone() *ByteGrid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return &ByteGrid{data: data, rows: g.rows, cols: g.cols}
}

// CountValue returns the number of pixels equal to v.
func (g *ByteGrid) CountValue(v uint8) int {
	n := 0
	for _, p := range g.data {
		if p == v {
			n++
		}
	}
	return n
}

// CountAbove returns the number of pixels strictly greater than v.
func (g *ByteGrid) CountAbove(v uint8) int {
	n := 0
	for _, p := range g.data {
		if p > v {
			n++
		}
	}
	return n
}

// replaceValue rewrites every pixel equal to old with new.
func (g *ByteGrid) replaceValue(old, new uint8) {
	for i, p := range g.data {
		if p == old {
			g.data[i] = new
		}
	}
}

// Equal reports whether two grids have identical dimensions and contents.
func (g *ByteGrid) Equal(o *ByteGrid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// thresholdGrid converts a Mat to a 0/1 ByteGrid, setting 1 where the value
// is strictly greater than thr.
func thresholdGrid(m Mat, thr float32) *ByteGrid {
	rows, cols := m.Rows(), m.Cols()
	g := NewByteGrid(rows, cols)
	data := m.DataFloat32()
	for i, v := range data {
		if v > thr {
			g.data[i] = 1
		}
	}
	return g
}

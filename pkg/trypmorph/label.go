package trypmorph

import (
	"github.com/theodesp/unionfind"
)

// previously-scanned neighbors of a pixel in raster order, for 8-connected
// labeling: up-left, up, up-right, left.
var priorNeighbors = [4][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}}

// labelComponents assigns 8-connected component labels to the nonzero pixels
// of g. It returns a row-major label slice (0 = background, components
// numbered 1..count in raster order of first appearance) and the component
// count.
func labelComponents(g *ByteGrid) ([]int32, int) {
	rows, cols := g.Rows(), g.Cols()
	labels := make([]int32, rows*cols)
	var merges [][2]int32
	next := int32(1)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g.At(y, x) == 0 {
				continue
			}
			var lbl int32
			for _, o := range priorNeighbors {
				ny, nx := y+o[0], x+o[1]
				if g.At(ny, nx) == 0 {
					continue
				}
				nl := labels[ny*cols+nx]
				if nl == 0 {
					continue
				}
				if lbl == 0 {
					lbl = nl
				} else if nl != lbl {
					merges = append(merges, [2]int32{lbl, nl})
				}
			}
			if lbl == 0 {
				lbl = next
				next++
			}
			labels[y*cols+x] = lbl
		}
	}

	uf := unionfind.NewThreadSafeUnionFind(int(next) + 1)
	for _, m := range merges {
		uf.Union(int(m[0]), int(m[1]))
	}

	// Resolve provisional labels to their roots and renumber components
	// compactly in raster order.
	remap := make(map[int32]int32)
	count := 0
	for i, l := range labels {
		if l == 0 {
			continue
		}
		root := l
		if r := uf.Root(int(l)); r >= 0 {
			root = int32(r)
		}
		compact, ok := remap[root]
		if !ok {
			count++
			compact = int32(count)
			remap[root] = compact
		}
		labels[i] = compact
	}
	return labels, count
}

package trypmorph

// neighborOffsets enumerates the 8-neighborhood as {dy, dx} pairs in the
// fixed scan order shared by the pruning walk and the midline tracer: dx
// ascending in the outer position, dy ascending in the inner position, first
// match wins. This tie-break is arbitrary but must stay stable so identical
// inputs always produce identical walks.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// neighborCounts builds the neighbor-count map of a skeleton: for each
// on-skeleton pixel, the number of its 8 neighbors that are also skeleton
// pixels; 0 everywhere off the skeleton. Value 1 marks a terminus, 2 an arm
// pixel, 3 or more a branch point.
func neighborCounts(sk *ByteGrid) *ByteGrid {
	rows, cols := sk.Rows(), sk.Cols()
	counts := NewByteGrid(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if sk.At(y, x) == 0 {
				continue
			}
			var n uint8
			for _, o := range neighborOffsets {
				if sk.At(y+o[0], x+o[1]) != 0 {
					n++
				}
			}
			counts.Set(y, x, n)
		}
	}
	return counts
}

// findTermini lists terminus pixels (neighbor count exactly 1) in raster
// order. Pixels on the outermost image border are excluded.
func findTermini(counts *ByteGrid) []Pixel {
	var termini []Pixel
	for y := 1; y < counts.Rows()-1; y++ {
		for x := 1; x < counts.Cols()-1; x++ {
			if counts.At(y, x) == 1 {
				termini = append(termini, Pixel{Y: y, X: x})
			}
		}
	}
	return termini
}

// PrunedSkeleton converts a binary shape mask into a 1-pixel-wide skeleton
// with short spurious branches removed. The mask is smoothed with a Gaussian
// blur of sigma prefilterRadius and re-thresholded before thinning; each
// skeleton branch shorter than pruneLength is erased, and a second thinning
// pass cleans up ragged junctions left by pruning. The input Mat is not
// modified.
func PrunedSkeleton(mask Mat, prefilterRadius float64, pruneLength int) *ByteGrid {
	blurred := NewMat()
	defer blurred.Close()
	gaussianBlurSigma(mask, &blurred, prefilterRadius)
	// Masks carry 0/255 values, so the 0.5 re-threshold lands at half the
	// foreground value.
	smoothed := thresholdGrid(blurred, float32(maskForeground)/2)

	sk := thin(smoothed)
	pruneSkeleton(sk, pruneLength)
	return thin(sk)
}

// pruneSkeleton removes, in place, every skeleton branch whose walk from a
// terminus ends in fewer than pruneLength steps. Each terminus is evaluated
// independently: one short spur can be pruned while the rest of the skeleton
// is retained, and a single unbranched skeleton shorter than pruneLength is
// erased entirely.
func pruneSkeleton(sk *ByteGrid, pruneLength int) {
	counts := neighborCounts(sk)
	for _, t := range findTermini(counts) {
		walkAndPrune(sk, counts, t, pruneLength)
	}
}

// walkAndPrune walks inward from one terminus, tagging visited pixels with 2,
// and then either clears the tagged pixels (branch too short) or restores
// them to skeleton value 1. The walk stops on reaching a branch point or
// after more than pruneLength+2 steps.
func walkAndPrune(sk, counts *ByteGrid, start Pixel, pruneLength int) {
	length := 0
	cy, cx := start.Y, start.X
	v := counts.At(cy, cx)
	for length < pruneLength+2 && v > 0 && v < 3 {
		v = 0
		if counts.At(cy, cx) < 3 {
			sk.Set(cy, cx, 2)
		}
		for _, o := range neighborOffsets {
			if sk.At(cy+o[0], cx+o[1]) == 1 {
				length++
				v = counts.At(cy, cx)
				cy += o[0]
				cx += o[1]
				break
			}
		}
	}
	if length < pruneLength {
		sk.replaceValue(2, 0)
	} else {
		sk.replaceValue(2, 1)
	}
}

// thin reduces the nonzero pixels of g to a 1-pixel-wide 8-connected
// skeleton using Zhang-Suen thinning. A new grid with values 0/1 is
// returned; the input is not modified.
func thin(g *ByteGrid) *ByteGrid {
	rows, cols := g.Rows(), g.Cols()
	sk := NewByteGrid(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g.At(y, x) != 0 {
				sk.Set(y, x, 1)
			}
		}
	}

	var marked []Pixel
	for {
		changed := false
		for pass := 0; pass < 2; pass++ {
			marked = marked[:0]
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					if sk.At(y, x) == 1 && thinRemovable(sk, y, x, pass) {
						marked = append(marked, Pixel{Y: y, X: x})
					}
				}
			}
			for _, p := range marked {
				sk.Set(p.Y, p.X, 0)
			}
			if len(marked) > 0 {
				changed = true
			}
		}
		if !changed {
			return sk
		}
	}
}

// thinRemovable applies the Zhang-Suen deletion conditions for the given
// sub-iteration (pass 0 or 1) to the pixel at (y, x).
func thinRemovable(sk *ByteGrid, y, x, pass int) bool {
	// p2..p9 clockwise from north.
	p2 := sk.At(y-1, x)
	p3 := sk.At(y-1, x+1)
	p4 := sk.At(y, x+1)
	p5 := sk.At(y+1, x+1)
	p6 := sk.At(y+1, x)
	p7 := sk.At(y+1, x-1)
	p8 := sk.At(y, x-1)
	p9 := sk.At(y-1, x-1)

	b := int(p2) + int(p3) + int(p4) + int(p5) + int(p6) + int(p7) + int(p8) + int(p9)
	if b < 2 || b > 6 {
		return false
	}

	seq := [9]uint8{p2, p3, p4, p5, p6, p7, p8, p9, p2}
	a := 0
	for i := 0; i < 8; i++ {
		if seq[i] == 0 && seq[i+1] == 1 {
			a++
		}
	}
	if a != 1 {
		return false
	}

	if pass == 0 {
		return p2*p4*p6 == 0 && p4*p6*p8 == 0
	}
	return p2*p4*p8 == 0 && p2*p6*p8 == 0
}

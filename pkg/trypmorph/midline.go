package trypmorph

// CellMidlineAnalysis analyses the cell shape from the phase mask by
// skeletonization. It always reports the terminus/arm/branch pixel counts of
// the pruned skeleton; the midline path itself is traced only when the
// skeleton reduced to a single open curve (exactly two termini and no branch
// points).
func CellMidlineAnalysis(cell *CellImage, params *Params) (*MidlineResult, error) {
	if err := cell.Validate(); err != nil {
		return nil, err
	}

	sk := PrunedSkeleton(cell.PhaseMask, params.PrefilterRadius, params.PruneLength)
	counts := neighborCounts(sk)

	res := &MidlineResult{
		Termini:  counts.CountValue(1),
		Midlines: counts.CountValue(2),
		Branches: counts.CountAbove(2),
	}

	if res.Termini == 2 && res.Branches == 0 {
		if termini := findTermini(counts); len(termini) > 0 {
			res.Midline = traceMidline(sk, termini[0])
			res.MidlinePixels = len(res.Midline)
		}
	}
	return res, nil
}

// traceMidline walks a simple skeleton end-to-end from start, returning the
// ordered pixel path. The walk consumes the skeleton destructively: each
// visited pixel is cleared, and the next step goes to the first remaining
// skeleton neighbor in the shared scan order. Orientation of the result is
// start-terminus first; which end is anterior is resolved later by the
// morphology fusion.
func traceMidline(sk *ByteGrid, start Pixel) []Pixel {
	path := []Pixel{start}
	v := sk.At(start.Y, start.X)
	for v > 0 {
		v = 0
		cur := path[len(path)-1]
		sk.Set(cur.Y, cur.X, 0)
		for _, o := range neighborOffsets {
			ny, nx := cur.Y+o[0], cur.X+o[1]
			if sk.At(ny, nx) == 1 {
				path = append(path, Pixel{Y: ny, X: nx})
				v = sk.At(ny, nx)
				break
			}
		}
	}
	return path
}

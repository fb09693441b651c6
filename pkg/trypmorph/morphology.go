package trypmorph

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// CellMorphologyAnalysis combines midline tracing and KN classification into
// an oriented, distance-parameterized morphology record. When a midline was
// traced, every DNA object is projected onto it; when at least one
// kinetoplast exists, the path is oriented so index 0 is the
// kinetoplast-proximal end (the biological anterior) and the anterior/
// posterior coordinates, ordered KN string and arc-length profile are
// emitted. Without a midline the KN results pass through with skeleton
// counts only.
func CellMorphologyAnalysis(cell *CellImage, params *Params) (*MorphologyResult, error) {
	midline, err := CellMidlineAnalysis(cell, params)
	if err != nil {
		return nil, err
	}
	kn, err := CellKNAnalysis(cell, params)
	if err != nil {
		return nil, err
	}

	res := &MorphologyResult{MidlineResult: *midline, KNResult: *kn}
	if len(res.Midline) == 0 {
		return res, nil
	}

	objects := make([]*DNAObject, 0, len(kn.ObjectsK)+len(kn.ObjectsN))
	objects = append(objects, kn.ObjectsK...)
	objects = append(objects, kn.ObjectsN...)
	for _, o := range objects {
		o.MidlineIndex = nearestPathIndex(res.Midline, o.Centroid)
	}
	sortByMidlineIndex(objects)
	res.ObjectsK, res.ObjectsN = splitByType(objects)

	if len(res.ObjectsK) == 0 {
		// No kinetoplast to anchor the anterior end; leave the record
		// unoriented.
		return res, nil
	}

	// Kinetoplast distances from both path ends decide the orientation.
	pathLen := len(res.Midline)
	minFromStart, minFromEnd := pathLen, pathLen
	for _, o := range res.ObjectsK {
		if o.MidlineIndex < minFromStart {
			minFromStart = o.MidlineIndex
		}
		if pathLen-o.MidlineIndex < minFromEnd {
			minFromEnd = pathLen - o.MidlineIndex
		}
	}
	if minFromEnd < minFromStart {
		reversePath(res.Midline)
		for _, o := range objects {
			o.MidlineIndex = pathLen - o.MidlineIndex
		}
		sortByMidlineIndex(objects)
		res.ObjectsK, res.ObjectsN = splitByType(objects)
	}

	anterior := res.Midline[0]
	posterior := res.Midline[pathLen-1]
	res.Anterior = &anterior
	res.Posterior = &posterior

	codes := make([]byte, len(objects))
	for i, o := range objects {
		codes[i] = o.Type.Code()[0]
	}
	res.KNOrdered = string(codes)

	// Arc length: midline pixels are always 8-adjacent, so each step is 1
	// for orthogonal adjacency and sqrt(2) for diagonal adjacency.
	steps := make([]float64, pathLen)
	for i := 1; i < pathLen; i++ {
		if res.Midline[i].Y != res.Midline[i-1].Y && res.Midline[i].X != res.Midline[i-1].X {
			steps[i] = math.Sqrt2
		} else {
			steps[i] = 1
		}
	}
	res.Distance = make([]float64, pathLen)
	floats.CumSum(res.Distance, steps)
	res.Length = res.Distance[pathLen-1]

	return res, nil
}

// nearestPathIndex returns the index of the path pixel closest to the
// centroid. Ties keep the first occurrence in path order.
func nearestPathIndex(path []Pixel, c Point2d) int {
	best := 0
	bestDist := math.Inf(1)
	for i, p := range path {
		dy := c.Y - float64(p.Y)
		dx := c.X - float64(p.X)
		if d := dy*dy + dx*dx; d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func sortByMidlineIndex(objects []*DNAObject) {
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].MidlineIndex < objects[j].MidlineIndex
	})
}

func reversePath(path []Pixel) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

package trypmorph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CellSignalAnalysis measures the MNG signal within the cell body. The MNG
// image is median background-corrected, the phase mask is labeled, and the
// statistics of the first connected component are reported.
func CellSignalAnalysis(cell *CellImage) (*SignalStats, error) {
	if err := cell.Validate(); err != nil {
		return nil, err
	}

	mng := medianCorrected(cell.MNG)
	mask := thresholdGrid(cell.PhaseMask, 0)
	labels, n := labelComponents(mask)
	if n == 0 {
		return nil, fmt.Errorf("signal analysis: phase mask has no foreground component")
	}

	var values []float64
	for i, l := range labels {
		if l == 1 {
			values = append(values, float64(mng[i]))
		}
	}

	area := float64(len(values))
	mean := stat.Mean(values, nil)
	return &SignalStats{
		CellArea: area,
		MNGMean:  mean,
		MNGSum:   mean * area,
		MNGMax:   floats.Max(values),
	}, nil
}

// CellKNAnalysis classifies and measures the DNA signal in kinetoplasts and
// nuclei. DNA mask components are filtered to those overlapping the cell
// body with convex area above params.MinArea, then sorted by ascending area;
// the smallest ceil(count/2) become kinetoplasts unless their area reaches
// params.KNThresholdArea, and the rest are nuclei. The rank split encodes
// the assumption that a cell has at most as many kinetoplasts as nuclei.
func CellKNAnalysis(cell *CellImage, params *Params) (*KNResult, error) {
	if err := cell.Validate(); err != nil {
		return nil, err
	}

	rows, cols := cell.DNAMask.Rows(), cell.DNAMask.Cols()
	dna := medianCorrected(cell.DNA)
	labels, n := labelComponents(thresholdGrid(cell.DNAMask, 0))
	props := measureRegions(labels, n, rows, cols, cell.PhaseMask, dna)

	var objects []*DNAObject
	for i := range props {
		p := &props[i]
		if p.phaseMax != maskForeground || p.convexArea <= params.MinArea {
			continue
		}
		objects = append(objects, &DNAObject{
			Centroid:     p.centroid,
			Area:         p.convexArea,
			DNASum:       p.convexArea * p.dnaMean,
			DNAMax:       p.dnaMax,
			Type:         Nucleus,
			MidlineIndex: -1,
		})
	}

	sort.SliceStable(objects, func(i, j int) bool { return objects[i].Area < objects[j].Area })

	countK := 0
	for i := 0; i < (len(objects)+1)/2; i++ {
		if objects[i].Area < params.KNThresholdArea {
			objects[i].Type = Kinetoplast
			countK++
		}
	}

	res := &KNResult{
		CountKN: fmt.Sprintf("%dK%dN", countK, len(objects)-countK),
		CountK:  countK,
		CountN:  len(objects) - countK,
	}
	res.ObjectsK, res.ObjectsN = splitByType(objects)
	return res, nil
}

// splitByType partitions objects into kinetoplast and nucleus lists,
// preserving their current order.
func splitByType(objects []*DNAObject) (k, n []*DNAObject) {
	k = make([]*DNAObject, 0, len(objects))
	n = make([]*DNAObject, 0, len(objects))
	for _, o := range objects {
		if o.Type == Kinetoplast {
			k = append(k, o)
		} else {
			n = append(n, o)
		}
	}
	return k, n
}

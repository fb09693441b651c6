// Package trypmorph extracts quantitative morphology from pre-segmented
// microscopy images of single trypanosome cells: a pruned skeleton midline of
// the cell body, and classification and positioning of DNA-containing
// organelles (kinetoplast vs nucleus) along that midline, oriented
// anterior-to-posterior.
package trypmorph

import (
	"fmt"
)

// maskForeground is the foreground value expected in binary mask images.
const maskForeground = 255

// Point2d is a sub-pixel image location. X is the column, Y the row.
type Point2d struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pixel is an integer grid coordinate. Y is the row, X the column.
type Pixel struct {
	Y int `json:"y"`
	X int `json:"x"`
}

// ObjectType labels a DNA object as kinetoplast or nucleus.
type ObjectType string

const (
	Kinetoplast ObjectType = "k"
	Nucleus     ObjectType = "n"
)

// Code returns the single-letter uppercase code used in KN strings.
func (t ObjectType) Code() string {
	if t == Kinetoplast {
		return "K"
	}
	return "N"
}

// DNAObject is one DNA-stained organelle detected in the DNA mask. Area is
// the convex area of the mask component; DNASum and DNAMax are measured on
// the median background-corrected DNA signal. MidlineIndex is the index of
// the nearest midline pixel, or -1 before positional analysis.
type DNAObject struct {
	Centroid     Point2d    `json:"centroid"`
	Area         float64    `json:"area"`
	DNASum       float64    `json:"dna_sum"`
	DNAMax       float64    `json:"dna_max"`
	Type         ObjectType `json:"type"`
	MidlineIndex int        `json:"midline_index"`
}

// KNResult is the outcome of kinetoplast/nucleus classification.
type KNResult struct {
	CountKN  string       `json:"count_kn"`
	CountK   int          `json:"count_k"`
	CountN   int          `json:"count_n"`
	ObjectsK []*DNAObject `json:"objects_k"`
	ObjectsN []*DNAObject `json:"objects_n"`
}

// MidlineResult holds skeleton morphology counts and, when the pruned
// skeleton reduced to a single open curve (two termini, no branch points),
// the traced midline path.
type MidlineResult struct {
	Termini       int     `json:"termini"`
	Midlines      int     `json:"midlines"`
	Branches      int     `json:"branches"`
	Midline       []Pixel `json:"midline,omitempty"`
	MidlinePixels int     `json:"midline_pixels,omitempty"`
}

// MorphologyResult fuses midline tracing and KN classification. The
// orientation fields (Anterior, Posterior, KNOrdered, Distance, Length) are
// present only when a midline was traced and at least one kinetoplast was
// found to anchor the anterior end.
type MorphologyResult struct {
	MidlineResult
	KNResult
	Anterior  *Pixel    `json:"anterior,omitempty"`
	Posterior *Pixel    `json:"posterior,omitempty"`
	KNOrdered string    `json:"kn_ordered,omitempty"`
	Distance  []float64 `json:"distance,omitempty"`
	Length    float64   `json:"length,omitempty"`
}

// SignalStats summarizes the median background-corrected MNG signal within
// the cell body.
type SignalStats struct {
	CellArea float64 `json:"cell_area"`
	MNGMean  float64 `json:"mng_mean"`
	MNGSum   float64 `json:"mng_sum"`
	MNGMax   float64 `json:"mng_max"`
}

// Params contains the tunable parameters of the morphology pipeline.
type Params struct {
	// PrefilterRadius is the Gaussian blur sigma applied to the phase mask
	// before skeletonization, to suppress single-pixel jaggedness.
	PrefilterRadius float64
	// PruneLength is the shortest skeleton branch retained by pruning. A
	// single unbranched skeleton shorter than this is erased entirely.
	PruneLength int
	// MinArea is the minimum convex area for a DNA mask component to count
	// as a real organelle.
	MinArea float64
	// KNThresholdArea is the maximum area admissible for kinetoplast
	// classification; oversized small-rank objects fall back to nucleus.
	KNThresholdArea float64
}

// NewParams returns Params with the default values.
func NewParams() *Params {
	return &Params{
		PrefilterRadius: 2.0,
		PruneLength:     15,
		MinArea:         17,
		KNThresholdArea: 250,
	}
}

// CellImage bundles the co-registered per-cell images produced by upstream
// segmentation. PhaseMask and DNAMask are binary (0 or 255); MNG and DNA are
// raw intensity images.
type CellImage struct {
	PhaseMask Mat
	DNAMask   Mat
	MNG       Mat
	DNA       Mat
}

// Close releases all four images.
func (c *CellImage) Close() {
	c.PhaseMask.Close()
	c.DNAMask.Close()
	c.MNG.Close()
	c.DNA.Close()
}

// Validate checks the CellImage preconditions: all four images present,
// identical dimensions, and binary mask values. Analysis entry points call
// this and fail fast rather than produce a silently wrong record.
func (c *CellImage) Validate() error {
	if c.PhaseMask.Empty() || c.DNAMask.Empty() || c.MNG.Empty() || c.DNA.Empty() {
		return fmt.Errorf("cell image: all of phase_mask, dna_mask, mng and dna are required")
	}
	rows, cols := c.PhaseMask.Rows(), c.PhaseMask.Cols()
	for _, im := range []struct {
		name string
		m    Mat
	}{
		{"dna_mask", c.DNAMask},
		{"mng", c.MNG},
		{"dna", c.DNA},
	} {
		if im.m.Rows() != rows || im.m.Cols() != cols {
			return fmt.Errorf("cell image: %s is %dx%d, want %dx%d to match phase_mask",
				im.name, im.m.Rows(), im.m.Cols(), rows, cols)
		}
	}
	if err := validateBinaryMask(c.PhaseMask, "phase_mask"); err != nil {
		return err
	}
	return validateBinaryMask(c.DNAMask, "dna_mask")
}

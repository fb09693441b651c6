package trypmorph

import "sort"

// regionProps holds the per-component measurements the KN classifier needs.
// Intensity statistics are measured on the median background-corrected DNA
// signal; phaseMax is the maximum phase-mask value under the component and
// serves as the inside-the-cell test.
type regionProps struct {
	area       float64
	convexArea float64
	phaseMax   float32
	dnaMean    float64
	dnaMax     float64
	centroid   Point2d // DNA-intensity-weighted
	pixels     []Pixel
}

// measureRegions computes regionProps for each of the n labeled components.
// labels is row-major over a rows x cols grid; phase is the phase mask and
// dna the corrected DNA signal, both co-registered with labels.
func measureRegions(labels []int32, n, rows, cols int, phase Mat, dna []float32) []regionProps {
	props := make([]regionProps, n)
	phaseData := phase.DataFloat32()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			l := labels[y*cols+x]
			if l == 0 {
				continue
			}
			p := &props[l-1]
			p.pixels = append(p.pixels, Pixel{Y: y, X: x})
			if phaseData[y*cols+x] > p.phaseMax {
				p.phaseMax = phaseData[y*cols+x]
			}
			v := float64(dna[y*cols+x])
			if len(p.pixels) == 1 || v > p.dnaMax {
				p.dnaMax = v
			}
		}
	}

	for i := range props {
		p := &props[i]
		p.area = float64(len(p.pixels))
		p.convexArea = convexPixelCount(p.pixels)

		var sum, sx, sy, sw float64
		for _, px := range p.pixels {
			w := float64(dna[px.Y*cols+px.X])
			sum += w
			sx += w * float64(px.X)
			sy += w * float64(px.Y)
			sw += w
		}
		p.dnaMean = sum / p.area
		if sw != 0 {
			p.centroid = Point2d{X: sx / sw, Y: sy / sw}
		} else {
			// Degenerate weights; fall back to the geometric centroid.
			var gx, gy float64
			for _, px := range p.pixels {
				gx += float64(px.X)
				gy += float64(px.Y)
			}
			p.centroid = Point2d{X: gx / p.area, Y: gy / p.area}
		}
	}
	return props
}

// convexPixelCount returns the number of grid pixels whose centers lie
// within the convex hull of the component's pixel centers. For degenerate
// (collinear or tiny) components this is the pixel count itself.
func convexPixelCount(pixels []Pixel) float64 {
	if len(pixels) < 3 {
		return float64(len(pixels))
	}
	hull := convexHull(pixels)
	if len(hull) < 3 {
		return float64(len(pixels))
	}

	minX, maxX := pixels[0].X, pixels[0].X
	minY, maxY := pixels[0].Y, pixels[0].Y
	for _, p := range pixels[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	count := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if insideConvex(hull, x, y) {
				count++
			}
		}
	}
	return float64(count)
}

// convexHull computes the convex hull of the points via Andrew's monotone
// chain.
func convexHull(pixels []Pixel) []Pixel {
	pts := make([]Pixel, len(pixels))
	copy(pts, pixels)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	cross := func(o, a, b Pixel) int {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	var lower []Pixel
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	var upper []Pixel
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// insideConvex reports whether (x, y) lies inside or on the hull boundary.
// Interior points sit on the non-negative side of every hull edge for the
// winding produced by convexHull.
func insideConvex(hull []Pixel, x, y int) bool {
	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		if (b.X-a.X)*(y-a.Y)-(b.Y-a.Y)*(x-a.X) < 0 {
			return false
		}
	}
	return true
}

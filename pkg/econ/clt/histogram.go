package clt

// Histogram is a density-normalized binning of a value sequence: len(Edges)
// is len(Density)+1, and the bar areas sum to 1 so a probability density
// curve can be drawn over it on the same scale.
type Histogram struct {
	Edges   []float64
	Density []float64
}

// Bin divides [min, max] of values into the given number of equal-width
// bins and counts occupancy, normalized to density. Values are not assumed
// sorted. A degenerate range (all values equal) widens to a unit interval
// centered on the value so the histogram stays drawable.
func Bin(values []float64, bins int) Histogram {
	if bins < 1 {
		panic("clt: bin count must be at least 1")
	}
	if len(values) == 0 {
		return Histogram{Edges: []float64{0, 1}, Density: make([]float64, 1)}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	counts := make([]float64, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins { // v == hi lands in the last bin
			idx = bins - 1
		}
		counts[idx]++
	}

	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi

	total := float64(len(values))
	for i, c := range counts {
		counts[i] = c / (total * width)
	}

	return Histogram{Edges: edges, Density: counts}
}

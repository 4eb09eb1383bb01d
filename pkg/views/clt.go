package views

import (
	"fmt"

	"github.com/ecolab-dev/ecolab/pkg/econ/clt"
	"github.com/ecolab-dev/ecolab/pkg/reactive"
	"github.com/ecolab-dev/ecolab/pkg/scene"
)

// CLTState is the binned derivation the histogram view consumes. The
// simulation result and the histogram come from two separate derivation
// nodes so a bin-count change never re-simulates; this struct is the second
// node's output.
type CLTState struct {
	Result clt.SamplingResult
	Hist   clt.Histogram
}

// SamplingHistogram renders the empirical sampling distribution of the mean
// with the theoretical normal overlay predicted by the CLT.
type SamplingHistogram struct {
	state *reactive.Memo[CLTState]
}

// NewSamplingHistogram builds the histogram view over the binned
// derivation.
func NewSamplingHistogram(state *reactive.Memo[CLTState]) *SamplingHistogram {
	return &SamplingHistogram{state: state}
}

func (v *SamplingHistogram) Name() string { return "sampling-distribution" }

func (v *SamplingHistogram) Render() scene.Scene {
	st := v.state.Get()

	lo := st.Hist.Edges[0]
	hi := st.Hist.Edges[len(st.Hist.Edges)-1]
	xs, ys := clt.NormalCurve(st.Result.PopulationMean, st.Result.StandardError, lo, hi, curvePoints)

	ymax := 0.0
	for _, d := range st.Hist.Density {
		if d > ymax {
			ymax = d
		}
	}
	for _, y := range ys {
		if y > ymax {
			ymax = y
		}
	}

	return scene.Scene{
		Title: fmt.Sprintf("Sampling distribution of the mean (%s, n=%d)",
			st.Result.Distribution, st.Result.N),
		X: scene.Axis{Label: "sample mean", Min: lo, Max: hi},
		Y: scene.Axis{Label: "density", Min: 0, Max: 1.1 * ymax},
		Series: []scene.Series{
			scene.Bars("sample means", st.Hist.Edges, st.Hist.Density),
			scene.Line("normal approximation", xs, ys),
			scene.VLine("μ", st.Result.PopulationMean),
		},
	}
}

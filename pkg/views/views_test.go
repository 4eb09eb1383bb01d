package views

import (
	"math"
	"strings"
	"testing"

	"github.com/ecolab-dev/ecolab/pkg/econ/clt"
	"github.com/ecolab-dev/ecolab/pkg/econ/islm"
	"github.com/ecolab-dev/ecolab/pkg/reactive"
	"github.com/ecolab-dev/ecolab/pkg/scene"
)

func solvedState(t *testing.T) *reactive.Memo[EquilibriumState] {
	t.Helper()
	p := islm.Params{
		C0: 100, I0: 100, G: 200, T: 100,
		C: 0.8, B: 20, M: 600, P: 1, K: 0.5, H: 20,
	}
	return reactive.NewMemo(func() EquilibriumState {
		eq, err := islm.Solve(p)
		return EquilibriumState{Params: p, Eq: eq, Err: err}
	})
}

func degenerateState() *reactive.Memo[EquilibriumState] {
	p := islm.Params{
		C0: 100, I0: 100, G: 200, T: 100,
		C: 0.8, B: 20, M: 600, P: 1, K: -0.2, H: 20,
	}
	return reactive.NewMemo(func() EquilibriumState {
		eq, err := islm.Solve(p)
		return EquilibriumState{Params: p, Eq: eq, Err: err}
	})
}

func findSeries(t *testing.T, s scene.Scene, name string) scene.Series {
	t.Helper()
	for _, series := range s.Series {
		if series.Name == name {
			return series
		}
	}
	t.Fatalf("scene %q has no series %q", s.Title, name)
	return scene.Series{}
}

func TestISLMViewAxisHeuristics(t *testing.T) {
	v := NewISLM(solvedState(t))
	s := v.Render()

	// Y* ≈ 1314.29 → xmax = 1.5·Y*; r* ≈ 2.857 → ymax floors at 10.
	wantX := 1.5 * (18400.0 / 14.0)
	if math.Abs(s.X.Max-wantX) > 1e-6 {
		t.Errorf("xmax = %v, want %v", s.X.Max, wantX)
	}
	if s.Y.Max != 10 {
		t.Errorf("ymax = %v, want floor 10", s.Y.Max)
	}
}

func TestISLMViewAxisFloor(t *testing.T) {
	// A small equilibrium keeps the 1000-income floor.
	p := islm.Params{
		C0: 10, I0: 10, G: 20, T: 10,
		C: 0.5, B: 20, M: 60, P: 1, K: 0.5, H: 20,
	}
	state := reactive.NewMemo(func() EquilibriumState {
		eq, err := islm.Solve(p)
		return EquilibriumState{Params: p, Eq: eq, Err: err}
	})

	s := NewISLM(state).Render()
	if s.X.Max != 1000 {
		t.Errorf("xmax = %v, want floor 1000", s.X.Max)
	}
}

func TestISLMViewCurvesCrossAtEquilibrium(t *testing.T) {
	state := solvedState(t)
	s := NewISLM(state).Render()

	point := findSeries(t, s, "equilibrium")
	st := state.Peek()
	if point.X[0] != st.Eq.Y || point.Y[0] != st.Eq.R {
		t.Errorf("equilibrium marker at (%v, %v), want (%v, %v)",
			point.X[0], point.Y[0], st.Eq.Y, st.Eq.R)
	}

	is := findSeries(t, s, "IS")
	lm := findSeries(t, s, "LM")
	if len(is.X) != curvePoints || len(lm.X) != curvePoints {
		t.Errorf("curves sampled with %d/%d points, want %d", len(is.X), len(lm.X), curvePoints)
	}
}

func TestViewsDegenerateFallback(t *testing.T) {
	state := degenerateState()

	renderers := []Renderer{
		NewGoodsMarket(state),
		NewMoneyMarket(state),
		NewISLM(state),
		NewSummary(state),
	}

	for _, r := range renderers {
		s := r.Render()
		if len(s.Series) != 0 {
			t.Errorf("%s: degenerate model rendered %d series", r.Name(), len(s.Series))
		}
		if !strings.Contains(s.Message, "no unique equilibrium") {
			t.Errorf("%s: fallback message = %q", r.Name(), s.Message)
		}
	}
}

func TestViewsShareOneComputation(t *testing.T) {
	state := solvedState(t)

	renderers := []Renderer{
		NewGoodsMarket(state),
		NewMoneyMarket(state),
		NewISLM(state),
		NewSummary(state),
	}
	for _, r := range renderers {
		_ = r.Render()
	}

	if state.Computations() != 1 {
		t.Errorf("four views triggered %d computations, want 1", state.Computations())
	}
}

func TestGoodsMarketDiagonal(t *testing.T) {
	s := NewGoodsMarket(solvedState(t)).Render()

	diag := findSeries(t, s, "45°")
	for i := range diag.X {
		if diag.X[i] != diag.Y[i] {
			t.Fatalf("45° line broken at %d: (%v, %v)", i, diag.X[i], diag.Y[i])
		}
	}
	if !diag.Dashed {
		t.Error("45° line should be dashed")
	}

	// Planned expenditure equals income at Y*.
	ae := findSeries(t, s, "planned expenditure")
	if len(ae.X) != curvePoints {
		t.Errorf("expenditure line sampled with %d points", len(ae.X))
	}
}

func TestMoneyMarketSupplyGuide(t *testing.T) {
	state := solvedState(t)
	s := NewMoneyMarket(state).Render()

	supply := findSeries(t, s, "money supply")
	st := state.Peek()
	if supply.Kind != scene.KindVLine || supply.X[0] != st.Params.M/st.Params.P {
		t.Errorf("money supply guide at %v, want %v", supply.X[0], st.Params.M/st.Params.P)
	}
}

func TestSummaryAnnotations(t *testing.T) {
	s := NewSummary(solvedState(t)).Render()

	if len(s.Annotations) != 3 {
		t.Fatalf("got %d annotations, want 3", len(s.Annotations))
	}
	joined := ""
	for _, a := range s.Annotations {
		joined += a.Text + "\n"
	}
	for _, want := range []string{"A = 320.00", "Y* = 1314.29", "r* = 2.857"} {
		if !strings.Contains(joined, want) {
			t.Errorf("annotations %q missing %q", joined, want)
		}
	}
}

func TestSamplingHistogramView(t *testing.T) {
	res := clt.Simulate(clt.Uniform, 30, 2000, clt.NewRand(5))
	state := reactive.NewMemo(func() CLTState {
		return CLTState{Result: res, Hist: clt.Bin(res.SampleMeans, 25)}
	})

	s := NewSamplingHistogram(state).Render()

	bars := findSeries(t, s, "sample means")
	if len(bars.Edges) != 26 || len(bars.Heights) != 25 {
		t.Errorf("got %d edges / %d heights, want 26/25", len(bars.Edges), len(bars.Heights))
	}

	mu := findSeries(t, s, "μ")
	if mu.X[0] != 0.5 {
		t.Errorf("μ guide at %v, want 0.5", mu.X[0])
	}

	curve := findSeries(t, s, "normal approximation")
	if len(curve.X) != curvePoints {
		t.Errorf("overlay sampled with %d points", len(curve.X))
	}

	// Axis must cover the histogram range with headroom above the peak.
	if s.X.Min != bars.Edges[0] || s.X.Max != bars.Edges[25] {
		t.Errorf("x axis [%v, %v] does not match histogram range", s.X.Min, s.X.Max)
	}
	for _, h := range bars.Heights {
		if h > s.Y.Max {
			t.Errorf("bar height %v exceeds y axis %v", h, s.Y.Max)
		}
	}
	if !strings.Contains(s.Title, "uniform") || !strings.Contains(s.Title, "n=30") {
		t.Errorf("title %q missing parameters", s.Title)
	}
}

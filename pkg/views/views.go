// Package views turns derived model state into chart scenes. Each renderer
// declares the derivation it consumes by holding the memo that produces it;
// rendering pulls the current value, which recomputes only when an input
// changed. Renderers never write model state.
package views

import (
	"errors"

	"github.com/ecolab-dev/ecolab/pkg/econ/islm"
	"github.com/ecolab-dev/ecolab/pkg/scene"
)

// Renderer produces a chart scene from the current derived state.
type Renderer interface {
	// Name identifies the view in scene frames and metrics.
	Name() string

	// Render pulls the view's derivation and builds its scene. A model
	// with no drawable state yields a fallback scene, never a panic.
	Render() scene.Scene
}

// EquilibriumState is the shared derivation every IS-LM view consumes:
// the parameter snapshot it was solved from, the equilibrium, and the
// solve error if the model was degenerate.
type EquilibriumState struct {
	Params islm.Params
	Eq     islm.Equilibrium
	Err    error
}

// curvePoints is the sampling resolution for drawn curves.
const curvePoints = 101

// linspace returns n evenly spaced values over [lo, hi].
func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}

// incomeAxisMax pads the income axis: 1.5× equilibrium income with a floor
// of 1000 so small equilibria still get a readable chart.
func incomeAxisMax(y float64) float64 {
	if v := 1.5 * y; v > 1000 {
		return v
	}
	return 1000
}

// rateAxisMax pads the interest-rate axis: 1.5× the equilibrium rate with a
// floor of 10; a non-positive rate falls back to the floor.
func rateAxisMax(r float64) float64 {
	if v := 1.5 * r; v > 10 {
		return v
	}
	return 10
}

// fallbackMessage maps a solve error to user-facing chart text.
func fallbackMessage(err error) string {
	if errors.Is(err, islm.ErrDegenerateModel) {
		return "no unique equilibrium: the IS and LM curves do not intersect"
	}
	return err.Error()
}

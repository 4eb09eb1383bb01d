// Package clt builds the numeric basis for the Central Limit Theorem demo:
// a Monte-Carlo sampling distribution of the mean, the matching theoretical
// normal curve, and histogram binning for display.
//
// Sample generation and binning are deliberately separate steps. A change
// to the bin count re-bins the existing means; only a change to the
// population distribution or the sample size re-simulates.
package clt

import (
	"math"
	"math/rand/v2"
)

// Trials is the fixed number of Monte-Carlo trials per simulation.
// Not user-configurable.
const Trials = 5000

// SamplingResult is the sampling distribution of the mean for one
// (distribution, n) pair: Trials sample means plus the closed-form
// population mean and the standard error σ/√n that parameterize the
// theoretical normal overlay.
type SamplingResult struct {
	Distribution   Distribution
	N              int
	SampleMeans    []float64
	PopulationMean float64
	StandardError  float64
}

// NewRand returns the simulator's pseudo-random source for a seed.
// Identical seeds yield identical simulations.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Simulate runs k independent trials of n i.i.d. draws from dist and
// collects each trial's arithmetic mean. It is pure given the generator
// state: a fresh generator with the same seed reproduces the result.
func Simulate(dist Distribution, n, k int, rng *rand.Rand) SamplingResult {
	if n < 1 {
		panic("clt: sample size must be at least 1")
	}
	if k < 1 {
		panic("clt: trial count must be at least 1")
	}

	means := make([]float64, k)
	for trial := range means {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += dist.sample(rng)
		}
		means[trial] = sum / float64(n)
	}

	return SamplingResult{
		Distribution:   dist,
		N:              n,
		SampleMeans:    means,
		PopulationMean: dist.Mean(),
		StandardError:  dist.StdDev() / math.Sqrt(float64(n)),
	}
}

// NormalCurve samples the normal density with mean mu and standard
// deviation sigma at points evenly spaced over [lo, hi]. It returns the
// x coordinates and densities ready to plot over a histogram.
func NormalCurve(mu, sigma, lo, hi float64, points int) (xs, ys []float64) {
	if points < 2 {
		points = 2
	}
	xs = make([]float64, points)
	ys = make([]float64, points)

	step := (hi - lo) / float64(points-1)
	norm := 1 / (sigma * math.Sqrt(2*math.Pi))
	for i := range xs {
		x := lo + float64(i)*step
		z := (x - mu) / sigma
		xs[i] = x
		ys[i] = norm * math.Exp(-z*z/2)
	}
	return xs, ys
}

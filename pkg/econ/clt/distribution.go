package clt

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Distribution is a population distribution the demo can sample from.
// The variants are a tagged set with an exhaustive switch in each method,
// so adding a distribution without handling it everywhere fails loudly.
type Distribution int

const (
	// Uniform is Uniform(0,1).
	Uniform Distribution = iota

	// Exponential is Exponential(rate=1).
	Exponential

	// Beta is Beta(1/2, 1/2), the arcsine distribution on (0,1).
	Beta
)

// Distributions lists every supported variant, in manifest order.
var Distributions = []Distribution{Uniform, Exponential, Beta}

// ParseDistribution maps a selector string to its variant.
func ParseDistribution(s string) (Distribution, error) {
	switch s {
	case "uniform":
		return Uniform, nil
	case "exponential":
		return Exponential, nil
	case "beta":
		return Beta, nil
	default:
		return 0, fmt.Errorf("clt: unknown distribution %q", s)
	}
}

// String returns the selector form of the distribution.
func (d Distribution) String() string {
	switch d {
	case Uniform:
		return "uniform"
	case Exponential:
		return "exponential"
	case Beta:
		return "beta"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

// Mean returns the closed-form population mean μ.
func (d Distribution) Mean() float64 {
	switch d {
	case Uniform:
		return 0.5
	case Exponential:
		return 1
	case Beta:
		return 0.5
	default:
		panic("clt: unhandled distribution " + d.String())
	}
}

// StdDev returns the closed-form population standard deviation σ.
func (d Distribution) StdDev() float64 {
	switch d {
	case Uniform:
		return math.Sqrt(1.0 / 12.0)
	case Exponential:
		return 1
	case Beta:
		return math.Sqrt(0.125)
	default:
		panic("clt: unhandled distribution " + d.String())
	}
}

// sample draws one observation from the population.
func (d Distribution) sample(rng *rand.Rand) float64 {
	switch d {
	case Uniform:
		return rng.Float64()
	case Exponential:
		return rng.ExpFloat64()
	case Beta:
		// Inverse-CDF transform for the arcsine law:
		// F(x) = (2/π)·asin(√x), so F⁻¹(u) = sin²(πu/2).
		s := math.Sin(math.Pi * rng.Float64() / 2)
		return s * s
	default:
		panic("clt: unhandled distribution " + d.String())
	}
}

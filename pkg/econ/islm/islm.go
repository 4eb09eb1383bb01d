// Package islm solves the textbook IS-LM model in closed form.
//
// The model is the linear system
//
//	IS: r = (A - (1-c)·Y) / b      goods market
//	LM: r = (k·Y - M/P) / h        money market
//
// with autonomous expenditure A = C0 + I0 + G - c·T. Solving the two
// equations for the unique intersection gives
//
//	Y = (h·A + b·M/P) / (b·k + h·(1-c))
//	r = (k·Y - M/P) / h
//
// When b·k + h·(1-c) vanishes the curves are parallel and no unique
// equilibrium exists; Solve reports that as ErrDegenerateModel instead of
// letting NaN or Inf leak into charts.
package islm

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateModel is returned when the equilibrium denominator
// b·k + h·(1-c) is zero (within floating-point tolerance), i.e. the IS and
// LM curves have no unique intersection.
var ErrDegenerateModel = errors.New("islm: no unique equilibrium")

// degenerateEpsilon is the relative tolerance below which the denominator
// counts as zero. Scaled by the magnitude of its terms so large parameter
// values do not mask near-degeneracy.
const degenerateEpsilon = 1e-12

// Params are the model parameters.
//
//	C0  autonomous consumption
//	I0  autonomous investment
//	G   government spending
//	T   lump-sum taxes
//	C   marginal propensity to consume, in (0,1)
//	B   interest sensitivity of investment, > 0
//	M   nominal money supply
//	P   price level, > 0
//	K   income sensitivity of money demand
//	H   interest sensitivity of money demand, > 0
type Params struct {
	C0 float64
	I0 float64
	G  float64
	T  float64
	C  float64
	B  float64
	M  float64
	P  float64
	K  float64
	H  float64
}

// Equilibrium is the unique intersection of the IS and LM curves.
type Equilibrium struct {
	// A is autonomous expenditure, C0 + I0 + G - c·T.
	A float64

	// Y is equilibrium income.
	Y float64

	// R is the equilibrium interest rate.
	R float64
}

// Validate checks the well-posedness invariants. The input store enforces
// tighter UI ranges; this guards hand-built parameter sets.
func (p Params) Validate() error {
	switch {
	case !(p.C > 0 && p.C < 1):
		return fmt.Errorf("islm: c=%g must be strictly between 0 and 1", p.C)
	case p.B <= 0:
		return fmt.Errorf("islm: b=%g must be positive", p.B)
	case p.H <= 0:
		return fmt.Errorf("islm: h=%g must be positive", p.H)
	case p.P <= 0:
		return fmt.Errorf("islm: P=%g must be positive", p.P)
	}
	return nil
}

// Autonomous returns autonomous expenditure A = C0 + I0 + G - c·T.
func (p Params) Autonomous() float64 {
	return p.C0 + p.I0 + p.G - p.C*p.T
}

// Solve computes the equilibrium in closed form. It is pure: identical
// parameters always produce identical output.
func Solve(p Params) (Equilibrium, error) {
	if err := p.Validate(); err != nil {
		return Equilibrium{}, err
	}

	a := p.Autonomous()
	realBalances := p.M / p.P

	numerator := p.H*a + p.B*realBalances
	denominator := p.B*p.K + p.H*(1-p.C)

	scale := math.Abs(p.B*p.K) + math.Abs(p.H*(1-p.C))
	if scale < 1 {
		scale = 1
	}
	if math.Abs(denominator) < degenerateEpsilon*scale {
		return Equilibrium{}, ErrDegenerateModel
	}

	y := numerator / denominator
	r := (p.K*y - realBalances) / p.H

	return Equilibrium{A: a, Y: y, R: r}, nil
}

// IS returns the interest rate on the IS curve at income y.
func (p Params) IS(y float64) float64 {
	return (p.Autonomous() - (1-p.C)*y) / p.B
}

// LM returns the interest rate on the LM curve at income y.
func (p Params) LM(y float64) float64 {
	return (p.K*y - p.M/p.P) / p.H
}

// PlannedExpenditure returns aggregate planned spending at income y and
// interest rate r, the upward-sloping line of the goods-market diagram.
func (p Params) PlannedExpenditure(y, r float64) float64 {
	return p.Autonomous() + p.C*y - p.B*r
}

// MoneyDemand returns the interest rate at which real money demand equals
// balances l when income is y, tracing the money-market demand curve.
func (p Params) MoneyDemand(y, l float64) float64 {
	return (p.K*y - l) / p.H
}

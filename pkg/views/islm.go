package views

import (
	"fmt"

	"github.com/ecolab-dev/ecolab/pkg/reactive"
	"github.com/ecolab-dev/ecolab/pkg/scene"
)

// GoodsMarket renders the 45° (Keynesian cross) diagram: planned
// expenditure against income at the equilibrium interest rate.
type GoodsMarket struct {
	state *reactive.Memo[EquilibriumState]
}

// NewGoodsMarket builds the goods-market view over the shared equilibrium
// derivation.
func NewGoodsMarket(state *reactive.Memo[EquilibriumState]) *GoodsMarket {
	return &GoodsMarket{state: state}
}

func (v *GoodsMarket) Name() string { return "goods-market" }

func (v *GoodsMarket) Render() scene.Scene {
	st := v.state.Get()
	if st.Err != nil {
		return scene.Fallback("Goods market", fallbackMessage(st.Err))
	}

	xmax := incomeAxisMax(st.Eq.Y)
	xs := linspace(0, xmax, curvePoints)

	ae := make([]float64, len(xs))
	for i, x := range xs {
		ae[i] = st.Params.PlannedExpenditure(x, st.Eq.R)
	}

	return scene.Scene{
		Title: "Goods market",
		X:     scene.Axis{Label: "income Y", Min: 0, Max: xmax},
		Y:     scene.Axis{Label: "planned expenditure", Min: 0, Max: xmax},
		Series: []scene.Series{
			scene.DashedLine("45°", xs, xs),
			scene.Line("planned expenditure", xs, ae),
			scene.VLine("Y*", st.Eq.Y),
			scene.Point("equilibrium", st.Eq.Y, st.Eq.Y),
		},
	}
}

// MoneyMarket renders real money supply against money demand at the
// equilibrium income.
type MoneyMarket struct {
	state *reactive.Memo[EquilibriumState]
}

// NewMoneyMarket builds the money-market view over the shared equilibrium
// derivation.
func NewMoneyMarket(state *reactive.Memo[EquilibriumState]) *MoneyMarket {
	return &MoneyMarket{state: state}
}

func (v *MoneyMarket) Name() string { return "money-market" }

func (v *MoneyMarket) Render() scene.Scene {
	st := v.state.Get()
	if st.Err != nil {
		return scene.Fallback("Money market", fallbackMessage(st.Err))
	}

	balances := st.Params.M / st.Params.P
	xmax := incomeAxisMax(balances)
	ymax := rateAxisMax(st.Eq.R)

	ls := linspace(1, xmax, curvePoints)
	demand := make([]float64, len(ls))
	for i, l := range ls {
		demand[i] = st.Params.MoneyDemand(st.Eq.Y, l)
	}

	return scene.Scene{
		Title: "Money market",
		X:     scene.Axis{Label: "real balances M/P", Min: 0, Max: xmax},
		Y:     scene.Axis{Label: "interest rate r", Min: 0, Max: ymax},
		Series: []scene.Series{
			scene.VLine("money supply", balances),
			scene.Line("money demand", ls, demand),
			scene.HLine("r*", st.Eq.R),
			scene.Point("equilibrium", balances, st.Eq.R),
		},
	}
}

// ISLM renders both curves and their intersection.
type ISLM struct {
	state *reactive.Memo[EquilibriumState]
}

// NewISLM builds the IS-LM cross view over the shared equilibrium
// derivation.
func NewISLM(state *reactive.Memo[EquilibriumState]) *ISLM {
	return &ISLM{state: state}
}

func (v *ISLM) Name() string { return "is-lm" }

func (v *ISLM) Render() scene.Scene {
	st := v.state.Get()
	if st.Err != nil {
		return scene.Fallback("IS-LM", fallbackMessage(st.Err))
	}

	xmax := incomeAxisMax(st.Eq.Y)
	ymax := rateAxisMax(st.Eq.R)
	xs := linspace(0, xmax, curvePoints)

	is := make([]float64, len(xs))
	lm := make([]float64, len(xs))
	for i, x := range xs {
		is[i] = st.Params.IS(x)
		lm[i] = st.Params.LM(x)
	}

	return scene.Scene{
		Title: "IS-LM",
		X:     scene.Axis{Label: "income Y", Min: 0, Max: xmax},
		Y:     scene.Axis{Label: "interest rate r", Min: 0, Max: ymax},
		Series: []scene.Series{
			scene.Line("IS", xs, is),
			scene.Line("LM", xs, lm),
			scene.VLine("Y*", st.Eq.Y),
			scene.HLine("r*", st.Eq.R),
			scene.Point("equilibrium", st.Eq.Y, st.Eq.R),
		},
	}
}

// Summary renders the equilibrium values as a text scene.
type Summary struct {
	state *reactive.Memo[EquilibriumState]
}

// NewSummary builds the equilibrium text view over the shared derivation.
func NewSummary(state *reactive.Memo[EquilibriumState]) *Summary {
	return &Summary{state: state}
}

func (v *Summary) Name() string { return "equilibrium" }

func (v *Summary) Render() scene.Scene {
	st := v.state.Get()
	if st.Err != nil {
		return scene.Fallback("Equilibrium", fallbackMessage(st.Err))
	}

	return scene.Scene{
		Title: "Equilibrium",
		X:     scene.Axis{Min: 0, Max: 1},
		Y:     scene.Axis{Min: 0, Max: 1},
		Annotations: []scene.Annotation{
			{X: 0.5, Y: 0.75, Text: fmt.Sprintf("A = %.2f", st.Eq.A)},
			{X: 0.5, Y: 0.50, Text: fmt.Sprintf("Y* = %.2f", st.Eq.Y)},
			{X: 0.5, Y: 0.25, Text: fmt.Sprintf("r* = %.3f", st.Eq.R)},
		},
	}
}

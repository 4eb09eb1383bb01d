package app

import (
	"github.com/ecolab-dev/ecolab/pkg/econ/islm"
	"github.com/ecolab-dev/ecolab/pkg/params"
	"github.com/ecolab-dev/ecolab/pkg/reactive"
	"github.com/ecolab-dev/ecolab/pkg/scene"
	"github.com/ecolab-dev/ecolab/pkg/views"
)

// ISLMApp is the IS-LM equilibrium explorer: ten sliders feeding one
// equilibrium derivation shared by four chart views.
type ISLMApp struct {
	store *params.Store
	state *reactive.Memo[views.EquilibriumState]
	views []views.Renderer
}

// NewISLM wires the IS-LM app with the textbook defaults.
func NewISLM() *ISLMApp {
	store := params.NewStore(
		params.Float("C0", "autonomous consumption", 100, 0, 500, 0),
		params.Float("I0", "autonomous investment", 100, 0, 500, 0),
		params.Float("G", "government spending", 200, 0, 500, 0),
		params.Float("T", "taxes", 100, 0, 500, 0),
		params.Float("c", "marginal propensity to consume", 0.8, 0.1, 0.95, 0.05),
		params.Float("b", "investment rate sensitivity", 20, 1, 100, 0),
		params.Float("M", "money supply", 600, 100, 2000, 0),
		params.Float("P", "price level", 1, 0.5, 3, 0),
		params.Float("k", "money demand income sensitivity", 0.5, 0.1, 2, 0),
		params.Float("h", "money demand rate sensitivity", 20, 1, 100, 0),
	)

	// The one expensive derivation: solved once per input change no
	// matter how many views pull it.
	state := reactive.NewMemo(func() views.EquilibriumState {
		p := islm.Params{
			C0: store.Float("C0"),
			I0: store.Float("I0"),
			G:  store.Float("G"),
			T:  store.Float("T"),
			C:  store.Float("c"),
			B:  store.Float("b"),
			M:  store.Float("M"),
			P:  store.Float("P"),
			K:  store.Float("k"),
			H:  store.Float("h"),
		}
		eq, err := islm.Solve(p)
		return views.EquilibriumState{Params: p, Eq: eq, Err: err}
	})

	return &ISLMApp{
		store: store,
		state: state,
		views: []views.Renderer{
			views.NewGoodsMarket(state),
			views.NewMoneyMarket(state),
			views.NewISLM(state),
			views.NewSummary(state),
		},
	}
}

func (a *ISLMApp) Name() string { return "islm" }

func (a *ISLMApp) Specs() []params.Spec { return a.store.Specs() }

func (a *ISLMApp) Set(name string, value any) error {
	return a.store.Set(name, value)
}

func (a *ISLMApp) Views() []views.Renderer { return a.views }

func (a *ISLMApp) Scenes() map[string]scene.Scene { return renderAll(a.views) }

func (a *ISLMApp) Recomputes() map[string]uint64 {
	return map[string]uint64{"equilibrium": a.state.Computations()}
}

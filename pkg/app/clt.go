package app

import (
	"github.com/ecolab-dev/ecolab/pkg/econ/clt"
	"github.com/ecolab-dev/ecolab/pkg/params"
	"github.com/ecolab-dev/ecolab/pkg/reactive"
	"github.com/ecolab-dev/ecolab/pkg/scene"
	"github.com/ecolab-dev/ecolab/pkg/views"
)

// CLTApp is the Central Limit Theorem demo. Simulation and binning are two
// derivation nodes: the samples node depends on (distribution, n) and the
// histogram node on (samples, bins), so a bin-count change re-bins the
// cached means without rerunning the Monte-Carlo trials.
type CLTApp struct {
	store   *params.Store
	samples *reactive.Memo[clt.SamplingResult]
	binned  *reactive.Memo[views.CLTState]
	views   []views.Renderer
}

// NewCLT wires the CLT demo. seed makes the simulation reproducible: the
// generator is reseeded from (seed, distribution, n) on every run, so
// identical inputs always produce identical sample means.
func NewCLT(seed uint64) *CLTApp {
	store := params.NewStore(
		params.Choice("distribution", "population distribution", clt.Uniform.String(),
			clt.Uniform.String(), clt.Exponential.String(), clt.Beta.String()),
		params.Int("n", "sample size", 30, 1, 200),
		params.Int("bins", "histogram bins", 30, 10, 100),
	)

	samples := reactive.NewMemo(func() clt.SamplingResult {
		// The choice signal only ever holds declared options, so this
		// parse cannot fail.
		dist, err := clt.ParseDistribution(store.Choice("distribution"))
		if err != nil {
			panic(err)
		}
		n := store.Int("n")

		rng := clt.NewRand(seed ^ uint64(n)*0x100000001b3 ^ uint64(dist)<<32)
		return clt.Simulate(dist, n, clt.Trials, rng)
	})

	binned := reactive.NewMemo(func() views.CLTState {
		res := samples.Get()
		return views.CLTState{
			Result: res,
			Hist:   clt.Bin(res.SampleMeans, store.Int("bins")),
		}
	})

	return &CLTApp{
		store:   store,
		samples: samples,
		binned:  binned,
		views: []views.Renderer{
			views.NewSamplingHistogram(binned),
		},
	}
}

func (a *CLTApp) Name() string { return "clt" }

func (a *CLTApp) Specs() []params.Spec { return a.store.Specs() }

func (a *CLTApp) Set(name string, value any) error {
	return a.store.Set(name, value)
}

func (a *CLTApp) Views() []views.Renderer { return a.views }

func (a *CLTApp) Scenes() map[string]scene.Scene { return renderAll(a.views) }

func (a *CLTApp) Recomputes() map[string]uint64 {
	return map[string]uint64{
		"samples":   a.samples.Computations(),
		"histogram": a.binned.Computations(),
	}
}

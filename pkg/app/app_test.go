package app

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ecolab-dev/ecolab/pkg/params"
)

func TestNewByName(t *testing.T) {
	for _, name := range Names() {
		a, err := New(name, 1)
		if err != nil {
			t.Fatalf("New(%s): %v", name, err)
		}
		if a.Name() != name {
			t.Errorf("Name() = %q, want %q", a.Name(), name)
		}
		if len(a.Specs()) == 0 {
			t.Errorf("%s has no parameter manifest", name)
		}
	}

	if _, err := New("roulette", 1); err == nil {
		t.Error("expected error for unknown app")
	}
}

func TestISLMSharedDerivation(t *testing.T) {
	a := NewISLM()

	scenes := a.Scenes()
	if len(scenes) != 4 {
		t.Fatalf("got %d scenes, want 4", len(scenes))
	}
	for _, name := range []string{"goods-market", "money-market", "is-lm", "equilibrium"} {
		if _, ok := scenes[name]; !ok {
			t.Errorf("missing scene %q", name)
		}
	}

	// Four views, one solve.
	if got := a.Recomputes()["equilibrium"]; got != 1 {
		t.Errorf("equilibrium computed %d times for 4 views, want 1", got)
	}

	// Rendering again without input changes stays cached.
	_ = a.Scenes()
	if got := a.Recomputes()["equilibrium"]; got != 1 {
		t.Errorf("idle re-render recomputed: %d", got)
	}

	// One input change, one recompute.
	if err := a.Set("G", 300.0); err != nil {
		t.Fatal(err)
	}
	_ = a.Scenes()
	if got := a.Recomputes()["equilibrium"]; got != 2 {
		t.Errorf("after one write equilibrium computed %d times, want 2", got)
	}
}

func TestISLMDefaultEquilibrium(t *testing.T) {
	a := NewISLM()
	scenes := a.Scenes()

	// The defaults are the reference parameterization; the equilibrium
	// marker must land on Y* ≈ 1314.29, r* ≈ 2.857.
	islmScene := scenes["is-lm"]
	for _, s := range islmScene.Series {
		if s.Name == "equilibrium" {
			if math.Abs(s.X[0]-1314.285714) > 1e-5 {
				t.Errorf("Y* = %v, want ≈1314.29", s.X[0])
			}
			if math.Abs(s.Y[0]-2.857142857) > 1e-6 {
				t.Errorf("r* = %v, want ≈2.857", s.Y[0])
			}
			return
		}
	}
	t.Fatal("is-lm scene has no equilibrium marker")
}

func TestISLMRejectsInvalidInput(t *testing.T) {
	a := NewISLM()
	_ = a.Scenes()

	if err := a.Set("c", 0.99); !errors.Is(err, params.ErrInvalidParameter) {
		t.Fatalf("Set(c, 0.99) = %v, want ErrInvalidParameter", err)
	}

	// Rejected write must not invalidate the derivation.
	_ = a.Scenes()
	if got := a.Recomputes()["equilibrium"]; got != 1 {
		t.Errorf("rejected write caused recompute: %d", got)
	}
}

func TestCLTBinChangeDoesNotResimulate(t *testing.T) {
	a := NewCLT(1)

	_ = a.Scenes()
	if got := a.Recomputes(); got["samples"] != 1 || got["histogram"] != 1 {
		t.Fatalf("initial recomputes = %v", got)
	}

	// bins only re-bins.
	if err := a.Set("bins", 50); err != nil {
		t.Fatal(err)
	}
	_ = a.Scenes()
	got := a.Recomputes()
	if got["samples"] != 1 {
		t.Errorf("bins change re-simulated: samples = %d", got["samples"])
	}
	if got["histogram"] != 2 {
		t.Errorf("bins change did not re-bin: histogram = %d", got["histogram"])
	}

	// n re-simulates and re-bins.
	if err := a.Set("n", 60); err != nil {
		t.Fatal(err)
	}
	_ = a.Scenes()
	got = a.Recomputes()
	if got["samples"] != 2 || got["histogram"] != 3 {
		t.Errorf("after n change recomputes = %v", got)
	}
}

func TestCLTSeedDeterminism(t *testing.T) {
	first := NewCLT(7).Scenes()["sampling-distribution"]
	second := NewCLT(7).Scenes()["sampling-distribution"]

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("identical seeds produced different scenes (-first +second):\n%s", diff)
	}

	third := NewCLT(8).Scenes()["sampling-distribution"]
	if diff := cmp.Diff(first, third); diff == "" {
		t.Error("different seeds produced identical scenes")
	}
}

func TestCLTDistributionChange(t *testing.T) {
	a := NewCLT(3)
	_ = a.Scenes()

	if err := a.Set("distribution", "exponential"); err != nil {
		t.Fatal(err)
	}
	scenes := a.Scenes()

	if a.Recomputes()["samples"] != 2 {
		t.Errorf("distribution change did not re-simulate: %v", a.Recomputes())
	}

	s := scenes["sampling-distribution"]
	for _, series := range s.Series {
		if series.Name == "μ" && series.X[0] != 1.0 {
			t.Errorf("μ guide at %v after switch to exponential, want 1", series.X[0])
		}
	}
}

func TestCLTRejectsOutOfDomain(t *testing.T) {
	a := NewCLT(1)

	for _, tc := range []struct {
		name  string
		value any
	}{
		{"n", 0},
		{"n", 201},
		{"bins", 9},
		{"bins", 101},
		{"distribution", "normal"},
	} {
		if err := a.Set(tc.name, tc.value); !errors.Is(err, params.ErrInvalidParameter) {
			t.Errorf("Set(%s, %v) = %v, want ErrInvalidParameter", tc.name, tc.value, err)
		}
	}
}

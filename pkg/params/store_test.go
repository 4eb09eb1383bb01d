package params

import (
	"errors"
	"testing"

	ierrors "github.com/ecolab-dev/ecolab/internal/errors"
	"github.com/ecolab-dev/ecolab/pkg/reactive"
)

func testStore() *Store {
	return NewStore(
		Float("c", "marginal propensity to consume", 0.8, 0.1, 0.95, 0.05),
		Float("M", "money supply", 600, 100, 2000, 0),
		Int("n", "sample size", 30, 1, 200),
		Choice("distribution", "population distribution", "uniform",
			"uniform", "exponential", "beta"),
	)
}

func TestStoreDefaults(t *testing.T) {
	s := testStore()

	if got := s.Float("c"); got != 0.8 {
		t.Errorf("c = %v, want 0.8", got)
	}
	if got := s.Int("n"); got != 30 {
		t.Errorf("n = %d, want 30", got)
	}
	if got := s.Choice("distribution"); got != "uniform" {
		t.Errorf("distribution = %q, want uniform", got)
	}
}

func TestStoreSetValid(t *testing.T) {
	s := testStore()

	if err := s.Set("c", 0.85); err != nil {
		t.Fatalf("Set(c, 0.85): %v", err)
	}
	if got := s.Float("c"); got != 0.85 {
		t.Errorf("c = %v, want 0.85", got)
	}

	if err := s.Set("distribution", "beta"); err != nil {
		t.Fatalf("Set(distribution, beta): %v", err)
	}
}

func TestStoreRejectsOutOfRange(t *testing.T) {
	s := testStore()

	cases := []struct {
		name  string
		value any
	}{
		{"n", 0},    // below min
		{"n", 201},  // above max
		{"c", 0.99}, // above max
		{"c", 0.0},  // below min
		{"distribution", "cauchy"},
		{"M", 5000.0},
	}

	for _, tc := range cases {
		err := s.Set(tc.name, tc.value)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Set(%s, %v) = %v, want ErrInvalidParameter", tc.name, tc.value, err)
		}
	}

	// Previous values retained after rejected writes.
	if got := s.Int("n"); got != 30 {
		t.Errorf("n = %d after rejected writes, want 30", got)
	}
	if got := s.Choice("distribution"); got != "uniform" {
		t.Errorf("distribution = %q after rejected write, want uniform", got)
	}
}

func TestStoreStepValidation(t *testing.T) {
	s := testStore()

	// 0.825 is in range but off the 0.05 grid anchored at 0.1.
	if err := s.Set("c", 0.825); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("off-step value accepted: %v", err)
	}

	// Grid points must pass despite float representation noise.
	for _, v := range []float64{0.1, 0.15, 0.3, 0.65, 0.95} {
		if err := s.Set("c", v); err != nil {
			t.Errorf("Set(c, %v): %v", v, err)
		}
	}

	// Stepless parameters accept any in-range value.
	if err := s.Set("M", 612.34); err != nil {
		t.Errorf("Set(M, 612.34): %v", err)
	}
}

func TestStoreUnknownParameter(t *testing.T) {
	s := testStore()

	err := s.Set("xyz", 1.0)
	if !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("Set(xyz) = %v, want ErrUnknownParameter", err)
	}
}

func TestStoreTypeCoercion(t *testing.T) {
	s := testStore()

	// JSON numbers decode as float64; integral floats fill int parameters.
	if err := s.Set("n", 50.0); err != nil {
		t.Fatalf("Set(n, 50.0): %v", err)
	}
	if got := s.Int("n"); got != 50 {
		t.Errorf("n = %d, want 50", got)
	}

	if err := s.Set("n", 50.5); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("fractional value for int parameter accepted: %v", err)
	}

	if err := s.Set("distribution", 42); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("non-string choice accepted: %v", err)
	}
}

func TestStoreErrorsAreCoded(t *testing.T) {
	s := testStore()

	var coded *ierrors.Error
	if err := s.Set("n", 500); !errors.As(err, &coded) {
		t.Fatal("domain error is not a coded error")
	}
	if coded.Code != "E101" || coded.Category != ierrors.CategoryValidation {
		t.Errorf("unexpected code/category: %s/%s", coded.Code, coded.Category)
	}
}

func TestStoreNotifiesDependents(t *testing.T) {
	s := testStore()

	reads := 0
	balances := reactive.NewMemo(func() float64 {
		reads++
		return s.Float("M")
	})

	if balances.Get() != 600 {
		t.Fatalf("expected 600, got %v", balances.Get())
	}

	// Rejected write must not invalidate.
	_ = s.Set("M", 5000.0)
	_ = balances.Get()
	if reads != 1 {
		t.Errorf("rejected write triggered recomputation")
	}

	if err := s.Set("M", 900.0); err != nil {
		t.Fatal(err)
	}
	if balances.Get() != 900 {
		t.Errorf("expected 900, got %v", balances.Get())
	}
	if reads != 2 {
		t.Errorf("expected exactly 2 computations, got %d", reads)
	}
}

func TestStoreSpecsOrder(t *testing.T) {
	s := testStore()
	specs := s.Specs()
	want := []string{"c", "M", "n", "distribution"}
	if len(specs) != len(want) {
		t.Fatalf("got %d specs, want %d", len(specs), len(want))
	}
	for i, name := range want {
		if specs[i].Name != name {
			t.Errorf("specs[%d] = %q, want %q", i, specs[i].Name, name)
		}
	}
}

func TestStoreSnapshot(t *testing.T) {
	s := testStore()
	snap := s.Snapshot()

	if snap["c"] != 0.8 || snap["n"] != 30 || snap["distribution"] != "uniform" {
		t.Errorf("unexpected snapshot: %v", snap)
	}
}

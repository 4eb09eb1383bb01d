package params

import (
	"errors"
	"fmt"
	"math"

	ierrors "github.com/ecolab-dev/ecolab/internal/errors"
	"github.com/ecolab-dev/ecolab/pkg/reactive"
)

// Sentinel errors for input validation. Structured errors returned by Set
// wrap one of these, so callers can branch with errors.Is while the server
// forwards the code and suggestion to the input client.
var (
	// ErrUnknownParameter is returned when the name is not declared.
	ErrUnknownParameter = errors.New("params: unknown parameter")

	// ErrInvalidParameter is returned when a value falls outside the
	// parameter's declared domain.
	ErrInvalidParameter = errors.New("params: value outside declared domain")
)

// stepTolerance absorbs float noise when checking step alignment.
const stepTolerance = 1e-6

// Store holds the current value of every declared parameter. Values are
// signal-backed: typed getters track the reading listener, and a successful
// Set notifies dependents. A failed Set leaves the previous value intact.
type Store struct {
	order   []string
	specs   map[string]Spec
	floats  map[string]*reactive.Signal[float64]
	ints    map[string]*reactive.Signal[int]
	choices map[string]*reactive.Signal[string]
}

// NewStore builds a store from the given specs. Declaring parameters is
// wiring, not user input, so malformed specs panic.
func NewStore(specs ...Spec) *Store {
	s := &Store{
		specs:   make(map[string]Spec, len(specs)),
		floats:  make(map[string]*reactive.Signal[float64]),
		ints:    make(map[string]*reactive.Signal[int]),
		choices: make(map[string]*reactive.Signal[string]),
	}

	for _, spec := range specs {
		if spec.Name == "" {
			panic("params: spec with empty name")
		}
		if _, dup := s.specs[spec.Name]; dup {
			panic(fmt.Sprintf("params: duplicate parameter %q", spec.Name))
		}

		switch spec.Kind {
		case KindFloat:
			def, ok := spec.Default.(float64)
			if !ok || !inRange(def, spec) {
				panic(fmt.Sprintf("params: bad float default for %q", spec.Name))
			}
			s.floats[spec.Name] = reactive.NewSignal(def)

		case KindInt:
			def, ok := spec.Default.(int)
			if !ok || !inRange(float64(def), spec) {
				panic(fmt.Sprintf("params: bad int default for %q", spec.Name))
			}
			s.ints[spec.Name] = reactive.NewSignal(def)

		case KindChoice:
			def, ok := spec.Default.(string)
			if !ok || !isOption(def, spec.Options) {
				panic(fmt.Sprintf("params: bad choice default for %q", spec.Name))
			}
			s.choices[spec.Name] = reactive.NewSignal(def)

		default:
			panic(fmt.Sprintf("params: unknown kind %q for %q", spec.Kind, spec.Name))
		}

		s.specs[spec.Name] = spec
		s.order = append(s.order, spec.Name)
	}

	return s
}

// Specs returns the parameter declarations in declaration order.
func (s *Store) Specs() []Spec {
	specs := make([]Spec, 0, len(s.order))
	for _, name := range s.order {
		specs = append(specs, s.specs[name])
	}
	return specs
}

// Set validates value against name's declared domain and stores it.
// Out-of-domain values are rejected and the previous value is retained.
// JSON-decoded numbers arrive as float64; integral floats are accepted for
// integer parameters.
func (s *Store) Set(name string, value any) error {
	spec, ok := s.specs[name]
	if !ok {
		return ierrors.Newf("E100", ierrors.CategoryValidation, "unknown parameter %q", name).
			Wrap(ErrUnknownParameter)
	}

	switch spec.Kind {
	case KindFloat:
		v, ok := toFloat(value)
		if !ok {
			return typeError(spec, value)
		}
		if !inRange(v, spec) || !onStep(v, spec) {
			return domainError(spec, value)
		}
		s.floats[name].Set(v)

	case KindInt:
		v, ok := toInt(value)
		if !ok {
			return typeError(spec, value)
		}
		if !inRange(float64(v), spec) {
			return domainError(spec, value)
		}
		s.ints[name].Set(v)

	case KindChoice:
		v, ok := value.(string)
		if !ok {
			return typeError(spec, value)
		}
		if !isOption(v, spec.Options) {
			return domainError(spec, value)
		}
		s.choices[name].Set(v)
	}

	return nil
}

// Float returns the current value of a float parameter, tracking the
// reading listener. Panics on a name that was not declared as a float;
// that is a wiring bug, not user input.
func (s *Store) Float(name string) float64 {
	sig, ok := s.floats[name]
	if !ok {
		panic(fmt.Sprintf("params: %q is not a float parameter", name))
	}
	return sig.Get()
}

// Int returns the current value of an integer parameter, tracking the
// reading listener.
func (s *Store) Int(name string) int {
	sig, ok := s.ints[name]
	if !ok {
		panic(fmt.Sprintf("params: %q is not an int parameter", name))
	}
	return sig.Get()
}

// Choice returns the current value of a choice parameter, tracking the
// reading listener.
func (s *Store) Choice(name string) string {
	sig, ok := s.choices[name]
	if !ok {
		panic(fmt.Sprintf("params: %q is not a choice parameter", name))
	}
	return sig.Get()
}

// Snapshot returns the current value of every parameter without tracking.
func (s *Store) Snapshot() map[string]any {
	snap := make(map[string]any, len(s.order))
	for _, name := range s.order {
		switch s.specs[name].Kind {
		case KindFloat:
			snap[name] = s.floats[name].Peek()
		case KindInt:
			snap[name] = s.ints[name].Peek()
		case KindChoice:
			snap[name] = s.choices[name].Peek()
		}
	}
	return snap
}

func inRange(v float64, spec Spec) bool {
	return v >= spec.Min && v <= spec.Max
}

// onStep checks that v sits on the declared step grid anchored at Min.
func onStep(v float64, spec Spec) bool {
	if spec.Step <= 0 {
		return true
	}
	steps := (v - spec.Min) / spec.Step
	return math.Abs(steps-math.Round(steps)) < stepTolerance
}

func isOption(v string, options []string) bool {
	for _, opt := range options {
		if opt == v {
			return true
		}
	}
	return false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func domainError(spec Spec, value any) error {
	return ierrors.Newf("E101", ierrors.CategoryValidation,
		"%s=%v outside declared domain %s", spec.Name, value, domainString(spec)).
		WithSuggestion(fmt.Sprintf("choose a value within %s", domainString(spec))).
		Wrap(ErrInvalidParameter)
}

func typeError(spec Spec, value any) error {
	return ierrors.Newf("E102", ierrors.CategoryValidation,
		"%s expects a %s value, got %T", spec.Name, spec.Kind, value).
		Wrap(ErrInvalidParameter)
}

func domainString(spec Spec) string {
	switch spec.Kind {
	case KindChoice:
		return fmt.Sprintf("%v", spec.Options)
	case KindInt:
		return fmt.Sprintf("[%d, %d]", int(spec.Min), int(spec.Max))
	default:
		if spec.Step > 0 {
			return fmt.Sprintf("[%g, %g] step %g", spec.Min, spec.Max, spec.Step)
		}
		return fmt.Sprintf("[%g, %g]", spec.Min, spec.Max)
	}
}

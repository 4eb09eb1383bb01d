package params

// Kind identifies a parameter's value domain.
type Kind string

const (
	// KindFloat is a real value in [Min, Max], optionally snapped to Step.
	KindFloat Kind = "float"

	// KindInt is an integer value in [Min, Max].
	KindInt Kind = "int"

	// KindChoice is one of a fixed set of string options.
	KindChoice Kind = "choice"
)

// Spec declares a parameter: its name, presentation label, domain, and
// default. Specs double as the manifest entries sent to input clients so
// they can present matching ranges and steps.
type Spec struct {
	Name    string   `json:"name"`
	Label   string   `json:"label,omitempty"`
	Kind    Kind     `json:"kind"`
	Min     float64  `json:"min,omitempty"`
	Max     float64  `json:"max,omitempty"`
	Step    float64  `json:"step,omitempty"`
	Options []string `json:"options,omitempty"`
	Default any      `json:"default"`
}

// Float declares a real-valued parameter. A step of 0 allows any value in
// the range.
func Float(name, label string, def, min, max, step float64) Spec {
	return Spec{
		Name:    name,
		Label:   label,
		Kind:    KindFloat,
		Min:     min,
		Max:     max,
		Step:    step,
		Default: def,
	}
}

// Int declares an integer-valued parameter.
func Int(name, label string, def, min, max int) Spec {
	return Spec{
		Name:    name,
		Label:   label,
		Kind:    KindInt,
		Min:     float64(min),
		Max:     float64(max),
		Default: def,
	}
}

// Choice declares a parameter that takes one of a fixed set of options.
func Choice(name, label, def string, options ...string) Spec {
	return Spec{
		Name:    name,
		Label:   label,
		Kind:    KindChoice,
		Options: options,
		Default: def,
	}
}

// Package scene defines the draw-instruction model handed to the plotting
// client: axes, series, and annotations, JSON-encoded. This is the whole
// contract at the rendering boundary — rasterization, fonts, and locale are
// the plotting collaborator's concern, never the server's.
package scene

// SeriesKind tags a series with its drawing primitive.
type SeriesKind string

const (
	// KindLine is a polyline through (X[i], Y[i]) points.
	KindLine SeriesKind = "line"

	// KindBars is a histogram: len(Edges) == len(Heights)+1.
	KindBars SeriesKind = "bars"

	// KindPoint is a single marker at (X[0], Y[0]).
	KindPoint SeriesKind = "point"

	// KindVLine is a vertical guide at X[0].
	KindVLine SeriesKind = "vline"

	// KindHLine is a horizontal guide at Y[0].
	KindHLine SeriesKind = "hline"
)

// Axis describes one chart axis.
type Axis struct {
	Label string  `json:"label,omitempty"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Series is one drawable element. Name, when set, becomes a legend entry.
type Series struct {
	Kind    SeriesKind `json:"kind"`
	Name    string     `json:"name,omitempty"`
	X       []float64  `json:"x,omitempty"`
	Y       []float64  `json:"y,omitempty"`
	Edges   []float64  `json:"edges,omitempty"`
	Heights []float64  `json:"heights,omitempty"`
	Dashed  bool       `json:"dashed,omitempty"`
}

// Annotation places text at a data coordinate.
type Annotation struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Scene is a complete chart description.
type Scene struct {
	Title       string       `json:"title"`
	X           Axis         `json:"x"`
	Y           Axis         `json:"y"`
	Series      []Series     `json:"series,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`

	// Message is set instead of Series when the model has no drawable
	// state (e.g. no unique equilibrium); clients render it as the
	// chart's fallback text.
	Message string `json:"message,omitempty"`
}

// Line builds a polyline series.
func Line(name string, xs, ys []float64) Series {
	return Series{Kind: KindLine, Name: name, X: xs, Y: ys}
}

// DashedLine builds a polyline drawn dashed.
func DashedLine(name string, xs, ys []float64) Series {
	return Series{Kind: KindLine, Name: name, X: xs, Y: ys, Dashed: true}
}

// Bars builds a histogram series from bin edges and bar heights.
func Bars(name string, edges, heights []float64) Series {
	return Series{Kind: KindBars, Name: name, Edges: edges, Heights: heights}
}

// Point builds a single marker.
func Point(name string, x, y float64) Series {
	return Series{Kind: KindPoint, Name: name, X: []float64{x}, Y: []float64{y}}
}

// VLine builds a vertical guide at x.
func VLine(name string, x float64) Series {
	return Series{Kind: KindVLine, Name: name, X: []float64{x}}
}

// HLine builds a horizontal guide at y.
func HLine(name string, y float64) Series {
	return Series{Kind: KindHLine, Name: name, Y: []float64{y}}
}

// Fallback builds a series-free scene carrying only a message.
func Fallback(title, message string) Scene {
	return Scene{Title: title, Message: message}
}

package scene

import (
	"encoding/json"
	"testing"
)

func TestHelpers(t *testing.T) {
	line := Line("IS", []float64{0, 1}, []float64{1, 0})
	if line.Kind != KindLine || line.Name != "IS" {
		t.Errorf("unexpected line series: %+v", line)
	}

	v := VLine("M/P", 600)
	if v.Kind != KindVLine || v.X[0] != 600 {
		t.Errorf("unexpected vline series: %+v", v)
	}

	p := Point("equilibrium", 1314.29, 2.86)
	if p.Kind != KindPoint || len(p.X) != 1 || len(p.Y) != 1 {
		t.Errorf("unexpected point series: %+v", p)
	}
}

func TestFallback(t *testing.T) {
	s := Fallback("IS-LM", "no unique equilibrium")
	if len(s.Series) != 0 {
		t.Error("fallback scene must carry no series")
	}
	if s.Message == "" {
		t.Error("fallback scene must carry a message")
	}
}

func TestSceneJSONShape(t *testing.T) {
	s := Scene{
		Title:  "money market",
		X:      Axis{Label: "real balances", Min: 0, Max: 1000},
		Y:      Axis{Label: "interest rate", Min: 0, Max: 10},
		Series: []Series{VLine("M/P", 600)},
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if _, ok := decoded["message"]; ok {
		t.Error("empty message must be omitted from the wire")
	}
	if decoded["title"] != "money market" {
		t.Errorf("unexpected title: %v", decoded["title"])
	}
}

// Package app wires the teaching tools for one session: an input store,
// the derivation nodes over it, and the chart views that consume them.
// Every session owns independent instances; nothing here is shared across
// sessions.
package app

import (
	"fmt"

	"github.com/ecolab-dev/ecolab/pkg/params"
	"github.com/ecolab-dev/ecolab/pkg/scene"
	"github.com/ecolab-dev/ecolab/pkg/views"
)

// App is one interactive teaching tool wired for a single session.
type App interface {
	// Name is the app's stable identifier ("islm", "clt").
	Name() string

	// Specs returns the app's parameter manifest.
	Specs() []params.Spec

	// Set validates and applies one parameter change, invalidating the
	// derivations that depend on it. A rejected write changes nothing.
	Set(name string, value any) error

	// Views returns the app's renderers.
	Views() []views.Renderer

	// Scenes renders every view against the current derived state.
	Scenes() map[string]scene.Scene

	// Recomputes reports the cumulative computation count per
	// derivation node, for metrics and tests.
	Recomputes() map[string]uint64
}

// Names lists the available apps.
func Names() []string {
	return []string{"islm", "clt"}
}

// New builds the named app. seed drives the simulator's generator; apps
// without randomness ignore it.
func New(name string, seed uint64) (App, error) {
	switch name {
	case "islm":
		return NewISLM(), nil
	case "clt":
		return NewCLT(seed), nil
	default:
		return nil, fmt.Errorf("app: unknown app %q", name)
	}
}

// renderAll renders a slice of views into a name-keyed scene map.
func renderAll(renderers []views.Renderer) map[string]scene.Scene {
	scenes := make(map[string]scene.Scene, len(renderers))
	for _, r := range renderers {
		scenes[r.Name()] = r.Render()
	}
	return scenes
}

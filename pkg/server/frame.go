package server

import (
	"github.com/ecolab-dev/ecolab/pkg/params"
	"github.com/ecolab-dev/ecolab/pkg/scene"
)

// Frame types on the session wire. Frames are JSON objects tagged with a
// type field; unknown types from the client are a protocol error.
const (
	// FrameSet is a client parameter change: {type, name, value}.
	FrameSet = "set"

	// FrameHello is the server's connection greeting carrying the app's
	// parameter manifest.
	FrameHello = "hello"

	// FrameScene carries one refreshed chart scene.
	FrameScene = "scene"

	// FrameError reports a rejected event; session state is unchanged.
	FrameError = "error"
)

// clientFrame is a decoded client message. Value keeps whatever type the
// JSON carried (float64, string, bool); the input store validates it.
type clientFrame struct {
	Type  string `json:"type"`
	Name  string `json:"name,omitempty"`
	Value any    `json:"value,omitempty"`
}

// serverFrame is an outgoing message. Exactly the fields for its type are
// populated; the rest are omitted from the wire.
type serverFrame struct {
	Type       string        `json:"type"`
	App        string        `json:"app,omitempty"`
	Params     []params.Spec `json:"params,omitempty"`
	View       string        `json:"view,omitempty"`
	Scene      *scene.Scene  `json:"scene,omitempty"`
	Code       string        `json:"code,omitempty"`
	Message    string        `json:"message,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
}

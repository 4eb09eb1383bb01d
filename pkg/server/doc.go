// Package server exposes the teaching apps over HTTP: a chi-routed API
// with health and metrics endpoints, and a WebSocket endpoint per app.
//
// Each WebSocket connection is one session owning its own input state and
// derivation graph. The client sends parameter-change frames; the server
// validates them, lets the reactive layer recompute what changed, and
// pushes the refreshed chart scenes back as JSON.
package server

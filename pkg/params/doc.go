// Package params implements the input state for ecolab's interactive
// models: a registry of named parameters, each declared with a domain
// (float range with optional step, integer range, or a fixed set of
// choices) and backed by a reactive signal.
//
// Writes go through Set, which validates against the declared domain and
// rejects out-of-domain values while retaining the previous value. Reads
// through the typed getters are tracked, so a memo that reads a parameter
// during its computation is invalidated by the next successful write.
package params

// Package errors provides structured, coded errors for ecolab.
//
// Unlike the sentinel errors in the model packages, these errors carry a
// stable code and category that survive the trip across the session wire,
// plus an optional suggestion shown to users correcting their input.
package errors
